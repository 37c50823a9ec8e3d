// Package platform provisions a rendered deployment template on the container
// platform: the template is stored once, then processed and applied for each
// environment in order.
package platform
