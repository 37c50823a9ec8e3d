// Package s3 provides a small client for S3-compatible object storage.
//
// It backs the object storage artifact store: generated artifacts are
// written as objects and read back by later invocations.
package s3
