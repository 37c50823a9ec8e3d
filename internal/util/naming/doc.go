// Package naming provides consistent naming functions for platform resources
// and generated artifacts.
//
// Per-environment resources follow the pattern {app}-{env}, image stream
// tags follow {app}:{env}, and app-qualified artifact files follow
// {app}-{basename}. Everything that derives a name from the app goes
// through here so the template, the trigger patch and the file layout agree.
package naming
