// Package installer runs the package managers of a freshly generated site.
//
// Two steps start side by side once the files are in place:
//
//   - the front-end dependency commands (npm install, then bower install),
//     followed by a "dependencies installed" message
//   - the bundler command (bundle install)
//
// Failures never reach the caller. They are logged at debug level and the
// remaining commands still run.
package installer
