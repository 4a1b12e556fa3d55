// Package cli parses command-line arguments into an app.Config and defines
// the ExitError type used to carry process exit codes.
package cli
