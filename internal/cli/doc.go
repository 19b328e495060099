// Package cli parses command-line arguments and owns process-level concerns
// such as exit codes. It translates flags into runner options.
package cli
