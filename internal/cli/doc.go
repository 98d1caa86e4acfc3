// Package cli parses command-line arguments into the application's
// configuration, validates user input and maps failures to exit codes.
package cli
