// Package cli parses command-line arguments, validates user input and
// carries process exit codes. It turns flags and the optional config file
// into the splitter's configuration.
package cli
