// Package main hosts the inputrelay CLI entrypoint and command graph.
//
// Running the binary without arguments performs one relay intake in the
// configured working directory: read the request file, report it, and write
// the acknowledgment marker for non-stop payloads. The remaining commands are
// utilities around that single operation (preflight checks and configuration
// scaffolding) and never touch the request or marker files themselves.
package main
