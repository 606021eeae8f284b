// Package preflight provides readiness checks for the filesystem paths the
// relay reads from and writes to.
package preflight
