// Package relay implements the request intake performed by a single
// inputrelay run.
//
// A run looks for the request file in the working directory, classifies its
// trimmed content as a stop signal or a payload, prints status lines to the
// console, and writes the acknowledgment marker for payloads only. The marker
// is written if and only if the request file exists and its content is not a
// stop signal.
//
// Runs hold no state between invocations beyond the two files themselves.
package relay
