// Package logging provides concrete implementations of the memtree.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed lines to an io.Writer (stderr by default)
//   - NullLogger: Discards all messages
package logging
