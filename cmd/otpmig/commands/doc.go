// Package commands defines the otpmig CLI.
//
// Commands
//
//   - decode   Decode migration URLs into account records
//   - inspect  Dump the wire structure of a migration payload
//
// Both commands take export URLs as arguments; with none they prompt on
// stderr and read one URL from stdin. Results go to stdout, warnings and
// batch summaries to stderr, so decoded output pipes cleanly.
package commands
