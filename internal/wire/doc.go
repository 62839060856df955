// Package wire reads the subset of the protocol buffer wire format used by
// authenticator migration payloads.
//
// # Overview
//
// A message body is a flat sequence of fields. Each field opens with a varint
// tag whose low three bits are the wire type and whose remaining bits are the
// field number. The Decoder walks one body and yields each field in turn;
// length-prefixed values double as embedded messages, which callers decode by
// running a fresh Decoder over the value bytes.
//
// Unknown field numbers are not an error. They decode like any other field
// and the caller is free to skip them, so newer export versions that add
// fields keep decoding.
//
// # Errors
//
// ErrTruncatedVarint, ErrVarintOverflow and ErrTruncatedMessage report
// malformed binary structure and are unrecoverable for the message being
// decoded. ErrBadWireType reports a tag carrying the obsolete group markers
// or an unassigned type code.
package wire
