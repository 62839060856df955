// Package migration decodes otpauth-migration:// export URLs into account
// records.
//
// An export URL carries a data query parameter holding a Base64 payload.
// The payload is a protobuf message whose repeated field 1 holds one
// embedded OtpParameters message per account; varint fields 2 through 5
// carry version and batch metadata. Decoding is a single forward pass with
// one level of recursion into the embedded entries.
//
// Structural damage to the payload (truncated varints, over-long length
// prefixes) aborts the whole decode. An entry that parses but has no secret
// is dropped on its own: its index lands in Export.Skipped and the
// remaining entries still decode.
package migration
