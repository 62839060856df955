package otp

import "encoding/base32"

// B32 returns standard RFC 4648 base32 encoding with padding.
func B32(b []byte) string { return base32.StdEncoding.EncodeToString(b) }

// B32NoPad returns base32 with the trailing padding stripped.
func B32NoPad(b []byte) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b)
}
