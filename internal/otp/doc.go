// Package otp defines the decoded account record shared by the payload
// decoder and the presentation layer, plus the Base32 spellings of secrets.
package otp
