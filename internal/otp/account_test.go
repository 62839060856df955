package otp_test

import (
	"testing"

	"otpmig/internal/otp"
)

func TestTypeString(t *testing.T) {
	cases := []struct {
		typ  otp.Type
		want string
	}{
		{otp.TypeUnspecified, "UNSPECIFIED"},
		{otp.TypeHOTP, "HOTP"},
		{otp.TypeTOTP, "TOTP"},
		{otp.Type(9), "UNSPECIFIED"},
	}
	for _, c := range cases {
		if got := c.typ.String(); got != c.want {
			t.Errorf("Type(%d).String(): got %q, want %q", c.typ, got, c.want)
		}
	}
}

func TestDigitsCount(t *testing.T) {
	if got := otp.DigitsUnspecified.Count(); got != 6 {
		t.Errorf("unspecified digits: got %d, want 6", got)
	}
	if got := otp.DigitsSix.Count(); got != 6 {
		t.Errorf("six digits: got %d, want 6", got)
	}
	if got := otp.DigitsEight.Count(); got != 8 {
		t.Errorf("eight digits: got %d, want 8", got)
	}
}

func TestSecretBase32(t *testing.T) {
	// RFC 6238's shared test secret; 20 bytes, so no padding to strip.
	a := otp.Account{Secret: []byte("12345678901234567890")}
	if got := a.SecretBase32(); got != "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ" {
		t.Fatalf("SecretBase32: got %q", got)
	}
}
