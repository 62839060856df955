package otp

import (
	"net/url"
	"strconv"
)

// URI renders the account as an otpauth:// key URI of the form consumed by
// authenticator apps:
//
//	otpauth://totp/Issuer:Name?secret=...&issuer=Issuer&digits=6&period=30
//
// HOTP accounts carry a counter parameter instead of a period. Accounts with
// an unspecified type render as totp, which is what exporters mean by it.
func (a Account) URI() string {
	typ := "totp"
	if a.Type == TypeHOTP {
		typ = "hotp"
	}

	label := a.Name
	if a.Issuer != "" {
		label = a.Issuer + ":" + a.Name
	}

	q := url.Values{}
	q.Set("secret", a.SecretBase32())
	if a.Issuer != "" {
		q.Set("issuer", a.Issuer)
	}
	q.Set("digits", strconv.Itoa(a.Digits.Count()))
	if a.Type == TypeHOTP {
		q.Set("counter", strconv.FormatUint(a.Counter, 10))
	} else {
		q.Set("period", strconv.Itoa(DefaultPeriod))
	}

	u := url.URL{Scheme: "otpauth", Host: typ, Path: "/" + label, RawQuery: q.Encode()}
	return u.String()
}
