package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"otpmig/internal/otp"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatURI  = "uri"
)

// Render writes accounts to w in the named format.
func Render(w io.Writer, format string, accounts []otp.Account) error {
	switch format {
	case FormatText:
		return Text(w, accounts)
	case FormatJSON:
		return JSON(w, accounts)
	case FormatYAML:
		return YAML(w, accounts)
	case FormatURI:
		return URIs(w, accounts)
	}
	return fmt.Errorf("unknown format %q", format)
}

// Text writes one numbered block per account. TOTP accounts show the fixed
// 30-second period; HOTP accounts show their counter instead.
func Text(w io.Writer, accounts []otp.Account) error {
	for i, a := range accounts {
		fmt.Fprintf(w, "Account #%d\n", i+1)
		fmt.Fprintf(w, "  Name   : %s\n", orNone(a.Name))
		fmt.Fprintf(w, "  Issuer : %s\n", orNone(a.Issuer))
		fmt.Fprintf(w, "  Type   : %s\n", a.Type)
		fmt.Fprintf(w, "  Digits : %d\n", a.Digits.Count())
		if a.Type == otp.TypeHOTP {
			fmt.Fprintf(w, "  Counter: %d\n", a.Counter)
		} else {
			fmt.Fprintf(w, "  Period : %d\n", otp.DefaultPeriod)
		}
		fmt.Fprintf(w, "  Secret : %s\n\n", a.SecretBase32())
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// record is the shape of one account in structured output. Period and
// counter are mutually exclusive: period for TOTP, counter for HOTP.
type record struct {
	Name    string  `json:"name" yaml:"name"`
	Issuer  string  `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Type    string  `json:"type" yaml:"type"`
	Digits  int     `json:"digits" yaml:"digits"`
	Period  int     `json:"period,omitempty" yaml:"period,omitempty"`
	Counter *uint64 `json:"counter,omitempty" yaml:"counter,omitempty"`
	Secret  string  `json:"secret" yaml:"secret"`
	URI     string  `json:"uri" yaml:"uri"`
}

func records(accounts []otp.Account) []record {
	out := make([]record, len(accounts))
	for i, a := range accounts {
		r := record{
			Name:   a.Name,
			Issuer: a.Issuer,
			Type:   a.Type.String(),
			Digits: a.Digits.Count(),
			Secret: a.SecretBase32(),
			URI:    a.URI(),
		}
		if a.Type == otp.TypeHOTP {
			counter := a.Counter
			r.Counter = &counter
		} else {
			r.Period = otp.DefaultPeriod
		}
		out[i] = r
	}
	return out
}

// JSON writes the accounts as an indented JSON array.
func JSON(w io.Writer, accounts []otp.Account) error {
	b, err := json.MarshalIndent(records(accounts), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// YAML writes the accounts as a YAML sequence.
func YAML(w io.Writer, accounts []otp.Account) error {
	b, err := yaml.Marshal(records(accounts))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// URIs writes one otpauth:// key URI per line, ready for re-import.
func URIs(w io.Writer, accounts []otp.Account) error {
	for _, a := range accounts {
		if _, err := fmt.Fprintln(w, a.URI()); err != nil {
			return err
		}
	}
	return nil
}
