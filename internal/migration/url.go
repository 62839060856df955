package migration

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Scheme carried by authenticator export URLs.
const Scheme = "otpauth-migration"

var (
	// ErrNotMigration is returned for input that is not an
	// otpauth-migration:// URL.
	ErrNotMigration = errors.New("not an otpauth-migration URL")
	// ErrNoData is returned for a migration URL without a data parameter.
	ErrNoData = errors.New("migration URL has no data parameter")
	// ErrInvalidBase64 is returned when the data parameter is not Base64.
	ErrInvalidBase64 = errors.New("invalid base64 data")
)

// DataParam extracts the percent-decoded data parameter from an export URL.
func DataParam(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotMigration, err)
	}
	if u.Scheme != Scheme {
		return "", fmt.Errorf("%w: scheme %q", ErrNotMigration, u.Scheme)
	}
	data := u.Query().Get("data")
	if data == "" {
		return "", ErrNoData
	}
	return data, nil
}

// DecodeData turns the data parameter into raw payload bytes. Trailing
// padding is optional, and spaces left behind when a query-string decoder
// unescaped literal plus signs are put back before decoding; anything else
// malformed is ErrInvalidBase64.
func DecodeData(data string) ([]byte, error) {
	s := strings.ReplaceAll(data, " ", "+")
	s = strings.TrimRight(s, "=")
	raw, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return raw, nil
}

// DecodeURL runs the full pipeline for one export URL: extract the data
// parameter, Base64-decode it, and map the payload onto an Export. Every
// call is independent; decoding different URLs concurrently is safe.
func DecodeURL(rawURL string) (*Export, error) {
	data, err := DataParam(rawURL)
	if err != nil {
		return nil, err
	}
	raw, err := DecodeData(data)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}
