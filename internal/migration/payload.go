package migration

import (
	"errors"
	"fmt"
	"io"

	"otpmig/internal/otp"
	"otpmig/internal/wire"
)

// ErrMissingSecret marks an entry that decoded cleanly but carries no
// secret. The entry is unusable; the rest of the payload is not.
var ErrMissingSecret = errors.New("account entry has no secret")

// Top-level payload field numbers.
const (
	FieldEntry      = 1 // embedded OtpParameters message, repeated
	FieldVersion    = 2
	FieldBatchSize  = 3
	FieldBatchIndex = 4
	FieldBatchID    = 5
)

// OtpParameters field numbers.
const (
	ParamSecret    = 1
	ParamName      = 2
	ParamIssuer    = 3
	ParamAlgorithm = 4 // hash algorithm, not needed for extraction
	ParamDigits    = 5
	ParamCounter   = 6
	ParamType      = 7
)

// An Export is one decoded payload: the accounts in payload order plus the
// batch metadata Google Authenticator stamps on each QR code of a split
// export.
type Export struct {
	Accounts []otp.Account
	Skipped  []int // 1-based indices of entries dropped for a missing secret

	Version    uint64
	BatchSize  uint64
	BatchIndex uint64
	BatchID    uint64
}

// Decode maps a raw migration payload onto an Export. Field 1 entries
// become accounts in encounter order; metadata fields fill the Export
// header; anything else is skipped so newer export versions keep decoding.
func Decode(payload []byte) (*Export, error) {
	ex := &Export{}
	entries := 0
	d := wire.NewDecoder(payload)
	for {
		f, err := d.Next()
		if err == io.EOF {
			return ex, nil
		}
		if err != nil {
			return nil, fmt.Errorf("migration payload: %w", err)
		}

		if f.Number == FieldEntry && f.Type == wire.TypeLen {
			entries++
			a, err := decodeEntry(f.Bytes)
			if errors.Is(err, ErrMissingSecret) {
				ex.Skipped = append(ex.Skipped, entries)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", entries, err)
			}
			ex.Accounts = append(ex.Accounts, a)
			continue
		}
		if f.Type == wire.TypeVarint {
			switch f.Number {
			case FieldVersion:
				ex.Version = f.Value
			case FieldBatchSize:
				ex.BatchSize = f.Value
			case FieldBatchIndex:
				ex.BatchIndex = f.Value
			case FieldBatchID:
				ex.BatchID = f.Value
			}
		}
	}
}

// decodeEntry maps one OtpParameters message onto an account. Fields whose
// number or wire type fall outside the table are skipped.
func decodeEntry(body []byte) (otp.Account, error) {
	var a otp.Account
	d := wire.NewDecoder(body)
	for {
		f, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return otp.Account{}, err
		}

		switch {
		case f.Number == ParamSecret && f.Type == wire.TypeLen:
			a.Secret = append([]byte(nil), f.Bytes...)
		case f.Number == ParamName && f.Type == wire.TypeLen:
			a.Name = string(f.Bytes)
		case f.Number == ParamIssuer && f.Type == wire.TypeLen:
			a.Issuer = string(f.Bytes)
		case f.Number == ParamDigits && f.Type == wire.TypeVarint:
			a.Digits = digitsFor(f.Value)
		case f.Number == ParamCounter && f.Type == wire.TypeVarint:
			a.Counter = f.Value
		case f.Number == ParamType && f.Type == wire.TypeVarint:
			a.TypeCode = f.Value
			a.Type = typeFor(f.Value)
		}
	}
	if len(a.Secret) == 0 {
		return otp.Account{}, ErrMissingSecret
	}
	return a, nil
}

// typeFor maps the payload's type enum onto an account type. Values outside
// the enum stay unspecified rather than being guessed at.
func typeFor(v uint64) otp.Type {
	switch v {
	case 1:
		return otp.TypeHOTP
	case 2:
		return otp.TypeTOTP
	}
	return otp.TypeUnspecified
}

func digitsFor(v uint64) otp.Digits {
	switch v {
	case 1:
		return otp.DigitsSix
	case 2:
		return otp.DigitsEight
	}
	return otp.DigitsUnspecified
}
