package otp

// DefaultPeriod is the TOTP step in seconds. Migration payloads do not carry
// a period; authenticator apps fix it at 30.
const DefaultPeriod = 30

// Type identifies the algorithm family of an account.
type Type byte

const (
	TypeUnspecified Type = 0
	TypeHOTP        Type = 1
	TypeTOTP        Type = 2
)

var typeName = [...]string{
	TypeUnspecified: "UNSPECIFIED",
	TypeHOTP:        "HOTP",
	TypeTOTP:        "TOTP",
}

func (t Type) String() string {
	if int(t) < len(typeName) {
		return typeName[t]
	}
	return typeName[TypeUnspecified]
}

// Digits is the code length of an account.
type Digits byte

const (
	DigitsUnspecified Digits = 0
	DigitsSix         Digits = 1
	DigitsEight       Digits = 2
)

// Count returns the number of code digits: six unless eight was asked for,
// matching the authenticator default.
func (d Digits) Count() int {
	if d == DigitsEight {
		return 8
	}
	return 6
}

// Account is one decoded OTP account.
//
// Name, issuer, digits and counter are optional in the payload and keep
// their zero values when absent. Secret is never empty in an account that
// made it out of the decoder.
type Account struct {
	Name   string
	Issuer string
	Secret []byte

	Type     Type
	TypeCode uint64 // raw algorithm tag, kept for diagnostics
	Digits   Digits
	Counter  uint64 // HOTP only; 0 when absent
}

// SecretBase32 returns the secret in the unpadded Base32 spelling used for
// manual entry into authenticator apps.
func (a Account) SecretBase32() string { return B32NoPad(a.Secret) }
