package render

import (
	"bitbucket.org/creachadair/stringset"

	"otpmig/internal/otp"
)

// A Selection restricts output to accounts matching the chosen issuers and
// names. An empty set matches everything; both sets must match when both
// are populated. Matching is exact.
type Selection struct {
	Issuers stringset.Set
	Names   stringset.Set
}

// NewSelection builds a Selection from repeated flag values.
func NewSelection(issuers, names []string) Selection {
	return Selection{
		Issuers: stringset.New(issuers...),
		Names:   stringset.New(names...),
	}
}

// Keep reports whether a passes the filter.
func (s Selection) Keep(a otp.Account) bool {
	if s.Issuers.Len() > 0 && !s.Issuers.Contains(a.Issuer) {
		return false
	}
	if s.Names.Len() > 0 && !s.Names.Contains(a.Name) {
		return false
	}
	return true
}

// Apply returns the accounts that pass the filter, preserving order. With
// nothing selected it returns the input untouched.
func (s Selection) Apply(accounts []otp.Account) []otp.Account {
	if s.Issuers.Len() == 0 && s.Names.Len() == 0 {
		return accounts
	}
	var kept []otp.Account
	for _, a := range accounts {
		if s.Keep(a) {
			kept = append(kept, a)
		}
	}
	return kept
}
