package strength

import (
	_ "embed"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// CommonPasswordSet is an immutable membership set of known-weak passwords.
// It is built once, shared by reference, and safe for concurrent use.
type CommonPasswordSet struct {
	entries map[string]struct{}
}

var defaultCommon = parseCommonPasswords(commonPasswordsRaw)

// DefaultCommonPasswords returns the set parsed from the embedded list of
// frequently chosen passwords. The same instance is returned on every call.
func DefaultCommonPasswords() *CommonPasswordSet {
	return defaultCommon
}

// NewCommonPasswordSet builds a set from the given passwords, dropping
// empty strings and duplicates.
func NewCommonPasswordSet(passwords []string) *CommonPasswordSet {
	entries := make(map[string]struct{}, len(passwords))
	for _, pw := range passwords {
		if pw == "" {
			continue
		}
		entries[pw] = struct{}{}
	}
	return &CommonPasswordSet{entries: entries}
}

func parseCommonPasswords(raw string) *CommonPasswordSet {
	lines := strings.Split(raw, "\n")
	entries := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		entries[pw] = struct{}{}
	}
	return &CommonPasswordSet{entries: entries}
}

// Contains reports whether the candidate is an exact, case-sensitive match
// for a known-weak password.
func (s *CommonPasswordSet) Contains(candidate string) bool {
	if s == nil {
		return false
	}
	_, ok := s.entries[candidate]
	return ok
}

// Len returns the number of passwords in the set.
func (s *CommonPasswordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
