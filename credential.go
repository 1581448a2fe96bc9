package darkframe

import (
	"errors"
	"sort"
	"strings"
	"unicode"
)

// AdminUser is the only account name the login form accepts. It is a fixed
// constant, never stored and never changeable.
const AdminUser = "nafim"

// Passphrase is displayed on the password form as a puzzle: any accepted
// admin password must use exactly its letters, in any order.
const Passphrase = "lacturapocrumservamultos"

// ErrBadPassphrase is returned when a candidate password is not a letter
// permutation of Passphrase.
var ErrBadPassphrase = errors.New("darkframe: password is not an anagram of the passphrase")

// ErrNoPassword is returned on login while no admin password has been
// configured yet.
var ErrNoPassword = errors.New("darkframe: no admin password configured")

var phraseLetters = normalizeLetters(Passphrase)

// normalizeLetters lowercases s, strips whitespace, and sorts the remaining
// runes so two strings compare equal iff they are letter permutations.
func normalizeLetters(s string) string {
	runes := make([]rune, 0, len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// IsValidNewPassword reports whether candidate is a letter permutation of
// Passphrase, ignoring case and whitespace. It is the sole gate for setting
// or changing the admin password; there is no separate recovery flow because
// the phrase itself is public.
func IsValidNewPassword(candidate string) bool {
	return normalizeLetters(candidate) == phraseLetters
}
