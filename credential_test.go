package darkframe

import "testing"

func TestIsValidNewPassword(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"exact phrase", "lacturapocrumservamultos", true},
		{"uppercase phrase", "LACTURAPOCRUMSERVAMULTOS", true},
		{"reversed phrase", "sotlumavresmurcoparutcal", true},
		{"phrase with spaces", "lactura pocrum serva multos", true},
		{"missing letters", "lactura pocrum", false},
		{"extra letter", "lacturapocrumservamultoss", false},
		{"different letters", "correcthorsebatterystaple", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidNewPassword(tt.candidate); got != tt.want {
				t.Errorf("IsValidNewPassword(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestNormalizeLettersIgnoresWhitespace(t *testing.T) {
	a := normalizeLetters("ab c\td\ne")
	b := normalizeLetters("edcba")
	if a != b {
		t.Errorf("normalizeLetters mismatch: %q vs %q", a, b)
	}
}
