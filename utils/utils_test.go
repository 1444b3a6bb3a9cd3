package utils

import "testing"

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(13)
	if len(s) != 13 {
		t.Fatalf("expected 13 chars, got %q", s)
	}
}

func TestGenerateRandomDigitString(t *testing.T) {
	s := GenerateRandomDigitString(6)
	if len(s) != 6 {
		t.Fatalf("expected 6 digits, got %q", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit %q in %q", c, s)
		}
	}
}
