package placematch

import (
	"testing"
)

func TestDetectDeclaredOrderWins(t *testing.T) {
	// Jerash precedes Amman in the vocabulary, so it wins even though
	// Amman appears later in a longer phrase.
	got := Detect("Visit Jerash then Amman City Tour", DefaultVocabulary)
	if got != "Jerash" {
		t.Fatalf("expected Jerash, got %q", got)
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	got := Detect("full day in PETRA with lunch", DefaultVocabulary)
	if got != "Petra" {
		t.Fatalf("expected Petra, got %q", got)
	}
}

func TestDetectCompositeCollapsesToAmman(t *testing.T) {
	got := Detect("Morning at the Roman Theater", DefaultVocabulary)
	if got != "Amman" {
		t.Fatalf("expected Amman, got %q", got)
	}

	got = Detect("Walk up to the Citadel", DefaultVocabulary)
	if got != "Amman" {
		t.Fatalf("expected Amman, got %q", got)
	}
}

func TestDetectCityTourFallback(t *testing.T) {
	got := Detect("Half day city tour and shopping", DefaultVocabulary)
	if got != "Amman" {
		t.Fatalf("expected Amman, got %q", got)
	}
}

func TestDetectNoMatch(t *testing.T) {
	if got := Detect("Breakfast at the hotel, day at leisure", DefaultVocabulary); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Detect("", DefaultVocabulary); got != "" {
		t.Fatalf("expected empty string for empty text, got %q", got)
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("Roman Theater"); got != "Amman" {
		t.Fatalf("expected Amman, got %q", got)
	}
	if got := Canonical("Jerash"); got != "Jerash" {
		t.Fatalf("expected Jerash, got %q", got)
	}
}
