package placematch

import (
	"nabatea/utils"
	"strings"
)

// Composite points of interest collapse to their parent city.
const parentCity = "Amman"

// Detect scans free text against the vocabulary and returns the matched
// place name, canonicalized. Matching is a case-insensitive substring
// test in declared vocabulary order; the first entry found wins. There is
// no longest-match or scoring pass — historical data depends on the
// declared order, so keep it that way.
func Detect(text string, vocab []string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	for _, name := range vocab {
		if utils.ContainsIgnoreCase(text, name) {
			return Canonical(name)
		}
	}

	// heuristic fallback: a bare "city tour" day is an Amman day
	if utils.ContainsIgnoreCase(text, "city tour") {
		return parentCity
	}

	return ""
}

// Canonical collapses composite/aliased points of interest onto their
// parent location. The Roman Theater and the Citadel are sold as Amman
// lines, and anything mentioning Amman is Amman.
func Canonical(name string) string {
	if utils.ContainsIgnoreCase(name, "Roman Theater") ||
		utils.ContainsIgnoreCase(name, "Citadel") ||
		utils.ContainsIgnoreCase(name, parentCity) {
		return parentCity
	}
	return name
}
