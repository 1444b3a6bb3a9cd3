package placematch

// DefaultVocabulary is the place-name vocabulary scanned against free
// itinerary text. Declaration order is authoritative: Detect returns the
// FIRST entry found as a substring, so site entries must stay ahead of
// "Amman" or historical reservations re-derive differently. Do not sort.
var DefaultVocabulary = []string{
	"Jerash",
	"Petra One Day Visit - Regular",
	"Little Petra",
	"Petra",
	"Wadi Rum",
	"Dead Sea",
	"Mount Nebo",
	"Madaba",
	"Baptism Site",
	"Umm Qais",
	"Ajloun",
	"Karak",
	"Shobak",
	"Dana",
	"Desert Castles",
	"Aqaba",
	"Roman Theater",
	"Citadel",
	"Amman",
}
