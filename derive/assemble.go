package derive

import (
	"nabatea/models"
	"nabatea/placematch"
)

// Tables carries the reference data the derivers consult. All of it is
// read-only; the zero value works and simply leaves rates unresolved.
type Tables struct {
	Vocabulary      []string
	EntranceRates   []models.EntranceRate
	RestaurantRates []models.RestaurantRate
	Seasons         []models.SeasonWindow
}

// Assemble derives a reservation from an offer document in one pass and
// returns it with the list of required fields it could not fill. The
// computation is pure; persisting the result is the caller's business.
// Re-running on the same document produces an equal aggregate, so replays
// overwrite instead of accumulating.
func Assemble(doc *models.OfferDoc, tables Tables) (models.Reservation, []string) {
	vocab := tables.Vocabulary
	if len(vocab) == 0 {
		vocab = placematch.DefaultVocabulary
	}

	res := models.Reservation{
		OfferID:     doc.OfferID,
		SourceGroup: firstNonEmpty(doc.Group, doc.GroupName),
		General: models.GeneralData{
			Group:         resolveGroup(doc),
			Agent:         resolveAgent(doc),
			Nationality:   resolveNationality(doc),
			Pax:           resolvePax(doc),
			ArrivalDate:   resolveArrivalDate(doc),
			DepartureDate: resolveDepartureDate(doc),
		},
	}
	if q := firstQuotation(doc); q != nil {
		res.QuotationID = firstNonEmpty(doc.QuotationID, q.QuotationID)
	} else {
		res.QuotationID = doc.QuotationID
	}

	res.ArrDep = DeriveArrDep(doc, vocab)
	res.Hotels = DeriveHotels(doc, tables.Seasons)
	res.Itineraries = DeriveItineraries(doc)
	res.Entrances = DeriveEntrances(doc, vocab, res.Itineraries)
	AttachEntranceRates(res.Entrances, tables.EntranceRates)
	res.Inclusions = SplitLines(resolveInclusions(doc))
	res.Exclusions = SplitLines(resolveExclusions(doc))
	res.Guides = DeriveGuides(doc)
	res.Restaurants = DeriveRestaurants(doc, vocab, tables.RestaurantRates)

	if res.Hotels == nil {
		res.Hotels = []models.HotelRow{}
	}
	if res.Entrances == nil {
		res.Entrances = []models.EntranceRow{}
	}
	if res.Guides == nil {
		res.Guides = []models.GuideRow{}
	}
	if res.Restaurants == nil {
		res.Restaurants = []models.RestaurantRow{}
	}
	if res.Itineraries == nil {
		res.Itineraries = []models.ItineraryRow{}
	}

	return res, AuditEmptyFields(&res)
}
