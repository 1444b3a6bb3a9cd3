package derive

import (
	"nabatea/models"
	"nabatea/placematch"
	"nabatea/seasons"
)

// DeriveArrDep builds the fixed arrival/departure pair. Missing upstream
// fields stay empty and surface as audit gaps downstream.
func DeriveArrDep(doc *models.OfferDoc, vocab []string) [2]models.ArrDepRow {
	arrDate := resolveArrivalDate(doc)
	depDate := resolveDepartureDate(doc)

	arrival := models.ArrDepRow{
		Kind:   "arrival",
		Date:   arrDate,
		Day:    seasons.Weekday(arrDate),
		From:   doc.ArrivalBorder,
		To:     firstDestination(doc, vocab),
		Flight: resolveArrivalFlight(doc),
		Time:   doc.ArrivalTime,
		Border: doc.ArrivalBorder,
	}

	departure := models.ArrDepRow{
		Kind:   "departure",
		Date:   depDate,
		Day:    seasons.Weekday(depDate),
		From:   lastDestination(doc, vocab),
		To:     doc.ExitBorder,
		Flight: resolveDepartureFlight(doc),
		Time:   doc.DepartureTime,
		Border: doc.ExitBorder,
	}

	return [2]models.ArrDepRow{arrival, departure}
}

// firstDestination is the first itinerary day that resolves to a place.
func firstDestination(doc *models.OfferDoc, vocab []string) string {
	for _, day := range sourceItinerary(doc) {
		if loc := placematch.Detect(day.Description, vocab); loc != "" {
			return loc
		}
	}
	return ""
}

func lastDestination(doc *models.OfferDoc, vocab []string) string {
	days := sourceItinerary(doc)
	for i := len(days) - 1; i >= 0; i-- {
		if loc := placematch.Detect(days[i].Description, vocab); loc != "" {
			return loc
		}
	}
	return ""
}
