package derive

import (
	"nabatea/models"
	"nabatea/seasons"
)

// DeriveItineraries mirrors the first quotation snapshot's itinerary onto
// the reservation, deriving day-of-week from each date. A day with no
// parseable date keeps an empty day name.
func DeriveItineraries(doc *models.OfferDoc) []models.ItineraryRow {
	var rows []models.ItineraryRow
	for _, day := range sourceItinerary(doc) {
		rows = append(rows, models.ItineraryRow{
			Date:          day.Date,
			Day:           seasons.Weekday(day.Date),
			Description:   day.Description,
			Transport:     day.Transport,
			GuideRequired: day.GuideRequired,
			Entrances:     day.Entrances,
		})
	}
	return rows
}
