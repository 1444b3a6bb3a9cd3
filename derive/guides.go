package derive

import (
	"nabatea/models"
	"nabatea/seasons"
)

// DeriveGuides emits one row per itinerary day that needs a guide. The
// guide name stays empty; ops assign guides after derivation.
func DeriveGuides(doc *models.OfferDoc) []models.GuideRow {
	pax := resolvePax(doc)

	var rows []models.GuideRow
	for _, day := range sourceItinerary(doc) {
		if !day.GuideRequired {
			continue
		}
		rows = append(rows, models.GuideRow{
			Date:      day.Date,
			Day:       seasons.Weekday(day.Date),
			Itinerary: day.Description,
			Pax:       pax,
		})
	}
	return rows
}
