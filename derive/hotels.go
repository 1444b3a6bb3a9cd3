package derive

import (
	"nabatea/models"
	"nabatea/pricing"
	"nabatea/seasons"
	"strings"
)

// DeriveHotels builds the hotel stay rows. Shape priority: the modern
// top-level hotels[] array when present, else the primary option of the
// first quotation snapshot, else the legacy top-level options[]. Only one
// option ever contributes — options are mutually-exclusive alternatives,
// and fanning out would multiply rows.
func DeriveHotels(doc *models.OfferDoc, windows []models.SeasonWindow) []models.HotelRow {
	pax := resolvePax(doc)

	var accs []models.Accommodation
	switch {
	case len(doc.Hotels) > 0:
		accs = doc.Hotels
	case firstQuotation(doc) != nil && primaryOption(firstQuotation(doc).Options) != nil:
		accs = primaryOption(firstQuotation(doc).Options).Accommodations
	default:
		if opt := primaryOption(doc.Options); opt != nil {
			accs = opt.Accommodations
		}
	}

	var rows []models.HotelRow
	seen := map[string]bool{}
	for _, acc := range accs {
		name := accommodationName(acc)
		if name == "" {
			continue // never surface blank hotel cards
		}

		row := models.HotelRow{
			HotelName: name,
			CheckIn:   acc.CheckIn,
			CheckOut:  acc.CheckOut,
			Nights:    nights(acc),
			RoomType:  acc.RoomType,
			Meal:      acc.Meal,
			Pax:       pax,
			Sgl:       acc.Sgl,
			Dbl:       acc.Dbl,
			Trp:       acc.Trp,
			Other:     acc.Other,
			Rate:      pricing.Parse(acc.PriceText).Money(),
		}

		if w := seasons.Resolve(name, acc.CheckIn, windows); w != nil {
			row.Season = w.SeasonName
		}

		key := strings.ToLower(name) + "|" + acc.CheckIn + "|" + acc.CheckOut + "|" + acc.RoomType + "|" + acc.Meal
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, row)
	}
	return rows
}

// primaryOption is the first option that has any accommodations. Array
// order decides ties; upstream keeps option order stable.
func primaryOption(opts []models.Option) *models.Option {
	for i := range opts {
		if len(opts[i].Accommodations) > 0 {
			return &opts[i]
		}
	}
	return nil
}

// nights computes the stay length from the check dates when both parse,
// clamped at zero; otherwise whatever the source provided stands.
func nights(acc models.Accommodation) int {
	in, okIn := seasons.ParseDate(acc.CheckIn)
	out, okOut := seasons.ParseDate(acc.CheckOut)
	if !okIn || !okOut {
		return acc.Nights
	}
	n := int(out.Sub(in).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
