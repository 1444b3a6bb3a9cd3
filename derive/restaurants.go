package derive

import (
	"nabatea/models"
	"nabatea/placematch"
	"nabatea/pricing"
	"nabatea/seasons"
	"strings"
)

// DeriveRestaurants books one lunch per itinerary day, placed in the
// region the day's text resolves to. The rate table decides restaurant
// and price: structured rows match on region; the legacy per-restaurant
// shape carries raw "Lunch Price P.P." strings that go through the price
// parser. A day with no resolvable rate still gets a row so ops can fill
// it in by hand.
func DeriveRestaurants(doc *models.OfferDoc, vocab []string, rates []models.RestaurantRate) []models.RestaurantRow {
	pax := resolvePax(doc)

	var rows []models.RestaurantRow
	for _, day := range sourceItinerary(doc) {
		region := placematch.Detect(day.Description, vocab)
		row := models.RestaurantRow{
			Date:     day.Date,
			Day:      seasons.Weekday(day.Date),
			Region:   region,
			MealType: "Lunch",
			Pax:      pax,
		}

		if rate := lunchRate(region, rates); rate != nil {
			row.Restaurant = rate.Restaurant
			row.Price = lunchPrice(rate)
		}

		rows = append(rows, row)
	}
	return rows
}

// lunchRate prefers a structured row for the region; failing that, the
// first legacy row (legacy tables carried no region at all).
func lunchRate(region string, rates []models.RestaurantRate) *models.RestaurantRate {
	for i := range rates {
		r := &rates[i]
		if r.Region == "" {
			continue
		}
		if strings.EqualFold(r.Region, region) && (r.MealType == "" || strings.EqualFold(r.MealType, "Lunch")) {
			return r
		}
	}
	for i := range rates {
		if rates[i].Region == "" && rates[i].LunchPriceText != "" {
			return &rates[i]
		}
	}
	return nil
}

func lunchPrice(rate *models.RestaurantRate) *models.Money {
	if rate.Amount != 0 {
		currency := rate.Currency
		if currency == "" {
			currency = pricing.DefaultCurrency
		}
		return &models.Money{
			Amount:    rate.Amount,
			Currency:  currency,
			USDAmount: pricing.ToUSD(rate.Amount, currency),
		}
	}
	return pricing.Parse(rate.LunchPriceText).Money()
}
