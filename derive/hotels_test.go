package derive

import (
	"nabatea/models"
	"testing"
)

func TestDeriveHotelsExactDuplicateCollapses(t *testing.T) {
	doc := &models.OfferDoc{
		Hotels: []models.Accommodation{
			{HotelName: "X", CheckIn: "2025-06-01", CheckOut: "2025-06-03", RoomType: "BB", Meal: "HB"},
			{HotelName: "X", CheckIn: "2025-06-01", CheckOut: "2025-06-03", RoomType: "BB", Meal: "HB"},
		},
	}

	rows := DeriveHotels(doc, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %+v", len(rows), rows)
	}
	if rows[0].Nights != 2 {
		t.Fatalf("expected 2 nights, got %d", rows[0].Nights)
	}
}

func TestDeriveHotelsDropsBlankNames(t *testing.T) {
	doc := &models.OfferDoc{
		Hotels: []models.Accommodation{
			{HotelName: "", CheckIn: "2025-06-01", CheckOut: "2025-06-02"},
			{HotelName: "Kept", CheckIn: "2025-06-01", CheckOut: "2025-06-02"},
		},
	}

	rows := DeriveHotels(doc, nil)
	if len(rows) != 1 || rows[0].HotelName != "Kept" {
		t.Fatalf("blank-name rows must be dropped, got %+v", rows)
	}
}

func TestDeriveHotelsNightsClamp(t *testing.T) {
	doc := &models.OfferDoc{
		Hotels: []models.Accommodation{
			{HotelName: "X", CheckIn: "2025-06-03", CheckOut: "2025-06-01"},
			{HotelName: "Y", CheckIn: "bad", CheckOut: "2025-06-01", Nights: 4},
		},
	}

	rows := DeriveHotels(doc, nil)
	if rows[0].Nights != 0 {
		t.Fatalf("inverted dates must clamp to 0, got %d", rows[0].Nights)
	}
	if rows[1].Nights != 4 {
		t.Fatalf("unparseable dates keep the provided nights, got %d", rows[1].Nights)
	}
}

func TestDeriveHotelsPrimaryOptionOnly(t *testing.T) {
	doc := &models.OfferDoc{
		Quotations: []models.QuotationSnapshot{
			{
				Options: []models.Option{
					{Name: "Option A"}, // no accommodations, skipped
					{Name: "Option B", Accommodations: []models.Accommodation{
						{HotelName: "B1", CheckIn: "2025-06-01", CheckOut: "2025-06-02"},
					}},
					{Name: "Option C", Accommodations: []models.Accommodation{
						{HotelName: "C1", CheckIn: "2025-06-01", CheckOut: "2025-06-02"},
					}},
				},
			},
		},
	}

	rows := DeriveHotels(doc, nil)
	if len(rows) != 1 || rows[0].HotelName != "B1" {
		t.Fatalf("only the first option with accommodations contributes, got %+v", rows)
	}
}

func TestDeriveHotelsModernShapeWins(t *testing.T) {
	doc := &models.OfferDoc{
		Hotels: []models.Accommodation{
			{HotelName: "Modern", CheckIn: "2025-06-01", CheckOut: "2025-06-02"},
		},
		Quotations: []models.QuotationSnapshot{
			{Options: []models.Option{
				{Accommodations: []models.Accommodation{{HotelName: "Nested"}}},
			}},
		},
	}

	rows := DeriveHotels(doc, nil)
	if len(rows) != 1 || rows[0].HotelName != "Modern" {
		t.Fatalf("hotels[] should win over nested options, got %+v", rows)
	}
}

func TestDeriveHotelsLegacyTopLevelOptions(t *testing.T) {
	doc := &models.OfferDoc{
		Options: []models.Option{
			{Accommodations: []models.Accommodation{
				{Hotel: "Legacy", CheckIn: "2025-06-01", CheckOut: "2025-06-04"},
			}},
		},
	}

	rows := DeriveHotels(doc, nil)
	if len(rows) != 1 || rows[0].HotelName != "Legacy" {
		t.Fatalf("legacy options[] should be the last fallback, got %+v", rows)
	}
	if rows[0].Nights != 3 {
		t.Fatalf("expected 3 nights, got %d", rows[0].Nights)
	}
}

func TestDeriveHotelsRateFromPriceText(t *testing.T) {
	doc := &models.OfferDoc{
		Hotels: []models.Accommodation{
			{HotelName: "X", CheckIn: "2025-06-01", CheckOut: "2025-06-02", PriceText: "JOD 45.00 / USD 63.00"},
			{HotelName: "Y", CheckIn: "2025-06-02", CheckOut: "2025-06-03"},
		},
	}

	rows := DeriveHotels(doc, nil)
	if rows[0].Rate == nil || rows[0].Rate.Amount != 45 || rows[0].Rate.Currency != "JOD" {
		t.Fatalf("price text should parse onto the row, got %+v", rows[0].Rate)
	}
	if rows[0].Rate.USDAmount != 63.45 {
		t.Fatalf("expected converted rate, got %+v", rows[0].Rate)
	}
	if rows[1].Rate != nil {
		t.Fatalf("no price text means no rate, got %+v", rows[1].Rate)
	}
}

func TestDeriveHotelsSeasonAttached(t *testing.T) {
	doc := &models.OfferDoc{
		Hotels: []models.Accommodation{
			{HotelName: "Hotel X", CheckIn: "2025-07-01", CheckOut: "2025-07-03"},
		},
	}
	windows := []models.SeasonWindow{
		{ScopeKey: "Hotel X", SeasonName: "High", StartDate: "2025-06-15", EndDate: "2025-08-31"},
	}

	rows := DeriveHotels(doc, windows)
	if rows[0].Season != "High" {
		t.Fatalf("expected High season, got %q", rows[0].Season)
	}
}
