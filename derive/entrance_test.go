package derive

import (
	"nabatea/models"
	"nabatea/placematch"
	"reflect"
	"testing"
)

func entranceDoc() *models.OfferDoc {
	return &models.OfferDoc{
		OfferID: "OF1",
		Pax:     20,
		Quotations: []models.QuotationSnapshot{
			{
				QuotationID: "Q1",
				Itinerary: []models.ItineraryDay{
					{Date: "2025-06-01", Description: "Arrival and Amman City Tour"},
					{Date: "2025-06-02", Description: "Full day Jerash and Ajloun"},
					{Date: "2025-06-03", Description: "Drive to Petra"},
				},
			},
		},
	}
}

func TestDeriveEntrancesFromItineraryText(t *testing.T) {
	doc := entranceDoc()
	rows := DeriveEntrances(doc, placematch.DefaultVocabulary, nil)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].EntranceName != "Amman" || rows[1].EntranceName != "Jerash" || rows[2].EntranceName != "Petra" {
		t.Fatalf("unexpected names: %+v", rows)
	}
	if rows[1].Date != "2025-06-02" || rows[1].Day != "Monday" {
		t.Fatalf("expected dated Monday row, got %+v", rows[1])
	}
	if rows[0].Pax != 20 {
		t.Fatalf("pax should default to the document pax, got %d", rows[0].Pax)
	}
}

func TestDeriveEntrancesExplicitListWins(t *testing.T) {
	doc := entranceDoc()
	doc.Quotations[0].Itinerary[1].Entrances = []string{"Jerash Archaeological Site"}

	rows := DeriveEntrances(doc, placematch.DefaultVocabulary, nil)

	if len(rows) == 0 {
		t.Fatal("expected rows")
	}
	if rows[0].EntranceName != "Jerash Archaeological Site" {
		t.Fatalf("explicit entrance should come first, got %+v", rows[0])
	}
	if rows[0].LocationName != "Jerash" {
		t.Fatalf("location should come from the day text, got %q", rows[0].LocationName)
	}

	// explicit list means the itinerary-text pass stays off
	for _, row := range rows[1:] {
		if row.EntranceName == "Amman" || row.EntranceName == "Petra" {
			t.Fatalf("itinerary-text fallback should not run, got %+v", rows)
		}
	}
}

func TestDeriveEntrancesInclusionsText(t *testing.T) {
	doc := entranceDoc()
	doc.Quotations[0].Itinerary = nil
	doc.Inclusions = "Accommodation on HB basis\nEntrance fees to: Jerash, Petra One Day Visit - Regular"

	rows := DeriveEntrances(doc, placematch.DefaultVocabulary, nil)

	if len(rows) != 2 {
		t.Fatalf("expected exactly 2 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].EntranceName != "Jerash" || rows[1].EntranceName != "Petra One Day Visit - Regular" {
		t.Fatalf("unexpected names: %+v", rows)
	}
	// no day mentions these places, so date/day stay empty
	if rows[0].Date != "" || rows[0].Day != "" {
		t.Fatalf("expected undated row, got %+v", rows[0])
	}
}

func TestDeriveEntrancesInclusionsDatedFromItineraries(t *testing.T) {
	doc := entranceDoc()
	doc.Inclusions = "Entrance fees to: Wadi Rum"
	itins := []models.ItineraryRow{
		{Date: "2025-06-04", Description: "Jeep tour in Wadi Rum"},
	}

	rows := DeriveEntrances(doc, placematch.DefaultVocabulary, itins)

	var found *models.EntranceRow
	for i := range rows {
		if rows[i].EntranceName == "Wadi Rum" {
			found = &rows[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a Wadi Rum row, got %+v", rows)
	}
	if found.Date != "2025-06-04" {
		t.Fatalf("date should resolve from the derived itineraries, got %+v", found)
	}
}

func TestDeriveEntrancesIdempotent(t *testing.T) {
	doc := entranceDoc()
	doc.Inclusions = "Entrance fees to: Jerash and Petra"

	first := DeriveEntrances(doc, placematch.DefaultVocabulary, nil)
	second := DeriveEntrances(doc, placematch.DefaultVocabulary, nil)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-derivation should be identical:\n%+v\n%+v", first, second)
	}

	seen := map[string]bool{}
	for _, row := range first {
		key := row.EntranceName
		if seen[key] {
			t.Fatalf("duplicate entrance %q", key)
		}
		seen[key] = true
	}
}

func TestDeriveEntrancesCaseInsensitiveDedup(t *testing.T) {
	doc := entranceDoc()
	// itinerary already yields "Jerash"; the inclusions list repeats it
	// with different casing and must be skipped
	doc.Inclusions = "Entrance fees to: JERASH"

	rows := DeriveEntrances(doc, placematch.DefaultVocabulary, nil)

	count := 0
	for _, row := range rows {
		if row.LocationName == "Jerash" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one Jerash row, got %d: %+v", count, rows)
	}
}

func TestAttachEntranceRates(t *testing.T) {
	rows := []models.EntranceRow{
		{EntranceName: "Jerash"},
		{EntranceName: "Petra"},
	}
	table := []models.EntranceRate{
		{Name: "Entrance", AdultText: "Adult", ChildText: "Child"}, // header sentinel
		{Name: "jerash", AdultText: "JOD 09.00", ChildText: "JOD 4.50"},
		{Name: "Petra", AdultText: "no charge", ChildText: ""},
	}

	AttachEntranceRates(rows, table)

	if rows[0].AdultRate == nil {
		t.Fatal("expected an adult rate for Jerash")
	}
	if rows[0].AdultRate.Amount != 9 || rows[0].AdultRate.USDAmount != 12.69 {
		t.Fatalf("unexpected rate: %+v", rows[0].AdultRate)
	}
	// unparsable text must stay nil, never a zeroed value
	if rows[1].AdultRate != nil {
		t.Fatalf("expected nil rate for Petra, got %+v", rows[1].AdultRate)
	}
}
