package derive

import (
	"nabatea/models"
	"nabatea/placematch"
	"nabatea/pricing"
	"nabatea/seasons"
	"nabatea/utils"
	"regexp"
	"strings"
)

var entranceFeesLine = regexp.MustCompile(`(?im)entrance fees to:\s*(.+)$`)

// entranceSet accumulates rows keyed by entrance name, case-insensitive.
// Later stages only fill gaps; a name already present is never replaced,
// which is what makes re-derivation idempotent.
type entranceSet struct {
	rows []models.EntranceRow
	seen map[string]bool
}

func newEntranceSet() *entranceSet {
	return &entranceSet{seen: map[string]bool{}}
}

func (s *entranceSet) add(row models.EntranceRow) {
	key := strings.ToLower(strings.TrimSpace(row.EntranceName))
	if key == "" || s.seen[key] {
		return
	}
	s.seen[key] = true
	s.rows = append(s.rows, row)
}

// DeriveEntrances builds the entrance-fee rows in three passes:
//  1. explicit entrances[] on the snapshot's itinerary days;
//  2. if that produced nothing, itinerary free text scanned for places;
//  3. always, the inclusions text scanned for "Entrance fees to:" lines.
//
// itins is the already-derived itinerary mirror, consulted by stage 3
// when the quotation itinerary cannot date a candidate.
func DeriveEntrances(doc *models.OfferDoc, vocab []string, itins []models.ItineraryRow) []models.EntranceRow {
	pax := resolvePax(doc)
	set := newEntranceSet()
	days := sourceItinerary(doc)

	// stage 1: explicit entrance lists
	for _, day := range days {
		for _, name := range day.Entrances {
			loc := placematch.Detect(day.Description, vocab)
			if loc == "" {
				loc = placematch.Detect(name, vocab)
			}
			set.add(models.EntranceRow{
				Date:         day.Date,
				Day:          seasons.Weekday(day.Date),
				EntranceName: name,
				LocationName: loc,
				Pax:          pax,
			})
		}
	}

	// stage 2: itinerary text, only when nothing explicit existed
	if len(set.rows) == 0 {
		for _, day := range days {
			loc := placematch.Detect(day.Description, vocab)
			if loc == "" {
				continue
			}
			set.add(models.EntranceRow{
				Date:         day.Date,
				Day:          seasons.Weekday(day.Date),
				EntranceName: loc,
				LocationName: loc,
				Pax:          pax,
			})
		}
	}

	// stage 3: inclusions text, regardless of the earlier passes
	for _, name := range entranceFeeCandidates(resolveInclusions(doc)) {
		loc := placematch.Detect(name, vocab)
		date := dateForLocation(loc, days, itins)
		set.add(models.EntranceRow{
			Date:         date,
			Day:          seasons.Weekday(date),
			EntranceName: name,
			LocationName: loc,
			Pax:          pax,
		})
	}

	return set.rows
}

// entranceFeeCandidates pulls the listed names out of lines like
// "Entrance fees to: Jerash, Petra One Day Visit - Regular and Wadi Rum".
func entranceFeeCandidates(inclusions string) []string {
	var out []string
	for _, m := range entranceFeesLine.FindAllStringSubmatch(inclusions, -1) {
		list := m[1]
		for _, part := range strings.Split(list, ",") {
			for _, name := range strings.Split(part, " and ") {
				name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), "."))
				if name != "" {
					out = append(out, name)
				}
			}
		}
	}
	return out
}

// dateForLocation finds a day whose free text mentions the location,
// checking the quotation itinerary first, then the derived mirror. An
// unmatched candidate keeps empty date/day — the row is still useful by
// name alone.
func dateForLocation(loc string, days []models.ItineraryDay, itins []models.ItineraryRow) string {
	if loc == "" {
		return ""
	}
	for _, day := range days {
		if utils.ContainsIgnoreCase(day.Description, loc) {
			return day.Date
		}
	}
	for _, row := range itins {
		if utils.ContainsIgnoreCase(row.Description, loc) {
			return row.Date
		}
	}
	return ""
}

// AttachEntranceRates fills adult/child rates from the fee table. The
// table's first row is a header sentinel and is skipped. A rate string
// that does not parse leaves the field nil rather than writing a zero.
func AttachEntranceRates(rows []models.EntranceRow, table []models.EntranceRate) {
	if len(table) < 2 {
		return
	}
	rates := table[1:]
	for i := range rows {
		for _, rate := range rates {
			if !strings.EqualFold(strings.TrimSpace(rate.Name), strings.TrimSpace(rows[i].EntranceName)) {
				continue
			}
			rows[i].AdultRate = pricing.Parse(rate.AdultText).Money()
			rows[i].ChildRate = pricing.Parse(rate.ChildText).Money()
			break
		}
	}
}
