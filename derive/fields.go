// Package derive turns a loose offer/quotation document into a normalized
// reservation aggregate. Everything in here is pure and best-effort:
// malformed upstream data degrades single fields, never the whole run.
package derive

import (
	"nabatea/models"
	"strings"
)

// The same logical value can arrive under several historical keys, and
// again inside the first quotation snapshot. Each resolver below owns the
// priority order for one field so call sites cannot drift apart.

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

// firstQuotation returns the first embedded quotation snapshot, or nil.
func firstQuotation(doc *models.OfferDoc) *models.QuotationSnapshot {
	if len(doc.Quotations) == 0 {
		return nil
	}
	return &doc.Quotations[0]
}

func resolveGroup(doc *models.OfferDoc) string {
	if q := firstQuotation(doc); q != nil {
		if g := firstNonEmpty(doc.Group, doc.GroupName, q.Group, q.GroupName); g != "" {
			return g
		}
	} else if g := firstNonEmpty(doc.Group, doc.GroupName); g != "" {
		return g
	}
	return "Group " + doc.OfferID
}

func resolveAgent(doc *models.OfferDoc) string {
	if q := firstQuotation(doc); q != nil {
		return firstNonEmpty(doc.Agent, doc.AgentName, q.Agent, q.AgentName)
	}
	return firstNonEmpty(doc.Agent, doc.AgentName)
}

func resolveNationality(doc *models.OfferDoc) string {
	if q := firstQuotation(doc); q != nil {
		return firstNonEmpty(doc.Nationality, doc.Nat, q.Nationality, q.Nat)
	}
	return firstNonEmpty(doc.Nationality, doc.Nat)
}

func resolvePax(doc *models.OfferDoc) int {
	if q := firstQuotation(doc); q != nil {
		return firstNonZero(doc.Pax, doc.PaxCount, q.Pax, q.PaxCount)
	}
	return firstNonZero(doc.Pax, doc.PaxCount)
}

func resolveArrivalDate(doc *models.OfferDoc) string {
	if q := firstQuotation(doc); q != nil {
		return firstNonEmpty(doc.ArrivalDate, doc.DateArr, q.ArrivalDate, q.DateArr)
	}
	return firstNonEmpty(doc.ArrivalDate, doc.DateArr)
}

func resolveDepartureDate(doc *models.OfferDoc) string {
	if q := firstQuotation(doc); q != nil {
		return firstNonEmpty(doc.DepartureDate, doc.DateDep, q.DepartureDate, q.DateDep)
	}
	return firstNonEmpty(doc.DepartureDate, doc.DateDep)
}

func resolveArrivalFlight(doc *models.OfferDoc) string {
	return firstNonEmpty(doc.ArrivalFlight, doc.FlightArr)
}

func resolveDepartureFlight(doc *models.OfferDoc) string {
	return firstNonEmpty(doc.DepartureFlight, doc.FlightDep)
}

// resolveInclusions prefers the top-level free text, then the snapshot's.
func resolveInclusions(doc *models.OfferDoc) string {
	if q := firstQuotation(doc); q != nil {
		return firstNonEmpty(doc.Inclusions, q.Inclusions)
	}
	return doc.Inclusions
}

func resolveExclusions(doc *models.OfferDoc) string {
	if q := firstQuotation(doc); q != nil {
		return firstNonEmpty(doc.Exclusions, q.Exclusions)
	}
	return doc.Exclusions
}

// sourceItinerary is the first quotation snapshot's day list; the engine
// never fans out across snapshots.
func sourceItinerary(doc *models.OfferDoc) []models.ItineraryDay {
	if q := firstQuotation(doc); q != nil {
		return q.Itinerary
	}
	return nil
}

func accommodationName(acc models.Accommodation) string {
	return firstNonEmpty(acc.HotelName, acc.Hotel)
}
