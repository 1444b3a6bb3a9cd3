package models

// OfferDoc is the loose upstream sales document (an Offer, or a bare
// Quotation promoted to one). Its shape varies release to release, so
// every historical spelling of a field gets its own slot; the derive
// package owns the resolution order between them.
type OfferDoc struct {
	OfferID     string `json:"offerid" bson:"offerid,omitempty"`
	QuotationID string `json:"quotationid,omitempty" bson:"quotationid,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`

	Group     string `json:"group,omitempty" bson:"group,omitempty"`
	GroupName string `json:"groupName,omitempty" bson:"groupName,omitempty"`

	Agent     string `json:"agent,omitempty" bson:"agent,omitempty"`
	AgentName string `json:"agentName,omitempty" bson:"agentName,omitempty"`

	Nationality string `json:"nationality,omitempty" bson:"nationality,omitempty"`
	Nat         string `json:"nat,omitempty" bson:"nat,omitempty"`

	Pax      int `json:"pax,omitempty" bson:"pax,omitempty"`
	PaxCount int `json:"paxCount,omitempty" bson:"paxCount,omitempty"`

	ArrivalDate   string `json:"arrivalDate,omitempty" bson:"arrivalDate,omitempty"`
	DateArr       string `json:"dateArr,omitempty" bson:"dateArr,omitempty"`
	DepartureDate string `json:"departureDate,omitempty" bson:"departureDate,omitempty"`
	DateDep       string `json:"dateDep,omitempty" bson:"dateDep,omitempty"`

	ArrivalFlight   string `json:"arrivalFlight,omitempty" bson:"arrivalFlight,omitempty"`
	FlightArr       string `json:"flightArr,omitempty" bson:"flightArr,omitempty"`
	DepartureFlight string `json:"departureFlight,omitempty" bson:"departureFlight,omitempty"`
	FlightDep       string `json:"flightDep,omitempty" bson:"flightDep,omitempty"`

	ArrivalTime   string `json:"arrivalTime,omitempty" bson:"arrivalTime,omitempty"`
	DepartureTime string `json:"departureTime,omitempty" bson:"departureTime,omitempty"`
	ArrivalBorder string `json:"arrivalBorder,omitempty" bson:"arrivalBorder,omitempty"`
	ExitBorder    string `json:"exitBorder,omitempty" bson:"exitBorder,omitempty"`

	// modern shape: explicit hotel stays
	Hotels []Accommodation `json:"hotels,omitempty" bson:"hotels,omitempty"`
	// legacy shape: top-level mutually-exclusive options
	Options []Option `json:"options,omitempty" bson:"options,omitempty"`

	Inclusions string `json:"inclusions,omitempty" bson:"inclusions,omitempty"`
	Exclusions string `json:"exclusions,omitempty" bson:"exclusions,omitempty"`

	Quotations []QuotationSnapshot `json:"quotations,omitempty" bson:"quotations,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// QuotationSnapshot is a quotation embedded in an offer at the time the
// offer was cut. Offers and quotations are edited independently, so the
// snapshot can drift from the live quotation record.
type QuotationSnapshot struct {
	QuotationID   string         `json:"quotationid,omitempty" bson:"quotationid,omitempty"`
	Group         string         `json:"group,omitempty" bson:"group,omitempty"`
	GroupName     string         `json:"groupName,omitempty" bson:"groupName,omitempty"`
	Agent         string         `json:"agent,omitempty" bson:"agent,omitempty"`
	AgentName     string         `json:"agentName,omitempty" bson:"agentName,omitempty"`
	Nationality   string         `json:"nationality,omitempty" bson:"nationality,omitempty"`
	Nat           string         `json:"nat,omitempty" bson:"nat,omitempty"`
	Pax           int            `json:"pax,omitempty" bson:"pax,omitempty"`
	PaxCount      int            `json:"paxCount,omitempty" bson:"paxCount,omitempty"`
	ArrivalDate   string         `json:"arrivalDate,omitempty" bson:"arrivalDate,omitempty"`
	DateArr       string         `json:"dateArr,omitempty" bson:"dateArr,omitempty"`
	DepartureDate string         `json:"departureDate,omitempty" bson:"departureDate,omitempty"`
	DateDep       string         `json:"dateDep,omitempty" bson:"dateDep,omitempty"`
	Itinerary     []ItineraryDay `json:"itinerary,omitempty" bson:"itinerary,omitempty"`
	Options       []Option       `json:"options,omitempty" bson:"options,omitempty"`
	Inclusions    string         `json:"inclusions,omitempty" bson:"inclusions,omitempty"`
	Exclusions    string         `json:"exclusions,omitempty" bson:"exclusions,omitempty"`
}

// Option is one accommodation alternative inside a quotation.
type Option struct {
	Name           string          `json:"name,omitempty" bson:"name,omitempty"`
	Accommodations []Accommodation `json:"accommodations,omitempty" bson:"accommodations,omitempty"`
}

type Accommodation struct {
	HotelName string `json:"hotelName,omitempty" bson:"hotelName,omitempty"`
	Hotel     string `json:"hotel,omitempty" bson:"hotel,omitempty"` // older key
	CheckIn   string `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut  string `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
	RoomType  string `json:"roomType,omitempty" bson:"roomType,omitempty"`
	Meal      string `json:"meal,omitempty" bson:"meal,omitempty"`
	Sgl       int    `json:"sgl,omitempty" bson:"sgl,omitempty"`
	Dbl       int    `json:"dbl,omitempty" bson:"dbl,omitempty"`
	Trp       int    `json:"trp,omitempty" bson:"trp,omitempty"`
	Other     string `json:"other,omitempty" bson:"other,omitempty"`
	PriceText string `json:"priceText,omitempty" bson:"priceText,omitempty"` // e.g. "JOD 45.00 / USD 63.00"
	Nights    int    `json:"nights,omitempty" bson:"nights,omitempty"`
}

// ItineraryDay is one day of a quotation itinerary. Day-of-week is never
// stored here; it is derived from Date on the reservation side.
type ItineraryDay struct {
	Date          string   `json:"date,omitempty" bson:"date,omitempty"`
	Description   string   `json:"description,omitempty" bson:"description,omitempty"`
	Transport     string   `json:"transport,omitempty" bson:"transport,omitempty"`
	GuideRequired bool     `json:"guideRequired,omitempty" bson:"guideRequired,omitempty"`
	Entrances     []string `json:"entrances,omitempty" bson:"entrances,omitempty"`
}
