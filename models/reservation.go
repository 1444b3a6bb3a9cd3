package models

// Reservation is the operational aggregate derived from an offer. It
// holds weak back-references to the source documents (ids plus a group
// name snapshot), never ownership.
type Reservation struct {
	ReservationID string `json:"reservationid" bson:"reservationid"`
	OfferID       string `json:"offerid,omitempty" bson:"offerid,omitempty"`
	QuotationID   string `json:"quotationid,omitempty" bson:"quotationid,omitempty"`
	SourceGroup   string `json:"sourceGroup,omitempty" bson:"sourceGroup,omitempty"`
	FileNo        string `json:"fileNo,omitempty" bson:"fileNo,omitempty"` // ops file number, assigned once

	General     GeneralData     `json:"general" bson:"general"`
	ArrDep      [2]ArrDepRow    `json:"arrdep" bson:"arrdep"` // [0] arrival, [1] departure
	Hotels      []HotelRow      `json:"hotels" bson:"hotels"`
	Entrances   []EntranceRow   `json:"entrances" bson:"entrances"`
	Guides      []GuideRow      `json:"guides" bson:"guides"`
	Restaurants []RestaurantRow `json:"restaurants" bson:"restaurants"`
	Itineraries []ItineraryRow  `json:"itineraries" bson:"itineraries"`
	Inclusions  []string        `json:"inclusions" bson:"inclusions"`
	Exclusions  []string        `json:"exclusions" bson:"exclusions"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type GeneralData struct {
	Group         string `json:"group" bson:"group"`
	Agent         string `json:"agent" bson:"agent"`
	Nationality   string `json:"nationality" bson:"nationality"`
	Pax           int    `json:"pax" bson:"pax"`
	ArrivalDate   string `json:"arrivalDate" bson:"arrivalDate"`
	DepartureDate string `json:"departureDate" bson:"departureDate"`
}

type ArrDepRow struct {
	Kind   string `json:"kind" bson:"kind"` // arrival / departure
	Date   string `json:"date" bson:"date"`
	Day    string `json:"day" bson:"day"`
	From   string `json:"from" bson:"from"`
	To     string `json:"to" bson:"to"`
	Flight string `json:"flight" bson:"flight"`
	Time   string `json:"time" bson:"time"`
	Border string `json:"border,omitempty" bson:"border,omitempty"`
	Guide  string `json:"guide,omitempty" bson:"guide,omitempty"`
}

type HotelRow struct {
	HotelName       string `json:"hotelName" bson:"hotelName"`
	CheckIn         string `json:"checkIn" bson:"checkIn"`
	CheckOut        string `json:"checkOut" bson:"checkOut"`
	Nights          int    `json:"nights" bson:"nights"`
	RoomType        string `json:"roomType" bson:"roomType"`
	Meal            string `json:"meal" bson:"meal"`
	Season          string `json:"season,omitempty" bson:"season,omitempty"`
	Pax             int    `json:"pax,omitempty" bson:"pax,omitempty"`
	Sgl             int    `json:"sgl,omitempty" bson:"sgl,omitempty"`
	Dbl             int    `json:"dbl,omitempty" bson:"dbl,omitempty"`
	Trp             int    `json:"trp,omitempty" bson:"trp,omitempty"`
	Other           string `json:"other,omitempty" bson:"other,omitempty"`
	Rate            *Money `json:"rate,omitempty" bson:"rate,omitempty"`
	ConfNo          string `json:"confNo,omitempty" bson:"confNo,omitempty"`
	Ref             string `json:"ref,omitempty" bson:"ref,omitempty"`
	InvoiceReceived bool   `json:"invoiceReceived,omitempty" bson:"invoiceReceived,omitempty"`
}

type EntranceRow struct {
	Date            string `json:"date" bson:"date"`
	Day             string `json:"day" bson:"day"`
	Time            string `json:"time,omitempty" bson:"time,omitempty"`
	EntranceName    string `json:"entranceName" bson:"entranceName"`
	LocationName    string `json:"locationName" bson:"locationName"`
	Pax             int    `json:"pax,omitempty" bson:"pax,omitempty"`
	AdultRate       *Money `json:"adultRate,omitempty" bson:"adultRate,omitempty"`
	ChildRate       *Money `json:"childRate,omitempty" bson:"childRate,omitempty"`
	InvoiceReceived bool   `json:"invoiceReceived,omitempty" bson:"invoiceReceived,omitempty"`
}

type GuideRow struct {
	Date      string `json:"date" bson:"date"`
	Day       string `json:"day" bson:"day"`
	Name      string `json:"name" bson:"name"` // assigned later by ops
	Language  string `json:"language,omitempty" bson:"language,omitempty"`
	Itinerary string `json:"itinerary,omitempty" bson:"itinerary,omitempty"`
	Pax       int    `json:"pax,omitempty" bson:"pax,omitempty"`
}

type RestaurantRow struct {
	Date       string `json:"date" bson:"date"`
	Day        string `json:"day" bson:"day"`
	Restaurant string `json:"restaurant" bson:"restaurant"`
	Region     string `json:"region,omitempty" bson:"region,omitempty"`
	MealType   string `json:"mealType,omitempty" bson:"mealType,omitempty"`
	Pax        int    `json:"pax,omitempty" bson:"pax,omitempty"`
	Price      *Money `json:"price,omitempty" bson:"price,omitempty"`
}

// ItineraryRow mirrors one source itinerary day on the reservation.
type ItineraryRow struct {
	Date          string   `json:"date" bson:"date"`
	Day           string   `json:"day" bson:"day"`
	Description   string   `json:"description" bson:"description"`
	Transport     string   `json:"transport,omitempty" bson:"transport,omitempty"`
	GuideRequired bool     `json:"guideRequired,omitempty" bson:"guideRequired,omitempty"`
	Entrances     []string `json:"entrances,omitempty" bson:"entrances,omitempty"`
}

// Money is a parsed price as persisted on derived rows. The raw amount
// stays the source of truth; the USD figure is display rounding only.
type Money struct {
	Amount    float64 `json:"amount" bson:"amount"`
	Currency  string  `json:"currency" bson:"currency"`
	USDAmount float64 `json:"usdAmount" bson:"usdAmount"`
}
