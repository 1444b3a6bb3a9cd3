package models

// EntranceRate is one row of the entrance-fee table. The stored table's
// first row is a header sentinel ("Entrance", "Adult", "Child") that
// consumers must skip.
type EntranceRate struct {
	Name      string `json:"name" bson:"name"`
	AdultText string `json:"adultText" bson:"adultText"` // e.g. "JOD 09.00"
	ChildText string `json:"childText" bson:"childText"` // e.g. "USD 22.00 - CHD 15.00"
}

type EntranceRateTable struct {
	TableID string         `json:"tableid" bson:"tableid"`
	Rows    []EntranceRate `json:"rows" bson:"rows"`
	Updated int64          `json:"updated,omitempty" bson:"updated,omitempty"`
}

// RestaurantRate covers both table generations: the structured shape
// fills Region/MealType/Amount/Currency, the legacy per-restaurant shape
// fills the raw lunch/dinner price strings instead.
type RestaurantRate struct {
	Region     string  `json:"region,omitempty" bson:"region,omitempty"`
	Restaurant string  `json:"restaurant" bson:"restaurant"`
	MealType   string  `json:"mealType,omitempty" bson:"mealType,omitempty"`
	Amount     float64 `json:"amount,omitempty" bson:"amount,omitempty"`
	Currency   string  `json:"currency,omitempty" bson:"currency,omitempty"`

	LunchPriceText  string `json:"lunchPriceText,omitempty" bson:"lunchPriceText,omitempty"`   // "Lunch Price P.P."
	DinnerPriceText string `json:"dinnerPriceText,omitempty" bson:"dinnerPriceText,omitempty"` // "Dinner Price P.P."
}

type RestaurantRateTable struct {
	TableID string           `json:"tableid" bson:"tableid"`
	Rows    []RestaurantRate `json:"rows" bson:"rows"`
	Updated int64            `json:"updated,omitempty" bson:"updated,omitempty"`
}

// SeasonWindow is a named date range scoped either to one hotel (scope
// key is the hotel name) or to a city+class bucket.
type SeasonWindow struct {
	ScopeKey   string `json:"scopeKey" bson:"scopeKey"`
	SeasonName string `json:"seasonName" bson:"seasonName"`
	StartDate  string `json:"startDate" bson:"startDate"`
	EndDate    string `json:"endDate" bson:"endDate"`
}

type HotelSeasonTable struct {
	TableID string         `json:"tableid" bson:"tableid"`
	Windows []SeasonWindow `json:"windows" bson:"windows"`
	Updated int64          `json:"updated,omitempty" bson:"updated,omitempty"`
}
