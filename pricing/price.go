package pricing

import (
	"math"
	"nabatea/models"
	"regexp"
	"strconv"
	"strings"
)

// JODToUSD is the fixed conversion rate. It is deliberately not
// configurable at call time: changing it means recomputing every stored
// derived row.
const JODToUSD = 1.41

const DefaultCurrency = "JOD"

// Codes are tried in this order when scanning a price string.
var currencyCodes = []string{"JOD", "USD"}

var currencyPatterns = map[string]*regexp.Regexp{
	"JOD": regexp.MustCompile(`(?i)JOD\s*(\d+(?:\.\d+)?)`),
	"USD": regexp.MustCompile(`(?i)USD\s*(\d+(?:\.\d+)?)`),
}

var barePattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Price is a parsed amount with its currency.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Parse extracts the adult price from a display string such as
// "JOD 09.00", "USD 22.00 - CHD 15.00" or "45 / 63". Only the segment
// before the first "/" and before the first "-" is considered; child and
// alternate prices are some other caller's problem. Returns nil when no
// numeric token is present, so "no price" stays distinct from "zero".
func Parse(text string) *Price {
	seg := adultSegment(text)

	for _, code := range currencyCodes {
		if m := currencyPatterns[code].FindStringSubmatch(seg); m != nil {
			amount, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return &Price{Amount: amount, Currency: code}
		}
	}

	if m := barePattern.FindString(seg); m != "" {
		amount, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return &Price{Amount: amount, Currency: DefaultCurrency}
		}
	}

	return nil
}

func adultSegment(text string) string {
	if i := strings.Index(text, "/"); i >= 0 {
		text = text[:i]
	}
	if i := strings.Index(text, "-"); i >= 0 {
		text = text[:i]
	}
	return text
}

// ToUSD converts an amount in the given currency to USD, rounded to two
// decimals.
func ToUSD(amount float64, currency string) float64 {
	if strings.EqualFold(currency, "USD") {
		return Round2(amount)
	}
	return Round2(amount * JODToUSD)
}

func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// USD returns the price converted to USD, rounded for display.
func (p *Price) USD() float64 {
	return ToUSD(p.Amount, p.Currency)
}

// Money converts the parsed price to the persisted shape.
func (p *Price) Money() *models.Money {
	if p == nil {
		return nil
	}
	return &models.Money{
		Amount:    p.Amount,
		Currency:  p.Currency,
		USDAmount: p.USD(),
	}
}
