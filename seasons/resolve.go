package seasons

import (
	"nabatea/models"
	"strings"
	"time"
)

var dateFormats = []string{"2006-01-02", "02/01/2006", time.RFC3339}

// ParseDate tries the date formats the upstream documents have used over
// the years. The zero time and false mean the string is not a date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Weekday returns the day-of-week name for a date string, or "" when the
// date does not parse. Day names are always derived, never stored.
func Weekday(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return ""
	}
	return t.Weekday().String()
}

// Resolve returns the first window scoped to scopeKey whose inclusive
// [start, end] range contains date, or nil. Callers must not substitute
// a default season when nil comes back.
func Resolve(scopeKey, date string, windows []models.SeasonWindow) *models.SeasonWindow {
	q, ok := ParseDate(date)
	if !ok {
		return nil
	}

	for i := range windows {
		w := &windows[i]
		if !strings.EqualFold(w.ScopeKey, scopeKey) {
			continue
		}
		start, okS := ParseDate(w.StartDate)
		end, okE := ParseDate(w.EndDate)
		if !okS || !okE {
			continue
		}
		if !q.Before(start) && !q.After(end) {
			return w
		}
	}
	return nil
}

// ResolveScoped checks hotel-specific windows before city-class windows,
// so a hotel override always beats the city default on overlap.
func ResolveScoped(hotelKey, cityKey, date string, windows []models.SeasonWindow) *models.SeasonWindow {
	if hotelKey != "" {
		if w := Resolve(hotelKey, date, windows); w != nil {
			return w
		}
	}
	if cityKey != "" {
		return Resolve(cityKey, date, windows)
	}
	return nil
}
