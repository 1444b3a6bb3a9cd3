package derive

import (
	"fmt"
	"nabatea/models"
	"strings"
)

// AuditEmptyFields walks the fixed set of semantically-required fields
// and returns the dotted/indexed paths that are empty. The list only
// drives non-blocking highlights downstream — it never stops assembly or
// save.
func AuditEmptyFields(r *models.Reservation) []string {
	paths := []string{}

	checkStr := func(path, val string) {
		if strings.TrimSpace(val) == "" {
			paths = append(paths, path)
		}
	}

	checkStr("General.group", r.General.Group)
	checkStr("General.agent", r.General.Agent)
	checkStr("General.nationality", r.General.Nationality)

	for i, row := range r.ArrDep {
		checkStr(fmt.Sprintf("ArrDep[%d].from", i), row.From)
		checkStr(fmt.Sprintf("ArrDep[%d].to", i), row.To)
		checkStr(fmt.Sprintf("ArrDep[%d].flight", i), row.Flight)
		checkStr(fmt.Sprintf("ArrDep[%d].time", i), row.Time)
	}

	for i, row := range r.Hotels {
		checkStr(fmt.Sprintf("Hotels[%d].hotelName", i), row.HotelName)
		checkStr(fmt.Sprintf("Hotels[%d].checkIn", i), row.CheckIn)
		checkStr(fmt.Sprintf("Hotels[%d].checkOut", i), row.CheckOut)
		checkStr(fmt.Sprintf("Hotels[%d].roomType", i), row.RoomType)
		checkStr(fmt.Sprintf("Hotels[%d].meal", i), row.Meal)
	}

	return paths
}
