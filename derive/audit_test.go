package derive

import (
	"nabatea/models"
	"nabatea/utils"
	"testing"
)

func TestAuditEmptyFieldsHotels(t *testing.T) {
	res := &models.Reservation{
		General: models.GeneralData{Group: "G", Agent: "A", Nationality: "DE"},
		Hotels: []models.HotelRow{
			{HotelName: "X", CheckIn: "", CheckOut: "2025-06-03", RoomType: "BB", Meal: "HB"},
		},
	}
	res.ArrDep[0] = models.ArrDepRow{From: "QAIA", To: "Amman", Flight: "RJ112", Time: "14:00"}
	res.ArrDep[1] = models.ArrDepRow{From: "Amman", To: "QAIA", Flight: "RJ113", Time: "16:00"}

	paths := AuditEmptyFields(res)

	if !utils.Contains(paths, "Hotels[0].checkIn") {
		t.Fatalf("expected Hotels[0].checkIn in %v", paths)
	}
	if utils.Contains(paths, "Hotels[0].checkOut") {
		t.Fatalf("checkOut is filled and must not be reported: %v", paths)
	}
	if utils.Contains(paths, "General.group") {
		t.Fatalf("group is filled and must not be reported: %v", paths)
	}
}

func TestAuditEmptyFieldsWhitespaceCountsAsEmpty(t *testing.T) {
	res := &models.Reservation{
		General: models.GeneralData{Group: "   ", Agent: "A", Nationality: "DE"},
	}

	paths := AuditEmptyFields(res)
	if !utils.Contains(paths, "General.group") {
		t.Fatalf("whitespace-only group should be reported, got %v", paths)
	}
}

func TestAuditEmptyFieldsArrDep(t *testing.T) {
	res := &models.Reservation{
		General: models.GeneralData{Group: "G", Agent: "A", Nationality: "DE"},
	}

	paths := AuditEmptyFields(res)
	for _, want := range []string{
		"ArrDep[0].from", "ArrDep[0].to", "ArrDep[0].flight", "ArrDep[0].time",
		"ArrDep[1].from", "ArrDep[1].to", "ArrDep[1].flight", "ArrDep[1].time",
	} {
		if !utils.Contains(paths, want) {
			t.Fatalf("expected %s in %v", want, paths)
		}
	}
}
