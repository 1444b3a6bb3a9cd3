package reservations

import (
	"context"
	"encoding/json"
	"nabatea/db"
	"nabatea/models"
	"nabatea/rdx"
	"nabatea/utils"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func cacheKey(reservationID string) string {
	return "reservation:" + reservationID
}

// POST /api/reservations
func CreateReservation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var res models.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if res.ReservationID == "" {
		res.ReservationID = utils.GetUUID()
	}
	if res.FileNo == "" {
		res.FileNo = utils.GenerateRandomDigitString(6)
	}
	res.CreatedAt = time.Now().Unix()
	res.UpdatedAt = res.CreatedAt

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ReservationsCollection.InsertOne(ctx, res); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting reservation")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, res)
}

// GET /api/reservations
func GetReservations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	opts := utils.ParseQueryOptions(r)
	if opts.Search != "" {
		filter["general.group"] = bson.M{"$regex": opts.Search, "$options": "i"}
	}

	reservations, err := utils.FindAndDecode[models.Reservation](ctx, db.ReservationsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching reservations")
		return
	}

	if reservations == nil {
		reservations = []models.Reservation{}
	}

	utils.RespondWithJSON(w, http.StatusOK, reservations)
}

// GET /api/reservations/:reservationid
//
// Cached without a TTL; every write path drops the key.
func GetReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("reservationid")
	if cached, _ := rdx.RdxGet(cacheKey(id)); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var res models.Reservation
	err := db.ReservationsCollection.FindOne(ctx, bson.M{"reservationid": id}).Decode(&res)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	rdx.RdxSet(cacheKey(id), string(utils.ToJSON(res)))
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// PUT /api/reservations/:reservationid
//
// Field-by-field edits from the forms land here as whole-document
// replaces; the store is last-write-wins per reservation id.
func UpdateReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updated models.Reservation
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := ps.ByName("reservationid")
	updated.ReservationID = id
	updated.UpdatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.ReservationsCollection.ReplaceOne(ctx, bson.M{"reservationid": id}, updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating reservation")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	rdx.RdxDel(cacheKey(id))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Reservation updated successfully"})
}

// DELETE /api/reservations/:reservationid
func DeleteReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.ReservationsCollection.DeleteOne(ctx, bson.M{"reservationid": ps.ByName("reservationid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting reservation")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	rdx.RdxDel(cacheKey(ps.ByName("reservationid")))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Reservation deleted successfully"})
}
