package reservations

import (
	"context"
	"nabatea/db"
	"nabatea/derive"
	"nabatea/models"
	"nabatea/mq"
	"nabatea/rates"
	"nabatea/rdx"
	"nabatea/utils"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/reservations/generate/:offerid
//
// Runs the derivation engine against the stored offer and upserts the
// result keyed by offer id. Dropping the same offer twice overwrites the
// previous derivation instead of stacking a second reservation.
func GenerateFromOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	offerID := ps.ByName("offerid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var offer models.OfferDoc
	if err := db.OffersCollection.FindOne(ctx, bson.M{"offerid": offerID}).Decode(&offer); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Offer not found")
		return
	}

	tables := rates.LoadTables(ctx)
	res, emptyFields := derive.Assemble(&offer, tables)

	// keep the reservation id stable across re-derivations of one offer
	var existing models.Reservation
	err := db.ReservationsCollection.FindOne(ctx, bson.M{"offerid": offerID}).Decode(&existing)
	if err == nil && existing.ReservationID != "" {
		res.ReservationID = existing.ReservationID
		res.FileNo = existing.FileNo
		res.CreatedAt = existing.CreatedAt
	} else {
		res.ReservationID = utils.GetUUID()
		res.FileNo = utils.GenerateRandomDigitString(6)
		res.CreatedAt = time.Now().Unix()
	}
	res.UpdatedAt = time.Now().Unix()

	opts := options.Replace().SetUpsert(true)
	if _, err := db.ReservationsCollection.ReplaceOne(ctx, bson.M{"offerid": offerID}, res, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving reservation")
		return
	}

	rdx.RdxDel(cacheKey(res.ReservationID))
	mq.Emit(ctx, mq.Event{EntityType: "reservation", Method: "derived", EntityId: res.ReservationID})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"reservation":  res,
		"empty_fields": emptyFields,
	})
}
