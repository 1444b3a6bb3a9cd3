package offers

import (
	"context"
	"encoding/json"
	"nabatea/db"
	"nabatea/models"
	"nabatea/utils"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/offers
func CreateOffer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var offer models.OfferDoc
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Upstream offers are duck-typed; no schema validation here on purpose.
	if offer.OfferID == "" {
		offer.OfferID = utils.GenerateRandomString(13)
	}
	offer.CreatedBy = utils.GetUserIDFromRequest(r)
	offer.CreatedAt = time.Now().Unix()
	offer.UpdatedAt = offer.CreatedAt

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.OffersCollection.InsertOne(ctx, offer); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting offer")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, offer)
}

// GET /api/offers
func GetOffers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	opts := utils.ParseQueryOptions(r)
	if opts.Search != "" {
		filter["$or"] = []bson.M{
			{"group": bson.M{"$regex": opts.Search, "$options": "i"}},
			{"groupName": bson.M{"$regex": opts.Search, "$options": "i"}},
			{"agent": bson.M{"$regex": opts.Search, "$options": "i"}},
		}
	}

	offers, err := utils.FindAndDecode[models.OfferDoc](ctx, db.OffersCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching offers")
		return
	}

	if offers == nil {
		offers = []models.OfferDoc{}
	}

	utils.RespondWithJSON(w, http.StatusOK, offers)
}

// GET /api/offers/:offerid
func GetOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var offer models.OfferDoc
	err := db.OffersCollection.FindOne(ctx, bson.M{"offerid": ps.ByName("offerid")}).Decode(&offer)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Offer not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, offer)
}

// PUT /api/offers/:offerid
func UpdateOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updated models.OfferDoc
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := ps.ByName("offerid")
	updated.OfferID = id
	updated.UpdatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.OffersCollection.ReplaceOne(ctx, bson.M{"offerid": id}, updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating offer")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Offer not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Offer updated successfully"})
}

// DELETE /api/offers/:offerid
func DeleteOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.OffersCollection.DeleteOne(ctx, bson.M{"offerid": ps.ByName("offerid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting offer")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Offer not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Offer deleted successfully"})
}
