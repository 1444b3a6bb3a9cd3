package quotations

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

// Quotations are stored as the same loose shape that later gets embedded
// into offers as snapshots.

// POST /api/quotations
func CreateQuotation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var q models.QuotationSnapshot
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if q.QuotationID == "" {
		q.QuotationID = utils.GenerateRandomString(13)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.QuotationsCollection.InsertOne(ctx, q); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting quotation")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, q)
}

// GET /api/quotations
func GetQuotations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	quotations, err := utils.FindAndDecode[models.QuotationSnapshot](ctx, db.QuotationsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching quotations")
		return
	}

	if quotations == nil {
		quotations = []models.QuotationSnapshot{}
	}

	utils.RespondWithJSON(w, http.StatusOK, quotations)
}

// GET /api/quotations/:quotationid
func GetQuotation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var q models.QuotationSnapshot
	err := db.QuotationsCollection.FindOne(ctx, bson.M{"quotationid": ps.ByName("quotationid")}).Decode(&q)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Quotation not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, q)
}

// PUT /api/quotations/:quotationid
func UpdateQuotation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updated models.QuotationSnapshot
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := ps.ByName("quotationid")
	updated.QuotationID = id

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.QuotationsCollection.ReplaceOne(ctx, bson.M{"quotationid": id}, updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating quotation")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Quotation not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Quotation updated successfully"})
}

// DELETE /api/quotations/:quotationid
func DeleteQuotation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.QuotationsCollection.DeleteOne(ctx, bson.M{"quotationid": ps.ByName("quotationid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting quotation")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Quotation not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Quotation deleted successfully"})
}
