package rates

import (
	"context"
	"encoding/json"
	"nabatea/db"
	"nabatea/derive"
	"nabatea/models"
	"nabatea/placematch"
	"nabatea/rdx"
	"nabatea/utils"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Each rate table is a singleton document; edits replace the whole table.
const defaultTableID = "default"

const (
	cacheKeyEntrances   = "rates:entrances"
	cacheKeyRestaurants = "rates:restaurants"
	cacheKeySeasons     = "rates:seasons"
)

// GET /api/rates/entrances
func GetEntranceRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet(cacheKeyEntrances); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var table models.EntranceRateTable
	err := db.EntranceRatesCollection.FindOne(ctx, bson.M{"tableid": defaultTableID}).Decode(&table)
	if err != nil && err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching entrance rates")
		return
	}
	if table.Rows == nil {
		table.Rows = []models.EntranceRate{}
	}

	rdx.RdxSetWithTTL(cacheKeyEntrances, string(utils.ToJSON(table)), 10*time.Minute)
	utils.RespondWithJSON(w, http.StatusOK, table)
}

// PUT /api/rates/entrances
func PutEntranceRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var table models.EntranceRateTable
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	table.TableID = defaultTableID
	table.Updated = time.Now().Unix()

	if err := replaceTable(r.Context(), db.EntranceRatesCollection, table); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving entrance rates")
		return
	}

	rdx.RdxDel(cacheKeyEntrances)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Entrance rates updated"})
}

// GET /api/rates/restaurants
func GetRestaurantRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet(cacheKeyRestaurants); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var table models.RestaurantRateTable
	err := db.RestaurantRatesCollection.FindOne(ctx, bson.M{"tableid": defaultTableID}).Decode(&table)
	if err != nil && err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching restaurant rates")
		return
	}
	if table.Rows == nil {
		table.Rows = []models.RestaurantRate{}
	}

	rdx.RdxSetWithTTL(cacheKeyRestaurants, string(utils.ToJSON(table)), 10*time.Minute)
	utils.RespondWithJSON(w, http.StatusOK, table)
}

// PUT /api/rates/restaurants
func PutRestaurantRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var table models.RestaurantRateTable
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	table.TableID = defaultTableID
	table.Updated = time.Now().Unix()

	if err := replaceTable(r.Context(), db.RestaurantRatesCollection, table); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving restaurant rates")
		return
	}

	rdx.RdxDel(cacheKeyRestaurants)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Restaurant rates updated"})
}

// GET /api/rates/seasons
func GetHotelSeasons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet(cacheKeySeasons); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var table models.HotelSeasonTable
	err := db.HotelSeasonsCollection.FindOne(ctx, bson.M{"tableid": defaultTableID}).Decode(&table)
	if err != nil && err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching hotel seasons")
		return
	}
	if table.Windows == nil {
		table.Windows = []models.SeasonWindow{}
	}

	rdx.RdxSetWithTTL(cacheKeySeasons, string(utils.ToJSON(table)), 10*time.Minute)
	utils.RespondWithJSON(w, http.StatusOK, table)
}

// PUT /api/rates/seasons
func PutHotelSeasons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var table models.HotelSeasonTable
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	table.TableID = defaultTableID
	table.Updated = time.Now().Unix()

	if err := replaceTable(r.Context(), db.HotelSeasonsCollection, table); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving hotel seasons")
		return
	}

	rdx.RdxDel(cacheKeySeasons)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Hotel seasons updated"})
}

func replaceTable(ctx context.Context, coll *mongo.Collection, table any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(ctx, bson.M{"tableid": defaultTableID}, table, opts)
	return err
}

// LoadTables gathers all reference data for one derivation run. Missing
// tables are fine; the derivers just leave rates unresolved.
func LoadTables(ctx context.Context) derive.Tables {
	tables := derive.Tables{Vocabulary: placematch.DefaultVocabulary}

	var entrances models.EntranceRateTable
	if err := db.EntranceRatesCollection.FindOne(ctx, bson.M{"tableid": defaultTableID}).Decode(&entrances); err == nil {
		tables.EntranceRates = entrances.Rows
	}

	var restaurants models.RestaurantRateTable
	if err := db.RestaurantRatesCollection.FindOne(ctx, bson.M{"tableid": defaultTableID}).Decode(&restaurants); err == nil {
		tables.RestaurantRates = restaurants.Rows
	}

	var seasonsTable models.HotelSeasonTable
	if err := db.HotelSeasonsCollection.FindOne(ctx, bson.M{"tableid": defaultTableID}).Decode(&seasonsTable); err == nil {
		tables.Seasons = seasonsTable.Windows
	}

	return tables
}
