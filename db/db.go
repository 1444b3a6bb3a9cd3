package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	OffersCollection          *mongo.Collection
	QuotationsCollection      *mongo.Collection
	ReservationsCollection    *mongo.Collection
	EntranceRatesCollection   *mongo.Collection
	RestaurantRatesCollection *mongo.Collection
	HotelSeasonsCollection    *mongo.Collection
	Client                    *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	OffersCollection = Client.Database("tourdb").Collection("offers")
	QuotationsCollection = Client.Database("tourdb").Collection("quotations")
	ReservationsCollection = Client.Database("tourdb").Collection("reservations")
	EntranceRatesCollection = Client.Database("tourdb").Collection("entrancerates")
	RestaurantRatesCollection = Client.Database("tourdb").Collection("restaurantrates")
	HotelSeasonsCollection = Client.Database("tourdb").Collection("hotelseasons")
}
