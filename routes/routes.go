package routes

import (
	"nabatea/middleware"
	"nabatea/offers"
	"nabatea/quotations"
	"nabatea/ratelim"
	"nabatea/rates"
	"nabatea/reservations"

	"github.com/julienschmidt/httprouter"
)

func AddOfferRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/offers", rateLimiter.Limit(offers.GetOffers))
	router.GET("/api/offers/:offerid", offers.GetOffer)
	router.POST("/api/offers", middleware.Authenticate(offers.CreateOffer))
	router.PUT("/api/offers/:offerid", middleware.Authenticate(offers.UpdateOffer))
	router.DELETE("/api/offers/:offerid", middleware.Authenticate(offers.DeleteOffer))
}

func AddQuotationRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/quotations", rateLimiter.Limit(quotations.GetQuotations))
	router.GET("/api/quotations/:quotationid", quotations.GetQuotation)
	router.POST("/api/quotations", middleware.Authenticate(quotations.CreateQuotation))
	router.PUT("/api/quotations/:quotationid", middleware.Authenticate(quotations.UpdateQuotation))
	router.DELETE("/api/quotations/:quotationid", middleware.Authenticate(quotations.DeleteQuotation))
}

func AddReservationRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/reservations", rateLimiter.Limit(reservations.GetReservations))
	router.GET("/api/reservations/:reservationid", middleware.OptionalAuth(reservations.GetReservation))
	router.POST("/api/reservations", middleware.Authenticate(reservations.CreateReservation))
	router.PUT("/api/reservations/:reservationid", middleware.Authenticate(reservations.UpdateReservation))
	router.DELETE("/api/reservations/:reservationid", middleware.Authenticate(reservations.DeleteReservation))

	router.POST("/api/reservations/generate/:offerid", rateLimiter.Limit(middleware.Authenticate(reservations.GenerateFromOffer)))
}

func AddRateRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/rates/entrances", rates.GetEntranceRates)
	router.PUT("/api/rates/entrances", middleware.Authenticate(rates.PutEntranceRates))
	router.GET("/api/rates/restaurants", rates.GetRestaurantRates)
	router.PUT("/api/rates/restaurants", middleware.Authenticate(rates.PutRestaurantRates))
	router.GET("/api/rates/seasons", rates.GetHotelSeasons)
	router.PUT("/api/rates/seasons", middleware.Authenticate(rates.PutHotelSeasons))
}
