package routes

import (
	"nabatea/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddOfferRoutes(router, rateLimiter)
	AddQuotationRoutes(router, rateLimiter)
	AddReservationRoutes(router, rateLimiter)
	AddRateRoutes(router, rateLimiter)
}
