package flights

import (
	"flightly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFlightRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse flights and seat maps
	publicFlights := router.Group("/flights")
	{
		publicFlights.GET("", controller.ListFlights)                  // GET /api/v1/flights - Search and list flights
		publicFlights.GET("/:flightId", controller.GetFlight)          // GET /api/v1/flights/:flightId - Flight details
		publicFlights.GET("/:flightId/seatmap", controller.GetSeatMap) // GET /api/v1/flights/:flightId/seatmap - Seat map with occupancy
		publicFlights.GET("/:flightId/fare", controller.QuoteFare)     // GET /api/v1/flights/:flightId/fare?seats=1A,14C - Fare quote
	}

	// Admin routes - flight inventory management
	adminFlights := router.Group("/admin/flights")
	adminFlights.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminFlights.POST("", controller.CreateFlight) // POST /api/v1/admin/flights - Create flight
	}
}
