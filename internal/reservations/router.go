package reservations

import (
	"flightly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(router *gin.RouterGroup, controller Controller) {
	reservations := router.Group("/reservations")
	reservations.Use(middleware.JWTAuth())
	{
		reservations.POST("", controller.CreateReservation)      // POST /api/v1/reservations - Book seats on a flight
		reservations.GET("/mine", controller.GetMyReservations)  // GET /api/v1/reservations/mine - Caller's active reservations
		reservations.POST("/:reservationId/cancel", controller.CancelReservation) // POST /api/v1/reservations/:reservationId/cancel
		// Slip confirmation simulates the bank reconciliation callback, so it
		// checks the reservation's payment state rather than ownership.
		reservations.POST("/:reservationId/confirm-slip", controller.ConfirmSlipPayment)
	}
}
