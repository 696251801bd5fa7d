package reports

import (
	"flightly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(rg *gin.RouterGroup, controller Controller) {
	admin := rg.Group("/admin/reports")
	admin.Use(middleware.JWTAuth())
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/overview", controller.GetOverview)                               // GET /api/v1/admin/reports/overview
		admin.GET("/flights", controller.GetFlightReports)                           // GET /api/v1/admin/reports/flights
		admin.GET("/flights/:flightId/reservations", controller.GetFlightReservations) // Per-flight drill-down
	}
}
