// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"flightly/internal/aircraft"
	"flightly/internal/flights"
	"flightly/internal/notifications"
	"flightly/internal/payments"
	"flightly/internal/reports"
	"flightly/internal/reservations"
	"flightly/internal/shared/config"
	"flightly/internal/shared/database"
	"flightly/internal/users"
	"flightly/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	cacheService cache.Service
	seatMirror   *flights.SeatMirror
	notifier     notifications.Notifier

	reservationService reservations.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetCacheService injects the shared cache used by read-heavy routes.
func (r *Router) SetCacheService(cacheService cache.Service) {
	r.cacheService = cacheService
}

// SetSeatMirror injects the Redis occupancy mirror.
func (r *Router) SetSeatMirror(mirror *flights.SeatMirror) {
	r.seatMirror = mirror
}

// SetNotifier injects the reservation-lifecycle notifier.
func (r *Router) SetNotifier(notifier notifications.Notifier) {
	r.notifier = notifier
}

// ReservationService exposes the wired reservation service so the caller
// can attach the expiration sweeper to it.
func (r *Router) ReservationService() reservations.Service {
	return r.reservationService
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAircraftRoutes(api)
		flightService := r.setupFlightRoutes(api)
		r.setupReservationRoutes(api, flightService)
		r.setupReportRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "flightly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "flightly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAircraftRoutes configures cabin configuration routes
func (r *Router) setupAircraftRoutes(rg *gin.RouterGroup) {
	aircraftRepo := aircraft.NewRepository(r.db.GetPostgreSQL())
	aircraftService := aircraft.NewService(aircraftRepo)
	if r.cacheService != nil {
		aircraftService.SetCacheService(r.cacheService)
	}
	aircraftController := aircraft.NewController(aircraftService)

	aircraft.SetupAircraftRoutes(rg, aircraftController)
}

// setupFlightRoutes configures flight inventory routes
func (r *Router) setupFlightRoutes(rg *gin.RouterGroup) flights.Service {
	flightRepo := flights.NewRepository(r.db.GetPostgreSQL())
	flightService := flights.NewService(flightRepo)
	if r.cacheService != nil {
		flightService.SetCacheService(r.cacheService)
	}
	if r.seatMirror != nil {
		flightService.SetSeatMirror(r.seatMirror)
	}
	flightController := flights.NewController(flightService)

	flights.SetupFlightRoutes(rg, flightController)
	return flightService
}

// setupReservationRoutes configures the booking engine routes
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup, flightService flights.Service) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	flightRepo := flights.NewRepository(r.db.GetPostgreSQL())
	userRepo := users.NewRepository(r.db.GetPostgreSQL())

	reservationService := reservations.NewService(reservationRepo, flightRepo, payments.NewStubGateway())
	reservationService.SetFlightService(flightService)
	reservationService.SetUserRepository(userRepo)
	if r.seatMirror != nil {
		reservationService.SetSeatMirror(r.seatMirror)
	}
	if r.notifier != nil {
		reservationService.SetNotifier(r.notifier)
	}

	reservationController := reservations.NewController(reservationService)
	reservations.SetupReservationRoutes(rg, reservationController)

	r.reservationService = reservationService
}

// setupReportRoutes configures admin reporting routes
func (r *Router) setupReportRoutes(rg *gin.RouterGroup) {
	reportRepo := reports.NewRepository(r.db.GetPostgreSQL())
	reportService := reports.NewService(reportRepo)
	if r.cacheService != nil {
		reportService.SetCacheService(r.cacheService)
	}
	reportController := reports.NewController(reportService)

	reports.SetupReportRoutes(rg, reportController)
}
