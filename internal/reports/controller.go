package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flightly/internal/flights"
	"flightly/internal/shared/constants"
	"flightly/internal/shared/utils/response"
)

type Controller interface {
	GetOverview(c *gin.Context)
	GetFlightReports(c *gin.Context)
	GetFlightReservations(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetOverview(c *gin.Context) {
	overview, err := ctrl.service.GetOverview(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, err.Error(), nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Overview report generated", overview, nil)
}

func (ctrl *controller) GetFlightReports(c *gin.Context) {
	reports, err := ctrl.service.GetFlightReports(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, err.Error(), nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Flight reports generated", reports, nil)
}

func (ctrl *controller) GetFlightReservations(c *gin.Context) {
	flightID, err := uuid.Parse(c.Param("flightId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid flight ID", err.Error())
		return
	}

	report, err := ctrl.service.GetFlightReservations(c.Request.Context(), flightID)
	if err != nil {
		if errors.Is(err, flights.ErrFlightNotFound) {
			response.RespondError(c, http.StatusNotFound, constants.CodeFlightNotFound, "Flight not found", nil)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, err.Error(), nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Flight reservations report generated", report, nil)
}
