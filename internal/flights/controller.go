package flights

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flightly/internal/fares"
	"flightly/internal/shared/constants"
	"flightly/internal/shared/utils/response"
)

type Controller interface {
	CreateFlight(c *gin.Context)
	GetFlight(c *gin.Context)
	ListFlights(c *gin.Context)
	GetSeatMap(c *gin.Context)
	QuoteFare(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateFlight(c *gin.Context) {
	var req CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid request body", err.Error())
		return
	}

	flight, err := ctrl.service.CreateFlight(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, err.Error(), nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Flight created successfully", flight, nil)
}

func (ctrl *controller) GetFlight(c *gin.Context) {
	flightID, ok := parseFlightID(c)
	if !ok {
		return
	}

	flight, err := ctrl.service.GetFlight(c.Request.Context(), flightID)
	if err != nil {
		respondFlightError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Flight retrieved successfully", flight, nil)
}

func (ctrl *controller) ListFlights(c *gin.Context) {
	var query FlightListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := ctrl.service.ListFlights(c.Request.Context(), query)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, err.Error(), nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Flights retrieved successfully", result, nil)
}

func (ctrl *controller) GetSeatMap(c *gin.Context) {
	flightID, ok := parseFlightID(c)
	if !ok {
		return
	}

	seatMap, err := ctrl.service.GetSeatMap(c.Request.Context(), flightID)
	if err != nil {
		respondFlightError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}

func (ctrl *controller) QuoteFare(c *gin.Context) {
	flightID, ok := parseFlightID(c)
	if !ok {
		return
	}

	var query FareQuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid query parameters", err.Error())
		return
	}

	var seatCodes []string
	for _, code := range strings.Split(query.Seats, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			seatCodes = append(seatCodes, code)
		}
	}
	if len(seatCodes) == 0 {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "At least one seat code is required", nil)
		return
	}

	quote, err := ctrl.service.QuoteFare(c.Request.Context(), flightID, seatCodes)
	if err != nil {
		respondFlightError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Fare quoted successfully", quote, nil)
}

func parseFlightID(c *gin.Context) (uuid.UUID, bool) {
	flightID, err := uuid.Parse(c.Param("flightId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid flight ID", err.Error())
		return uuid.Nil, false
	}
	return flightID, true
}

func respondFlightError(c *gin.Context, err error) {
	var conflict *SeatConflictError
	switch {
	case errors.Is(err, ErrFlightNotFound):
		response.RespondError(c, http.StatusNotFound, constants.CodeFlightNotFound, "Flight not found", nil)
	case errors.As(err, &conflict):
		response.RespondError(c, http.StatusConflict, constants.CodeSeatConflict, conflict.Error(), gin.H{"seats": conflict.Seats})
	case errors.Is(err, fares.ErrInvalidSeatCode):
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, err.Error(), nil)
	default:
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, err.Error(), nil)
	}
}
