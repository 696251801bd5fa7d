package reservations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/shared/constants"
	"flightly/internal/shared/utils/response"
)

type Controller interface {
	CreateReservation(c *gin.Context)
	GetMyReservations(c *gin.Context)
	CancelReservation(c *gin.Context)
	ConfirmSlipPayment(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid request body", err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reservation, err := ctrl.service.Book(c.Request.Context(), userID, req)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Reservation created successfully", reservation, nil)
}

func (ctrl *controller) GetMyReservations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reservations, err := ctrl.service.ListUserReservations(c.Request.Context(), userID)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservations retrieved successfully", reservations, nil)
}

func (ctrl *controller) CancelReservation(c *gin.Context) {
	reservationID, ok := parseReservationID(c)
	if !ok {
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reservation, err := ctrl.service.Cancel(c.Request.Context(), reservationID, userID)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation cancelled successfully", reservation, nil)
}

func (ctrl *controller) ConfirmSlipPayment(c *gin.Context) {
	reservationID, ok := parseReservationID(c)
	if !ok {
		return
	}

	reservation, err := ctrl.service.ConfirmSlipPayment(c.Request.Context(), reservationID)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Slip payment confirmed", reservation, nil)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		response.RespondError(c, http.StatusUnauthorized, constants.CodeInvalidRequest, "User not authenticated", nil)
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw.(string))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, "Invalid user ID format", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func parseReservationID(c *gin.Context) (uuid.UUID, bool) {
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid reservation ID", err.Error())
		return uuid.Nil, false
	}
	return reservationID, true
}

func respondReservationError(c *gin.Context, err error) {
	var (
		conflict     *flights.SeatConflictError
		ineligible   *payments.IneligiblePaymentMethodError
		windowClosed *CancellationWindowClosedError
	)

	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, err.Error(), nil)
	case errors.Is(err, flights.ErrFlightNotFound):
		response.RespondError(c, http.StatusNotFound, constants.CodeFlightNotFound, "Flight not found", nil)
	case errors.Is(err, flights.ErrFlightNotBookable):
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, err.Error(), nil)
	case errors.As(err, &conflict):
		response.RespondError(c, http.StatusConflict, constants.CodeSeatConflict, conflict.Error(), gin.H{"seats": conflict.Seats})
	case errors.As(err, &ineligible):
		response.RespondError(c, http.StatusBadRequest, constants.CodeIneligiblePaymentMethod, ineligible.Error(), gin.H{
			"business_days": ineligible.BusinessDays,
			"threshold":     payments.MinBusinessDaysForSlip,
		})
	case errors.Is(err, payments.ErrInvalidPaymentData):
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidPaymentData, err.Error(), nil)
	case errors.As(err, &windowClosed):
		response.RespondError(c, http.StatusBadRequest, constants.CodeCancellationWindowClosed, windowClosed.Error(), gin.H{
			"hours_remaining": windowClosed.HoursRemaining,
		})
	case errors.Is(err, ErrAlreadyCancelled):
		response.RespondError(c, http.StatusBadRequest, constants.CodeAlreadyCancelled, err.Error(), nil)
	case errors.Is(err, payments.ErrAlreadyPaid):
		response.RespondError(c, http.StatusBadRequest, constants.CodeAlreadyPaid, err.Error(), nil)
	case errors.Is(err, payments.ErrNotDeferredSlip):
		response.RespondError(c, http.StatusBadRequest, constants.CodeNotDeferredSlip, err.Error(), nil)
	case errors.Is(err, ErrReservationNotFound):
		response.RespondError(c, http.StatusNotFound, constants.CodeNotFound, "Reservation not found", nil)
	default:
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, err.Error(), nil)
	}
}
