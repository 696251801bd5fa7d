package aircraft

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flightly/internal/shared/constants"
	"flightly/internal/shared/utils/response"
)

type Controller interface {
	ListTypes(c *gin.Context)
	GetType(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListTypes(c *gin.Context) {
	types, err := ctrl.service.ListTypes(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, err.Error(), nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Aircraft types retrieved successfully", types, nil)
}

func (ctrl *controller) GetType(c *gin.Context) {
	typeID, err := uuid.Parse(c.Param("typeId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid aircraft type ID", err.Error())
		return
	}

	t, err := ctrl.service.GetType(c.Request.Context(), typeID)
	if err != nil {
		if errors.Is(err, ErrAircraftTypeNotFound) {
			response.RespondError(c, http.StatusNotFound, constants.CodeNotFound, "Aircraft type not found", nil)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, constants.CodeInternal, err.Error(), nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Aircraft type retrieved successfully", t, nil)
}
