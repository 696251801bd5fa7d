package response

import "github.com/gin-gonic/gin"

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError emits the standard envelope with a machine-readable error
// kind so API clients can branch without parsing the message text.
func RespondError(c *gin.Context, httpCode int, kind string, message string, details interface{}) {
	c.JSON(httpCode, StandardApiResponse{
		Status:     "error",
		StatusCode: httpCode,
		Message:    message,
		Code:       kind,
		Errors:     details,
	})
}
