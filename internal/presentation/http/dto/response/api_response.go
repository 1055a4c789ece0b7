package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salesight/salesight-api/pkg/apperror"
)

// ErrorMessage is the error envelope every failing endpoint returns
type ErrorMessage struct {
	Message string `json:"message"`
}

// OK sends a 200 response with the payload as the body
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error maps an error onto the envelope. Validation failures carry their own
// message; anything else becomes a generic 500 and the cause is attached to
// the gin context so the request logger records it.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Code >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.Code, ErrorMessage{Message: appErr.Message})
}

// BadRequest sends a 400 response with the given message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorMessage{Message: message})
}
