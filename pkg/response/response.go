package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body returned for every non-2xx outcome.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, APIError{StatusCode: httpStatus, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
