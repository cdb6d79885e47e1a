package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

// HTTPError is the body of every error response.
// swagger:model HTTPError
type HTTPError struct {
	Error  string            `json:"error" example:"customer not found"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}

// AbortValidation answers 400 with one message per invalid field.
func AbortValidation(c *gin.Context, ve validate.Errors) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{Error: "validation failed", Fields: ve})
}

// AbortInternal hides err from the client; the access log carries the status.
func AbortInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	Abort(c, http.StatusInternalServerError, "internal error")
}
