package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	return Response{Status: status, Success: false, Message: msg}
}

// AbortWithError responds with the public body and keeps err on the context for ErrorHandler to log.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
