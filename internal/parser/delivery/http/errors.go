package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-parser/internal/parser"
	"smart-task-parser/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown errors
// are reported as 500 without leaking internals.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, parser.ErrEmptyInput):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
