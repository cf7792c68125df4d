package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-parser/internal/parser"
	"smart-task-parser/pkg/log"
)

// Handler is the public interface for the parser HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc parser.UseCase
}

// New creates a new HTTP handler for the parser domain.
func New(l log.Logger, uc parser.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
