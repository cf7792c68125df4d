package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

func (r *parseReq) validate() error {
	if r.Now != "" {
		now, err := time.Parse(time.RFC3339, r.Now)
		if err != nil {
			return fmt.Errorf("now must be RFC3339: %w", err)
		}
		r.now = now
	}
	return nil
}
