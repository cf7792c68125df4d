package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-parser/pkg/response"
)

// Parse godoc
// @Summary     Parse a task utterance
// @Description Parses free-form Chinese text into a create-task draft or an edit against the supplied candidate tasks.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Utterance and candidate tasks"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parser/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	outcome, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newParseResp(outcome))
}
