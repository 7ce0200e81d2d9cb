package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Baki/empathetic-email-helper/common/llm"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/dto"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/service"
)

type ReplyHandler struct {
	replyService service.ReplyService
}

func NewReplyHandler(replyService service.ReplyService) *ReplyHandler {
	return &ReplyHandler{replyService: replyService}
}

// Create generates an empathetic reply for the posted email body.
// The request is held open for the duration of the upstream call.
func (h *ReplyHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Detail: err.Error()})
		return
	}

	reply, err := h.replyService.Generate(ctx, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBody) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}

		var upstreamErr *service.UpstreamError
		if errors.As(err, &upstreamErr) {
			status := http.StatusBadGateway
			if upstreamErr.Kind == llm.KindTimeout {
				status = http.StatusGatewayTimeout
			}
			_ = c.Error(err)
			c.JSON(status, dto.ErrorResponse{
				Error:  "failed to generate reply",
				Detail: upstreamErr.Err.Error(),
				Kind:   string(upstreamErr.Kind),
			})
			return
		}

		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to generate reply"})
		return
	}

	c.JSON(http.StatusOK, dto.ReplyResponse{Reply: reply})
}
