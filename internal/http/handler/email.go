package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/dto"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/service"
)

type EmailHandler struct {
	emailService service.EmailService
}

func NewEmailHandler(emailService service.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

func (h *EmailHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	email, err := h.emailService.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "email not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to get email"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmailResponse(email))
}

func (h *EmailHandler) List(c *gin.Context) {
	emails, err := h.emailService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to list emails"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmailsResponse(emails))
}

func (h *EmailHandler) Stats(c *gin.Context) {
	stats, err := h.emailService.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmailStatsResponse(stats))
}
