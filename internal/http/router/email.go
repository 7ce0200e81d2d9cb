package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/handler"
)

func EmailRouter(rg *gin.RouterGroup, h *handler.EmailHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}
