package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/handler"
)

func ReplyRouter(rg *gin.RouterGroup, h *handler.ReplyHandler) {
	rg.POST("", h.Create)
}
