package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/handler"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/service"
)

const rootMessage = "Backend is running successfully 🚀"

type RouterConfig struct {
	MetricsHandler http.Handler // nil disables /metrics
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": rootMessage})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	replyHandler := handler.NewReplyHandler(services.Reply())
	ReplyRouter(router.Group("/reply"), replyHandler)

	emailHandler := handler.NewEmailHandler(services.Emails())
	EmailRouter(router.Group("/emails"), emailHandler)
	router.GET("/stats", emailHandler.Stats)
}
