package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"

	"github.com/notifyx/notifyx/internal/api/handlers/notification"
	"github.com/notifyx/notifyx/internal/api/handlers/user"
	"github.com/notifyx/notifyx/internal/api/handlers/ws"
	"github.com/notifyx/notifyx/internal/middlewares"
)

func New(
	notifHandler *notification.Handler,
	userHandler *user.Handler,
	wsHandler *ws.Handler,
	metricsHandler http.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		notifications := api.Group("/notifications")
		{
			notifications.POST("", notifHandler.Create)
			notifications.GET("/:id", notifHandler.Get)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("/:id", userHandler.Get)
			users.GET("/:id/notifications", notifHandler.GetByUser)
		}
	}

	e.GET("/ws/:user_id", wsHandler.Stream)
	e.GET("/metrics", gin.WrapH(metricsHandler))
	e.GET("/", func(c *ginext.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "NotifyX",
			"version": "1.0.0",
		})
	})
	e.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return e
}
