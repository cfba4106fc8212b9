package routes

import (
	"net/http"

	"renta_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ProductHandler.RegisterRoutes(api)
		appHandlers.OrderHandler.RegisterRoutes(api)
		appHandlers.PostHandler.RegisterRoutes(api)
	}
}
