package routes

import (
	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobboard_backend/internal/handlers"
)

// RegisterRoutes wires every handler into the router. The API lives under
// /api/v1; health and swagger sit at the root.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/healthz", h.Health.Check)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	api := router.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.JobPost.RegisterRoutes(api)
		h.JobApplication.RegisterRoutes(api)
	}
}
