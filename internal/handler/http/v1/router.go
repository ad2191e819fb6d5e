package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует маршруты /auth и /api/v1
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	// Регистрация и вход не требуют токена
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/refresh", h.refresh)
	}

	api := router.Group("/api/v1")

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", AuthMiddleware(h.authService, h.logger))

	redFlags := protected.Group("/red-flags")
	{
		redFlags.POST("", RequireRegularUser(msgOnlyRegularCreate), h.createIncident)
		redFlags.GET("", h.listIncidents)
		redFlags.GET("/:id", h.getIncident)
		redFlags.DELETE("/:id", RequireRegularUser(msgOnlyRegularModify), h.deleteIncident)
		redFlags.PUT("/:id/location", RequireRegularUser(msgOnlyRegularModify), h.updateLocation)
		redFlags.PUT("/:id/comment", RequireRegularUser(msgOnlyRegularModify), h.updateComment)
		redFlags.PUT("/:id/status", RequireAdmin(msgOnlyAdminStatus), h.updateStatus)
	}

	protected.GET("/users", RequireAdmin(msgOnlyAdminUsers), h.listUsers)
}
