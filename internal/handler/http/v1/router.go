package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Препятствия (CRUD)
	obstacles := protected.Group("/obstacles")
	{
		obstacles.POST("", h.createObstacle)
		obstacles.GET("", h.listObstacles)
		obstacles.GET("/:id", h.getObstacle)
		obstacles.PUT("/:id", h.updateObstacle)
		obstacles.DELETE("/:id", h.deleteObstacle)
	}

	// Справочник контактов
	contacts := protected.Group("/contacts")
	{
		contacts.GET("", h.listContacts)
		contacts.POST("/reset", h.resetContacts)
	}
}
