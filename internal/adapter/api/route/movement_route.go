package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
)

// RegisterMovementRoutes registers the read-only stock ledger routes
func RegisterMovementRoutes(r *gin.RouterGroup, movementController *controller.MovementController) {
	movements := r.Group("/movements")
	{
		movements.GET("", movementController.List)
		movements.GET("/product/:productId", movementController.ListByProduct)
	}
}
