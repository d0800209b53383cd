package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
)

// RegisterPurchaseRoutes registers the purchase order lifecycle routes
func RegisterPurchaseRoutes(r *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	purchases := r.Group("/purchases")
	{
		purchases.POST("", purchaseController.Create)
		purchases.GET("", purchaseController.List)
		purchases.GET("/:id", purchaseController.Get)
		purchases.PUT("/:id", purchaseController.Update)
		purchases.POST("/:id/send", purchaseController.Send)
		purchases.POST("/:id/receive", purchaseController.Receive)
		purchases.POST("/:id/cancel", purchaseController.Cancel)
	}
}
