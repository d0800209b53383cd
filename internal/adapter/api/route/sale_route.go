package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
)

// RegisterSaleRoutes registers the sale order lifecycle routes
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.PUT("/:id", saleController.Update)
		sales.POST("/:id/confirm", saleController.Confirm)
		sales.POST("/:id/ship", saleController.Ship)
		sales.POST("/:id/settle", saleController.Settle)
		sales.POST("/:id/return", saleController.Return)
		sales.POST("/:id/cancel", saleController.Cancel)
	}
}
