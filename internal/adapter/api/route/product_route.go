package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
)

// RegisterProductRoutes registers the product master data routes
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.GET("/code/:code", productController.GetByCode)
		products.PUT("/:id", productController.Update)
		products.PATCH("/:id/status", productController.UpdateStatus)
		products.DELETE("/:id", productController.Delete)
	}
}
