package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
)

// RegisterSupplierRoutes registers the supplier master data routes
func RegisterSupplierRoutes(r *gin.RouterGroup, supplierController *controller.SupplierController) {
	suppliers := r.Group("/suppliers")
	{
		suppliers.POST("", supplierController.Create)
		suppliers.GET("", supplierController.List)
		suppliers.GET("/:id", supplierController.Get)
		suppliers.PUT("/:id", supplierController.Update)
		suppliers.DELETE("/:id", supplierController.Delete)
	}
}
