package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
)

// RegisterCustomerRoutes registers the customer master data routes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/:id", customerController.Get)
		customers.PUT("/:id", customerController.Update)
		customers.DELETE("/:id", customerController.Delete)
	}
}
