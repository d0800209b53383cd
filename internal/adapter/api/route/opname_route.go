package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
)

// RegisterOpnameRoutes registers the stock opname routes
func RegisterOpnameRoutes(r *gin.RouterGroup, opnameController *controller.OpnameController) {
	opnames := r.Group("/opnames")
	{
		opnames.POST("", opnameController.Create)
		opnames.GET("", opnameController.List)
		opnames.GET("/:id", opnameController.Get)
		opnames.PUT("/:id/count", opnameController.SetCount)
		opnames.POST("/:id/finalize", opnameController.Finalize)
	}
}
