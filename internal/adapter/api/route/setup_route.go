package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
	"github.com/tokonusa/inventory-backend/pkg/auth"
	"github.com/tokonusa/inventory-backend/pkg/branchctx"
)

// Controllers bundles every controller mounted by SetupRoutes
type Controllers struct {
	Auth     *controller.AuthController
	User     *controller.UserController
	Branch   *controller.BranchController
	Product  *controller.ProductController
	Supplier *controller.SupplierController
	Customer *controller.CustomerController
	Purchase *controller.PurchaseController
	Sale     *controller.SaleController
	Opname   *controller.OpnameController
	Movement *controller.MovementController
}

// SetupRoutes mounts the full API under /api/v1. Auth and branch
// administration sit outside the branch scope; every inventory route
// requires both a valid token and a valid X-Branch-ID header.
func SetupRoutes(router *gin.Engine, ctrls Controllers, branchValidator branchctx.BranchValidator) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	RegisterAuthRoutes(v1, ctrls.Auth)
	RegisterUserRoutes(v1, ctrls.User)
	RegisterBranchRoutes(v1, ctrls.Branch)

	scoped := v1.Group("")
	scoped.Use(auth.JWTAuthMiddleware(), branchctx.Middleware(branchValidator))
	{
		RegisterProductRoutes(scoped, ctrls.Product)
		RegisterSupplierRoutes(scoped, ctrls.Supplier)
		RegisterCustomerRoutes(scoped, ctrls.Customer)
		RegisterPurchaseRoutes(scoped, ctrls.Purchase)
		RegisterSaleRoutes(scoped, ctrls.Sale)
		RegisterOpnameRoutes(scoped, ctrls.Opname)
		RegisterMovementRoutes(scoped, ctrls.Movement)
	}
}
