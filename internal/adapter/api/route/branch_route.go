package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
	"github.com/tokonusa/inventory-backend/internal/domain/user"
	"github.com/tokonusa/inventory-backend/pkg/auth"
)

// RegisterBranchRoutes registers the branch master data routes. Branches
// are not themselves branch-scoped, so the branch middleware is not
// applied here; mutations are restricted to administrators.
func RegisterBranchRoutes(r *gin.RouterGroup, branchController *controller.BranchController) {
	branches := r.Group("/branches")
	branches.Use(auth.JWTAuthMiddleware())
	{
		branches.GET("", branchController.List)
		branches.GET("/:id", branchController.Get)

		admin := branches.Group("")
		admin.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin)))
		{
			admin.POST("", branchController.Create)
			admin.PUT("/:id", branchController.Update)
			admin.DELETE("/:id", branchController.Delete)
		}
	}
}
