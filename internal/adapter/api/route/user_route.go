package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
	"github.com/tokonusa/inventory-backend/internal/domain/user"
	"github.com/tokonusa/inventory-backend/pkg/auth"
)

// RegisterUserRoutes registers the user administration routes. Only
// administrators may manage accounts.
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	users := r.Group("/users")
	users.Use(auth.JWTAuthMiddleware(), auth.RoleAuthMiddleware(string(user.RoleAdmin)))
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.Get)
		users.DELETE("/:id", userController.Delete)
	}
}
