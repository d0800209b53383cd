package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
	"github.com/tokonusa/inventory-backend/pkg/auth"
)

// RegisterAuthRoutes registers the authentication routes
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/refresh", authController.Refresh)
		authGroup.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
