package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	userdomain "github.com/tokonusa/inventory-backend/internal/domain/user"
	"github.com/tokonusa/inventory-backend/pkg/auth"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// AuthController handles authentication requests
type AuthController struct {
	userRepo   userdomain.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(userRepo userdomain.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user and issues an access token
// @Summary Login
// @Description Authenticates with email and password and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid credentials", ""))
			return
		}
		c.logger.Error("failed to fetch user for login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "login failed", err.Error()))
		return
	}

	if !u.IsActive() || !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid credentials", ""))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("failed to generate token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "login failed", err.Error()))
		return
	}

	if err := c.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		c.logger.Warn("failed to stamp last login", "user_id", u.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        *dto.ToUserResponse(u),
	})
}

// Refresh re-issues a still-valid token with a renewed expiration
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	token, err := c.jwtService.RefreshToken(req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

// Me returns the authenticated user
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "user not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch user", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch user", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
