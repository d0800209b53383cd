package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	userdomain "github.com/tokonusa/inventory-backend/internal/domain/user"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// UserController handles user account requests
type UserController struct {
	userRepo userdomain.Repository
	logger   logger.Logger
}

// NewUserController creates a new UserController
func NewUserController(userRepo userdomain.Repository, logger logger.Logger) *UserController {
	return &UserController{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create creates a new user account
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	u, err := userdomain.NewUser(req.BranchID, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid user data", err.Error()))
		return
	}

	if err := c.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "email already in use", err.Error()))
			return
		}
		c.logger.Error("failed to create user", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save user", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// Get returns a user by ID
func (c *UserController) Get(ctx *gin.Context) {
	u, err := c.userRepo.FindByID(ctx, ctx.Param("id"))
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

// List returns the paginated users
func (c *UserController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	users, err := c.userRepo.List(ctx, pg.PageSize, pg.Offset())
	if err != nil {
		c.logger.Error("failed to list users", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list users", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users, len(users), pg.Page, pg.PageSize))
}

// Delete removes a user account
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.userRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "user not found", err.Error()))
			return
		}
		c.logger.Error("failed to delete user", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete user", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("user deleted", nil))
}
