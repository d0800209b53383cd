package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	branchdomain "github.com/tokonusa/inventory-backend/internal/domain/branch"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// BranchController handles branch master data requests
type BranchController struct {
	branchRepo branchdomain.Repository
	logger     logger.Logger
}

// NewBranchController creates a new BranchController
func NewBranchController(branchRepo branchdomain.Repository, logger logger.Logger) *BranchController {
	return &BranchController{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

// Create creates a new branch
func (c *BranchController) Create(ctx *gin.Context) {
	var req dto.BranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	b, err := branchdomain.NewBranch(req.Code, req.Name, req.Address, req.Phone, req.IsMain)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid branch data", err.Error()))
		return
	}

	if err := c.branchRepo.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBranchDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "branch code already in use", err.Error()))
			return
		}
		c.logger.Error("failed to create branch", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save branch", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBranchResponse(b))
}

// Get returns a branch by ID
func (c *BranchController) Get(ctx *gin.Context) {
	b, err := c.branchRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "branch not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch branch", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch branch", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// List returns the paginated branches
func (c *BranchController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	branches, err := c.branchRepo.List(ctx, pg.PageSize, pg.Offset())
	if err != nil {
		c.logger.Error("failed to list branches", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list branches", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchListResponse(branches, len(branches), pg.Page, pg.PageSize))
}

// Update changes the branch master data
func (c *BranchController) Update(ctx *gin.Context) {
	var req dto.BranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	b, err := c.branchRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "branch not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch branch", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch branch", err.Error()))
		return
	}

	if err := b.Update(req.Code, req.Name, req.Address, req.Phone, req.IsMain); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid branch data", err.Error()))
		return
	}

	if err := c.branchRepo.Update(ctx, b); err != nil {
		c.logger.Error("failed to update branch", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update branch", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// Delete removes a branch
func (c *BranchController) Delete(ctx *gin.Context) {
	if err := c.branchRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "branch not found", err.Error()))
			return
		}
		c.logger.Error("failed to delete branch", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete branch", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("branch deleted", nil))
}
