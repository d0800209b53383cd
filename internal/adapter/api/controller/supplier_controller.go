package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	supplierdomain "github.com/tokonusa/inventory-backend/internal/domain/supplier"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// SupplierController handles supplier master data requests
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewSupplierController creates a new SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create creates a new supplier
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	branchID := ctx.GetString("branch_id")

	s, err := supplierdomain.NewSupplier(branchID, req.Name, req.ContactPerson, req.Phone, req.Email, req.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid supplier data", err.Error()))
		return
	}

	if err := c.supplierRepo.Create(ctx, s); err != nil {
		c.logger.Error("failed to create supplier", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save supplier", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(s))
}

// Get returns a supplier by ID
func (c *SupplierController) Get(ctx *gin.Context) {
	s, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "supplier not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch supplier", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch supplier", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// List returns the paginated suppliers of the current branch
func (c *SupplierController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	branchID := ctx.GetString("branch_id")

	suppliers, err := c.supplierRepo.FindByBranch(ctx, branchID, pg.PageSize, pg.Offset())
	if err != nil {
		c.logger.Error("failed to list suppliers", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list suppliers", err.Error()))
		return
	}

	total, err := c.supplierRepo.CountByBranch(ctx, branchID)
	if err != nil {
		c.logger.Error("failed to count suppliers", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count suppliers", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers, total, pg.Page, pg.PageSize))
}

// Update changes the supplier master data
func (c *SupplierController) Update(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	s, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "supplier not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch supplier", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch supplier", err.Error()))
		return
	}

	if err := s.Update(req.Name, req.ContactPerson, req.Phone, req.Email, req.Address); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid supplier data", err.Error()))
		return
	}

	if err := c.supplierRepo.Update(ctx, s); err != nil {
		c.logger.Error("failed to update supplier", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update supplier", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// Delete removes a supplier
func (c *SupplierController) Delete(ctx *gin.Context) {
	if err := c.supplierRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "supplier not found", err.Error()))
			return
		}
		c.logger.Error("failed to delete supplier", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete supplier", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("supplier deleted", nil))
}
