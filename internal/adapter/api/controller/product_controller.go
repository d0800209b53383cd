package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	productdomain "github.com/tokonusa/inventory-backend/internal/domain/product"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// ProductController handles product master data requests
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController creates a new ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create creates a new product
// @Summary Create product
// @Description Creates a new product with zero stock in the current branch
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Branch-ID header string true "Branch ID"
// @Param product body dto.ProductRequest true "Product data"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	branchID := ctx.GetString("branch_id")

	p, err := productdomain.NewProduct(branchID, req.Code, req.Name, req.CategoryID, req.UnitName, req.CostPrice, req.SellPrice)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid product data", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "product code already in use", err.Error()))
			return
		}
		c.logger.Error("failed to create product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save product", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get returns a product by ID
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// GetByCode returns a product by its code within the current branch
func (c *ProductController) GetByCode(ctx *gin.Context) {
	branchID := ctx.GetString("branch_id")

	p, err := c.productRepo.FindByCode(ctx, branchID, ctx.Param("code"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List returns the paginated products of the current branch
// @Summary List products
// @Description Returns the paginated products of the current branch
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Branch-ID header string true "Branch ID"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	branchID := ctx.GetString("branch_id")

	products, err := c.productRepo.FindByBranch(ctx, branchID, pg.PageSize, pg.Offset())
	if err != nil {
		c.logger.Error("failed to list products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list products", err.Error()))
		return
	}

	total, err := c.productRepo.CountByBranch(ctx, branchID)
	if err != nil {
		c.logger.Error("failed to count products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count products", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, pg.Page, pg.PageSize))
}

// Update changes the product master data. Stock is not editable here;
// it only moves through receiving, shipment, return and opname.
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", err.Error()))
		return
	}

	if err := p.Update(req.Code, req.Name, req.CategoryID, req.UnitName, req.CostPrice, req.SellPrice); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid product data", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, p); err != nil {
		c.logger.Error("failed to update product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// UpdateStatus activates or deactivates a product
func (c *ProductController) UpdateStatus(ctx *gin.Context) {
	var req struct {
		Status productdomain.Status `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", err.Error()))
		return
	}

	switch req.Status {
	case productdomain.StatusActive:
		p.Activate()
	case productdomain.StatusInactive:
		p.Deactivate()
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid status", string(req.Status)))
		return
	}

	if err := c.productRepo.Update(ctx, p); err != nil {
		c.logger.Error("failed to update product status", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete removes a product
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to delete product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("product deleted", nil))
}
