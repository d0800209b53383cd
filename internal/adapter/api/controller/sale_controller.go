package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	saledomain "github.com/tokonusa/inventory-backend/internal/domain/sale"
	"github.com/tokonusa/inventory-backend/internal/service"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// SaleController handles sale order lifecycle requests
type SaleController struct {
	saleService *service.SaleService
	saleRepo    saledomain.Repository
	logger      logger.Logger
}

// NewSaleController creates a new SaleController
func NewSaleController(saleService *service.SaleService, saleRepo saledomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleService: saleService,
		saleRepo:    saleRepo,
		logger:      logger,
	}
}

func (c *SaleController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrSaleNotFound),
		errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "not found", err.Error()))
	case errors.Is(err, service.ErrInsufficientStock):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "insufficient stock", err.Error()))
	case errors.Is(err, saledomain.ErrNotDraft),
		errors.Is(err, saledomain.ErrNotConfirmed),
		errors.Is(err, saledomain.ErrNotShipped),
		errors.Is(err, saledomain.ErrNotSettled):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "invalid order status for this operation", err.Error()))
	case errors.Is(err, saledomain.ErrEmptyCustomer),
		errors.Is(err, saledomain.ErrNoItems),
		errors.Is(err, saledomain.ErrInvalidQuantity),
		errors.Is(err, saledomain.ErrReturnReasonRequired):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid sale order data", err.Error()))
	default:
		c.logger.Error("sale operation failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "operation failed", err.Error()))
	}
}

// Create creates a DRAFT sale order
// @Summary Create sale order
// @Description Creates a DRAFT sale order; stock is not touched until shipment
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Branch-ID header string true "Branch ID"
// @Param order body dto.SaleRequest true "Order data"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	branchID := ctx.GetString("branch_id")
	actor := ctx.GetString("user_name")

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	o, err := c.saleService.Create(ctx, branchID, req.CustomerID, orderDate,
		dto.ToSaleItemInputs(req.Items),
		saledomain.Adjustments{
			InvoiceDiscount: req.InvoiceDiscount,
			TaxPercent:      req.TaxPercent,
			TaxMode:         req.TaxMode,
			ShippingCost:    req.ShippingCost,
			MiscCost:        req.MiscCost,
		}, actor)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(o))
}

// Get returns a sale order by ID
func (c *SaleController) Get(ctx *gin.Context) {
	o, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(o))
}

// List returns the paginated sale orders of the current branch,
// optionally filtered by status.
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	branchID := ctx.GetString("branch_id")
	status := ctx.Query("status")

	var (
		orders []*saledomain.Order
		total  int
		err    error
	)
	if status != "" {
		orders, err = c.saleRepo.FindByStatus(ctx, branchID, saledomain.Status(status), pg.PageSize, pg.Offset())
	} else {
		orders, err = c.saleRepo.FindByBranch(ctx, branchID, pg.PageSize, pg.Offset())
	}
	if err != nil {
		c.logger.Error("failed to list sale orders", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list sale orders", err.Error()))
		return
	}

	// the total must describe the same set the page was cut from
	if status != "" {
		total, err = c.saleRepo.CountByStatus(ctx, branchID, saledomain.Status(status))
	} else {
		total, err = c.saleRepo.CountByBranch(ctx, branchID)
	}
	if err != nil {
		c.logger.Error("failed to count sale orders", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count sale orders", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(orders, total, pg.Page, pg.PageSize))
}

// Update replaces the lines and adjustments of a DRAFT order
func (c *SaleController) Update(ctx *gin.Context) {
	var req dto.SaleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	o, err := c.saleService.UpdateDraft(ctx, ctx.Param("id"),
		dto.ToSaleItemInputs(req.Items),
		saledomain.Adjustments{
			InvoiceDiscount: req.InvoiceDiscount,
			TaxPercent:      req.TaxPercent,
			TaxMode:         req.TaxMode,
			ShippingCost:    req.ShippingCost,
			MiscCost:        req.MiscCost,
		})
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(o))
}

// Confirm transitions a DRAFT order to DIKONFIRMASI
func (c *SaleController) Confirm(ctx *gin.Context) {
	var req dto.TransitionRequest
	_ = ctx.ShouldBindJSON(&req)

	o, err := c.saleService.Confirm(ctx, ctx.Param("id"), ctx.GetString("user_name"), req.Note)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(o))
}

// Ship transitions DIKONFIRMASI to DIKIRIM, decrementing stock
// @Summary Ship sale order
// @Description Ships a confirmed order, decrementing stock and appending ledger entries
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Branch-ID header string true "Branch ID"
// @Param id path string true "Order ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/ship [post]
func (c *SaleController) Ship(ctx *gin.Context) {
	var req dto.TransitionRequest
	_ = ctx.ShouldBindJSON(&req)

	o, err := c.saleService.Ship(ctx, ctx.Param("id"), ctx.GetString("user_name"), req.Note)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(o))
}

// Settle transitions DIKIRIM to LUNAS
func (c *SaleController) Settle(ctx *gin.Context) {
	var req dto.TransitionRequest
	_ = ctx.ShouldBindJSON(&req)

	o, err := c.saleService.Settle(ctx, ctx.Param("id"), ctx.GetString("user_name"), req.Note)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(o))
}

// Return transitions LUNAS to DIRETUR, restoring stock. The reason is
// mandatory.
func (c *SaleController) Return(ctx *gin.Context) {
	var req dto.ReturnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "return reason is required", err.Error()))
		return
	}

	o, err := c.saleService.Return(ctx, ctx.Param("id"), ctx.GetString("user_name"), req.Reason)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(o))
}

// Cancel transitions a DRAFT order to DIBATALKAN
func (c *SaleController) Cancel(ctx *gin.Context) {
	var req dto.TransitionRequest
	_ = ctx.ShouldBindJSON(&req)

	o, err := c.saleService.Cancel(ctx, ctx.Param("id"), ctx.GetString("user_name"), req.Note)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(o))
}
