package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	purchasedomain "github.com/tokonusa/inventory-backend/internal/domain/purchase"
	"github.com/tokonusa/inventory-backend/internal/service"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// PurchaseController handles purchase order lifecycle requests
type PurchaseController struct {
	purchaseService *service.PurchaseService
	purchaseRepo    purchasedomain.Repository
	logger          logger.Logger
}

// NewPurchaseController creates a new PurchaseController
func NewPurchaseController(purchaseService *service.PurchaseService, purchaseRepo purchasedomain.Repository, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseService: purchaseService,
		purchaseRepo:    purchaseRepo,
		logger:          logger,
	}
}

// respondError maps domain and repository errors to HTTP statuses:
// missing documents are 404, state machine guards are 409, remaining
// domain validation is 400, anything else is 500.
func (c *PurchaseController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrPurchaseNotFound),
		errors.Is(err, repository.ErrSupplierNotFound),
		errors.Is(err, repository.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "not found", err.Error()))
	case errors.Is(err, purchasedomain.ErrNotDraft),
		errors.Is(err, purchasedomain.ErrNotReceivable):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "invalid order status for this operation", err.Error()))
	case errors.Is(err, purchasedomain.ErrEmptySupplier),
		errors.Is(err, purchasedomain.ErrNoItems),
		errors.Is(err, purchasedomain.ErrInvalidQuantity),
		errors.Is(err, purchasedomain.ErrNothingToReceive),
		errors.Is(err, purchasedomain.ErrUnknownItem),
		errors.Is(err, purchasedomain.ErrReceiveExceedsOrdered):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid purchase order data", err.Error()))
	default:
		c.logger.Error("purchase operation failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "operation failed", err.Error()))
	}
}

// Create creates a DRAFT purchase order
// @Summary Create purchase order
// @Description Creates a DRAFT purchase order for a supplier
// @Tags purchases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Branch-ID header string true "Branch ID"
// @Param order body dto.PurchaseRequest true "Order data"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [post]
func (c *PurchaseController) Create(ctx *gin.Context) {
	var req dto.PurchaseRequest
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

	o, err := c.purchaseService.Create(ctx, branchID, req.SupplierID, orderDate,
		dto.ToPurchaseItemInputs(req.Items),
		purchasedomain.Adjustments{
			InvoiceDiscount: req.InvoiceDiscount,
			TaxPercent:      req.TaxPercent,
			ShippingCost:    req.ShippingCost,
		}, actor)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(o))
}

// Get returns a purchase order by ID
func (c *PurchaseController) Get(ctx *gin.Context) {
	o, err := c.purchaseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}

// List returns the paginated purchase orders of the current branch,
// optionally filtered by status.
func (c *PurchaseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	branchID := ctx.GetString("branch_id")
	status := ctx.Query("status")

	var (
		orders []*purchasedomain.Order
		total  int
		err    error
	)
	if status != "" {
		orders, err = c.purchaseRepo.FindByStatus(ctx, branchID, purchasedomain.Status(status), pg.PageSize, pg.Offset())
	} else {
		orders, err = c.purchaseRepo.FindByBranch(ctx, branchID, pg.PageSize, pg.Offset())
	}
	if err != nil {
		c.logger.Error("failed to list purchase orders", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list purchase orders", err.Error()))
		return
	}

	// the total must describe the same set the page was cut from
	if status != "" {
		total, err = c.purchaseRepo.CountByStatus(ctx, branchID, purchasedomain.Status(status))
	} else {
		total, err = c.purchaseRepo.CountByBranch(ctx, branchID)
	}
	if err != nil {
		c.logger.Error("failed to count purchase orders", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count purchase orders", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(orders, total, pg.Page, pg.PageSize))
}

// Update replaces the lines and adjustments of a DRAFT order
func (c *PurchaseController) Update(ctx *gin.Context) {
	var req dto.PurchaseUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	o, err := c.purchaseService.UpdateDraft(ctx, ctx.Param("id"),
		dto.ToPurchaseItemInputs(req.Items),
		purchasedomain.Adjustments{
			InvoiceDiscount: req.InvoiceDiscount,
			TaxPercent:      req.TaxPercent,
			ShippingCost:    req.ShippingCost,
		})
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}

// Send transitions a DRAFT order to DIPESAN
func (c *PurchaseController) Send(ctx *gin.Context) {
	var req dto.TransitionRequest
	_ = ctx.ShouldBindJSON(&req)

	o, err := c.purchaseService.Send(ctx, ctx.Param("id"), ctx.GetString("user_name"), req.Note)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}

// Receive books received goods against a sent order
// @Summary Receive purchase order
// @Description Books received quantities, incrementing stock and the ledger
// @Tags purchases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Branch-ID header string true "Branch ID"
// @Param id path string true "Order ID"
// @Param receipt body dto.ReceiptRequest true "Received lines"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id}/receive [post]
func (c *PurchaseController) Receive(ctx *gin.Context) {
	var req dto.ReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	o, err := c.purchaseService.Receive(ctx, ctx.Param("id"),
		dto.ToReceiptLines(req.Lines), ctx.GetString("user_name"), req.Note)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}

// Cancel transitions a DRAFT order to DIBATALKAN
func (c *PurchaseController) Cancel(ctx *gin.Context) {
	var req dto.TransitionRequest
	_ = ctx.ShouldBindJSON(&req)

	o, err := c.purchaseService.Cancel(ctx, ctx.Param("id"), ctx.GetString("user_name"), req.Note)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}
