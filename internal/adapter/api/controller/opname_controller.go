package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	opnamedomain "github.com/tokonusa/inventory-backend/internal/domain/opname"
	"github.com/tokonusa/inventory-backend/internal/service"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// OpnameController handles stock opname requests
type OpnameController struct {
	opnameService *service.OpnameService
	opnameRepo    opnamedomain.Repository
	logger        logger.Logger
}

// NewOpnameController creates a new OpnameController
func NewOpnameController(opnameService *service.OpnameService, opnameRepo opnamedomain.Repository, logger logger.Logger) *OpnameController {
	return &OpnameController{
		opnameService: opnameService,
		opnameRepo:    opnameRepo,
		logger:        logger,
	}
}

func (c *OpnameController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrOpnameNotFound),
		errors.Is(err, repository.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "not found", err.Error()))
	case errors.Is(err, opnamedomain.ErrAlreadyFinalized),
		errors.Is(err, opnamedomain.ErrNotDraft):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "invalid opname status for this operation", err.Error()))
	case errors.Is(err, opnamedomain.ErrNoItems),
		errors.Is(err, opnamedomain.ErrNegativeCount),
		errors.Is(err, opnamedomain.ErrUnknownItem):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid opname data", err.Error()))
	default:
		c.logger.Error("opname operation failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "operation failed", err.Error()))
	}
}

// Create opens a DRAFT stock count session
// @Summary Create stock opname
// @Description Opens a count session, snapshotting current stock per product
// @Tags opnames
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Branch-ID header string true "Branch ID"
// @Param opname body dto.OpnameRequest true "Opname data"
// @Success 201 {object} dto.OpnameResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /opnames [post]
func (c *OpnameController) Create(ctx *gin.Context) {
	var req dto.OpnameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	branchID := ctx.GetString("branch_id")

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	o, err := c.opnameService.Create(ctx, branchID, date, req.Note, req.ProductIDs)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOpnameResponse(o))
}

// Get returns an opname session by ID
func (c *OpnameController) Get(ctx *gin.Context) {
	o, err := c.opnameRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOpnameResponse(o))
}

// List returns the paginated opname sessions of the current branch
func (c *OpnameController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	branchID := ctx.GetString("branch_id")

	opnames, err := c.opnameRepo.FindByBranch(ctx, branchID, pg.PageSize, pg.Offset())
	if err != nil {
		c.logger.Error("failed to list opnames", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list opnames", err.Error()))
		return
	}

	total, err := c.opnameRepo.CountByBranch(ctx, branchID)
	if err != nil {
		c.logger.Error("failed to count opnames", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count opnames", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOpnameListResponse(opnames, total, pg.Page, pg.PageSize))
}

// SetCount records a physical count for one product of a DRAFT session
func (c *OpnameController) SetCount(ctx *gin.Context) {
	var req dto.OpnameCountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	o, err := c.opnameService.SetCount(ctx, ctx.Param("id"), req.ProductID, req.PhysicalQty, req.Remark)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOpnameResponse(o))
}

// Finalize applies the corrective stock entries of a DRAFT session
// @Summary Finalize stock opname
// @Description Overwrites stock with the physical counts and records adjustment ledger entries
// @Tags opnames
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Branch-ID header string true "Branch ID"
// @Param id path string true "Opname ID"
// @Success 200 {object} dto.OpnameResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /opnames/{id}/finalize [post]
func (c *OpnameController) Finalize(ctx *gin.Context) {
	o, err := c.opnameService.Finalize(ctx, ctx.Param("id"), ctx.GetString("user_name"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOpnameResponse(o))
}
