package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	movementdomain "github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// MovementController serves the read side of the stock ledger. The
// ledger has no write endpoints; entries are only appended by the order
// and opname flows.
type MovementController struct {
	movementRepo movementdomain.Repository
	logger       logger.Logger
}

// NewMovementController creates a new MovementController
func NewMovementController(movementRepo movementdomain.Repository, logger logger.Logger) *MovementController {
	return &MovementController{
		movementRepo: movementRepo,
		logger:       logger,
	}
}

// List returns the paginated ledger of the current branch, newest first
func (c *MovementController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	branchID := ctx.GetString("branch_id")

	movements, err := c.movementRepo.FindByBranch(ctx, branchID, pg.PageSize, pg.Offset())
	if err != nil {
		c.logger.Error("failed to list stock movements", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list stock movements", err.Error()))
		return
	}

	total, err := c.movementRepo.CountByBranch(ctx, branchID)
	if err != nil {
		c.logger.Error("failed to count stock movements", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count stock movements", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(movements, total, pg.Page, pg.PageSize))
}

// ListByProduct returns the paginated ledger of one product, newest first
func (c *MovementController) ListByProduct(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	movements, err := c.movementRepo.FindByProduct(ctx, ctx.Param("productId"), pg.PageSize, pg.Offset())
	if err != nil {
		c.logger.Error("failed to list stock movements", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list stock movements", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(movements, len(movements), pg.Page, pg.PageSize))
}
