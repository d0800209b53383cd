package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	customerdomain "github.com/tokonusa/inventory-backend/internal/domain/customer"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// CustomerController handles customer master data requests
type CustomerController struct {
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create creates a new customer
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	branchID := ctx.GetString("branch_id")

	cust, err := customerdomain.NewCustomer(branchID, req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid customer data", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, cust); err != nil {
		c.logger.Error("failed to create customer", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save customer", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cust))
}

// Get returns a customer by ID
func (c *CustomerController) Get(ctx *gin.Context) {
	cust, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "customer not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch customer", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch customer", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// List returns the paginated customers of the current branch
func (c *CustomerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pg := dto.GetPagination(page, size)

	branchID := ctx.GetString("branch_id")

	customers, err := c.customerRepo.FindByBranch(ctx, branchID, pg.PageSize, pg.Offset())
	if err != nil {
		c.logger.Error("failed to list customers", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list customers", err.Error()))
		return
	}

	total, err := c.customerRepo.CountByBranch(ctx, branchID)
	if err != nil {
		c.logger.Error("failed to count customers", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count customers", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, total, pg.Page, pg.PageSize))
}

// Update changes the customer master data
func (c *CustomerController) Update(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	cust, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "customer not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch customer", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch customer", err.Error()))
		return
	}

	if err := cust.Update(req.Name, req.Phone, req.Email, req.Address); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid customer data", err.Error()))
		return
	}

	if err := c.customerRepo.Update(ctx, cust); err != nil {
		c.logger.Error("failed to update customer", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update customer", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Delete removes a customer
func (c *CustomerController) Delete(ctx *gin.Context) {
	if err := c.customerRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "customer not found", err.Error()))
			return
		}
		c.logger.Error("failed to delete customer", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete customer", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("customer deleted", nil))
}
