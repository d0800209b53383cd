package branchctx

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
)

// BranchValidator validates that a branch exists and is active
type BranchValidator interface {
	ValidateBranch(ctx context.Context, branchID string) (bool, error)
}

// Middleware resolves the acting branch from the X-Branch-ID header and
// stores it in both the gin and request contexts. Every inventory document
// is owned by a branch, so routes mounted behind this middleware can rely
// on a non-empty branch ID.
func Middleware(validator BranchValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		branchID := c.GetHeader("X-Branch-ID")
		if branchID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"branch not informed",
				"the 'X-Branch-ID' header is required",
			))
			return
		}

		valid, err := validator.ValidateBranch(c.Request.Context(), branchID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"failed to validate branch",
				err.Error(),
			))
			return
		}

		if !valid {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"invalid branch",
				"the informed branch does not exist or is inactive",
			))
			return
		}

		c.Set("branch_id", branchID)
		c.Request = c.Request.WithContext(SetBranchIDContext(c.Request.Context(), branchID))

		c.Next()
	}
}
