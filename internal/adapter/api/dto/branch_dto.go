package dto

import (
	"time"

	"github.com/tokonusa/inventory-backend/internal/domain/branch"
)

// BranchRequest is the create/update payload for a branch
type BranchRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	IsMain  bool   `json:"is_main"`
}

// BranchResponse is the branch payload returned to clients
type BranchResponse struct {
	ID        string        `json:"id"`
	Code      string        `json:"code"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	Phone     string        `json:"phone"`
	IsMain    bool          `json:"is_main"`
	Status    branch.Status `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BranchListResponse is a paginated branch list
type BranchListResponse struct {
	Items      []BranchResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToBranchResponse converts a domain branch to its DTO
func ToBranchResponse(b *branch.Branch) *BranchResponse {
	return &BranchResponse{
		ID:        b.ID,
		Code:      b.Code,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		IsMain:    b.IsMain,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBranchListResponse converts a domain branch list to its DTO
func ToBranchListResponse(branches []*branch.Branch, total, page, size int) *BranchListResponse {
	items := make([]BranchResponse, len(branches))
	for i, b := range branches {
		items[i] = *ToBranchResponse(b)
	}

	return &BranchListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
