package dto

import (
	"time"

	"github.com/tokonusa/inventory-backend/internal/domain/movement"
)

// MovementResponse is one stock ledger entry as returned to clients
type MovementResponse struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitName    string    `json:"unit_name"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Balance     int64     `json:"balance"`
	Reference   string    `json:"reference"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse is a paginated ledger page
type MovementListResponse struct {
	Items      []MovementResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToMovementResponse converts a domain movement to its DTO
func ToMovementResponse(m *movement.Movement) *MovementResponse {
	return &MovementResponse{
		ID:          m.ID,
		BranchID:    m.BranchID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		UnitName:    m.UnitName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Balance:     m.Balance,
		Reference:   m.Reference,
		CreatedAt:   m.CreatedAt,
	}
}

// ToMovementListResponse converts a domain movement list to its DTO
func ToMovementListResponse(movements []*movement.Movement, total, page, size int) *MovementListResponse {
	items := make([]MovementResponse, len(movements))
	for i, m := range movements {
		items[i] = *ToMovementResponse(m)
	}

	return &MovementListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
