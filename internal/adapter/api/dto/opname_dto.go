package dto

import (
	"time"

	"github.com/tokonusa/inventory-backend/internal/domain/opname"
)

// OpnameRequest opens a physical stock count session for the listed
// products.
type OpnameRequest struct {
	Date       time.Time `json:"date"`
	Note       string    `json:"note"`
	ProductIDs []string  `json:"product_ids" binding:"required,min=1"`
}

// OpnameCountRequest records the counted quantity for one product
type OpnameCountRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	PhysicalQty int64  `json:"physical_qty"`
	Remark      string `json:"remark"`
}

// OpnameResponse is the opname payload returned to clients
type OpnameResponse struct {
	ID          string        `json:"id"`
	BranchID    string        `json:"branch_id"`
	Number      string        `json:"number"`
	Date        time.Time     `json:"date"`
	Note        string        `json:"note,omitempty"`
	Status      opname.Status `json:"status"`
	Items       []opname.Item `json:"items"`
	FinalizedAt *time.Time    `json:"finalized_at,omitempty"`
	FinalizedBy string        `json:"finalized_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// OpnameListResponse is a paginated opname list
type OpnameListResponse struct {
	Items      []OpnameResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToOpnameResponse converts a domain opname to its DTO
func ToOpnameResponse(o *opname.Opname) *OpnameResponse {
	return &OpnameResponse{
		ID:          o.ID,
		BranchID:    o.BranchID,
		Number:      o.Number,
		Date:        o.Date,
		Note:        o.Note,
		Status:      o.Status,
		Items:       o.Items,
		FinalizedAt: o.FinalizedAt,
		FinalizedBy: o.FinalizedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToOpnameListResponse converts a domain opname list to its DTO
func ToOpnameListResponse(opnames []*opname.Opname, total, page, size int) *OpnameListResponse {
	items := make([]OpnameResponse, len(opnames))
	for i, o := range opnames {
		items[i] = *ToOpnameResponse(o)
	}

	return &OpnameListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
