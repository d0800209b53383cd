package opname

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems          = errors.New("opname must have at least one item")
	ErrNegativeCount    = errors.New("physical count cannot be negative")
	ErrNotDraft         = errors.New("opname is no longer a draft")
	ErrUnknownItem      = errors.New("count references a product not on the opname")
	ErrAlreadyFinalized = errors.New("opname has already been finalized")
)

// Status is the opname session lifecycle state. The transition
// DRAFT -> SELESAI happens exactly once; finalization is the only point
// at which stock and the ledger are touched.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusFinished Status = "SELESAI"
)

// Item is one counted product. SystemQty is the stock snapshot taken at
// creation; PhysicalQty is the user-entered count and defaults to the
// snapshot; Variance is always PhysicalQty - SystemQty.
type Item struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitName    string `json:"unit_name"`
	SystemQty   int64  `json:"system_qty"`
	PhysicalQty int64  `json:"physical_qty"`
	Variance    int64  `json:"variance"`
	Remark      string `json:"remark,omitempty"`
}

// Opname is a physical stock count session for a branch
type Opname struct {
	ID          string     `json:"id"`
	BranchID    string     `json:"branch_id"`
	Number      string     `json:"number"`
	Date        time.Time  `json:"date"`
	Note        string     `json:"note,omitempty"`
	Status      Status     `json:"status"`
	Items       []Item     `json:"items"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
	FinalizedBy string     `json:"finalized_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewOpname creates a DRAFT count session. Each item's physical count
// starts equal to its system snapshot, so the initial variance is zero.
func NewOpname(branchID, number string, date time.Time, note string, items []Item) (*Opname, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	for i := range items {
		items[i].PhysicalQty = items[i].SystemQty
		items[i].Variance = 0
	}

	now := time.Now()
	return &Opname{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Number:    number,
		Date:      date,
		Note:      note,
		Status:    StatusDraft,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetPhysicalCount records the counted quantity for one product and
// recomputes its variance. Only DRAFT sessions accept counts.
func (o *Opname) SetPhysicalCount(productID string, physicalQty int64, remark string) error {
	if o.Status != StatusDraft {
		return ErrNotDraft
	}
	if physicalQty < 0 {
		return ErrNegativeCount
	}

	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			o.Items[i].PhysicalQty = physicalQty
			o.Items[i].Variance = physicalQty - o.Items[i].SystemQty
			o.Items[i].Remark = remark
			o.UpdatedAt = time.Now()
			return nil
		}
	}

	return fmt.Errorf("%w: product %s", ErrUnknownItem, productID)
}

// Finalize flips the session to SELESAI. The status guard makes a second
// call fail, which is what prevents corrections from being applied
// twice. The caller applies the stock overwrites and ledger entries in
// the same unit of work.
func (o *Opname) Finalize(actor string) error {
	if o.Status == StatusFinished {
		return ErrAlreadyFinalized
	}
	if o.Status != StatusDraft {
		return ErrNotDraft
	}

	now := time.Now()
	o.Status = StatusFinished
	o.FinalizedAt = &now
	o.FinalizedBy = actor
	o.UpdatedAt = now

	return nil
}

// VarianceItems returns the items whose physical count differs from the
// system snapshot.
func (o *Opname) VarianceItems() []Item {
	var out []Item
	for _, it := range o.Items {
		if it.Variance != 0 {
			out = append(out, it)
		}
	}
	return out
}
