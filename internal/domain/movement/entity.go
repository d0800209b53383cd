package movement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProduct   = errors.New("movement product cannot be empty")
	ErrEmptyType      = errors.New("movement type cannot be empty")
	ErrEmptyReference = errors.New("movement reference cannot be empty")
)

// Movement types used by the order state machines. The type is a plain
// string category, matching the ledger as users see it.
const (
	TypePurchaseIn = "Pembelian Masuk"
	TypeSaleOut    = "Penjualan Keluar"
	TypeAdjustment = "Penyesuaian"
)

// Movement is one immutable entry in the stock ledger: a signed quantity
// delta plus the balance that resulted from applying it, tied to the
// document that caused it. Entries are append-only and never updated or
// deleted by normal flow.
type Movement struct {
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

// NewMovement creates a ledger entry. The recorder does not cross-check
// delta against balance; callers are responsible for consistency.
func NewMovement(branchID, productID, productName, unitName, movementType string, quantity, balance int64, reference string) (*Movement, error) {
	if productID == "" {
		return nil, ErrEmptyProduct
	}
	if movementType == "" {
		return nil, ErrEmptyType
	}
	if reference == "" {
		return nil, ErrEmptyReference
	}

	return &Movement{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		ProductID:   productID,
		ProductName: productName,
		UnitName:    unitName,
		Type:        movementType,
		Quantity:    quantity,
		Balance:     balance,
		Reference:   reference,
		CreatedAt:   time.Now(),
	}, nil
}
