package service

import (
	"context"

	"github.com/tokonusa/inventory-backend/internal/domain/customer"
	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/domain/opname"
	"github.com/tokonusa/inventory-backend/internal/domain/product"
	"github.com/tokonusa/inventory-backend/internal/domain/purchase"
	"github.com/tokonusa/inventory-backend/internal/domain/sale"
	"github.com/tokonusa/inventory-backend/internal/domain/supplier"
)

// Repositories bundles the repositories a use case touches. Inside a
// transaction every repository is bound to the same underlying tx, so a
// multi-step mutation (stock + ledger + order status) either applies
// completely or not at all.
type Repositories struct {
	Products  product.Repository
	Movements movement.Repository
	Purchases purchase.Repository
	Sales     sale.Repository
	Opnames   opname.Repository
	Suppliers supplier.Repository
	Customers customer.Repository
}

// TxManager executes a function within a single storage transaction,
// handing it transaction-bound repositories. A non-nil error from fn
// rolls the whole unit of work back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// NumberGenerator allocates human-readable document numbers from a
// per-branch, per-document-type monotonic counter. Entity IDs stay
// UUIDs; these numbers exist for people and ledger references.
type NumberGenerator interface {
	Next(ctx context.Context, branchID, docType string) (string, error)
}

// Document types handed to the NumberGenerator
const (
	DocTypePurchase = "PO"
	DocTypeSale     = "SO"
	DocTypeOpname   = "OP"
)
