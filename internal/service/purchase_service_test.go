package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/domain/purchase"
)

func newPurchaseEnv(t *testing.T) (*testEnv, *PurchaseService) {
	t.Helper()
	env := newTestEnv()
	env.addSupplier("s1", "PT Sumber Pangan")
	env.addProduct("p1", "Beras 5kg", 10, 50000, 62000)
	env.addProduct("p2", "Minyak Goreng", 4, 18000, 21000)
	return env, NewPurchaseService(env.tx, env.nums, nopLogger{})
}

func purchaseLines() []PurchaseItemInput {
	return []PurchaseItemInput{
		{ProductID: "p1", Quantity: 10, UnitCost: decimal.NewFromInt(50000)},
		{ProductID: "p2", Quantity: 5},
	}
}

func TestPurchaseCreateDenormalizesAndNumbers(t *testing.T) {
	env, svc := newPurchaseEnv(t)

	o, err := svc.Create(context.Background(), "b1", "s1", time.Now(), purchaseLines(), purchase.Adjustments{}, "andi")
	require.NoError(t, err)

	assert.Equal(t, "PO/202608/00001", o.Number)
	assert.Equal(t, "PT Sumber Pangan", o.SupplierName)
	assert.Equal(t, purchase.StatusDraft, o.Status)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "Beras 5kg", o.Items[0].ProductName)
	// a zero unit cost falls back to the product's cost price
	assert.True(t, o.Items[1].UnitCost.Equal(decimal.NewFromInt(18000)))

	// the draft is persisted but stock is untouched until receiving
	assert.Contains(t, env.store.purchases, o.ID)
	assert.Equal(t, int64(10), env.stockOf("p1"))
	assert.Empty(t, env.store.movements)
}

func TestPurchaseCreateUnknownSupplierRollsBack(t *testing.T) {
	env, svc := newPurchaseEnv(t)

	_, err := svc.Create(context.Background(), "b1", "ghost", time.Now(), purchaseLines(), purchase.Adjustments{}, "andi")
	require.Error(t, err)
	assert.Empty(t, env.store.purchases)
}

func TestPurchaseReceiveIncrementsStockAndLedger(t *testing.T) {
	env, svc := newPurchaseEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", "s1", time.Now(), purchaseLines(), purchase.Adjustments{}, "andi")
	require.NoError(t, err)
	_, err = svc.Send(ctx, o.ID, "andi", "")
	require.NoError(t, err)

	// partial receipt on line one
	got, err := svc.Receive(ctx, o.ID, []purchase.ReceiptLine{{ProductID: "p1", Quantity: 6}}, "budi", "")
	require.NoError(t, err)
	assert.Equal(t, purchase.StatusPartiallyReceived, got.Status)
	assert.Equal(t, int64(16), env.stockOf("p1"))

	require.Len(t, env.store.movements, 1)
	m := env.store.movements[0]
	assert.Equal(t, movement.TypePurchaseIn, m.Type)
	assert.Equal(t, int64(6), m.Quantity)
	assert.Equal(t, int64(16), m.Balance)
	assert.Equal(t, o.Number, m.Reference)

	// completing receipt fills both lines
	got, err = svc.Receive(ctx, o.ID, []purchase.ReceiptLine{
		{ProductID: "p1", Quantity: 4},
		{ProductID: "p2", Quantity: 5},
	}, "budi", "")
	require.NoError(t, err)
	assert.Equal(t, purchase.StatusFullyReceived, got.Status)
	assert.Equal(t, int64(20), env.stockOf("p1"))
	assert.Equal(t, int64(9), env.stockOf("p2"))
	assert.Len(t, env.store.movements, 3)
}

func TestPurchaseReceiveOverReceiveLeavesNothingBehind(t *testing.T) {
	env, svc := newPurchaseEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", "s1", time.Now(), purchaseLines(), purchase.Adjustments{}, "andi")
	require.NoError(t, err)
	_, err = svc.Send(ctx, o.ID, "andi", "")
	require.NoError(t, err)
	_, err = svc.Receive(ctx, o.ID, []purchase.ReceiptLine{{ProductID: "p1", Quantity: 6}}, "budi", "")
	require.NoError(t, err)

	// 6 already in, 5 more would exceed the ordered 10
	_, err = svc.Receive(ctx, o.ID, []purchase.ReceiptLine{{ProductID: "p1", Quantity: 5}}, "budi", "")
	require.ErrorIs(t, err, purchase.ErrReceiveExceedsOrdered)

	assert.Equal(t, int64(16), env.stockOf("p1"))
	assert.Len(t, env.store.movements, 1)

	stored := env.store.purchases[o.ID]
	assert.Equal(t, purchase.StatusPartiallyReceived, stored.Status)
	assert.Equal(t, int64(6), stored.Items[0].ReceivedQty)
}

func TestPurchaseReceiveDuplicateLinesRejectedBeforeStockMoves(t *testing.T) {
	env, svc := newPurchaseEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", "s1", time.Now(), purchaseLines(), purchase.Adjustments{}, "andi")
	require.NoError(t, err)
	_, err = svc.Send(ctx, o.ID, "andi", "")
	require.NoError(t, err)

	// two lines for the same product sum past the 10 ordered; neither
	// stock nor the ledger may see the individual lines
	_, err = svc.Receive(ctx, o.ID, []purchase.ReceiptLine{
		{ProductID: "p1", Quantity: 6},
		{ProductID: "p1", Quantity: 6},
	}, "budi", "")
	require.ErrorIs(t, err, purchase.ErrReceiveExceedsOrdered)

	assert.Equal(t, int64(10), env.stockOf("p1"))
	assert.Empty(t, env.store.movements)
	assert.Equal(t, purchase.StatusOrdered, env.store.purchases[o.ID].Status)
}

func TestPurchaseReceiveRejectsDraft(t *testing.T) {
	env, svc := newPurchaseEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", "s1", time.Now(), purchaseLines(), purchase.Adjustments{}, "andi")
	require.NoError(t, err)

	_, err = svc.Receive(ctx, o.ID, []purchase.ReceiptLine{{ProductID: "p1", Quantity: 1}}, "budi", "")
	require.ErrorIs(t, err, purchase.ErrNotReceivable)
	assert.Equal(t, int64(10), env.stockOf("p1"))
	assert.Empty(t, env.store.movements)
}

func TestPurchaseCancelPersistsStatus(t *testing.T) {
	env, svc := newPurchaseEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", "s1", time.Now(), purchaseLines(), purchase.Adjustments{}, "andi")
	require.NoError(t, err)

	got, err := svc.Cancel(ctx, o.ID, "andi", "salah input")
	require.NoError(t, err)
	assert.Equal(t, purchase.StatusCancelled, got.Status)
	assert.Equal(t, purchase.StatusCancelled, env.store.purchases[o.ID].Status)
}
