package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/domain/sale"
)

func newSaleEnv(t *testing.T, allowNegativeStock bool) (*testEnv, *SaleService) {
	t.Helper()
	env := newTestEnv()
	env.addCustomer("c1", "Toko Makmur")
	env.addProduct("p1", "Gula 1kg", 10, 12000, 15000)
	env.addProduct("p2", "Kopi Bubuk", 1, 30000, 38000)
	return env, NewSaleService(env.tx, env.nums, allowNegativeStock, nopLogger{})
}

func saleLines() []SaleItemInput {
	return []SaleItemInput{
		{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(15000)},
	}
}

// drives a fresh order to the given point in the lifecycle
func confirmedSale(t *testing.T, svc *SaleService, lines []SaleItemInput) *sale.Order {
	t.Helper()
	ctx := context.Background()
	o, err := svc.Create(ctx, "b1", "c1", time.Now(), lines, sale.Adjustments{}, "sari")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, o.ID, "sari", "")
	require.NoError(t, err)
	return o
}

func TestSaleCreateSnapshotsStockWithoutTouchingIt(t *testing.T) {
	env, svc := newSaleEnv(t, false)

	o, err := svc.Create(context.Background(), "b1", "c1", time.Now(), []SaleItemInput{
		{ProductID: "p1", Quantity: 3},
	}, sale.Adjustments{}, "sari")
	require.NoError(t, err)

	assert.Equal(t, "SO/202608/00001", o.Number)
	assert.Equal(t, "Toko Makmur", o.CustomerName)
	require.Len(t, o.Items, 1)
	assert.Equal(t, int64(10), o.Items[0].StockSnapshot)
	// a zero unit price falls back to the product's sell price
	assert.True(t, o.Items[0].UnitPrice.Equal(decimal.NewFromInt(15000)))

	assert.Equal(t, int64(10), env.stockOf("p1"))
	assert.Empty(t, env.store.movements)
}

func TestSaleConfirmStampsCustomerLastPurchase(t *testing.T) {
	env, svc := newSaleEnv(t, false)

	require.Nil(t, env.store.customers["c1"].LastPurchaseAt)
	confirmedSale(t, svc, saleLines())
	assert.NotNil(t, env.store.customers["c1"].LastPurchaseAt)
}

func TestSaleConfirmProceedsWhenCustomerLookupFails(t *testing.T) {
	env, _ := newSaleEnv(t, false)
	log := &recordingLogger{}
	svc := NewSaleService(env.tx, env.nums, false, log)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", "c1", time.Now(), saleLines(), sale.Adjustments{}, "sari")
	require.NoError(t, err)

	// the customer disappears between draft and confirmation
	delete(env.store.customers, "c1")

	got, err := svc.Confirm(ctx, o.ID, "sari", "")
	require.NoError(t, err)
	assert.Equal(t, sale.StatusConfirmed, got.Status)

	// the skipped stamp is logged, not silent
	assert.NotEmpty(t, log.warns)
}

func TestSaleShipDecrementsStockAndLedger(t *testing.T) {
	env, svc := newSaleEnv(t, false)
	o := confirmedSale(t, svc, saleLines())

	got, err := svc.Ship(context.Background(), o.ID, "sari", "")
	require.NoError(t, err)
	assert.Equal(t, sale.StatusShipped, got.Status)
	assert.Equal(t, int64(7), env.stockOf("p1"))

	require.Len(t, env.store.movements, 1)
	m := env.store.movements[0]
	assert.Equal(t, movement.TypeSaleOut, m.Type)
	assert.Equal(t, int64(-3), m.Quantity)
	assert.Equal(t, int64(7), m.Balance)
	assert.Equal(t, o.Number, m.Reference)
}

func TestSaleShipInsufficientStockRollsBackWholeShipment(t *testing.T) {
	env, svc := newSaleEnv(t, false)

	// the second line overdraws, so the first line's decrement and its
	// ledger entry must be undone as well
	o := confirmedSale(t, svc, []SaleItemInput{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 2},
	})

	_, err := svc.Ship(context.Background(), o.ID, "sari", "")
	require.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, int64(10), env.stockOf("p1"))
	assert.Equal(t, int64(1), env.stockOf("p2"))
	assert.Empty(t, env.store.movements)
	assert.Equal(t, sale.StatusConfirmed, env.store.sales[o.ID].Status)
}

func TestSaleShipOversellAllowedGoesNegative(t *testing.T) {
	env, svc := newSaleEnv(t, true)
	o := confirmedSale(t, svc, []SaleItemInput{{ProductID: "p2", Quantity: 2}})

	_, err := svc.Ship(context.Background(), o.ID, "sari", "")
	require.NoError(t, err)

	assert.Equal(t, int64(-1), env.stockOf("p2"))
	require.Len(t, env.store.movements, 1)
	assert.Equal(t, int64(-1), env.store.movements[0].Balance)
}

func TestSaleReturnRestocksWithAdjustmentEntries(t *testing.T) {
	env, svc := newSaleEnv(t, false)
	ctx := context.Background()
	o := confirmedSale(t, svc, saleLines())

	_, err := svc.Ship(ctx, o.ID, "sari", "")
	require.NoError(t, err)
	_, err = svc.Settle(ctx, o.ID, "sari", "")
	require.NoError(t, err)

	got, err := svc.Return(ctx, o.ID, "sari", "barang rusak")
	require.NoError(t, err)
	assert.Equal(t, sale.StatusReturned, got.Status)
	assert.Equal(t, int64(10), env.stockOf("p1"))

	// shipment out plus return back in
	require.Len(t, env.store.movements, 2)
	ret := env.store.movements[1]
	assert.Equal(t, movement.TypeAdjustment, ret.Type)
	assert.Equal(t, int64(3), ret.Quantity)
	assert.Equal(t, int64(10), ret.Balance)
}

func TestSaleReturnRequiresSettledOrder(t *testing.T) {
	env, svc := newSaleEnv(t, false)
	o := confirmedSale(t, svc, saleLines())

	_, err := svc.Return(context.Background(), o.ID, "sari", "alasan")
	require.ErrorIs(t, err, sale.ErrNotSettled)
	assert.Equal(t, int64(10), env.stockOf("p1"))
}
