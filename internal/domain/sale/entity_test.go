package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokonusa/inventory-backend/internal/domain/pricing"
)

func testItems() []Item {
	return []Item{
		{ProductID: "p1", ProductName: "Gula 1kg", UnitName: "pcs", Quantity: 3, UnitPrice: decimal.NewFromInt(15000), StockSnapshot: 20},
	}
}

func testOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("b1", "c1", "Toko Makmur", "SO/202608/00001", time.Now(), testItems(), Adjustments{}, "sari")
	require.NoError(t, err)
	return o
}

func settledOrder(t *testing.T) *Order {
	t.Helper()
	o := testOrder(t)
	require.NoError(t, o.Confirm("sari", ""))
	require.NoError(t, o.Ship("sari", ""))
	require.NoError(t, o.Settle("sari", ""))
	return o
}

func TestNewOrderDefaultsTaxModeToExclusive(t *testing.T) {
	o := testOrder(t)

	assert.Equal(t, StatusDraft, o.Status)
	assert.Equal(t, pricing.TaxExclusive, o.Adjustments.TaxMode)
	assert.True(t, o.Totals.GrandTotal.Equal(decimal.NewFromInt(45000)))
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder("b1", "", "", "SO/1", time.Now(), testItems(), Adjustments{}, "sari")
	assert.ErrorIs(t, err, ErrEmptyCustomer)

	_, err = NewOrder("b1", "c1", "x", "SO/1", time.Now(), nil, Adjustments{}, "sari")
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestLifecycleHappyPath(t *testing.T) {
	o := testOrder(t)

	require.NoError(t, o.Confirm("sari", ""))
	assert.Equal(t, StatusConfirmed, o.Status)

	require.NoError(t, o.Ship("sari", ""))
	assert.Equal(t, StatusShipped, o.Status)

	require.NoError(t, o.Settle("sari", ""))
	assert.Equal(t, StatusSettled, o.Status)

	require.NoError(t, o.Return("sari", "barang rusak"))
	assert.Equal(t, StatusReturned, o.Status)

	// DRAFT, DIKONFIRMASI, DIKIRIM, LUNAS, DIRETUR
	require.Len(t, o.History, 5)
	assert.Equal(t, "barang rusak", o.History[4].Note)
}

func TestTransitionGuards(t *testing.T) {
	o := testOrder(t)

	// a draft cannot skip confirmation
	assert.ErrorIs(t, o.Ship("sari", ""), ErrNotConfirmed)
	assert.ErrorIs(t, o.Settle("sari", ""), ErrNotShipped)
	assert.ErrorIs(t, o.Return("sari", "alasan"), ErrNotSettled)

	require.NoError(t, o.Confirm("sari", ""))

	// confirmed orders cannot be edited, re-confirmed or cancelled
	assert.ErrorIs(t, o.UpdateDraft(testItems(), Adjustments{}), ErrNotDraft)
	assert.ErrorIs(t, o.Confirm("sari", ""), ErrNotDraft)
	assert.ErrorIs(t, o.Cancel("sari", ""), ErrNotDraft)
}

func TestReturnRequiresReason(t *testing.T) {
	o := settledOrder(t)

	assert.ErrorIs(t, o.Return("sari", ""), ErrReturnReasonRequired)
	assert.Equal(t, StatusSettled, o.Status)

	require.NoError(t, o.Return("sari", "salah kirim"))
	assert.Equal(t, StatusReturned, o.Status)
}

func TestCancelOnlyFromDraft(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Cancel("sari", "pelanggan batal"))
	assert.Equal(t, StatusCancelled, o.Status)

	o2 := settledOrder(t)
	assert.ErrorIs(t, o2.Cancel("sari", ""), ErrNotDraft)
}

func TestUpdateDraftRecomputesTotals(t *testing.T) {
	o := testOrder(t)

	items := testItems()
	items[0].Quantity = 5
	require.NoError(t, o.UpdateDraft(items, Adjustments{
		TaxPercent: decimal.NewFromInt(10),
		TaxMode:    pricing.TaxExclusive,
	}))

	assert.True(t, o.Totals.Subtotal.Equal(decimal.NewFromInt(75000)))
	assert.True(t, o.Totals.GrandTotal.Equal(decimal.NewFromInt(82500)))
}
