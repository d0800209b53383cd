package purchase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{ProductID: "p1", ProductName: "Beras 5kg", UnitName: "sak", Quantity: 10, UnitCost: decimal.NewFromInt(50000)},
		{ProductID: "p2", ProductName: "Minyak Goreng", UnitName: "liter", Quantity: 5, UnitCost: decimal.NewFromInt(18000)},
	}
}

func testOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("b1", "s1", "PT Sumber Pangan", "PO/202608/00001", time.Now(), testItems(), Adjustments{}, "andi")
	require.NoError(t, err)
	return o
}

func TestNewOrderStartsAsDraftWithHistory(t *testing.T) {
	o := testOrder(t)

	assert.Equal(t, StatusDraft, o.Status)
	require.Len(t, o.History, 1)
	assert.Equal(t, StatusDraft, o.History[0].Status)
	assert.Equal(t, "andi", o.History[0].Actor)
	assert.True(t, o.Totals.GrandTotal.Equal(decimal.NewFromInt(590000)))
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder("b1", "", "", "PO/1", time.Now(), testItems(), Adjustments{}, "andi")
	assert.ErrorIs(t, err, ErrEmptySupplier)

	_, err = NewOrder("b1", "s1", "x", "PO/1", time.Now(), nil, Adjustments{}, "andi")
	assert.ErrorIs(t, err, ErrNoItems)

	bad := testItems()
	bad[0].Quantity = 0
	_, err = NewOrder("b1", "s1", "x", "PO/1", time.Now(), bad, Adjustments{}, "andi")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateDraftOnlyWhileDraft(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Send("andi", ""))

	err := o.UpdateDraft(testItems(), Adjustments{})
	assert.ErrorIs(t, err, ErrNotDraft)
}

func TestSendAndCancelGuards(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Send("andi", "dikirim ke supplier"))
	assert.Equal(t, StatusOrdered, o.Status)

	// sent orders cannot be sent or cancelled again
	assert.ErrorIs(t, o.Send("andi", ""), ErrNotDraft)
	assert.ErrorIs(t, o.Cancel("andi", ""), ErrNotDraft)

	o2 := testOrder(t)
	require.NoError(t, o2.Cancel("andi", "salah input"))
	assert.Equal(t, StatusCancelled, o2.Status)
}

func TestReceiptAccumulatesAcrossPartialReceipts(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Send("andi", ""))

	// first receipt: 6 of 10 on line one
	require.NoError(t, o.ApplyReceipt([]ReceiptLine{{ProductID: "p1", Quantity: 6}}, "budi", ""))
	assert.Equal(t, StatusPartiallyReceived, o.Status)
	assert.Equal(t, int64(6), o.Items[0].ReceivedQty)
	assert.Equal(t, int64(4), o.Items[0].Remaining())
	require.NotNil(t, o.Items[0].LastReceivedAt)

	// second receipt completes both lines
	require.NoError(t, o.ApplyReceipt([]ReceiptLine{
		{ProductID: "p1", Quantity: 4},
		{ProductID: "p2", Quantity: 5},
	}, "budi", ""))
	assert.Equal(t, StatusFullyReceived, o.Status)
	assert.Equal(t, int64(10), o.Items[0].ReceivedQty)
	assert.Equal(t, int64(5), o.Items[1].ReceivedQty)
}

func TestReceiptRejectsOverReceive(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Send("andi", ""))
	require.NoError(t, o.ApplyReceipt([]ReceiptLine{{ProductID: "p1", Quantity: 6}}, "budi", ""))

	err := o.ApplyReceipt([]ReceiptLine{{ProductID: "p1", Quantity: 5}}, "budi", "")
	assert.ErrorIs(t, err, ErrReceiveExceedsOrdered)

	// the failed receipt must not have mutated anything
	assert.Equal(t, int64(6), o.Items[0].ReceivedQty)
	assert.Equal(t, StatusPartiallyReceived, o.Status)
}

func TestReceiptRejectsDuplicateLinesSummingPastOrdered(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Send("andi", ""))

	// each line alone fits the 10 ordered, together they are 12
	err := o.ApplyReceipt([]ReceiptLine{
		{ProductID: "p1", Quantity: 6},
		{ProductID: "p1", Quantity: 6},
	}, "budi", "")
	assert.ErrorIs(t, err, ErrReceiveExceedsOrdered)

	assert.Equal(t, int64(0), o.Items[0].ReceivedQty)
	assert.Equal(t, StatusOrdered, o.Status)

	// split lines for one product are fine while the sum still fits
	require.NoError(t, o.ApplyReceipt([]ReceiptLine{
		{ProductID: "p1", Quantity: 6},
		{ProductID: "p1", Quantity: 4},
	}, "budi", ""))
	assert.Equal(t, int64(10), o.Items[0].ReceivedQty)
}

func TestReceiptValidation(t *testing.T) {
	o := testOrder(t)

	// drafts are not receivable
	assert.ErrorIs(t, o.ValidateReceipt([]ReceiptLine{{ProductID: "p1", Quantity: 1}}), ErrNotReceivable)

	require.NoError(t, o.Send("andi", ""))

	assert.ErrorIs(t, o.ValidateReceipt([]ReceiptLine{{ProductID: "ghost", Quantity: 1}}), ErrUnknownItem)
	assert.ErrorIs(t, o.ValidateReceipt([]ReceiptLine{{ProductID: "p1", Quantity: 0}}), ErrNothingToReceive)
	assert.ErrorIs(t, o.ValidateReceipt(nil), ErrNothingToReceive)
}

func TestReceiptHistoryGrowsPerReceipt(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Send("andi", ""))
	require.NoError(t, o.ApplyReceipt([]ReceiptLine{{ProductID: "p2", Quantity: 5}}, "budi", "sebagian"))
	require.NoError(t, o.ApplyReceipt([]ReceiptLine{{ProductID: "p1", Quantity: 10}}, "budi", "lengkap"))

	// DRAFT, DIPESAN, DITERIMA_SEBAGIAN, DITERIMA_PENUH
	require.Len(t, o.History, 4)
	assert.Equal(t, StatusPartiallyReceived, o.History[2].Status)
	assert.Equal(t, StatusFullyReceived, o.History[3].Status)
}
