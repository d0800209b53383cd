package opname

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOpname(t *testing.T) *Opname {
	t.Helper()
	o, err := NewOpname("b1", "OP/202608/00001", time.Now(), "opname bulanan", []Item{
		{ProductID: "p1", ProductName: "Beras 5kg", UnitName: "sak", SystemQty: 20},
		{ProductID: "p2", ProductName: "Gula 1kg", UnitName: "pcs", SystemQty: 8},
	})
	require.NoError(t, err)
	return o
}

func TestNewOpnameDefaultsPhysicalToSystem(t *testing.T) {
	o := testOpname(t)

	assert.Equal(t, StatusDraft, o.Status)
	for _, it := range o.Items {
		assert.Equal(t, it.SystemQty, it.PhysicalQty)
		assert.Zero(t, it.Variance)
	}
	assert.Empty(t, o.VarianceItems())
}

func TestNewOpnameRequiresItems(t *testing.T) {
	_, err := NewOpname("b1", "OP/1", time.Now(), "", nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestSetPhysicalCountRecomputesVariance(t *testing.T) {
	o := testOpname(t)

	require.NoError(t, o.SetPhysicalCount("p1", 17, "3 sak rusak"))
	assert.Equal(t, int64(17), o.Items[0].PhysicalQty)
	assert.Equal(t, int64(-3), o.Items[0].Variance)
	assert.Equal(t, "3 sak rusak", o.Items[0].Remark)

	// counting again overwrites, never accumulates
	require.NoError(t, o.SetPhysicalCount("p1", 19, ""))
	assert.Equal(t, int64(-1), o.Items[0].Variance)
}

func TestSetPhysicalCountValidation(t *testing.T) {
	o := testOpname(t)

	assert.ErrorIs(t, o.SetPhysicalCount("p1", -1, ""), ErrNegativeCount)
	assert.ErrorIs(t, o.SetPhysicalCount("ghost", 5, ""), ErrUnknownItem)
}

func TestFinalizeIsTerminal(t *testing.T) {
	o := testOpname(t)
	require.NoError(t, o.SetPhysicalCount("p1", 17, ""))

	require.NoError(t, o.Finalize("budi"))
	assert.Equal(t, StatusFinished, o.Status)
	assert.Equal(t, "budi", o.FinalizedBy)
	require.NotNil(t, o.FinalizedAt)

	// a second finalize must fail so corrections are never applied twice
	assert.ErrorIs(t, o.Finalize("budi"), ErrAlreadyFinalized)

	// and a finished session no longer accepts counts
	assert.ErrorIs(t, o.SetPhysicalCount("p1", 20, ""), ErrNotDraft)
}

func TestVarianceItems(t *testing.T) {
	o := testOpname(t)
	require.NoError(t, o.SetPhysicalCount("p1", 25, "ditemukan stok tambahan"))

	varied := o.VarianceItems()
	require.Len(t, varied, 1)
	assert.Equal(t, "p1", varied[0].ProductID)
	assert.Equal(t, int64(5), varied[0].Variance)
}
