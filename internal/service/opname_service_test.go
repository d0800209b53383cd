package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/domain/opname"
)

func newOpnameEnv(t *testing.T) (*testEnv, *OpnameService) {
	t.Helper()
	env := newTestEnv()
	env.addProduct("p1", "Beras 5kg", 20, 50000, 62000)
	env.addProduct("p2", "Gula 1kg", 8, 12000, 15000)
	return env, NewOpnameService(env.tx, env.nums, nopLogger{})
}

func TestOpnameCreateSnapshotsSystemQty(t *testing.T) {
	env, svc := newOpnameEnv(t)

	o, err := svc.Create(context.Background(), "b1", time.Now(), "opname bulanan", []string{"p1", "p2"})
	require.NoError(t, err)

	assert.Equal(t, "OP/202608/00001", o.Number)
	require.Len(t, o.Items, 2)
	assert.Equal(t, int64(20), o.Items[0].SystemQty)
	assert.Equal(t, int64(8), o.Items[1].SystemQty)
	assert.Contains(t, env.store.opnames, o.ID)
}

func TestOpnameCreateUnknownProductRollsBack(t *testing.T) {
	env, svc := newOpnameEnv(t)

	_, err := svc.Create(context.Background(), "b1", time.Now(), "", []string{"p1", "ghost"})
	require.Error(t, err)
	assert.Empty(t, env.store.opnames)
}

func TestOpnameFinalizeAppliesVarianceOnly(t *testing.T) {
	env, svc := newOpnameEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", time.Now(), "", []string{"p1", "p2"})
	require.NoError(t, err)
	_, err = svc.SetCount(ctx, o.ID, "p1", 17, "3 sak rusak")
	require.NoError(t, err)

	got, err := svc.Finalize(ctx, o.ID, "budi")
	require.NoError(t, err)
	assert.Equal(t, opname.StatusFinished, got.Status)

	// p1 is overwritten with the physical count, p2 had no variance and
	// stays untouched
	assert.Equal(t, int64(17), env.stockOf("p1"))
	assert.Equal(t, int64(8), env.stockOf("p2"))

	require.Len(t, env.store.movements, 1)
	m := env.store.movements[0]
	assert.Equal(t, movement.TypeAdjustment, m.Type)
	assert.Equal(t, "p1", m.ProductID)
	assert.Equal(t, int64(-3), m.Quantity)
	assert.Equal(t, int64(17), m.Balance)
	assert.Equal(t, o.Number, m.Reference)
}

func TestOpnameFinalizeIsAbsoluteNotDelta(t *testing.T) {
	env, svc := newOpnameEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", time.Now(), "", []string{"p1"})
	require.NoError(t, err)
	_, err = svc.SetCount(ctx, o.ID, "p1", 25, "")
	require.NoError(t, err)

	// stock moves after the snapshot, e.g. a receipt lands mid-count
	_, err = reposFor(env.store).Products.AdjustStock(ctx, "p1", 5)
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, o.ID, "budi")
	require.NoError(t, err)

	// the physical count wins outright, it is not added on top
	assert.Equal(t, int64(25), env.stockOf("p1"))
}

func TestOpnameDoubleFinalizeRejected(t *testing.T) {
	env, svc := newOpnameEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", time.Now(), "", []string{"p1"})
	require.NoError(t, err)
	_, err = svc.SetCount(ctx, o.ID, "p1", 17, "")
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, o.ID, "budi")
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, o.ID, "budi")
	require.ErrorIs(t, err, opname.ErrAlreadyFinalized)

	// corrections were not applied twice
	assert.Equal(t, int64(17), env.stockOf("p1"))
	assert.Len(t, env.store.movements, 1)
}

func TestOpnameSetCountAfterFinalizeRejected(t *testing.T) {
	_, svc := newOpnameEnv(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, "b1", time.Now(), "", []string{"p1"})
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, o.ID, "budi")
	require.NoError(t, err)

	_, err = svc.SetCount(ctx, o.ID, "p1", 30, "")
	require.ErrorIs(t, err, opname.ErrNotDraft)
}
