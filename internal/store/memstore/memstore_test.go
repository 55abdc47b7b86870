package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/atmcore/internal/money"
	"github.com/dmitrijs2005/atmcore/internal/store"
)

func newOpenStore(t *testing.T) *MemStore {
	t.Helper()
	m := New()
	m.Put(store.Account{
		CardNumber: "1111", PIN: "2222", Active: true,
		Balance: money.FromCents(10000), OwnerLastName: "Ivanov", OwnerGenderMale: true,
	})
	require.NoError(t, m.Open(context.Background()))
	return m
}

func TestOperationsRequireOpenConnection(t *testing.T) {
	m := New()
	ctx := context.Background()

	_, err := m.FindAccount(ctx, "1111")
	assert.ErrorIs(t, err, store.ErrNotConnected)
	assert.ErrorIs(t, m.SetActive(ctx, "1111", false), store.ErrNotConnected)
	assert.ErrorIs(t, m.AdjustBalance(ctx, "1111", money.FromCents(1)), store.ErrNotConnected)
	_, err = m.Exists(ctx, "1111")
	assert.ErrorIs(t, err, store.ErrNotConnected)
}

func TestFindAccount_ReturnsSnapshot(t *testing.T) {
	m := newOpenStore(t)
	ctx := context.Background()

	acc, err := m.FindAccount(ctx, "1111")
	require.NoError(t, err)

	// Mutating the snapshot must not leak back into the store.
	acc.Balance = money.FromCents(1)
	again, err := m.FindAccount(ctx, "1111")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), again.Balance.Cents())
}

func TestFindAccount_NotFound(t *testing.T) {
	m := newOpenStore(t)
	_, err := m.FindAccount(context.Background(), "9999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAdjustBalance(t *testing.T) {
	m := newOpenStore(t)
	ctx := context.Background()

	require.NoError(t, m.AdjustBalance(ctx, "1111", money.FromCents(-2500)))
	assert.Equal(t, int64(7500), m.Balance("1111").Cents())

	err := m.AdjustBalance(ctx, "1111", money.FromCents(-99999))
	assert.ErrorIs(t, err, store.ErrNegativeBalance)
	assert.Equal(t, int64(7500), m.Balance("1111").Cents())
}

func TestAdjustBalance_InjectedFailure(t *testing.T) {
	m := newOpenStore(t)
	boom := errors.New("boom")
	m.AdjustErr = func(cardNumber string, delta money.Amount) error {
		if delta.IsPositive() {
			return boom
		}
		return nil
	}

	ctx := context.Background()
	require.NoError(t, m.AdjustBalance(ctx, "1111", money.FromCents(-100)))
	assert.ErrorIs(t, m.AdjustBalance(ctx, "1111", money.FromCents(100)), boom)
}

func TestSetActive(t *testing.T) {
	m := newOpenStore(t)
	require.NoError(t, m.SetActive(context.Background(), "1111", false))
	assert.False(t, m.Active("1111"))
}

func TestExists(t *testing.T) {
	m := newOpenStore(t)
	ctx := context.Background()

	ok, err := m.Exists(ctx, "1111")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Exists(ctx, "9999")
	require.NoError(t, err)
	assert.False(t, ok)
}
