package application

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownLedgerBlocksUntilExpiry(t *testing.T) {
	t.Parallel()

	ledger := NewCooldownLedger()
	start := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	require.True(t, ledger.CheckAndReserve("actor-1", "wand", 5, start).Allowed)
	ledger.Commit("actor-1", "wand", start, 5)

	blocked := ledger.CheckAndReserve("actor-1", "wand", 5, start.Add(2340*time.Millisecond))
	assert.False(t, blocked.Allowed)
	assert.Equal(t, 2660*time.Millisecond, blocked.Remaining)
	assert.Equal(t, 2.7, blocked.RemainingSeconds())

	justBefore := ledger.CheckAndReserve("actor-1", "wand", 5, start.Add(5*time.Second-time.Millisecond))
	assert.False(t, justBefore.Allowed)
	assert.Equal(t, time.Millisecond, justBefore.Remaining)

	assert.True(t, ledger.CheckAndReserve("actor-1", "wand", 5, start.Add(5*time.Second)).Allowed, "expiry equal to now is allowed")
	assert.True(t, ledger.CheckAndReserve("actor-1", "wand", 5, start.Add(6*time.Second)).Allowed)
}

func TestCooldownLedgerKeysByActorAndItem(t *testing.T) {
	t.Parallel()

	ledger := NewCooldownLedger()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	ledger.Commit("actor-1", "wand", now, 30)

	assert.False(t, ledger.CheckAndReserve("actor-1", "wand", 30, now).Allowed)
	assert.True(t, ledger.CheckAndReserve("actor-2", "wand", 30, now).Allowed)
	assert.True(t, ledger.CheckAndReserve("actor-1", "feather", 30, now).Allowed)
}

func TestCooldownLedgerZeroCooldownNeverWrites(t *testing.T) {
	t.Parallel()

	ledger := NewCooldownLedger()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		assert.True(t, ledger.CheckAndReserve("actor-1", "wand", 0, now).Allowed)
		ledger.Commit("actor-1", "wand", now, 0)
	}
	ledger.Commit("actor-1", "wand", now, -4)

	assert.Zero(t, ledger.Len())
}

func TestCooldownLedgerCheckDoesNotWrite(t *testing.T) {
	t.Parallel()

	ledger := NewCooldownLedger()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	ledger.CheckAndReserve("actor-1", "wand", 30, now)
	ledger.CheckAndReserve("actor-1", "wand", 30, now)

	assert.Zero(t, ledger.Len())
}

func TestCooldownLedgerCommitOverwrites(t *testing.T) {
	t.Parallel()

	ledger := NewCooldownLedger()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	ledger.Commit("actor-1", "wand", now, 30)
	ledger.Commit("actor-1", "wand", now, 2)

	assert.True(t, ledger.CheckAndReserve("actor-1", "wand", 30, now.Add(3*time.Second)).Allowed)
	assert.Equal(t, 1, ledger.Len())
}

func TestCooldownLedgerSweepAndReset(t *testing.T) {
	t.Parallel()

	ledger := NewCooldownLedger()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	ledger.Commit("actor-1", "wand", now, 5)
	ledger.Commit("actor-2", "wand", now, 60)
	require.Equal(t, 2, ledger.Len())

	assert.Equal(t, 1, ledger.Sweep(now.Add(5*time.Second)))
	assert.Equal(t, 1, ledger.Len())
	assert.False(t, ledger.CheckAndReserve("actor-2", "wand", 60, now.Add(5*time.Second)).Allowed)

	ledger.Reset()
	assert.Zero(t, ledger.Len())
	assert.True(t, ledger.CheckAndReserve("actor-2", "wand", 60, now).Allowed)
}

func TestCooldownLedgerConcurrentAccess(t *testing.T) {
	t.Parallel()

	ledger := NewCooldownLedger()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int64
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor := domain.ActorID([]string{"a", "b", "c", "d"}[i%4])
			if ledger.CheckAndReserve(actor, "wand", 30, now).Allowed {
				allowed.Add(1)
			}
			ledger.Commit(actor, "wand", now, 30)
			ledger.Sweep(now)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, ledger.Len())
	assert.GreaterOrEqual(t, allowed.Load(), int64(4))
}
