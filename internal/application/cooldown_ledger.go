package application

import (
	"sync"
	"time"

	"github.com/bnema/actionitems/internal/domain"
)

// CooldownLedger tracks when each actor may use each item again. It lives for
// the lifetime of the host process and is never persisted.
type CooldownLedger struct {
	mu      sync.Mutex
	entries map[domain.CooldownKey]time.Time
}

func NewCooldownLedger() *CooldownLedger {
	return &CooldownLedger{entries: map[domain.CooldownKey]time.Time{}}
}

// CheckAndReserve reports whether actorID may use itemID at now. It never
// writes; an allowed activation must be followed by Commit.
func (l *CooldownLedger) CheckAndReserve(actorID domain.ActorID, itemID domain.ItemID, cooldownSeconds int, now time.Time) domain.CooldownOutcome {
	if cooldownSeconds <= 0 {
		return domain.CooldownOutcome{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	expiry, ok := l.entries[domain.CooldownKey{ActorID: actorID, ItemID: itemID}]
	if !ok || !expiry.After(now) {
		return domain.CooldownOutcome{Allowed: true}
	}

	return domain.CooldownOutcome{Remaining: expiry.Sub(now)}
}

func (l *CooldownLedger) Commit(actorID domain.ActorID, itemID domain.ItemID, now time.Time, cooldownSeconds int) {
	if cooldownSeconds <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[domain.CooldownKey{ActorID: actorID, ItemID: itemID}] = now.Add(time.Duration(cooldownSeconds) * time.Second)
}

// Sweep drops entries that have already expired and returns how many were removed.
func (l *CooldownLedger) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, expiry := range l.entries {
		if !expiry.After(now) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

func (l *CooldownLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

func (l *CooldownLedger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = map[domain.CooldownKey]time.Time{}
}
