package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
	"github.com/google/uuid"
)

var offlinePlayerNamespace = uuid.MustParse("9f2c7a4e-3b1d-4c55-8e0f-6a1d2b3c4d5e")

// World is an in-process stand-in for the game host: online players, their
// inventories and the flight flag toggled by timed effects.
type World struct {
	mu          sync.RWMutex
	actors      map[domain.ActorID]domain.Actor
	byName      map[string]domain.ActorID
	inventories map[domain.ActorID][]domain.ItemStack
	effects     map[domain.ActorID]bool
}

var (
	_ ports.ActorDirectory   = (*World)(nil)
	_ ports.Inventory        = (*World)(nil)
	_ ports.EffectCapability = (*World)(nil)
)

func NewWorld() *World {
	return &World{
		actors:      map[domain.ActorID]domain.Actor{},
		byName:      map[string]domain.ActorID{},
		inventories: map[domain.ActorID][]domain.ItemStack{},
		effects:     map[domain.ActorID]bool{},
	}
}

// OfflineActorID derives a stable id from a player name.
func OfflineActorID(name string) domain.ActorID {
	return domain.ActorID(uuid.NewSHA1(offlinePlayerNamespace, []byte("OfflinePlayer:"+name)).String())
}

// Join brings a player online, or updates the mode of one already online.
func (w *World) Join(name string, mode domain.GameMode) domain.Actor {
	actor := domain.Actor{ID: OfflineActorID(name), Name: name, Mode: mode}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.actors[actor.ID] = actor
	w.byName[strings.ToLower(name)] = actor.ID
	return actor
}

// Leave takes a player offline. Their inventory is kept for a later Join.
func (w *World) Leave(actorID domain.ActorID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	actor, ok := w.actors[actorID]
	if !ok {
		return
	}
	delete(w.actors, actorID)
	delete(w.byName, strings.ToLower(actor.Name))
	delete(w.effects, actorID)
}

func (w *World) SetMode(actorID domain.ActorID, mode domain.GameMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	actor, ok := w.actors[actorID]
	if !ok {
		return domain.ErrActorNotFound
	}
	actor.Mode = mode
	w.actors[actorID] = actor
	return nil
}

func (w *World) Lookup(_ context.Context, actorID domain.ActorID) (domain.Actor, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	actor, ok := w.actors[actorID]
	return actor, ok
}

func (w *World) FindByName(_ context.Context, name string) (domain.Actor, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	id, ok := w.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.Actor{}, false
	}
	return w.actors[id], true
}

func (w *World) Add(_ context.Context, actorID domain.ActorID, stack domain.ItemStack) error {
	if stack.Amount <= 0 {
		return fmt.Errorf("add %s: amount must be positive", stack.Tag)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.actors[actorID]; !ok {
		return domain.ErrActorNotFound
	}

	stacks := w.inventories[actorID]
	for i := range stacks {
		if sameItem(stacks[i], stack) {
			stacks[i].Amount += stack.Amount
			return nil
		}
	}
	w.inventories[actorID] = append(stacks, stack)
	return nil
}

func (w *World) ConsumeOne(_ context.Context, actorID domain.ActorID, itemID domain.ItemID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	stacks := w.inventories[actorID]
	for i := range stacks {
		if stacks[i].Tag != itemID {
			continue
		}
		stacks[i].Amount--
		if stacks[i].Amount == 0 {
			stacks = append(stacks[:i], stacks[i+1:]...)
		}
		w.inventories[actorID] = stacks
		return nil
	}

	return fmt.Errorf("consume %s: %w", itemID, domain.ErrItemNotHeld)
}

// Count returns how many units tagged itemID the actor holds.
func (w *World) Count(actorID domain.ActorID, itemID domain.ItemID) int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	total := 0
	for _, stack := range w.inventories[actorID] {
		if stack.Tag == itemID {
			total += stack.Amount
		}
	}
	return total
}

func (w *World) Inventory(actorID domain.ActorID) []domain.ItemStack {
	w.mu.RLock()
	defer w.mu.RUnlock()

	stacks := make([]domain.ItemStack, len(w.inventories[actorID]))
	copy(stacks, w.inventories[actorID])
	return stacks
}

func (w *World) Enable(_ context.Context, actorID domain.ActorID) error {
	return w.setEffect(actorID, true)
}

func (w *World) Disable(_ context.Context, actorID domain.ActorID) error {
	return w.setEffect(actorID, false)
}

func (w *World) EffectEnabled(actorID domain.ActorID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.effects[actorID]
}

func (w *World) setEffect(actorID domain.ActorID, enabled bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.actors[actorID]; !ok {
		return domain.ErrActorNotFound
	}
	w.effects[actorID] = enabled
	return nil
}

func sameItem(a, b domain.ItemStack) bool {
	return a.Tag == b.Tag && a.Material == b.Material && a.DisplayName == b.DisplayName && a.ModelData == b.ModelData
}
