package ports

import (
	"context"

	"github.com/bnema/actionitems/internal/domain"
)

// CommandExecutor runs a console command on the host.
type CommandExecutor interface {
	Dispatch(ctx context.Context, command string) error
}

// EffectCapability toggles the ability granted by a timed effect.
type EffectCapability interface {
	Enable(ctx context.Context, actorID domain.ActorID) error
	Disable(ctx context.Context, actorID domain.ActorID) error
}

type Notifier interface {
	Send(ctx context.Context, actorID domain.ActorID, message string) error
}

// ActorDirectory resolves actors that are currently online.
type ActorDirectory interface {
	Lookup(ctx context.Context, actorID domain.ActorID) (domain.Actor, bool)
	FindByName(ctx context.Context, name string) (domain.Actor, bool)
}

type Inventory interface {
	Add(ctx context.Context, actorID domain.ActorID, stack domain.ItemStack) error
	ConsumeOne(ctx context.Context, actorID domain.ActorID, itemID domain.ItemID) error
}
