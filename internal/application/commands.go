package application

import "github.com/bnema/actionitems/internal/domain"

// ActivateCommand is the item-activated event: an actor used an item carrying
// ItemTag. An empty tag means the item is not an action item.
type ActivateCommand struct {
	ActorID domain.ActorID
	ItemTag string
}

type ActivationResult struct {
	Outcome  domain.ActivationOutcome
	ItemID   domain.ItemID
	Actor    domain.Actor
	Cooldown domain.CooldownOutcome
	Session  *domain.EffectSession
	Consumed bool
}
