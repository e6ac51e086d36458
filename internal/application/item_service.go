package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
)

// ItemService manages item definitions and grants tagged items to players.
type ItemService struct {
	definitions ports.ItemDefinitionRepository
	actors      ports.ActorDirectory
	inventory   ports.Inventory
}

func NewItemService(definitions ports.ItemDefinitionRepository, actors ports.ActorDirectory, inventory ports.Inventory) *ItemService {
	return &ItemService{definitions: definitions, actors: actors, inventory: inventory}
}

// Give builds the item identified by rawItemID and adds one to the named
// player's inventory.
func (s *ItemService) Give(ctx context.Context, playerName, rawItemID string) (domain.ItemStack, domain.Actor, error) {
	actor, ok := s.actors.FindByName(ctx, strings.TrimSpace(playerName))
	if !ok {
		return domain.ItemStack{}, domain.Actor{}, fmt.Errorf("player %q: %w", playerName, domain.ErrActorNotFound)
	}

	itemID := domain.NormalizeItemID(rawItemID)
	def, err := s.definitions.GetByID(ctx, itemID)
	if err != nil {
		return domain.ItemStack{}, domain.Actor{}, fmt.Errorf("get item definition %s: %w", itemID, err)
	}

	stack := domain.NewItemStack(def)
	if err := s.inventory.Add(ctx, actor.ID, stack); err != nil {
		return domain.ItemStack{}, domain.Actor{}, fmt.Errorf("add %s to inventory: %w", itemID, err)
	}

	return stack, actor, nil
}

func (s *ItemService) Get(ctx context.Context, rawItemID string) (domain.ItemDefinition, error) {
	itemID := domain.NormalizeItemID(rawItemID)
	def, err := s.definitions.GetByID(ctx, itemID)
	if err != nil {
		return domain.ItemDefinition{}, fmt.Errorf("get item definition %s: %w", itemID, err)
	}
	return def, nil
}

func (s *ItemService) List(ctx context.Context) ([]domain.ItemDefinition, error) {
	defs, err := s.definitions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list item definitions: %w", err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs, nil
}

// Define validates and stores a definition, replacing any with the same id.
func (s *ItemService) Define(ctx context.Context, def domain.ItemDefinition) error {
	def.ID = domain.NormalizeItemID(string(def.ID))
	if err := def.Validate(); err != nil {
		return err
	}

	if err := s.definitions.Save(ctx, def); err != nil {
		return fmt.Errorf("save item definition: %w", err)
	}
	return nil
}
