package ports

import (
	"context"

	"github.com/bnema/actionitems/internal/domain"
)

type ItemDefinitionLookup interface {
	GetByID(ctx context.Context, id domain.ItemID) (domain.ItemDefinition, error)
}

type ItemDefinitionRepository interface {
	ItemDefinitionLookup
	List(ctx context.Context) ([]domain.ItemDefinition, error)
	Save(ctx context.Context, def domain.ItemDefinition) error
}
