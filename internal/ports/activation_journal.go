package ports

import (
	"context"

	"github.com/bnema/actionitems/internal/domain"
)

type JournalQuery struct {
	ActorName string
	ItemID    domain.ItemID
	Limit     int
}

type ActivationJournal interface {
	Record(ctx context.Context, record domain.ActivationRecord) error
	List(ctx context.Context, query JournalQuery) ([]domain.ActivationRecord, error)
}
