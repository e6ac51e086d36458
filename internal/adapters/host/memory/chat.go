package memory

import (
	"context"
	"fmt"
	"io"
	"sync"

	itemsrender "github.com/bnema/actionitems/internal/adapters/render/items"
	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
)

// Chat delivers notifications to online players and echoes them to out.
type Chat struct {
	mu       sync.Mutex
	out      io.Writer
	actors   ports.ActorDirectory
	messages map[domain.ActorID][]string
}

var _ ports.Notifier = (*Chat)(nil)

func NewChat(out io.Writer, actors ports.ActorDirectory) *Chat {
	if out == nil {
		out = io.Discard
	}
	return &Chat{out: out, actors: actors, messages: map[domain.ActorID][]string{}}
}

func (c *Chat) Send(ctx context.Context, actorID domain.ActorID, message string) error {
	actor, ok := c.actors.Lookup(ctx, actorID)
	if !ok {
		return domain.ErrActorNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages[actorID] = append(c.messages[actorID], message)
	_, err := fmt.Fprintf(c.out, "[%s] %s\n", actor.Name, itemsrender.Colored(message))
	return err
}

// Messages returns the plain text of every message delivered to actorID.
func (c *Chat) Messages(actorID domain.ActorID) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	plain := make([]string, 0, len(c.messages[actorID]))
	for _, message := range c.messages[actorID] {
		plain = append(plain, domain.StripColorCodes(message))
	}
	return plain
}
