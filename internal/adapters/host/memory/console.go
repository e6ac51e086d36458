package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/actionitems/internal/ports"
)

var ErrUnknownCommand = errors.New("unknown command")

// Console executes commands by echoing them to out. Commands whose name is in
// the deny list are rejected.
type Console struct {
	mu         sync.Mutex
	out        io.Writer
	deny       map[string]struct{}
	dispatched []string
}

var _ ports.CommandExecutor = (*Console)(nil)

func NewConsole(out io.Writer, deny ...string) *Console {
	if out == nil {
		out = io.Discard
	}

	denied := make(map[string]struct{}, len(deny))
	for _, name := range deny {
		denied[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	return &Console{out: out, deny: denied}
}

func (c *Console) Dispatch(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty command", ErrUnknownCommand)
	}
	if _, denied := c.deny[strings.ToLower(fields[0])]; denied {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.dispatched = append(c.dispatched, command)
	_, err := fmt.Fprintf(c.out, "console> %s\n", command)
	return err
}

func (c *Console) Dispatched() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.dispatched...)
}
