package memory

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatDeliversToOnlinePlayers(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	world := NewWorld()
	steve := world.Join("Steve", domain.GameModeSurvival)
	chat := NewChat(&out, world)

	require.NoError(t, chat.Send(context.Background(), steve.ID, domain.TranslateColorCodes("&aWelcome &eback")))

	assert.Equal(t, []string{"Welcome back"}, chat.Messages(steve.ID))
	assert.Contains(t, out.String(), "[Steve] ")
	assert.Contains(t, out.String(), "Welcome")
}

func TestChatRejectsOfflinePlayers(t *testing.T) {
	t.Parallel()

	world := NewWorld()
	chat := NewChat(nil, world)

	err := chat.Send(context.Background(), OfflineActorID("Alex"), "hi")
	require.ErrorIs(t, err, domain.ErrActorNotFound)
	assert.Empty(t, chat.Messages(OfflineActorID("Alex")))
}
