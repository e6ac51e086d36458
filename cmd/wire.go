package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	memoryhost "github.com/bnema/actionitems/internal/adapters/host/memory"
	sqlitejournal "github.com/bnema/actionitems/internal/adapters/journal/sqlite"
	itemsrender "github.com/bnema/actionitems/internal/adapters/render/items"
	tomlrepo "github.com/bnema/actionitems/internal/adapters/repo/toml"
	"github.com/bnema/actionitems/internal/adapters/scheduler/tick"
	"github.com/bnema/actionitems/internal/application"
	"github.com/bnema/actionitems/internal/config"
	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg             config.Config
	items           *tomlrepo.Repository
	logger          *slog.Logger
	catalogRenderer func([]domain.ItemDefinition) (string, error)
	now             func() time.Time
}

// sandbox is a throwaway host: an in-memory world with a console and chat
// that print to the command output, driven by a tick scheduler.
type sandbox struct {
	world      *memoryhost.World
	console    *memoryhost.Console
	chat       *memoryhost.Chat
	scheduler  *tick.Scheduler
	items      *application.ItemService
	effects    *application.TimedEffectMachine
	activation *application.ActivationService
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire item repository: %w", err)
	}

	return &app{
		cfg:             cfg,
		items:           repo,
		logger:          slog.Default(),
		catalogRenderer: itemsrender.Render,
		now:             time.Now,
	}, nil
}

func (a *app) itemService() *application.ItemService {
	return application.NewItemService(a.items, nil, nil)
}

func (a *app) openJournal() (*sqlitejournal.Journal, error) {
	journal, err := sqlitejournal.Open(a.cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("wire activation journal: %w", err)
	}
	return journal, nil
}

func (a *app) newSandbox(out io.Writer, journal ports.ActivationJournal) *sandbox {
	world := memoryhost.NewWorld()
	console := memoryhost.NewConsole(out)
	chat := memoryhost.NewChat(out, world)
	scheduler := tick.New(a.logger)
	clock := tick.NewClock(scheduler, a.now())

	effects := application.NewTimedEffectMachine(world, chat, world, scheduler, clock, a.cfg.Effects.Overlap, a.logger)
	activation := application.NewActivationService(application.ActivationDeps{
		Definitions: a.items,
		Actors:      world,
		Inventory:   world,
		Notifier:    chat,
		Journal:     journal,
		Actions:     application.NewActionScheduler(console, scheduler, a.logger),
		Effects:     effects,
		Clock:       clock,
		Logger:      a.logger,
	})

	if seconds := a.cfg.Cooldown.SweepIntervalSeconds; seconds > 0 {
		scheduler.Background(activation.ScheduleCooldownSweep(scheduler, domain.SecondsToTicks(seconds)))
	}

	return &sandbox{
		world:      world,
		console:    console,
		chat:       chat,
		scheduler:  scheduler,
		items:      application.NewItemService(a.items, world, world),
		effects:    effects,
		activation: activation,
	}
}
