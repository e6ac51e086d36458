package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/actionitems/internal/application"
	"github.com/bnema/actionitems/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// fastTickLimit bounds --fast runs to one simulated hour.
const fastTickLimit = domain.Ticks(60 * 60 * domain.TicksPerSecond)

type useOptions struct {
	player        string
	itemID        string
	mode          string
	times         int
	intervalTicks int64
	fast          bool
	asJSON        bool
}

type useReport struct {
	Attempt          int                      `json:"attempt"`
	Tick             domain.Ticks             `json:"tick"`
	Outcome          domain.ActivationOutcome `json:"outcome"`
	RemainingSeconds float64                  `json:"remaining_seconds,omitempty"`
	Consumed         bool                     `json:"consumed"`
	SessionID        domain.SessionID         `json:"session_id,omitempty"`
	Error            string                   `json:"error,omitempty"`
}

type useSummary struct {
	Player      string                     `json:"player"`
	Item        domain.ItemID              `json:"item"`
	Ticks       domain.Ticks               `json:"ticks"`
	Activations []useReport                `json:"activations"`
	Dispatched  []string                   `json:"dispatched"`
	Messages    []string                   `json:"messages"`
	EffectOn    bool                       `json:"effect_enabled"`
	Sessions    []domain.EffectSession     `json:"open_sessions,omitempty"`
	Overlap     domain.EffectOverlapPolicy `json:"overlap"`
}

func newUseCmd(app *app) *cobra.Command {
	opts := useOptions{}

	cmd := &cobra.Command{
		Use:   "use",
		Short: "Simulate a player using an item",
		Long: "Simulate a player using an item in a local sandbox. The item is granted, used --times times " +
			"--interval-ticks apart, and the scheduler runs until every delayed command and timed effect has finished.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUse(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.player, "player", "", "Player name")
	cmd.Flags().StringVar(&opts.itemID, "item", "", "Item ID")
	cmd.Flags().StringVar(&opts.mode, "mode", string(domain.GameModeSurvival), "Player game mode")
	cmd.Flags().IntVar(&opts.times, "times", 1, "Number of uses")
	cmd.Flags().Int64Var(&opts.intervalTicks, "interval-ticks", int64(domain.TicksPerSecond), "Ticks between uses")
	cmd.Flags().BoolVar(&opts.fast, "fast", false, "Advance ticks without waiting")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func runUse(cmd *cobra.Command, app *app, opts useOptions) error {
	if opts.times < 1 {
		return fmt.Errorf("--times must be at least 1")
	}
	if opts.intervalTicks < 0 {
		return fmt.Errorf("--interval-ticks must not be negative")
	}
	mode, err := parseGameMode(opts.mode)
	if err != nil {
		return err
	}

	journal, err := app.openJournal()
	if err != nil {
		return err
	}
	defer journal.Close()

	out := cmd.OutOrStdout()
	if opts.asJSON {
		out = io.Discard
	}

	box := app.newSandbox(out, journal)
	defer box.activation.Ledger().Reset()
	actor := box.world.Join(opts.player, mode)

	var tag string
	for i := 0; i < opts.times; i++ {
		stack, _, err := box.items.Give(cmd.Context(), actor.Name, opts.itemID)
		if err != nil {
			return err
		}
		tag = string(stack.Tag)
	}

	var (
		mu      sync.Mutex
		reports = make([]useReport, 0, opts.times)
	)
	for i := 0; i < opts.times; i++ {
		attempt := i + 1
		box.scheduler.After(domain.Ticks(int64(i)*opts.intervalTicks), func(ctx context.Context) {
			result, err := box.activation.Activate(ctx, application.ActivateCommand{ActorID: actor.ID, ItemTag: tag})
			report := newUseReport(attempt, box.scheduler.Now(), result, err)

			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
		})
	}

	if err := driveScheduler(cmd, box, opts); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	summary := useSummary{
		Player:      actor.Name,
		Item:        domain.NormalizeItemID(opts.itemID),
		Ticks:       box.scheduler.Now(),
		Activations: reports,
		Dispatched:  box.console.Dispatched(),
		Messages:    box.chat.Messages(actor.ID),
		EffectOn:    box.world.EffectEnabled(actor.ID),
		Sessions:    box.effects.ActiveSessions(actor.ID),
		Overlap:     app.cfg.Effects.Overlap,
	}

	if opts.asJSON {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	return writeUseSummary(cmd.OutOrStdout(), summary)
}

func driveScheduler(cmd *cobra.Command, box *sandbox, opts useOptions) error {
	if opts.fast || opts.asJSON {
		box.scheduler.AdvanceUntilIdle(cmd.Context(), fastTickLimit)
		return cmd.Context().Err()
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		return box.scheduler.RunUntilIdle(ctx)
	})
	g.Go(func() error {
		poll := func() schedulerProgress {
			return schedulerProgress{Tick: box.scheduler.Now(), Pending: box.scheduler.Pending()}
		}
		return runSchedulerProgress(ctx, cmd.ErrOrStderr(), "Running scheduled actions...", poll, func(ctx context.Context) error {
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})

	return g.Wait()
}

func newUseReport(attempt int, now domain.Ticks, result application.ActivationResult, err error) useReport {
	report := useReport{
		Attempt:  attempt,
		Tick:     now,
		Outcome:  result.Outcome,
		Consumed: result.Consumed,
	}
	if result.Outcome == domain.OutcomeOnCooldown {
		report.RemainingSeconds = result.Cooldown.RemainingSeconds()
	}
	if result.Session != nil {
		report.SessionID = result.Session.ID
	}
	if err != nil {
		report.Error = err.Error()
	}
	return report
}

func writeUseSummary(out io.Writer, summary useSummary) error {
	for _, report := range summary.Activations {
		line := fmt.Sprintf("use #%d at tick %d: %s", report.Attempt, report.Tick, report.Outcome)
		if report.Outcome == domain.OutcomeOnCooldown {
			line += fmt.Sprintf(" (%.1fs left)", report.RemainingSeconds)
		}
		if report.Consumed {
			line += ", item consumed"
		}
		if report.Error != "" {
			line += ", error: " + report.Error
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "done after %d ticks (%s), effect enabled: %t\n",
		summary.Ticks, summary.Ticks.Duration(), summary.EffectOn)
	return err
}
