package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// schedulerProgress is a snapshot of a running tick scheduler.
type schedulerProgress struct {
	Tick    domain.Ticks
	Pending int
}

type drainedMsg struct {
	err error
}

type runProgressModel struct {
	spinner  spinner.Model
	label    string
	poll     func() schedulerProgress
	drained  tea.Cmd
	progress schedulerProgress
	err      error
	done     bool
}

func newRunProgressModel(label string, poll func() schedulerProgress, drained tea.Cmd) runProgressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return runProgressModel{
		spinner:  s,
		label:    label,
		poll:     poll,
		drained:  drained,
		progress: poll(),
	}
}

func (m runProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.drained)
}

func (m runProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.progress = m.poll()
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case drainedMsg:
		m.done = true
		m.err = msg.err
		m.progress = m.poll()
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m runProgressModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s tick %d (%s), %d pending",
		m.spinner.View(),
		m.label,
		m.progress.Tick,
		m.progress.Tick.Duration(),
		m.progress.Pending,
	)
}

// runSchedulerProgress shows a spinner with the scheduler's tick and pending
// task count on output until drained returns.
func runSchedulerProgress(
	ctx context.Context,
	output io.Writer,
	label string,
	poll func() schedulerProgress,
	drained func(context.Context) error,
) error {
	drainedCmd := func() tea.Msg {
		return drainedMsg{err: drained(ctx)}
	}

	p := tea.NewProgram(
		newRunProgressModel(label, poll, drainedCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(runProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
