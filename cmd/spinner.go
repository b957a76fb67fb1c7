package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Elapsed time is only worth showing once a request is noticeably slow.
const showElapsedAfter = 2 * time.Second

var errInterrupted = errors.New("interrupted")

type waitDoneMsg struct {
	err error
}

type waitSpinnerModel struct {
	spinner spinner.Model
	label   string
	work    tea.Cmd
	started time.Time
	now     func() time.Time
	err     error
	done    bool
}

func newWaitSpinnerModel(label string, work tea.Cmd, now func() time.Time) waitSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("178"))),
	)

	return waitSpinnerModel{
		spinner: s,
		label:   label,
		work:    work,
		started: now(),
		now:     now,
	}
}

func (m waitSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m waitSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case waitDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.done = true
			m.err = errInterrupted
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m waitSpinnerModel) View() string {
	if m.done {
		return ""
	}

	elapsed := m.now().Sub(m.started)
	if elapsed < showElapsedAfter {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}
	return fmt.Sprintf("%s %s %ds", m.spinner.View(), m.label, int(elapsed.Seconds()))
}

// runWithSpinner shows label on output while work runs against the backend.
// Ctrl-C cancels the work's context instead of leaving the request running.
func runWithSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	workCmd := func() tea.Msg {
		return waitDoneMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newWaitSpinnerModel(label, workCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %w", label, errInterrupted)
		}
		return err
	}

	result, ok := finalModel.(waitSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
