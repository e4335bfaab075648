package exec

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var waitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

// WaitWithSpinner animates a spinner labelled message on w until done is
// closed. It returns ctx.Err() if ctx ends first.
func WaitWithSpinner(ctx context.Context, w io.Writer, message string, done <-chan struct{}) error {
	m := newWaitModel(message)
	prog := tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil), tea.WithoutSignalHandler())

	go func() {
		var err error
		select {
		case <-done:
		case <-ctx.Done():
			err = ctx.Err()
		}
		prog.Send(finishedMsg{err: err})
	}()

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running spinner: %w", err)
	}
	return m.err
}

// finishedMsg stops the spinner.
type finishedMsg struct {
	err error
}

type waitModel struct {
	spin     spinner.Model
	message  string
	finished bool
	err      error
}

func newWaitModel(message string) *waitModel {
	return &waitModel{
		spin:    spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(waitStyle)),
		message: message,
	}
}

func (m *waitModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if fin, ok := msg.(finishedMsg); ok {
		m.finished = true
		m.err = fin.err
		return m, tea.Quit
	}
	if m.finished {
		return m, nil
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m *waitModel) View() string {
	switch {
	case !m.finished:
		return m.spin.View() + " " + m.message
	case m.err != nil:
		return "✗ " + m.message + "\n"
	default:
		return "✓ " + m.message + "\n"
	}
}
