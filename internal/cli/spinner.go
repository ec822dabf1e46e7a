package cli

import (
	"context"
	"io"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// workDoneMsg reports that the background work behind the spinner finished.
type workDoneMsg struct{ err error }

// spinnerModel shows a spinner until workDoneMsg arrives. Ctrl+C cancels
// the work and quits.
type spinnerModel struct {
	spinner   spinner.Model
	label     string
	cancel    context.CancelFunc
	done      bool
	cancelled bool
}

func newSpinnerModel(label string, cancel context.CancelFunc) spinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)
	return spinnerModel{spinner: s, label: label, cancel: cancel}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return "  " + m.spinner.View() + " " + formatter.Dim(m.label) + "\n"
}

// runWithSpinner runs work while a spinner program reads keys from in and
// draws on out. The work's error is returned once it finishes, including
// after a Ctrl+C cancel.
func runWithSpinner(ctx context.Context, in io.Reader, out io.Writer, label string, work func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSpinnerModel(label, cancel), tea.WithInput(in), tea.WithOutput(out))
	errCh := make(chan error, 1)
	go func() {
		err := work(ctx)
		errCh <- err
		p.Send(workDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-errCh
		return err
	}
	return <-errCh
}
