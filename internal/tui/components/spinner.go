package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is a loading indicator whose message follows the current stage
// of a long-running operation.
type Spinner struct {
	spinner spinner.Model
	message string
	done    bool
	success bool
	result  string
	err     error
	styles  SpinnerStyles
}

// SpinnerStyles controls how the spinner renders.
type SpinnerStyles struct {
	Spinner lipgloss.Style
	Message lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// DefaultSpinnerStyles returns the default palette.
func DefaultSpinnerStyles() SpinnerStyles {
	return SpinnerStyles{
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(message string, styles SpinnerStyles) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return Spinner{
		spinner: s,
		message: message,
		styles:  styles,
	}
}

// Init implements tea.Model.
func (s Spinner) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update implements tea.Model.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	switch msg := msg.(type) {
	case SpinnerStageMsg:
		s.message = msg.Stage
		return s, nil
	case SpinnerDoneMsg:
		s.done = true
		s.success = msg.Success
		s.result = msg.Result
		s.err = msg.Err
		return s, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// View implements tea.Model.
func (s Spinner) View() string {
	if s.done {
		if s.success {
			return s.styles.Success.Render("✓ " + s.result)
		}
		msg := "failed"
		if s.err != nil {
			msg = s.err.Error()
		}
		return s.styles.Error.Render("✗ " + msg)
	}
	return s.spinner.View() + " " + s.styles.Message.Render(s.message)
}

// SpinnerStageMsg replaces the spinner message.
type SpinnerStageMsg struct {
	Stage string
}

// SpinnerDoneMsg signals that the spinner operation is complete.
type SpinnerDoneMsg struct {
	Success bool
	Result  string
	Err     error
}

// SpinnerDone creates a success message.
func SpinnerDone(result string) SpinnerDoneMsg {
	return SpinnerDoneMsg{Success: true, Result: result}
}

// SpinnerFailed creates a failure message.
func SpinnerFailed(err error) SpinnerDoneMsg {
	return SpinnerDoneMsg{Success: false, Err: err}
}

// Message returns the current message.
func (s Spinner) Message() string {
	return s.message
}

// IsDone returns true if the spinner is done.
func (s Spinner) IsDone() bool {
	return s.done
}

// IsSuccess returns true if the spinner completed successfully.
func (s Spinner) IsSuccess() bool {
	return s.success
}

// Error returns the error if the spinner failed.
func (s Spinner) Error() error {
	return s.err
}
