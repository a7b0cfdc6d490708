package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vvka-141/croissant/internal/tui/components"
)

// ErrAborted is returned when the user quits while a spinner is shown.
var ErrAborted = errors.New("aborted by user")

// Work is a long-running operation. It reports stages through progress and
// returns the text shown when it succeeds.
type Work func(progress func(stage string)) (string, error)

// RunWithSpinner runs work behind a spinner on stderr. Outside an
// interactive terminal work runs directly with no output.
func RunWithSpinner(message string, work Work) error {
	if !IsInteractive() {
		_, err := work(func(string) {})
		return err
	}

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(os.Stderr))

	done := make(chan error, 1)
	go func() {
		result, err := work(func(stage string) {
			p.Send(components.SpinnerStageMsg{Stage: stage})
		})
		done <- err
		if err != nil {
			p.Send(components.SpinnerFailed(err))
		} else {
			p.Send(components.SpinnerDone(result))
		}
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("spinner failed: %w", err)
	}
	if m, ok := final.(spinnerModel); ok && m.aborted {
		return ErrAborted
	}
	return <-done
}

type spinnerModel struct {
	spinner components.Spinner
	keys    KeyMap
	aborted bool
}

func newSpinnerModel(message string) spinnerModel {
	return spinnerModel{
		spinner: components.NewSpinner(message, components.SpinnerStyles{
			Spinner: SpinnerStyle,
			Message: SpinnerMessageStyle,
			Success: SuccessStyle,
			Error:   ErrorStyle,
		}),
		keys: DefaultKeyMap(),
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Init()
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil
	case components.SpinnerDoneMsg:
		m.spinner, _ = m.spinner.Update(msg)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	return m.spinner.View() + "\n"
}
