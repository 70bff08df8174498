package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tickerdeck/internal/controller"
)

// Model adapts a navigation controller to the bubbletea event loop. All
// state lives in the controller; the model only translates key messages
// and draws the latest snapshot.
type Model struct {
	ctrl *controller.Controller
}

// NewModel wraps ctrl for use with bubbletea.
func NewModel(ctrl *controller.Controller) Model {
	return Model{ctrl: ctrl}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, k := range keysFor(msg) {
			m.ctrl.Handle(context.Background(), k)
		}
		if m.ctrl.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	return render(m.ctrl.View())
}

// Run drives ctrl in the terminal until the user exits.
func Run(ctrl *controller.Controller) error {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
