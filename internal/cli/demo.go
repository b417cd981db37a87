package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// newDemoCmd creates the demo command, an interactive viewer that
// recomputes the descriptor against the live terminal size.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo <descriptor.toml>",
		Short: "View a layout descriptor interactively, recomputing on resize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := LoadDoc(args[0])
			if err != nil {
				return err
			}

			m := demoModel{doc: doc}
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running demo: %w", err)
			}
			return nil
		},
	}
}

var demoHelp = lipgloss.NewStyle().
	Foreground(lipgloss.Color("8")).
	Render("resize the terminal to relayout · q to quit")

// demoModel recomputes the descriptor tree every time the terminal
// reports a new size, overriding the descriptor's declared target.
type demoModel struct {
	doc    *Doc
	width  int
	height int
	view   string
	err    error
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
	}
	return m, nil
}

func (m *demoModel) relayout() {
	// Reserve the bottom line for help text.
	h := m.height - 1
	if m.width < 1 || h < 1 {
		m.view = ""
		return
	}

	target := *m.doc
	target.Target = TargetDoc{Width: float64(m.width), Height: float64(h)}

	layout, err := target.Build()
	if err != nil {
		m.err = err
		return
	}
	layout.Compute()
	m.err = nil
	m.view = RenderANSI(layout, m.doc.Labels())
}

func (m demoModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n%s", m.err, demoHelp)
	}
	if m.view == "" {
		return "waiting for terminal size...\n" + demoHelp
	}
	return m.view + "\n" + demoHelp
}
