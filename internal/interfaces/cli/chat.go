package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// NewChatCommand creates the chat command: an interactive routing session.
func NewChatCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive session with the intent router",
		Long: `Start an interactive session. Each line you type is routed like a
single "devflow ask" invocation; responses accumulate in a scrollback.

Controls: Enter to send, Esc or Ctrl+C to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newChatModel(container)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("chat session failed: %w", err)
			}
			return nil
		},
	}
}

// chatExchange is one routed query and its rendered response.
type chatExchange struct {
	query    string
	rendered string
	took     time.Duration
}

// chatModel holds the state for the Bubble Tea chat session.
type chatModel struct {
	container *CLIContainer
	input     string
	history   []chatExchange
	waiting   bool
	width     int
	height    int
}

// responseMsg delivers a routed response back into the update loop.
type responseMsg struct {
	exchange chatExchange
}

func newChatModel(container *CLIContainer) chatModel {
	return chatModel{container: container}
}

// Init implements the Bubble Tea init method.
func (m chatModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method.
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case responseMsg:
		m.history = append(m.history, msg.exchange)
		m.waiting = false
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(m.input)
			if query == "" || m.waiting {
				return m, nil
			}
			m.input = ""
			m.waiting = true
			return m, m.routeCmd(query)
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		case tea.KeySpace:
			m.input += " "
			return m, nil
		case tea.KeyRunes:
			m.input += string(msg.Runes)
			return m, nil
		}
	}

	return m, nil
}

// routeCmd routes a query off the update loop so the UI stays responsive
// while a plugin (e.g. the memory adapter) waits on the network.
func (m chatModel) routeCmd(query string) tea.Cmd {
	router := m.container.Router
	return func() tea.Msg {
		start := time.Now()
		resp := router.Route(context.Background(), query, nil)
		return responseMsg{exchange: chatExchange{
			query:    query,
			rendered: RenderResponse(resp),
			took:     time.Since(start),
		}}
	}
}

// View implements the Bubble Tea view method.
func (m chatModel) View() string {
	header := titleStyle.Render("DevFlow Chat") + "  " +
		typeStyle.Render(fmt.Sprintf("%d plugins enabled | Esc to quit", m.container.Registry.EnabledCount()))

	var body strings.Builder
	for _, ex := range m.history {
		body.WriteString(promptStyle.Render("> " + ex.query))
		body.WriteString(typeStyle.Render(fmt.Sprintf("  (%s)", ex.took.Round(time.Millisecond))))
		body.WriteString("\n")
		body.WriteString(ex.rendered)
		body.WriteString("\n")
	}
	if m.waiting {
		body.WriteString(typeStyle.Render("thinking..."))
		body.WriteString("\n")
	}

	input := promptStyle.Render("> ") + m.input + cursorStyle.Render("▌")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body.String(), input)
}

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var _ tea.Model = chatModel{}
