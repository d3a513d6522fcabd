package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devflow.ai/cli/internal/core/response"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	listStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
)

// RenderResponse formats a Response for the terminal.
func RenderResponse(resp *response.Response) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(resp.Message))
	b.WriteString("  ")
	b.WriteString(typeStyle.Render("[" + resp.Type.String() + "]"))
	b.WriteString("\n")

	if resp.Code != "" {
		b.WriteString("\n")
		b.WriteString(codeStyle.Render(resp.Code))
		b.WriteString("\n")
		if resp.Clipboard {
			b.WriteString(typeStyle.Render("(copy-ready)"))
			b.WriteString("\n")
		}
	}

	if resp.Data != nil {
		if rendered := renderData(resp.Data); rendered != "" {
			b.WriteString("\n")
			b.WriteString(rendered)
		}
	}

	if len(resp.Workflow) > 0 {
		b.WriteString("\n")
		b.WriteString(typeStyle.Render("Workflow:"))
		b.WriteString("\n")
		for i, step := range resp.Workflow {
			b.WriteString(listStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)))
			b.WriteString("\n")
		}
	}

	if len(resp.Agents) > 0 {
		b.WriteString(typeStyle.Render("Agents: " + strings.Join(resp.Agents, ", ")))
		b.WriteString("\n")
	}

	if len(resp.Related) > 0 {
		b.WriteString(typeStyle.Render("Related: " + strings.Join(resp.Related, " | ")))
		b.WriteString("\n")
	}

	if resp.DashboardURL != "" {
		b.WriteString(urlStyle.Render(resp.DashboardURL))
		b.WriteString("\n")
	}

	return b.String()
}

// renderData pretty-prints the opaque data payload. Structured payloads
// come out as indented JSON; plain strings pass through.
func renderData(data interface{}) string {
	switch v := data.(type) {
	case string:
		return listStyle.Render("  "+v) + "\n"
	case []string:
		var b strings.Builder
		for _, item := range v {
			b.WriteString(listStyle.Render("  - " + item))
			b.WriteString("\n")
		}
		return b.String()
	default:
		encoded, err := json.MarshalIndent(v, "  ", "  ")
		if err != nil {
			return ""
		}
		return listStyle.Render("  "+string(encoded)) + "\n"
	}
}
