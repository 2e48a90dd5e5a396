package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header        string
	LeftPane      string
	RightPane     string
	FocusRight    bool
	Stats         string
	StatusLine    string
	StatusIsError bool
	Notifications string
	Overlay       string
	Footer        string
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activePanel    = panelStyle.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("12"))
	overlayStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2).BorderForeground(lipgloss.Color("13"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	starStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const paneWidth = 58

// RenderApp lays out the dashboard. An overlay replaces the two panes while
// it is open.
func RenderApp(data AppData) string {
	lines := []string{headerStyle.Render(data.Header)}
	if data.Overlay != "" {
		lines = append(lines, overlayStyle.Render(data.Overlay))
	} else if data.LeftPane != "" || data.RightPane != "" {
		left, right := RenderPanes(data.LeftPane, data.RightPane, !data.FocusRight)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}
	if data.Stats != "" {
		lines = append(lines, data.Stats)
	}
	if data.StatusLine != "" {
		if data.StatusIsError {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Notifications != "" {
		lines = append(lines, data.Notifications)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderPanes renders the two list panes with the focused one highlighted.
func RenderPanes(left, right string, focusLeft bool) (string, string) {
	if focusLeft {
		return activePanel.Width(paneWidth).Render(left), panelStyle.Width(paneWidth).Render(right)
	}
	return panelStyle.Width(paneWidth).Render(left), activePanel.Width(paneWidth).Render(right)
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
