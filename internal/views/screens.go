package views

import (
	"fmt"
	"strings"
)

// TodoRow is the data-only view of one todo. The id is what key handlers
// act on when the row is selected.
type TodoRow struct {
	ID            int64
	Title         string
	Description   string
	Completed     bool
	Important     bool
	PriorityLabel string
	Due           string
	Overdue       bool
	Selected      bool
}

type EventRow struct {
	ID          int64
	Title       string
	Description string
	When        string
	Location    string
	Selected    bool
}

type ListPanelData struct {
	Title     string
	EmptyText string
	Focused   bool
	// DeleteHint is shown next to the selected row.
	DeleteHint string
}

type StatsData struct {
	TotalLabel     string
	CompletedLabel string
	PendingLabel   string
	EventsLabel    string
	TotalTodos     int
	CompletedTodos int
	PendingTodos   int
	TotalEvents    int
}

type NotificationData struct {
	Level string
	Body  string
}

type FieldData struct {
	Label   string
	View    string
	Focused bool
}

type ModalData struct {
	Title  string
	Fields []FieldData
	Error  string
	Hint   string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderTodoList(panel ListPanelData, rows []TodoRow) string {
	var b strings.Builder
	b.WriteString(panelTitle(panel))
	if len(rows) == 0 {
		b.WriteString("\n" + mutedStyle.Render(panel.EmptyText))
		return b.String()
	}
	for _, row := range rows {
		b.WriteString("\n" + renderTodoRow(row, panel.DeleteHint))
	}
	return b.String()
}

func renderTodoRow(row TodoRow, deleteHint string) string {
	cursor := " "
	if row.Selected {
		cursor = ">"
	}
	check := "[ ]"
	title := row.Title
	if row.Completed {
		check = "[x]"
		title = completedStyle.Render(title)
	}
	line := fmt.Sprintf("%s %s %s", cursor, check, title)
	if row.Important {
		line += " " + starStyle.Render("★")
	}
	if row.Selected && deleteHint != "" {
		line += "  " + mutedStyle.Render(deleteHint)
	}
	meta := []string{"[" + row.PriorityLabel + "]"}
	if row.Due != "" {
		due := "due " + row.Due
		if row.Overdue && !row.Completed {
			due = overdueStyle.Render(due + " !")
		}
		meta = append(meta, due)
	}
	line += "\n      " + mutedStyle.Render(strings.Join(meta, " "))
	if desc := firstLine(row.Description); desc != "" {
		line += "\n      " + mutedStyle.Render(desc)
	}
	return line
}

func RenderEventList(panel ListPanelData, rows []EventRow) string {
	var b strings.Builder
	b.WriteString(panelTitle(panel))
	if len(rows) == 0 {
		b.WriteString("\n" + mutedStyle.Render(panel.EmptyText))
		return b.String()
	}
	for _, row := range rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("\n%s %s", cursor, row.Title))
		if row.Selected && panel.DeleteHint != "" {
			b.WriteString("  " + mutedStyle.Render(panel.DeleteHint))
		}
		meta := row.When
		if row.Location != "" {
			meta += " @ " + row.Location
		}
		b.WriteString("\n    " + mutedStyle.Render(meta))
		if desc := firstLine(row.Description); desc != "" {
			b.WriteString("\n    " + mutedStyle.Render(desc))
		}
	}
	return b.String()
}

func RenderStats(data StatsData) string {
	return fmt.Sprintf("%s: %d | %s: %d | %s: %d | %s: %d",
		data.TotalLabel, data.TotalTodos,
		data.CompletedLabel, data.CompletedTodos,
		data.PendingLabel, data.PendingTodos,
		data.EventsLabel, data.TotalEvents,
	)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	style := statusStyle
	switch level {
	case "danger":
		style = errorStyle
	case "warning":
		style = starStyle
	case "info":
		style = mutedStyle
	}
	return style.Render(fmt.Sprintf("[%s] %s", strings.ToUpper(level), body))
}

func RenderNotifications(items []NotificationData) string {
	lines := make([]string, 0, len(items))
	for _, n := range items {
		if line := RenderNotification(n.Level, n.Body); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func RenderModal(data ModalData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(data.Title))
	for _, f := range data.Fields {
		marker := " "
		if f.Focused {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("\n%s %-18s %s", marker, f.Label+":", f.View))
	}
	if data.Error != "" {
		b.WriteString("\n\n" + errorStyle.Render(data.Error))
	}
	if data.Hint != "" {
		b.WriteString("\n\n" + footerStyle.Render(data.Hint))
	}
	return b.String()
}

func RenderConfirm(prompt string) string {
	return fmt.Sprintf("%s\n\n%s", prompt, footerStyle.Render("[y] yes  [n/esc] no"))
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderDetail(title, markdown string) string {
	body := RenderMarkdown(markdown)
	if body == "" {
		return headerStyle.Render(title)
	}
	return headerStyle.Render(title) + "\n" + body
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}

func panelTitle(panel ListPanelData) string {
	if panel.Focused {
		return headerStyle.Render(panel.Title)
	}
	return panel.Title
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i]) + " …"
	}
	return s
}
