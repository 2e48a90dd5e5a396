package views

import (
	"strings"
	"testing"
)

func TestRenderTodoListEmptyShowsPlaceholder(t *testing.T) {
	out := RenderTodoList(ListPanelData{Title: "Todos", EmptyText: "No todos yet."}, nil)
	if !strings.Contains(out, "No todos yet.") {
		t.Fatalf("expected placeholder, got %q", out)
	}
}

func TestRenderTodoListRowDetails(t *testing.T) {
	rows := []TodoRow{
		{ID: 1, Title: "Pay rent", Important: true, PriorityLabel: "High", Due: "3/1/2026", Overdue: true, Selected: true},
		{ID: 2, Title: "Buy milk", Completed: true, PriorityLabel: "Low"},
	}
	out := RenderTodoList(ListPanelData{Title: "Todos", EmptyText: "none"}, rows)

	for _, want := range []string{"> [ ] Pay rent", "★", "[High]", "due 3/1/2026 !", "[x]", "Buy milk", "[Low]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "none") {
		t.Fatalf("placeholder rendered alongside rows: %q", out)
	}
}

func TestRenderTodoRowCompletedIsNotOverdue(t *testing.T) {
	out := renderTodoRow(TodoRow{Title: "done", Completed: true, PriorityLabel: "Low", Due: "1/1/2020", Overdue: true}, "")
	if strings.Contains(out, "!") {
		t.Fatalf("completed todo should not be marked overdue: %q", out)
	}
}

func TestDeleteHintOnSelectedRowOnly(t *testing.T) {
	panel := ListPanelData{Title: "Todos", DeleteHint: "[d] delete"}
	out := RenderTodoList(panel, []TodoRow{
		{ID: 1, Title: "first", PriorityLabel: "Low"},
		{ID: 2, Title: "second", PriorityLabel: "Low", Selected: true},
	})
	if strings.Count(out, "[d] delete") != 1 || !strings.Contains(out, "> [ ] second  [d] delete") {
		t.Fatalf("expected hint on the selected todo only: %q", out)
	}

	panel.Title = "Events"
	out = RenderEventList(panel, []EventRow{{ID: 7, Title: "Standup", Selected: true}, {ID: 8, Title: "Retro"}})
	if strings.Count(out, "[d] delete") != 1 || !strings.Contains(out, "> Standup  [d] delete") {
		t.Fatalf("expected hint on the selected event only: %q", out)
	}
}

func TestRenderEventList(t *testing.T) {
	rows := []EventRow{{ID: 7, Title: "Standup", When: "3/2/2026, 9:00:00 AM - 3/2/2026, 9:15:00 AM", Location: "Room 4", Description: "daily\nsync"}}
	out := RenderEventList(ListPanelData{Title: "Events", EmptyText: "No events."}, rows)
	for _, want := range []string{"Standup", "9:15:00 AM", "@ Room 4", "daily …"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}

	empty := RenderEventList(ListPanelData{Title: "Events", EmptyText: "No events."}, nil)
	if !strings.Contains(empty, "No events.") {
		t.Fatalf("expected placeholder, got %q", empty)
	}
}

func TestRenderStats(t *testing.T) {
	out := RenderStats(StatsData{
		TotalLabel: "Total", CompletedLabel: "Done", PendingLabel: "Pending", EventsLabel: "Events",
		TotalTodos: 3, CompletedTodos: 1, PendingTodos: 2, TotalEvents: 4,
	})
	if out != "Total: 3 | Done: 1 | Pending: 2 | Events: 4" {
		t.Fatalf("unexpected stats line: %q", out)
	}
}

func TestRenderNotifications(t *testing.T) {
	out := RenderNotifications([]NotificationData{
		{Level: "success", Body: "Todo added"},
		{Level: "danger", Body: ""},
		{Level: "danger", Body: "boom"},
	})
	if !strings.Contains(out, "[SUCCESS] Todo added") || !strings.Contains(out, "[DANGER] boom") {
		t.Fatalf("unexpected notifications: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("empty bodies should be skipped: %q", out)
	}
}

func TestRenderModal(t *testing.T) {
	out := RenderModal(ModalData{
		Title:  "Sign in",
		Fields: []FieldData{{Label: "Email", View: "ada@example.com", Focused: true}, {Label: "Password", View: "****"}},
		Error:  "Invalid credentials.",
		Hint:   "tab next, enter submit",
	})
	for _, want := range []string{"Sign in", "> Email:", "Password:", "Invalid credentials.", "tab next"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRenderAppOverlayReplacesPanes(t *testing.T) {
	out := RenderApp(AppData{Header: "todocal", LeftPane: "LEFT", RightPane: "RIGHT", Overlay: "Delete?"})
	if strings.Contains(out, "LEFT") || !strings.Contains(out, "Delete?") {
		t.Fatalf("overlay should replace panes: %q", out)
	}
	out = RenderApp(AppData{Header: "todocal", LeftPane: "LEFT", RightPane: "RIGHT", Footer: "q quit"})
	if !strings.Contains(out, "LEFT") || !strings.Contains(out, "RIGHT") || !strings.Contains(out, "q quit") {
		t.Fatalf("expected panes and footer: %q", out)
	}
}

func TestRenderAppHighlightsFocusedPane(t *testing.T) {
	out := RenderApp(AppData{LeftPane: "LEFT", RightPane: "RIGHT"})
	thick, round := strings.Index(out, "┏"), strings.Index(out, "╭")
	if thick < 0 || round < 0 || thick > round {
		t.Fatalf("expected left pane highlighted: %q", out)
	}
	out = RenderApp(AppData{LeftPane: "LEFT", RightPane: "RIGHT", FocusRight: true})
	thick, round = strings.Index(out, "┏"), strings.Index(out, "╭")
	if thick < 0 || round < 0 || round > thick {
		t.Fatalf("expected right pane highlighted: %q", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if RenderMarkdown("   ") != "" {
		t.Fatal("expected empty render for blank markdown")
	}
	if !strings.Contains(RenderDetail("Title", ""), "Title") {
		t.Fatal("expected title in detail")
	}
}
