package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todocal/internal/views"
)

// notify queues a notification and returns the tick that dismisses it.
func (m *Model) notify(level Level, body string) tea.Cmd {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	m.nextNoteID++
	n := Notification{ID: m.nextNoteID, Level: level, Body: body, At: m.now()}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
	m.Status = StatusBar{Text: body, IsError: level == LevelDanger}
	id := n.ID
	return m.tick(m.notifyDelay, func(time.Time) tea.Msg { return dismissNotificationMsg{ID: id} })
}

func (m *Model) dismiss(id int) {
	out := m.Notifications[:0:0]
	for _, n := range m.Notifications {
		if n.ID != id {
			out = append(out, n)
		}
	}
	m.Notifications = out
}

func (m Model) renderNotificationsView() string {
	items := make([]views.NotificationData, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		items = append(items, views.NotificationData{Level: string(n.Level), Body: n.Body})
	}
	return views.RenderNotifications(items)
}
