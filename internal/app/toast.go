package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelWarning
	toastLevelError
)

const toastDuration = 4 * time.Second

type toastTickMsg time.Time

func toastTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func (m *Model) showInfoToast(message string) tea.Cmd {
	return m.showToast(toastLevelInfo, message)
}

func (m *Model) showWarningToast(message string) tea.Cmd {
	return m.showToast(toastLevelWarning, message)
}

func (m *Model) showErrorToast(message string) tea.Cmd {
	return m.showToast(toastLevelError, message)
}

func (m *Model) showToast(level toastLevel, message string) tea.Cmd {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	m.toastText = message
	m.toastLevel = level
	m.toastUntil = time.Now().Add(toastDuration)
	return toastTickCmd()
}

func (m *Model) clearToast() {
	m.toastText = ""
	m.toastLevel = toastLevelInfo
	m.toastUntil = time.Time{}
}

func (m *Model) toastActive(at time.Time) bool {
	if strings.TrimSpace(m.toastText) == "" {
		return false
	}
	if at.IsZero() {
		at = time.Now()
	}
	return at.Before(m.toastUntil)
}

func (m *Model) toastLine(width int) string {
	if !m.toastActive(time.Now()) || width <= 0 {
		return ""
	}
	text := truncateToWidth(m.toastText, max(1, width-2))
	switch m.toastLevel {
	case toastLevelError:
		return toastErrorStyle.Render(text)
	case toastLevelWarning:
		return toastWarnStyle.Render(text)
	default:
		return toastInfoStyle.Render(text)
	}
}
