package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	selectedRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	rowTimeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)

	searchPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	previewMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	paneBorderStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))

	editorLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	editorHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	dialogBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(0, 1)
	dialogTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	buttonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	buttonActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)

	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	toastInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	toastWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	toastErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, "…")
}

func padToWidth(s string, width int) string {
	gap := width - xansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// relativeTime renders an updated-at timestamp the way the list shows it.
func relativeTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
