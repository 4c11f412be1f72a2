package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	minListWidth = 24
	maxListWidth = 44
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading..."
	}

	header := m.headerLine()
	search := m.searchLine()
	body := m.bodyView(m.bodyHeight())
	if m.confirm.IsOpen() {
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			m.confirm.View(m.width))
	}
	status := m.statusLine()

	return strings.Join([]string{header, search, body, status}, "\n")
}

func (m *Model) bodyHeight() int {
	// Header, search, and status each take one line.
	return max(1, m.height-3)
}

func (m *Model) listPaneWidth() int {
	width := m.width / 3
	if width < minListWidth {
		width = minListWidth
	}
	if width > maxListWidth {
		width = maxListWidth
	}
	if width > m.width-2 {
		width = max(1, m.width-2)
	}
	return width
}

func (m *Model) headerLine() string {
	title := headerStyle.Render(" quill " + m.version)
	count := fmt.Sprintf("%d notes", len(m.store.Notes()))
	if m.loading {
		count = "working..."
	}
	countText := headerCountStyle.Render(count + " ")
	gap := m.width - displayWidth(" quill "+m.version) - displayWidth(count+" ")
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + countText
}

func (m *Model) searchLine() string {
	if m.mode == uiModeSearch || m.search.Value() != "" {
		return truncateToWidth(m.search.View(), m.width)
	}
	return statusStyle.Render(" / to search")
}

func (m *Model) statusLine() string {
	if toast := m.toastLine(m.width); toast != "" {
		return toast
	}
	hints := "n new · enter edit · d delete · y copy · r refresh · q quit"
	line := m.status
	if line == "" {
		line = hints
	} else {
		line = line + "  ·  " + hints
	}
	return statusStyle.Render(truncateToWidth(" "+line, m.width))
}

func (m *Model) bodyView(height int) string {
	listWidth := m.listPaneWidth()
	rightWidth := m.width - listWidth - 1
	left := m.listView(listWidth, height)
	var right string
	if m.mode == uiModeEdit {
		right = m.editorPane(rightWidth, height)
	} else {
		right = m.previewPane(rightWidth, height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m *Model) scrollSelectionIntoView() {
	height := m.bodyHeight()
	if height <= 0 {
		return
	}
	if m.selected < m.scroll {
		m.scroll = m.selected
	}
	if m.selected >= m.scroll+height {
		m.scroll = m.selected - height + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) listView(width, height int) string {
	if len(m.visible) == 0 {
		var placeholder string
		if term := strings.TrimSpace(m.search.Value()); term != "" {
			placeholder = fmt.Sprintf("No notes match %q", term)
		} else {
			placeholder = "No notes yet — press n to create one"
		}
		lines := make([]string, 0, height)
		lines = append(lines, placeholderStyle.Render(truncateToWidth(placeholder, width)))
		for len(lines) < height {
			lines = append(lines, strings.Repeat(" ", width))
		}
		return strings.Join(lines, "\n")
	}

	now := time.Now()
	lines := make([]string, 0, height)
	for i := m.scroll; i < len(m.visible) && len(lines) < height; i++ {
		note := m.visible[i]
		timeText := relativeTime(note.UpdatedAt, now)
		titleWidth := width - displayWidth(timeText) - 4
		if titleWidth < 4 {
			titleWidth = 4
			timeText = ""
		}
		title := truncateToWidth(note.Title, titleWidth)
		row := " " + padToWidth(title, titleWidth) + "  " + rowTimeStyle.Render(timeText)
		if i == m.selected {
			row = selectedRowStyle.Render(padToWidth(" "+title, titleWidth+1)) + "  " + rowTimeStyle.Render(timeText)
		}
		lines = append(lines, padToWidth(row, width))
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) previewPane(width, height int) string {
	contentWidth := max(1, width-4)
	contentHeight := max(1, height-2)

	note := m.selectedNote()
	if note == nil {
		empty := placeholderStyle.Render("Nothing selected")
		return paneBorderStyle.Width(contentWidth + 2).Height(contentHeight).Render(empty)
	}

	meta := previewMetaStyle.Render("updated " + relativeTime(note.UpdatedAt, time.Now()))
	body := renderMarkdown(note.Content, contentWidth)
	if strings.TrimSpace(note.Content) == "" {
		body = placeholderStyle.Render("(empty note)")
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		previewTitleStyle.Render(truncateToWidth(note.Title, contentWidth)),
		meta,
		"",
		body,
	)
	content = clipToHeight(content, contentHeight)
	return paneBorderStyle.Width(contentWidth + 2).Height(contentHeight).Render(content)
}

func (m *Model) editorPane(width, height int) string {
	contentWidth := max(1, width-4)
	contentHeight := max(1, height-2)
	content := clipToHeight(m.editor.View(), contentHeight)
	return paneBorderStyle.Width(contentWidth + 2).Height(contentHeight).Render(content)
}

func clipToHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}
