package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quill/internal/types"
)

type editorState int

const (
	editorStateCreate editorState = iota
	editorStateEdit
)

const (
	editorFocusTitle = iota
	editorFocusContent
)

// EditorController is the single shared editor form. It is either creating a
// new note or editing exactly one existing note; starting an edit while
// another is in progress silently replaces the target.
type EditorController struct {
	state    editorState
	targetID string
	title    textinput.Model
	content  textarea.Model
	focus    int
}

func NewEditorController() *EditorController {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 0

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetHeight(6)

	return &EditorController{
		state:   editorStateCreate,
		title:   title,
		content: content,
	}
}

func (e *EditorController) StartCreate() tea.Cmd {
	e.state = editorStateCreate
	e.targetID = ""
	e.title.SetValue("")
	e.content.SetValue("")
	e.content.Blur()
	e.focus = editorFocusTitle
	return e.title.Focus()
}

// StartEdit populates the form from note and retargets the submit action at
// it. Any in-progress edit of another note is abandoned.
func (e *EditorController) StartEdit(note *types.Note) tea.Cmd {
	if note == nil {
		return nil
	}
	e.state = editorStateEdit
	e.targetID = note.ID
	e.title.SetValue(note.Title)
	e.content.SetValue(note.Content)
	e.title.Blur()
	e.focus = editorFocusContent
	return e.content.Focus()
}

// Reset returns the form to create mode with cleared, blurred inputs.
func (e *EditorController) Reset() {
	e.state = editorStateCreate
	e.targetID = ""
	e.title.SetValue("")
	e.content.SetValue("")
	e.title.Blur()
	e.content.Blur()
	e.focus = editorFocusTitle
}

func (e *EditorController) Editing() bool {
	return e.state == editorStateEdit
}

func (e *EditorController) TargetID() string {
	if e.state != editorStateEdit {
		return ""
	}
	return e.targetID
}

func (e *EditorController) Values() (title, content string) {
	return e.title.Value(), e.content.Value()
}

func (e *EditorController) CycleFocus() tea.Cmd {
	if e.focus == editorFocusTitle {
		e.focus = editorFocusContent
		e.title.Blur()
		return e.content.Focus()
	}
	e.focus = editorFocusTitle
	e.content.Blur()
	return e.title.Focus()
}

func (e *EditorController) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if e.focus == editorFocusTitle {
		e.title, cmd = e.title.Update(msg)
		return cmd
	}
	e.content, cmd = e.content.Update(msg)
	return cmd
}

func (e *EditorController) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	e.title.Width = width - 2
	e.content.SetWidth(width)
	if height >= 5 {
		e.content.SetHeight(height - 4)
	}
}

func (e *EditorController) View() string {
	label := "New note"
	if e.state == editorStateEdit {
		label = "Edit note"
	}
	hint := editorHintStyle.Render("tab switch field · ctrl+s save · esc cancel")
	return lipgloss.JoinVertical(lipgloss.Left,
		editorLabelStyle.Render(label),
		e.title.View(),
		e.content.View(),
		hint,
	)
}
