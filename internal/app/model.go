package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quill/internal/client"
	"quill/internal/notes"
	"quill/internal/types"
)

type uiMode int

const (
	uiModeList uiMode = iota
	uiModeSearch
	uiModeEdit
)

type Model struct {
	store   *notes.Store
	version string

	width  int
	height int
	mode   uiMode

	visible  []*types.Note
	selected int
	scroll   int

	search  textinput.Model
	editor  *EditorController
	confirm *ConfirmController

	pendingDeleteID string

	status  string
	loading bool

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time
}

func NewModel(store *notes.Store, version string) *Model {
	search := textinput.New()
	search.Placeholder = "search notes"
	search.Prompt = "/ "
	search.PromptStyle = searchPromptStyle
	search.CharLimit = 0

	return &Model{
		store:   store,
		version: version,
		search:  search,
		editor:  NewEditorController(),
		confirm: NewConfirmController(),
		status:  "loading notes...",
		loading: true,
	}
}

// Run starts the TUI against the given store.
func Run(store *notes.Store, version string) error {
	program := tea.NewProgram(NewModel(store, version), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(loadNotesCmd(m.store), textinput.Blink)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case toastTickMsg:
		if m.toastActive(time.Time(msg)) {
			return m, toastTickCmd()
		}
		m.clearToast()
		return m, nil
	case notesLoadedMsg:
		return m.handleNotesLoaded(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.forwardToInputs(msg)
}

func (m *Model) handleNotesLoaded(msg notesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		// The previous render stays; stale data beats no data.
		m.status = "last operation failed"
		return m, m.showErrorToast(errorMessage(msg.err))
	}

	m.refreshVisible()
	switch msg.op {
	case opCreate:
		m.editor.Reset()
		m.mode = uiModeList
		m.status = fmt.Sprintf("%d notes", len(msg.notes))
		return m, m.showInfoToast("note created")
	case opUpdate:
		m.editor.Reset()
		m.mode = uiModeList
		m.status = fmt.Sprintf("%d notes", len(msg.notes))
		return m, m.showInfoToast("note updated")
	case opDelete:
		m.status = fmt.Sprintf("%d notes", len(msg.notes))
		return m, m.showInfoToast("note deleted")
	default:
		m.status = fmt.Sprintf("%d notes", len(msg.notes))
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm.IsOpen() {
		_, choice := m.confirm.HandleKey(msg)
		switch choice {
		case confirmChoiceConfirm:
			id := m.pendingDeleteID
			m.pendingDeleteID = ""
			m.confirm.Close()
			m.loading = true
			m.status = "deleting..."
			return m, deleteNoteCmd(m.store, id)
		case confirmChoiceCancel:
			m.pendingDeleteID = ""
			m.confirm.Close()
		}
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case uiModeSearch:
		return m.handleSearchKey(msg)
	case uiModeEdit:
		return m.handleEditKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "g", "home":
		m.selected = 0
		m.clampSelection()
	case "G", "end":
		m.selected = len(m.visible) - 1
		m.clampSelection()
	case "enter":
		if note := m.selectedNote(); note != nil {
			m.mode = uiModeEdit
			return m, m.editor.StartEdit(note)
		}
	case "n":
		m.mode = uiModeEdit
		return m, m.editor.StartCreate()
	case "d":
		if note := m.selectedNote(); note != nil {
			m.pendingDeleteID = note.ID
			m.confirm.Open(
				"Delete note",
				fmt.Sprintf("Delete %q? This cannot be undone.", note.Title),
				"Delete", "Keep",
			)
		}
	case "/":
		m.mode = uiModeSearch
		return m, m.search.Focus()
	case "y":
		if note := m.selectedNote(); note != nil {
			if err := copyTextToClipboard(note.Content); err != nil {
				return m, m.showErrorToast("copy failed: " + err.Error())
			}
			return m, m.showInfoToast("note content copied")
		}
	case "r":
		m.loading = true
		m.status = "refreshing..."
		return m, loadNotesCmd(m.store)
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refreshVisible()
		}
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.mode = uiModeList
		m.refreshVisible()
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = uiModeList
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshVisible()
	return m, cmd
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Reset()
		m.mode = uiModeList
		m.status = "edit canceled"
		return m, nil
	case "tab":
		return m, m.editor.CycleFocus()
	case "ctrl+s":
		return m.submitEditor()
	case "ctrl+n":
		// Retarget the shared editor at the next note; the in-progress edit
		// is abandoned without confirmation.
		m.moveSelection(1)
		if note := m.selectedNote(); note != nil {
			return m, m.editor.StartEdit(note)
		}
		return m, nil
	case "ctrl+p":
		m.moveSelection(-1)
		if note := m.selectedNote(); note != nil {
			return m, m.editor.StartEdit(note)
		}
		return m, nil
	}
	return m, m.editor.Update(msg)
}

func (m *Model) submitEditor() (tea.Model, tea.Cmd) {
	title, content := m.editor.Values()
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return m, m.showWarningToast("note title or content is required")
	}
	m.loading = true
	m.status = "saving..."
	if id := m.editor.TargetID(); id != "" {
		return m, updateNoteCmd(m.store, id, title, content)
	}
	return m, createNoteCmd(m.store, title, content)
}

func (m *Model) forwardToInputs(msg tea.Msg) tea.Cmd {
	switch m.mode {
	case uiModeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	case uiModeEdit:
		return m.editor.Update(msg)
	}
	return nil
}

// refreshVisible re-renders the list from the cache through the current
// filter, keeping the selection on the same note when it survives.
func (m *Model) refreshVisible() {
	var keepID string
	if note := m.selectedNote(); note != nil {
		keepID = note.ID
	}
	m.visible = m.store.Filter(m.search.Value())
	if keepID != "" {
		for i, note := range m.visible {
			if note.ID == keepID {
				m.selected = i
				m.clampSelection()
				return
			}
		}
	}
	m.clampSelection()
}

func (m *Model) selectedNote() *types.Note {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	return m.visible[m.selected]
}

func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.scrollSelectionIntoView()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(10, width-4)
	rightWidth := width - m.listPaneWidth() - 1
	m.editor.SetSize(max(20, rightWidth-4), max(5, m.bodyHeight()))
	m.scrollSelectionIntoView()
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr := client.AsAPIError(err); apiErr != nil {
		return apiErr.Message
	}
	return err.Error()
}
