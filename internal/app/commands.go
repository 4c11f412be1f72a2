package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"quill/internal/notes"
	"quill/internal/types"
)

const (
	opLoad   = "load"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// notesLoadedMsg carries the outcome of an operation and the freshly
// reloaded collection. Responses may arrive out of order; the last one to
// land determines the rendered list.
type notesLoadedMsg struct {
	op    string
	notes []*types.Note
	err   error
}

func loadNotesCmd(store *notes.Store) tea.Cmd {
	return func() tea.Msg {
		loaded, err := store.LoadAll(context.Background())
		return notesLoadedMsg{op: opLoad, notes: loaded, err: err}
	}
}

func createNoteCmd(store *notes.Store, title, content string) tea.Cmd {
	return func() tea.Msg {
		loaded, err := store.Create(context.Background(), title, content)
		return notesLoadedMsg{op: opCreate, notes: loaded, err: err}
	}
}

func updateNoteCmd(store *notes.Store, id, title, content string) tea.Cmd {
	return func() tea.Msg {
		loaded, err := store.Update(context.Background(), id, title, content)
		return notesLoadedMsg{op: opUpdate, notes: loaded, err: err}
	}
}

func deleteNoteCmd(store *notes.Store, id string) tea.Cmd {
	return func() tea.Msg {
		loaded, err := store.Remove(context.Background(), id)
		return notesLoadedMsg{op: opDelete, notes: loaded, err: err}
	}
}
