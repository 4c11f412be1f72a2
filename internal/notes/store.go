// Package notes holds the client-side note cache. The cache is the only
// state the UI renders from; it is replaced wholesale by a full reload after
// every successful mutation so server-assigned fields stay authoritative.
package notes

import (
	"context"
	"errors"
	"strings"
	"sync"

	"quill/internal/types"
)

// ErrEmptyNote rejects a create or update whose title and content are both
// empty, before any network call is made.
var ErrEmptyNote = errors.New("note title or content is required")

// API is the slice of the daemon client the store needs.
type API interface {
	ListNotes(ctx context.Context) ([]*types.Note, error)
	CreateNote(ctx context.Context, title, content string) (*types.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type Store struct {
	api API

	mu    sync.Mutex
	notes []*types.Note
}

func NewStore(api API) *Store {
	return &Store{api: api}
}

// LoadAll fetches the full collection and replaces the cache. On failure the
// previous cache is left untouched.
func (s *Store) LoadAll(ctx context.Context) ([]*types.Note, error) {
	fetched, err := s.api.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.notes = fetched
	s.mu.Unlock()
	return s.Notes(), nil
}

// Create validates, creates the note, then resynchronizes with a full reload.
// The created note returned by the daemon is never merged locally.
func (s *Store) Create(ctx context.Context, title, content string) ([]*types.Note, error) {
	title, content, err := validate(title, content)
	if err != nil {
		return nil, err
	}
	if _, err := s.api.CreateNote(ctx, title, content); err != nil {
		return nil, err
	}
	return s.LoadAll(ctx)
}

// Update follows the same validation and resync contract as Create, scoped to
// an existing id.
func (s *Store) Update(ctx context.Context, id, title, content string) ([]*types.Note, error) {
	title, content, err := validate(title, content)
	if err != nil {
		return nil, err
	}
	if _, err := s.api.UpdateNote(ctx, id, title, content); err != nil {
		return nil, err
	}
	return s.LoadAll(ctx)
}

// Remove deletes the note and resynchronizes with a full reload.
func (s *Store) Remove(ctx context.Context, id string) ([]*types.Note, error) {
	if err := s.api.DeleteNote(ctx, id); err != nil {
		return nil, err
	}
	return s.LoadAll(ctx)
}

// Filter returns the cached notes whose title or content contains term,
// case-insensitively. An empty term returns the full cache in order. The
// cache is never mutated.
func (s *Store) Filter(term string) []*types.Note {
	notes := s.Notes()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return notes
	}
	out := make([]*types.Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), term) ||
			strings.Contains(strings.ToLower(note.Content), term) {
			out = append(out, note)
		}
	}
	return out
}

// Notes returns a snapshot of the current cache.
func (s *Store) Notes() []*types.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*types.Note(nil), s.notes...)
}

// Get returns the cached note with the given id, if present.
func (s *Store) Get(id string) (*types.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, note := range s.notes {
		if note.ID == id {
			return note, true
		}
	}
	return nil, false
}

func validate(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" && content == "" {
		return "", "", ErrEmptyNote
	}
	return title, content, nil
}
