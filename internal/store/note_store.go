package store

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quill/internal/types"
)

var ErrNoteNotFound = errors.New("note not found")

const noteSchemaVersion = 1

type NoteStore interface {
	List(ctx context.Context) ([]*types.Note, error)
	Get(ctx context.Context, id string) (*types.Note, bool, error)
	Create(ctx context.Context, title, content string) (*types.Note, error)
	Update(ctx context.Context, id, title, content string) (*types.Note, error)
	Delete(ctx context.Context, id string) error
}

// FileNoteStore persists the whole note collection in a single JSON file.
// Every mutation rewrites the file atomically.
type FileNoteStore struct {
	path string
	mu   sync.Mutex
}

type noteFile struct {
	Version int           `json:"version"`
	Notes   []*types.Note `json:"notes"`
}

func NewFileNoteStore(path string) *FileNoteStore {
	return &FileNoteStore{path: path}
}

func (s *FileNoteStore) List(ctx context.Context) ([]*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]*types.Note, 0, len(file.Notes))
	for _, note := range file.Notes {
		out = append(out, note.Clone())
	}
	// Newest first.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *FileNoteStore) Get(ctx context.Context, id string) (*types.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, false, err
	}
	for _, note := range file.Notes {
		if note.ID == id {
			return note.Clone(), true, nil
		}
	}
	return nil, false, nil
}

func (s *FileNoteStore) Create(ctx context.Context, title, content string) (*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	note := &types.Note{
		ID:        uuid.NewString(),
		Title:     normalizeTitle(title),
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	file.Notes = append(file.Notes, note)
	if err := s.save(file); err != nil {
		return nil, err
	}
	return note.Clone(), nil
}

func (s *FileNoteStore) Update(ctx context.Context, id, title, content string) (*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, note := range file.Notes {
		if note.ID != id {
			continue
		}
		note.Title = normalizeTitle(title)
		note.Content = strings.TrimSpace(content)
		note.UpdatedAt = time.Now().UTC()
		if err := s.save(file); err != nil {
			return nil, err
		}
		return note.Clone(), nil
	}
	return nil, ErrNoteNotFound
}

func (s *FileNoteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}
	filtered := file.Notes[:0]
	found := false
	for _, note := range file.Notes {
		if note.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, note)
	}
	if !found {
		return ErrNoteNotFound
	}
	file.Notes = filtered
	return s.save(file)
}

func (s *FileNoteStore) load() (*noteFile, error) {
	file := newNoteFile()
	if err := readJSON(s.path, file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newNoteFile(), nil
		}
		return nil, err
	}
	if file.Version == 0 {
		file.Version = noteSchemaVersion
	}
	if file.Notes == nil {
		file.Notes = []*types.Note{}
	}
	return file, nil
}

func (s *FileNoteStore) save(file *noteFile) error {
	file.Version = noteSchemaVersion
	return writeJSONAtomic(s.path, file)
}

func newNoteFile() *noteFile {
	return &noteFile{Version: noteSchemaVersion, Notes: []*types.Note{}}
}

func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return types.DefaultTitle
	}
	return title
}
