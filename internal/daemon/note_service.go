package daemon

import (
	"context"
	"errors"
	"strings"

	"quill/internal/store"
	"quill/internal/types"
)

type NoteService struct {
	notes store.NoteStore
}

type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewNoteService(notes store.NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) List(ctx context.Context) ([]*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, req *NoteRequest) (*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	title, content, err := validateNoteRequest(req)
	if err != nil {
		return nil, err
	}
	created, createErr := s.notes.Create(ctx, title, content)
	if createErr != nil {
		return nil, unavailableError(createErr.Error(), createErr)
	}
	return created, nil
}

func (s *NoteService) Update(ctx context.Context, id string, req *NoteRequest) (*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, invalidError("note id is required", nil)
	}
	title, content, err := validateNoteRequest(req)
	if err != nil {
		return nil, err
	}
	updated, updateErr := s.notes.Update(ctx, id, title, content)
	if updateErr != nil {
		if errors.Is(updateErr, store.ErrNoteNotFound) {
			return nil, notFoundError("Note not found", updateErr)
		}
		return nil, unavailableError(updateErr.Error(), updateErr)
	}
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	if s.notes == nil {
		return unavailableError("note store not available", nil)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidError("note id is required", nil)
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return notFoundError("Note not found", err)
		}
		return unavailableError(err.Error(), err)
	}
	return nil
}

func validateNoteRequest(req *NoteRequest) (title, content string, err error) {
	if req == nil {
		return "", "", invalidError("note payload is required", nil)
	}
	title = strings.TrimSpace(req.Title)
	content = strings.TrimSpace(req.Content)
	if title == "" && content == "" {
		return "", "", invalidError("Note title or content is required", nil)
	}
	return title, content, nil
}
