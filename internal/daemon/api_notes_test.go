package daemon

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"quill/internal/logging"
	"quill/internal/store"
	"quill/internal/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	api := &API{
		Version: "test",
		Notes:   NewNoteService(store.NewFileNoteStore(filepath.Join(t.TempDir(), "notes.json"))),
		Logger:  logging.Nop(),
	}
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func errorMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode error payload %q: %v", raw, err)
	}
	return payload.Error
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)
	resp, raw := doRequest(t, http.MethodGet, server.URL+"/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var payload struct {
		OK      bool   `json:"ok"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.OK || payload.Version != "test" {
		t.Fatalf("unexpected health payload: %s", raw)
	}
}

func TestCreateAndListNotes(t *testing.T) {
	server := newTestServer(t)

	resp, raw := doRequest(t, http.MethodPost, server.URL+"/api/notes",
		NoteRequest{Title: "Groceries", Content: "milk"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", resp.StatusCode, raw)
	}
	var created types.Note
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode created note: %v", err)
	}
	if created.ID == "" || created.Title != "Groceries" {
		t.Fatalf("unexpected created note: %s", raw)
	}

	resp, raw = doRequest(t, http.MethodGet, server.URL+"/api/notes", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
		t.Fatalf("expected bare array, got %s", raw)
	}
	var noteList []*types.Note
	if err := json.Unmarshal(raw, &noteList); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(noteList) != 1 || noteList[0].ID != created.ID {
		t.Fatalf("unexpected list: %s", raw)
	}
}

func TestCreateNoteDefaultsTitle(t *testing.T) {
	server := newTestServer(t)
	resp, raw := doRequest(t, http.MethodPost, server.URL+"/api/notes",
		NoteRequest{Content: "hello"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, raw)
	}
	var created types.Note
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Title != types.DefaultTitle {
		t.Fatalf("title = %q, want %q", created.Title, types.DefaultTitle)
	}
}

func TestCreateNoteRejectsEmpty(t *testing.T) {
	server := newTestServer(t)
	resp, raw := doRequest(t, http.MethodPost, server.URL+"/api/notes",
		NoteRequest{Title: "  ", Content: "\n"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", resp.StatusCode, raw)
	}
	if got := errorMessage(t, raw); got != "Note title or content is required" {
		t.Fatalf("error = %q", got)
	}
}

func TestCreateNoteRejectsBadJSON(t *testing.T) {
	server := newTestServer(t)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/notes",
		strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateNote(t *testing.T) {
	server := newTestServer(t)
	_, raw := doRequest(t, http.MethodPost, server.URL+"/api/notes",
		NoteRequest{Title: "before", Content: "old"})
	var created types.Note
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp, raw := doRequest(t, http.MethodPut, server.URL+"/api/notes/"+created.ID,
		NoteRequest{Title: "after", Content: "new"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, raw)
	}
	var updated types.Note
	if err := json.Unmarshal(raw, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.ID != created.ID || updated.Title != "after" || updated.Content != "new" {
		t.Fatalf("unexpected updated note: %s", raw)
	}
}

func TestUpdateUnknownNote(t *testing.T) {
	server := newTestServer(t)
	resp, raw := doRequest(t, http.MethodPut, server.URL+"/api/notes/missing",
		NoteRequest{Title: "x"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", resp.StatusCode, raw)
	}
	if got := errorMessage(t, raw); got != "Note not found" {
		t.Fatalf("error = %q", got)
	}
}

func TestDeleteNote(t *testing.T) {
	server := newTestServer(t)
	_, raw := doRequest(t, http.MethodPost, server.URL+"/api/notes",
		NoteRequest{Title: "gone soon"})
	var created types.Note
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp, _ := doRequest(t, http.MethodDelete, server.URL+"/api/notes/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}

	resp, raw = doRequest(t, http.MethodDelete, server.URL+"/api/notes/"+created.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404: %s", resp.StatusCode, raw)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)
	resp, _ := doRequest(t, http.MethodPatch, server.URL+"/api/notes", nil)
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
	resp, _ = doRequest(t, http.MethodGet, server.URL+"/api/notes/some-id", nil)
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}
