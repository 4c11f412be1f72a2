package daemon

import "net/http"

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", a.Health)
	mux.HandleFunc("/api/notes", a.NotesCollection)
	mux.HandleFunc("/api/notes/", a.NoteByID)
}
