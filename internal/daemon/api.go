package daemon

import "quill/internal/logging"

type API struct {
	Version string
	Notes   *NoteService
	Logger  logging.Logger
}
