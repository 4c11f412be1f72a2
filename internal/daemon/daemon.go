package daemon

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quill/internal/logging"
	"quill/internal/store"
)

type Daemon struct {
	addr    string
	version string
	notes   store.NoteStore
	logger  logging.Logger
	server  *http.Server
}

func New(addr, version string, notes store.NoteStore, logger logging.Logger) *Daemon {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Daemon{
		addr:    addr,
		version: version,
		notes:   notes,
		logger:  logger,
	}
}

// Run serves the notes API until ctx is canceled or the listener fails.
func (d *Daemon) Run(ctx context.Context) error {
	api := &API{
		Version: d.version,
		Notes:   NewNoteService(d.notes),
		Logger:  d.logger,
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	d.server = &http.Server{
		Addr:    d.addr,
		Handler: LoggingMiddleware(d.logger, mux),
	}

	errCh := make(chan error, 1)
	go func() {
		d.logger.Info("daemon_listening", logging.F("addr", d.addr), logging.F("version", d.version))
		errCh <- d.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return d.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
