package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"quill/internal/app"
	"quill/internal/config"
	"quill/internal/notes"
)

type UICommand struct {
	stderr    io.Writer
	newClient clientFactory
	version   string
}

func NewUICommand(stderr io.Writer, newClient clientFactory, version string) *UICommand {
	return &UICommand{
		stderr:    stderr,
		newClient: newClient,
		version:   version,
	}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	configureUILogging()

	ctx := context.Background()
	apiClient, err := c.newClient()
	if err != nil {
		return err
	}
	if err := apiClient.EnsureDaemon(ctx); err != nil {
		return err
	}
	return app.Run(notes.NewStore(apiClient), c.version)
}

// configureUILogging redirects the stdlib logger away from the terminal the
// TUI owns.
func configureUILogging() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	dataDir, err := config.DataDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return
	}
	logPath, err := config.UILogPath()
	if err != nil {
		return
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	log.SetOutput(file)
}
