package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"quill/internal/config"
	"quill/internal/daemon"
	"quill/internal/logging"
	"quill/internal/store"
)

type DaemonCommand struct {
	stderr  io.Writer
	version string
}

func NewDaemonCommand(stderr io.Writer, version string) *DaemonCommand {
	return &DaemonCommand{stderr: stderr, version: version}
}

func (c *DaemonCommand) Run(args []string) error {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	addr := fs.String("addr", "", "listen address (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	listenAddr := cfg.DaemonAddress()
	if *addr != "" {
		listenAddr = *addr
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return err
	}
	notesPath, err := config.NotesPath()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel()))
	noteStore := store.NewFileNoteStore(notesPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return daemon.New(listenAddr, c.version, noteStore, logger).Run(ctx)
}
