package main

import (
	"io"
	"os"

	"quill/internal/client"
)

type commandRunner interface {
	Run(args []string) error
}

type clientFactory func() (*client.Client, error)

type commandWiring struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
	version   string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:    stdout,
		stderr:    stderr,
		newClient: client.New,
		version:   buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":     NewUICommand(wiring.stderr, wiring.newClient, wiring.version),
		"daemon": NewDaemonCommand(wiring.stderr, wiring.version),
		"ls":     NewLSCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"add":    NewAddCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"rm":     NewRMCommand(wiring.stdout, wiring.stderr, wiring.newClient),
	}
}
