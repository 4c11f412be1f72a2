package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

type LSCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewLSCommand(stdout, stderr io.Writer, newClient clientFactory) *LSCommand {
	return &LSCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *LSCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	search := fs.String("search", "", "only show notes containing this text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	apiClient, err := c.newClient()
	if err != nil {
		return err
	}
	if err := apiClient.EnsureDaemon(ctx); err != nil {
		return err
	}
	noteList, err := apiClient.ListNotes(ctx)
	if err != nil {
		return err
	}

	if term := strings.ToLower(strings.TrimSpace(*search)); term != "" {
		filtered := noteList[:0]
		for _, note := range noteList {
			if strings.Contains(strings.ToLower(note.Title), term) ||
				strings.Contains(strings.ToLower(note.Content), term) {
				filtered = append(filtered, note)
			}
		}
		noteList = filtered
	}

	if len(noteList) == 0 {
		fmt.Fprintln(c.stdout, "no notes")
		return nil
	}
	printNotes(c.stdout, noteList)
	return nil
}
