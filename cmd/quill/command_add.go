package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

type AddCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewAddCommand(stdout, stderr io.Writer, newClient clientFactory) *AddCommand {
	return &AddCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *AddCommand) Run(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	title := fs.String("title", "", "note title")
	if err := fs.Parse(args); err != nil {
		return err
	}
	content := strings.Join(fs.Args(), " ")

	ctx := context.Background()
	apiClient, err := c.newClient()
	if err != nil {
		return err
	}
	if err := apiClient.EnsureDaemon(ctx); err != nil {
		return err
	}
	note, err := apiClient.CreateNote(ctx, *title, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "created %s  %q\n", note.ID, note.Title)
	return nil
}
