package main

import (
	"fmt"
	"os"
)

const usageText = `quill is a terminal note-taking tool.

Usage:
  quill <command> [flags]

Commands:
  ui       run the terminal UI (default)
  daemon   run the note daemon in the foreground
  ls       list notes
  add      add a note
  rm       delete a note
  help     show help

Flags:
  -h, --help   show help

Examples:
  quill
  quill add --title "groceries" "milk, eggs"
  quill ls
  quill rm <id>
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	if len(args) == 0 {
		exitOnErr("ui", commands["ui"].Run(nil), wiring.stderr)
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
