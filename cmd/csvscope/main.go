package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/quietbyte/csvscope/cmd/csvscope/root"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := root.Execute(os.Args[1:]); err != nil {
		// Emit a short, single-line error on failures.
		// Do not print usage or stack traces.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		slog.Error(msg)
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
