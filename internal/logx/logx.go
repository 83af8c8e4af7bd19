// Package logx sets up the structured logger shared by the commands.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the level used when verbose output is off.
var UserLevel = slog.LevelInfo

// New returns a text logger writing to w. Verbose enables debug records.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := UserLevel
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init builds the logger with New and installs it as the slog default.
func Init(w io.Writer, verbose bool) *slog.Logger {
	l := New(w, verbose)
	slog.SetDefault(l)
	return l
}
