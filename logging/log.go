package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global logger instance.
var Logger *slog.Logger

func init() {
	// Safe default so packages can log before Init runs (e.g. in tests).
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Init initializes the logger. Stdout belongs to the LSP transport, so log
// output always goes to a file; when path is empty logging stays disabled.
func Init(path string) {
	if path == "" {
		return
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		// Nowhere to report this without corrupting the protocol stream.
		return
	}
	Logger = slog.New(slog.NewTextHandler(f, nil))
}
