package cli

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
)

// StdioWrapper provides writers which print complete lines to a terminal.
type StdioWrapper struct {
	stdout *lineWriter
	stderr *lineWriter
}

// NewStdioWrapper returns a wrapper for term.
func NewStdioWrapper(term Terminal) *StdioWrapper {
	return &StdioWrapper{
		stdout: &lineWriter{print: term.Print},
		stderr: &lineWriter{print: term.Print},
	}
}

// Stdout returns a writer for standard output.
func (w *StdioWrapper) Stdout() io.WriteCloser {
	return w.stdout
}

// Stderr returns a writer for standard error.
func (w *StdioWrapper) Stderr() io.WriteCloser {
	return w.stderr
}

type lineWriter struct {
	m     sync.Mutex
	buf   bytes.Buffer
	print func(string)
}

// Write prints all complete lines in p and buffers the rest.
func (w *lineWriter) Write(p []byte) (int, error) {
	w.m.Lock()
	defer w.m.Unlock()

	n, err := w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}

		line := w.buf.Next(i + 1)
		w.print(string(line))
	}

	return n, err
}

// Close prints the remaining data.
func (w *lineWriter) Close() error {
	w.m.Lock()
	defer w.m.Unlock()

	if w.buf.Len() > 0 {
		w.print(w.buf.String())
		w.buf.Reset()
	}
	return nil
}

// NewLogger returns a logger which prints records at or above level to term.
func NewLogger(term Terminal, level slog.Level) *slog.Logger {
	w := NewStdioWrapper(term)
	return slog.New(slog.NewTextHandler(w.Stderr(), &slog.HandlerOptions{Level: level}))
}
