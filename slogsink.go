package panicfmt

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
)

// SlogWriter returns a sink constructor that delivers each rendering as a
// single log record on logger at the given level, instead of raw bytes on
// stderr. The writer buffers segment writes; the record is emitted when the
// rendering is flushed.
//
//	panicfmt.Install(panicfmt.Simple().With(
//		panicfmt.WithWriter(panicfmt.SlogWriter(slog.Default(), slog.LevelError))))
func SlogWriter(logger *slog.Logger, level slog.Level) func() io.Writer {
	return func() io.Writer {
		return &slogWriter{logger: logger, level: level}
	}
}

type slogWriter struct {
	logger *slog.Logger
	level  slog.Level
	buf    bytes.Buffer
}

func (s *slogWriter) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush emits the buffered rendering as one record. The trailing line break
// written by the suffix segment is dropped; the record boundary replaces it.
func (s *slogWriter) Flush() error {
	msg := strings.TrimSuffix(s.buf.String(), "\n")
	s.buf.Reset()
	if msg == "" {
		return nil
	}
	s.logger.Log(context.Background(), s.level, msg)
	return nil
}
