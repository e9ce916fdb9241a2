package logger

import (
	"os"

	"github.com/baditaflorin/go_corpus_cleaner/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
}

// NewStdLogger creates a new standard logger adapter with default configuration.
func NewStdLogger() (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})

	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger}, nil
}

// FromExisting creates a new StdLogger from an existing l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// Nop is a logger that discards everything. Used in tests and by library
// callers that bring no logger of their own.
type Nop struct{}

func NewNop() ports.Logger { return Nop{} }

func (Nop) Debug(msg string, keysAndValues ...interface{}) {}
func (Nop) Info(msg string, keysAndValues ...interface{})  {}
func (Nop) Warn(msg string, keysAndValues ...interface{})  {}
func (Nop) Error(msg string, keysAndValues ...interface{}) {}
func (Nop) Close() error                                   { return nil }
