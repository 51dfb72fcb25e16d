package filecache

// Fields carries structured context for one log line.
type Fields map[string]any

// Logger receives the cache's diagnostics: per-file save/load summaries and
// skipped records at Debug. Adapters for zap, logrus and slog live under log/.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

var _ Logger = NopLogger{}

// NopLogger drops everything; it is the default when Options.Logger is nil.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
