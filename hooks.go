package filecache

// Hooks are callbacks for file-level events.
// They run synchronously inside Save/Load; wrap slow ones with hooks/async.
type Hooks interface {
	// A record was rejected by its parser during load and dropped.
	// index is the array position (FormatJSON) or the 1-based line number (FormatCSV).
	RecordSkipped(format Format, index int)

	// A file was written. path is empty for Encode.
	Saved(path string, format Format, records, size int)

	// The mapping was replaced from a file. path is empty for Decode.
	Loaded(path string, format Format, records, skipped int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) RecordSkipped(Format, int)       {}
func (NopHooks) Saved(string, Format, int, int)  {}
func (NopHooks) Loaded(string, Format, int, int) {}
