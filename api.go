package filecache

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/unkn0wn-root/filecache/codec"
)

// Record is the capability set of a cacheable type T.
//
// ParseJSON and ParseCSVRow act as constructors: the cache calls them on the zero
// value of T, so they must not read the receiver. They report false for malformed
// input, which makes Load skip that record.
type Record[T any] interface {
	ID() string

	// JSONValue returns the structured form built from nil, bool, string, numbers,
	// []any and map[string]any.
	JSONValue() any
	// CSVRow returns one delimited-text line without a newline.
	CSVRow() string
	// CSVHeader returns the line written once at the top of a delimited-text file.
	CSVHeader() string

	// ParseJSON receives a normalized value: numbers arrive as json.Number.
	ParseJSON(v any) (T, bool)
	ParseCSVRow(line string) (T, bool)
}

// Format selects the file layout used by Save and Load.
type Format int

const (
	FormatJSON Format = iota + 1 // structured: one array of JSONValue
	FormatCSV                    // delimited text: header + CSVRow lines
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat accepts "json"/"structured" and "csv"/"text".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "structured":
		return FormatJSON, nil
	case "csv", "text":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("filecache: unknown format %q", s)
	}
}

// Options tune a Cache. The zero value is usable.
type Options struct {
	Resolver    Resolver       // if nil, UserDir(DefaultApp)
	Codec       codec.Document // structured encoding; nil => codec.JSON{}
	Logger      Logger         // if nil, NopLogger is used
	Hooks       Hooks          // if nil, NopHooks is used
	FileMode    fs.FileMode    // 0 => 0o644
	MaxFileSize int            // bytes accepted by Load; <= 0 => unlimited
}

// New returns an empty cache.
func New[T Record[T]](opts Options) *Cache[T] {
	return newCache[T](opts)
}
