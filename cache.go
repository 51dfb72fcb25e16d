package filecache

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"maps"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/unkn0wn-root/filecache/codec"
)

const (
	opSave   = "save"
	opLoad   = "load"
	opEncode = "encode"
	opDecode = "decode"
)

// Cache holds records keyed by their ID. Create it with New.
type Cache[T Record[T]] struct {
	items map[string]T

	resolver    Resolver
	codec       codec.Document
	log         Logger
	hooks       Hooks
	fileMode    fs.FileMode
	maxFileSize int
}

func newCache[T Record[T]](opts Options) *Cache[T] {
	c := &Cache[T]{
		items:       make(map[string]T),
		maxFileSize: opts.MaxFileSize,
	}

	// defaults
	c.resolver = coalesce[Resolver](opts.Resolver, UserDir(DefaultApp))
	c.codec = coalesce[codec.Document](opts.Codec, codec.JSON{})
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.fileMode = coalesce(opts.FileMode, defaultFileMode)

	if c.maxFileSize > 0 {
		c.codec = codec.Limit[any]{Inner: c.codec, MaxDecode: c.maxFileSize}
	}
	return c
}

// Add stores item under item.ID(), replacing any record with the same ID.
func (c *Cache[T]) Add(item T) {
	c.items[item.ID()] = item
}

// Remove deletes the record with the given ID. Missing IDs are ignored.
func (c *Cache[T]) Remove(id string) {
	delete(c.items, id)
}

// Get returns the record stored under id.
func (c *Cache[T]) Get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *Cache[T]) Len() int { return len(c.items) }

// Items returns a copy of the records ordered by ID.
func (c *Cache[T]) Items() []T {
	out := make([]T, 0, len(c.items))
	for _, id := range c.ids() {
		out = append(out, c.items[id])
	}
	return out
}

// All iterates over (id, record) pairs in ID order.
// Mutating the cache while iterating is not supported.
func (c *Cache[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, id := range c.ids() {
			if !yield(id, c.items[id]) {
				return
			}
		}
	}
}

func (c *Cache[T]) ids() []string {
	return slices.Sorted(maps.Keys(c.items))
}

// Save writes every record to the file name resolves to, replacing its content.
// The file is written to a temp file and renamed, so a failed Save leaves the
// previous file intact.
func (c *Cache[T]) Save(ctx context.Context, name string, format Format) error {
	if err := ctx.Err(); err != nil {
		return &OpError{Op: opSave, Name: name, Format: format, Kind: ErrCannotSaveData, Err: err}
	}
	path, err := c.resolver.Resolve(name)
	if err != nil {
		return &OpError{Op: opSave, Name: name, Format: format, Kind: ErrDirectoryUnresolvable, Err: err}
	}

	data, err := c.encode(format)
	if err != nil {
		return &OpError{Op: opSave, Name: name, Path: path, Format: format, Kind: ErrCannotSaveData, Err: err}
	}
	if err := writeFileAtomic(path, data, c.fileMode); err != nil {
		return &OpError{Op: opSave, Name: name, Path: path, Format: format, Kind: ErrCannotSaveData, Err: err}
	}

	c.log.Debug("saved cache file", Fields{
		"path": path, "format": format.String(), "records": len(c.items), "size": humanize.Bytes(uint64(len(data))),
	})
	c.hooks.Saved(path, format, len(c.items), len(data))
	return nil
}

// Load replaces the cache content with the records stored in the file name resolves to.
// Records the parser rejects are skipped. On error the cache is left unchanged.
func (c *Cache[T]) Load(ctx context.Context, name string, format Format) error {
	if err := ctx.Err(); err != nil {
		return &OpError{Op: opLoad, Name: name, Format: format, Kind: ErrCannotLoadData, Err: err}
	}
	path, err := c.resolver.Resolve(name)
	if err != nil {
		return &OpError{Op: opLoad, Name: name, Format: format, Kind: ErrDirectoryUnresolvable, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &OpError{Op: opLoad, Name: name, Path: path, Format: format, Kind: ErrCannotLoadData, Err: err}
	}

	items, skipped, err := c.decode(data, format)
	if err != nil {
		return &OpError{Op: opLoad, Name: name, Path: path, Format: format, Kind: loadKind(err), Err: err}
	}
	c.items = items

	c.log.Debug("loaded cache file", Fields{
		"path": path, "format": format.String(), "records": len(items), "skipped": skipped,
		"size": humanize.Bytes(uint64(len(data))),
	})
	c.hooks.Loaded(path, format, len(items), skipped)
	return nil
}

// Encode returns the file content Save would write, without touching the disk.
func (c *Cache[T]) Encode(format Format) ([]byte, error) {
	data, err := c.encode(format)
	if err != nil {
		return nil, &OpError{Op: opEncode, Format: format, Kind: ErrCannotSaveData, Err: err}
	}
	c.hooks.Saved("", format, len(c.items), len(data))
	return data, nil
}

// Decode replaces the cache content with the records in data, as Load does.
func (c *Cache[T]) Decode(data []byte, format Format) error {
	items, skipped, err := c.decode(data, format)
	if err != nil {
		return &OpError{Op: opDecode, Format: format, Kind: loadKind(err), Err: err}
	}
	c.items = items
	c.hooks.Loaded("", format, len(items), skipped)
	return nil
}

func (c *Cache[T]) encode(format Format) ([]byte, error) {
	items := c.Items()
	switch format {
	case FormatJSON:
		doc := make([]any, 0, len(items))
		for _, it := range items {
			doc = append(doc, it.JSONValue())
		}
		return c.codec.Encode(doc)

	case FormatCSV:
		var zero T
		header := zero.CSVHeader()
		if strings.ContainsAny(header, "\r\n") {
			return nil, fmt.Errorf("csv header spans multiple lines")
		}
		lines := make([]string, 0, len(items)+1)
		lines = append(lines, header)
		for _, it := range items {
			row := it.CSVRow()
			if strings.ContainsAny(row, "\r\n") {
				return nil, fmt.Errorf("record %q: csv row spans multiple lines", it.ID())
			}
			lines = append(lines, row)
		}
		return []byte(strings.Join(lines, "\n")), nil

	default:
		return nil, fmt.Errorf("%w %d", errUnknownFormat, int(format))
	}
}

// decode builds a new mapping from data; it never touches c.items.
func (c *Cache[T]) decode(data []byte, format Format) (map[string]T, int, error) {
	switch format {
	case FormatJSON:
		return c.decodeDocument(data)
	case FormatCSV:
		return c.decodeLines(data)
	default:
		return nil, 0, fmt.Errorf("%w %d", errUnknownFormat, int(format))
	}
}

func (c *Cache[T]) decodeDocument(data []byte) (map[string]T, int, error) {
	v, err := c.codec.Decode(data)
	if err != nil {
		return nil, 0, err
	}
	// custom codecs may hand back shapes outside the value model
	if v, err = codec.Normalize(v); err != nil {
		return nil, 0, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, 0, fmt.Errorf("%w (got %s)", errNotArray, shapeOf(v))
	}

	var zero T
	out := make(map[string]T, len(arr))
	skipped := 0
	for i, el := range arr {
		item, ok := zero.ParseJSON(el)
		if !ok {
			skipped++
			c.skip(FormatJSON, i)
			continue
		}
		out[item.ID()] = item
	}
	return out, skipped, nil
}

func (c *Cache[T]) decodeLines(data []byte) (map[string]T, int, error) {
	if c.maxFileSize > 0 && len(data) > c.maxFileSize {
		return nil, 0, fmt.Errorf("%w: %d > %d", codec.ErrTooLarge, len(data), c.maxFileSize)
	}
	if !utf8.Valid(data) {
		return nil, 0, errInvalidUTF8
	}
	if len(data) == 0 {
		return nil, 0, errNoLines
	}

	lines := strings.Split(string(data), "\n")

	var zero T
	out := make(map[string]T, len(lines)-1)
	skipped := 0
	// lines[0] is the header, whatever it holds
	for i, line := range lines[1:] {
		item, ok := zero.ParseCSVRow(strings.TrimSuffix(line, "\r"))
		if !ok {
			skipped++
			c.skip(FormatCSV, i+2)
			continue
		}
		out[item.ID()] = item
	}
	return out, skipped, nil
}

func (c *Cache[T]) skip(format Format, index int) {
	c.log.Debug("skipped malformed record", Fields{"format": format.String(), "index": index})
	c.hooks.RecordSkipped(format, index)
}

func shapeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "number"
	}
}
