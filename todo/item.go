// Package todo is the to-do item record stored by the host application through
// filecache, plus the deadline grouping its calendar screen shows.
package todo

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/unkn0wn-root/filecache"
	"github.com/unkn0wn-root/filecache/csvrow"
)

type Importance string

const (
	Low       Importance = "low"
	Basic     Importance = "basic"
	Important Importance = "important"
)

// ParseImportance accepts the three names; empty means Basic.
func ParseImportance(s string) (Importance, error) {
	switch Importance(s) {
	case "", Basic:
		return Basic, nil
	case Low, Important:
		return Importance(s), nil
	default:
		return "", fmt.Errorf("todo: unknown importance %q", s)
	}
}

// Item is one to-do entry. Times have second precision and are kept in UTC.
type Item struct {
	id         string
	Text       string
	Importance Importance
	Deadline   *time.Time
	Done       bool
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

var _ filecache.Record[Item] = Item{}

type Option func(*Item)

func WithID(id string) Option              { return func(it *Item) { it.id = id } }
func WithImportance(imp Importance) Option { return func(it *Item) { it.Importance = imp } }
func WithDeadline(t time.Time) Option      { return func(it *Item) { d := normTime(t); it.Deadline = &d } }
func WithDone(done bool) Option            { return func(it *Item) { it.Done = done } }
func WithCreatedAt(t time.Time) Option     { return func(it *Item) { it.CreatedAt = normTime(t) } }
func WithModifiedAt(t time.Time) Option    { return func(it *Item) { m := normTime(t); it.ModifiedAt = &m } }

// New returns an item with a fresh UUID, Basic importance and CreatedAt = now.
func New(text string, opts ...Option) Item {
	it := Item{
		id:         uuid.NewString(),
		Text:       text,
		Importance: Basic,
		CreatedAt:  normTime(time.Now()),
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

func (it Item) ID() string { return it.id }

// Equal compares field by field, times by instant.
func (it Item) Equal(o Item) bool {
	return it.id == o.id && it.Text == o.Text && it.Importance == o.Importance &&
		it.Done == o.Done && it.CreatedAt.Equal(o.CreatedAt) &&
		timePtrEqual(it.Deadline, o.Deadline) && timePtrEqual(it.ModifiedAt, o.ModifiedAt)
}

// ==============================
// Structured form
// ==============================

// jsonItem mirrors the structured form; Basic importance and nil times are omitted.
type jsonItem struct {
	ID         string `mapstructure:"id"`
	Text       string `mapstructure:"text"`
	Importance string `mapstructure:"importance"`
	Deadline   *int64 `mapstructure:"deadline"`
	Done       bool   `mapstructure:"done"`
	Created    *int64 `mapstructure:"created"`
	Modified   *int64 `mapstructure:"modified"`
}

func (it Item) JSONValue() any {
	m := map[string]any{
		"id":      it.id,
		"text":    it.Text,
		"done":    it.Done,
		"created": it.CreatedAt.Unix(),
	}
	if it.Importance != Basic && it.Importance != "" {
		m["importance"] = string(it.Importance)
	}
	if it.Deadline != nil {
		m["deadline"] = it.Deadline.Unix()
	}
	if it.ModifiedAt != nil {
		m["modified"] = it.ModifiedAt.Unix()
	}
	return m
}

func (Item) ParseJSON(v any) (Item, bool) {
	if _, ok := v.(map[string]any); !ok {
		return Item{}, false
	}
	var w jsonItem
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &w})
	if err != nil {
		return Item{}, false
	}
	if err := dec.Decode(v); err != nil {
		return Item{}, false
	}
	if w.ID == "" || w.Created == nil {
		return Item{}, false
	}
	imp, err := ParseImportance(w.Importance)
	if err != nil {
		return Item{}, false
	}
	return Item{
		id:         w.ID,
		Text:       w.Text,
		Importance: imp,
		Deadline:   unixPtr(w.Deadline),
		Done:       w.Done,
		CreatedAt:  time.Unix(*w.Created, 0).UTC(),
		ModifiedAt: unixPtr(w.Modified),
	}, true
}

// ==============================
// Delimited-text form
// ==============================

const csvHeader = "id,text,importance,deadline,done,created,modified"

func (Item) CSVHeader() string { return csvHeader }

func (it Item) CSVRow() string {
	imp := it.Importance
	if imp == "" {
		imp = Basic
	}
	return csvrow.Join(
		it.id,
		it.Text,
		string(imp),
		formatUnixPtr(it.Deadline),
		strconv.FormatBool(it.Done),
		strconv.FormatInt(it.CreatedAt.Unix(), 10),
		formatUnixPtr(it.ModifiedAt),
	)
}

func (Item) ParseCSVRow(line string) (Item, bool) {
	f, err := csvrow.Split(line, 7)
	if err != nil || f[0] == "" {
		return Item{}, false
	}
	imp, err := ParseImportance(f[2])
	if err != nil {
		return Item{}, false
	}
	deadline, err := parseUnixPtr(f[3])
	if err != nil {
		return Item{}, false
	}
	done, err := strconv.ParseBool(f[4])
	if err != nil {
		return Item{}, false
	}
	created, err := strconv.ParseInt(f[5], 10, 64)
	if err != nil {
		return Item{}, false
	}
	modified, err := parseUnixPtr(f[6])
	if err != nil {
		return Item{}, false
	}
	return Item{
		id:         f[0],
		Text:       f[1],
		Importance: imp,
		Deadline:   deadline,
		Done:       done,
		CreatedAt:  time.Unix(created, 0).UTC(),
		ModifiedAt: modified,
	}, true
}

func normTime(t time.Time) time.Time { return t.UTC().Truncate(time.Second) }

func unixPtr(s *int64) *time.Time {
	if s == nil {
		return nil
	}
	t := time.Unix(*s, 0).UTC()
	return &t
}

func formatUnixPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return strconv.FormatInt(t.Unix(), 10)
}

func parseUnixPtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return unixPtr(&n), nil
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
