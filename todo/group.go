package todo

import (
	"sort"
	"time"
)

// OtherKey labels the section of items without a deadline.
const OtherKey = "other"

const dayLayout = "2006-01-02"

type Section struct {
	Key   string // deadline day (2006-01-02) or OtherKey
	Items []Item
}

// GroupByDeadline buckets items by the calendar day of their deadline in loc
// (time.Local when nil). Day sections come in ascending order; undated items
// form a trailing OtherKey section. Inside a section items are ordered by
// CreatedAt, then ID, so the result does not depend on input order.
func GroupByDeadline(items []Item, loc *time.Location) []Section {
	if loc == nil {
		loc = time.Local
	}
	byDay := make(map[string][]Item)
	var other []Item
	for _, it := range items {
		if it.Deadline == nil {
			other = append(other, it)
			continue
		}
		day := it.Deadline.In(loc).Format(dayLayout)
		byDay[day] = append(byDay[day], it)
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	out := make([]Section, 0, len(days)+1)
	for _, d := range days {
		out = append(out, Section{Key: d, Items: sortItems(byDay[d])})
	}
	if len(other) > 0 {
		out = append(out, Section{Key: OtherKey, Items: sortItems(other)})
	}
	return out
}

func sortItems(items []Item) []Item {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].id < items[j].id
	})
	return items
}
