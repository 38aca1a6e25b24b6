package ordering

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameComparer compares two display names. It is passed into every sort
// call instead of living in a shared collator instance.
type NameComparer func(a, b string) int

// NewNameComparer builds a locale-aware comparer for the given language.
// The returned function reuses one collator and is not safe for concurrent
// use; create one per operation.
func NewNameComparer(tag language.Tag) NameComparer {
	col := collate.New(tag, collate.IgnoreCase)
	return col.CompareString
}

// DutchNames is the comparer for the catalog's display names.
func DutchNames() NameComparer {
	return NewNameComparer(language.Dutch)
}

// SortRecords orders records by (position, name). This is the canonical
// sequence used to locate neighbors; it must match the display order.
func SortRecords(records []Record, cmp NameComparer) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Position != records[j].Position {
			return records[i].Position < records[j].Position
		}
		return cmp(records[i].Name, records[j].Name) < 0
	})
}
