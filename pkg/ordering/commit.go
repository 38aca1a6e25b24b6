package ordering

import "fixmarkt/server/pkg/idwrap"

// SequencePlan assigns position = index for each id in the supplied order.
// Ids absent from the list are untouched, so committing one sub-scope of a
// larger sequence is allowed. Re-committing the same list is idempotent.
func SequencePlan(ids []idwrap.IDWrap) []PositionUpdate {
	updates := make([]PositionUpdate, len(ids))
	for i, id := range ids {
		updates[i] = PositionUpdate{ID: id, Position: float64(i)}
	}
	return updates
}

// GroupedSequencePlan walks one flat, interleaved id list and keeps an
// independent running counter per scope, so every scope's sub-sequence
// starts at 0. Drag-and-drop pages submit all devices as a single list
// even though each brand (or type) orders on its own.
//
// scopeOf returns the scope key an id belongs to; ids it does not know are
// skipped rather than failing the whole commit.
func GroupedSequencePlan(ids []idwrap.IDWrap, scopeOf func(idwrap.IDWrap) (string, bool)) []PositionUpdate {
	counters := make(map[string]int)
	updates := make([]PositionUpdate, 0, len(ids))
	for _, id := range ids {
		scope, ok := scopeOf(id)
		if !ok {
			continue
		}
		updates = append(updates, PositionUpdate{ID: id, Position: float64(counters[scope])})
		counters[scope]++
	}
	return updates
}
