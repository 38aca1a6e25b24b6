package ordering

// Normalize sorts records into canonical order and, when two or more share
// a position value, rewrites the whole scope to sequential integers. The
// midpoint math in Move assumes strictly increasing positions; duplicates
// show up after default-zero inserts or imported data and must be repaired
// first.
//
// Records are updated in place so a move can proceed on the clean values.
// The returned updates are empty and dirty=false when the scope is already
// consistent, so the common case costs no writes.
func Normalize(records []Record, cmp NameComparer) (updates []PositionUpdate, dirty bool) {
	SortRecords(records, cmp)

	seen := make(map[float64]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.Position]; ok {
			dirty = true
			break
		}
		seen[r.Position] = struct{}{}
	}
	if !dirty {
		return nil, false
	}

	updates = make([]PositionUpdate, len(records))
	for i := range records {
		records[i].Position = float64(i)
		updates[i] = PositionUpdate{ID: records[i].ID, Position: float64(i)}
	}
	return updates, true
}
