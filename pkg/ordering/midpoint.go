package ordering

import "fixmarkt/server/pkg/idwrap"

// MoveResult reports the outcome of a single-step move.
type MoveResult struct {
	// Position is the target's new (or, for boundary no-ops, unchanged)
	// position value.
	Position float64
	// Moved is false when the record was already at the reached boundary.
	Moved bool
}

// Move computes a fractional position for targetID one step in dir,
// averaging with the neighbor-of-neighbor so only the moved record is
// written. records must be sorted and duplicate-free (run Normalize
// first). Moving the first record up or the last record down is a no-op,
// not an error.
func Move(records []Record, targetID idwrap.IDWrap, dir Direction) (MoveResult, error) {
	i := indexOf(records, targetID)
	if i < 0 {
		return MoveResult{}, ErrRecordNotFound
	}

	switch dir {
	case DirectionUp:
		if i == 0 {
			return MoveResult{Position: records[i].Position}, nil
		}
		prev := records[i-1].Position
		lower := prev - 1
		if i >= 2 {
			lower = records[i-2].Position
		}
		return MoveResult{Position: (prev + lower) / 2, Moved: true}, nil

	case DirectionDown:
		if i == len(records)-1 {
			return MoveResult{Position: records[i].Position}, nil
		}
		next := records[i+1].Position
		upper := next + 1
		if i+2 < len(records) {
			upper = records[i+2].Position
		}
		return MoveResult{Position: (next + upper) / 2, Moved: true}, nil
	}

	return MoveResult{}, ErrBadDirection
}
