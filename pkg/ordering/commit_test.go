package ordering

import (
	"testing"

	"fixmarkt/server/pkg/idwrap"
)

func TestSequencePlanAssignsIndexes(t *testing.T) {
	ids := []idwrap.IDWrap{idwrap.NewNow(), idwrap.NewNow(), idwrap.NewNow()}

	plan := SequencePlan(ids)
	if len(plan) != 3 {
		t.Fatalf("got %d updates, want 3", len(plan))
	}
	for i, u := range plan {
		if u.ID != ids[i] {
			t.Errorf("update %d targets wrong id", i)
		}
		if u.Position != float64(i) {
			t.Errorf("update %d: got position %v, want %v", i, u.Position, float64(i))
		}
	}

	// The same list always yields the same plan, so retries are safe.
	again := SequencePlan(ids)
	for i := range plan {
		if plan[i] != again[i] {
			t.Fatal("sequence plan is not deterministic")
		}
	}
}

func TestSequencePlanReversed(t *testing.T) {
	a, b := idwrap.NewNow(), idwrap.NewNow()

	plan := SequencePlan([]idwrap.IDWrap{b, a})
	if plan[0].ID != b || plan[0].Position != 0 {
		t.Fatalf("first update wrong: %+v", plan[0])
	}
	if plan[1].ID != a || plan[1].Position != 1 {
		t.Fatalf("second update wrong: %+v", plan[1])
	}
}

func TestGroupedSequencePlanCountsPerScope(t *testing.T) {
	ids := []idwrap.IDWrap{
		idwrap.NewNow(), idwrap.NewNow(), idwrap.NewNow(), idwrap.NewNow(),
	}
	// Interleaved scopes, the way a drag-and-drop page submits every
	// brand's devices in one flat list.
	scopes := map[idwrap.IDWrap]string{
		ids[0]: "apple",
		ids[1]: "samsung",
		ids[2]: "apple",
		ids[3]: "samsung",
	}

	plan := GroupedSequencePlan(ids, func(id idwrap.IDWrap) (string, bool) {
		s, ok := scopes[id]
		return s, ok
	})
	want := []float64{0, 0, 1, 1}
	if len(plan) != len(want) {
		t.Fatalf("got %d updates, want %d", len(plan), len(want))
	}
	for i, u := range plan {
		if u.Position != want[i] {
			t.Errorf("update %d: got %v, want %v", i, u.Position, want[i])
		}
	}
}

func TestGroupedSequencePlanSkipsUnknownIDs(t *testing.T) {
	known := idwrap.NewNow()
	ids := []idwrap.IDWrap{idwrap.NewNow(), known}

	plan := GroupedSequencePlan(ids, func(id idwrap.IDWrap) (string, bool) {
		if id == known {
			return "apple", true
		}
		return "", false
	})
	if len(plan) != 1 {
		t.Fatalf("got %d updates, want 1", len(plan))
	}
	if plan[0].ID != known || plan[0].Position != 0 {
		t.Fatalf("unexpected plan entry: %+v", plan[0])
	}
}
