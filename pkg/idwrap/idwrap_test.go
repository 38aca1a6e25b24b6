package idwrap

import (
	"encoding/json"
	"testing"
)

func TestTextRoundTrip(t *testing.T) {
	id := NewNow()
	parsed, err := NewText(id.String())
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Compare(id) != 0 {
		t.Fatalf("round trip changed the id: %s vs %s", parsed, id)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	id := NewNow()
	parsed, err := NewFromBytes(id.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Compare(id) != 0 {
		t.Fatal("byte round trip changed the id")
	}
}

func TestNewTextRejectsGarbage(t *testing.T) {
	if _, err := NewText("not-a-ulid"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNewTextList(t *testing.T) {
	a, b := NewNow(), NewNow()

	ids, err := NewTextList(a.String() + ", " + b.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Fatalf("unexpected list: %v", ids)
	}

	ids, err = NewTextList("  ")
	if err != nil || ids != nil {
		t.Fatalf("blank input should yield nothing, got %v/%v", ids, err)
	}

	if _, err := NewTextList(a.String() + ",,"); err == nil {
		t.Fatal("empty element should fail")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	id := NewNow()

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatal(err)
	}
	var parsed IDWrap
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed != id {
		t.Fatal("json round trip changed the id")
	}
}

func TestScanRejectsNonBytes(t *testing.T) {
	var id IDWrap
	if err := id.Scan("string value"); err == nil {
		t.Fatal("expected scan error")
	}
}
