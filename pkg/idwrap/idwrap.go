package idwrap

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDWrap wraps a ULID so ids render as strings on the wire and as 16-byte
// blobs in the database.
type IDWrap struct {
	ulid ulid.ULID
}

func New(u ulid.ULID) IDWrap {
	return IDWrap{ulid: u}
}

func NewNow() IDWrap {
	return IDWrap{ulid: ulid.Make()}
}

func NewText(ulidString string) (IDWrap, error) {
	u, err := ulid.Parse(ulidString)
	if err != nil {
		return IDWrap{}, err
	}
	return IDWrap{ulid: u}, nil
}

func NewTextMust(ulidString string) IDWrap {
	u, err := ulid.Parse(ulidString)
	if err != nil {
		panic(err)
	}
	return IDWrap{ulid: u}
}

func NewFromBytes(data []byte) (IDWrap, error) {
	u := ulid.ULID{}
	err := u.UnmarshalBinary(data)
	return IDWrap{ulid: u}, err
}

func NewFromBytesMust(data []byte) IDWrap {
	id, err := NewFromBytes(data)
	if err != nil {
		panic(err)
	}
	return id
}

// NewTextList parses a comma-separated id list as submitted by the admin
// reorder forms. Empty elements are rejected rather than skipped so a
// malformed list fails loudly.
func NewTextList(s string) ([]IDWrap, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]IDWrap, 0, len(parts))
	for _, part := range parts {
		id, err := NewText(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (u IDWrap) String() string {
	return u.ulid.String()
}

func (u IDWrap) Bytes() []byte {
	return u.ulid[:]
}

func (u IDWrap) Compare(id IDWrap) int {
	return u.ulid.Compare(id.ulid)
}

func (u IDWrap) Time() time.Time {
	return time.UnixMilli(int64(u.ulid.Time()))
}

// MarshalJSON renders the id as its ULID string.
func (u IDWrap) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ulid.String())
}

func (u *IDWrap) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	id, err := NewText(s)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// SQL driver value
func (u IDWrap) Value() (driver.Value, error) {
	return u.ulid.Value()
}

func (u *IDWrap) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("idwrap: cannot scan %T", value)
	}
	return u.ulid.UnmarshalBinary(b)
}
