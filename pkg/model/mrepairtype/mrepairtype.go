package mrepairtype

import "fixmarkt/server/pkg/idwrap"

// RepairType is the canonical global repair list. Device-level repairs
// keep a denormalized copy of Name; propagation matches on it.
type RepairType struct {
	ID    idwrap.IDWrap `json:"id"`
	Name  string        `json:"name"`
	Order float64       `json:"order"`
}
