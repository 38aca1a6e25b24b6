package mrepair

import "fixmarkt/server/pkg/idwrap"

// Repair is one device's copy of a repair type. Name mirrors the repair
// type's display name; there is no foreign key to the type's id.
type Repair struct {
	ID         idwrap.IDWrap `json:"id"`
	DeviceID   idwrap.IDWrap `json:"deviceId"`
	Name       string        `json:"name"`
	PriceCents int64         `json:"priceCents"`
	Order      float64       `json:"order"`
}
