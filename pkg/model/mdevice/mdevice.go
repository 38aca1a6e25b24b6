package mdevice

import "fixmarkt/server/pkg/idwrap"

// Device participates in two independent sequences: Order within its brand
// and TypeOrder within its device type. A move targets exactly one of them.
type Device struct {
	ID         idwrap.IDWrap `json:"id"`
	BrandID    idwrap.IDWrap `json:"brandId"`
	DeviceType string        `json:"deviceType"`
	Name       string        `json:"name"`
	Order      float64       `json:"order"`
	TypeOrder  float64       `json:"typeOrder"`
}
