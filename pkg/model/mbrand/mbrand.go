package mbrand

import "fixmarkt/server/pkg/idwrap"

type Brand struct {
	ID idwrap.IDWrap `json:"id"`
	// SectionID is nil for brands in the "no section" group.
	SectionID *idwrap.IDWrap `json:"sectionId,omitempty"`
	Name      string         `json:"name"`
	Order     float64        `json:"order"`
}
