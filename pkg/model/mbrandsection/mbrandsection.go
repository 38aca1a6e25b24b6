package mbrandsection

import "fixmarkt/server/pkg/idwrap"

type BrandSection struct {
	ID    idwrap.IDWrap `json:"id"`
	Name  string        `json:"name"`
	Order float64       `json:"order"`
}
