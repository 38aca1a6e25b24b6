package catalogdb

import (
	"context"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mbrandsection"
)

const insertBrandSection = `
INSERT INTO brand_sections (id, name, display_order) VALUES (?, ?, ?)
`

func (q *Queries) InsertBrandSection(ctx context.Context, s mbrandsection.BrandSection) error {
	_, err := q.db.ExecContext(ctx, insertBrandSection, s.ID, s.Name, s.Order)
	return err
}

const getBrandSection = `
SELECT id, name, display_order FROM brand_sections WHERE id = ?
`

func (q *Queries) GetBrandSection(ctx context.Context, id idwrap.IDWrap) (mbrandsection.BrandSection, error) {
	var s mbrandsection.BrandSection
	err := q.db.QueryRowContext(ctx, getBrandSection, id).Scan(&s.ID, &s.Name, &s.Order)
	return s, err
}

const listBrandSections = `
SELECT id, name, display_order FROM brand_sections ORDER BY display_order, name
`

func (q *Queries) ListBrandSections(ctx context.Context) ([]mbrandsection.BrandSection, error) {
	rows, err := q.db.QueryContext(ctx, listBrandSections)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []mbrandsection.BrandSection
	for rows.Next() {
		var s mbrandsection.BrandSection
		if err := rows.Scan(&s.ID, &s.Name, &s.Order); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

const updateBrandSectionOrder = `
UPDATE brand_sections SET display_order = ? WHERE id = ?
`

func (q *Queries) UpdateBrandSectionOrder(ctx context.Context, id idwrap.IDWrap, order float64) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateBrandSectionOrder, order, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateBrandSectionName = `
UPDATE brand_sections SET name = ? WHERE id = ?
`

func (q *Queries) UpdateBrandSectionName(ctx context.Context, id idwrap.IDWrap, name string) error {
	_, err := q.db.ExecContext(ctx, updateBrandSectionName, name, id)
	return err
}

const deleteBrandSection = `
DELETE FROM brand_sections WHERE id = ?
`

func (q *Queries) DeleteBrandSection(ctx context.Context, id idwrap.IDWrap) error {
	_, err := q.db.ExecContext(ctx, deleteBrandSection, id)
	return err
}

const countBrandSections = `
SELECT COUNT(*) FROM brand_sections
`

func (q *Queries) CountBrandSections(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countBrandSections).Scan(&n)
	return n, err
}
