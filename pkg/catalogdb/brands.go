package catalogdb

import (
	"context"
	"database/sql"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mbrand"
)

const insertBrand = `
INSERT INTO brands (id, section_id, name, display_order) VALUES (?, ?, ?, ?)
`

func (q *Queries) InsertBrand(ctx context.Context, b mbrand.Brand) error {
	_, err := q.db.ExecContext(ctx, insertBrand, b.ID, sectionArg(b.SectionID), b.Name, b.Order)
	return err
}

const getBrand = `
SELECT id, section_id, name, display_order FROM brands WHERE id = ?
`

func (q *Queries) GetBrand(ctx context.Context, id idwrap.IDWrap) (mbrand.Brand, error) {
	row := q.db.QueryRowContext(ctx, getBrand, id)
	return scanBrand(row)
}

const listBrands = `
SELECT id, section_id, name, display_order FROM brands ORDER BY display_order, name
`

func (q *Queries) ListBrands(ctx context.Context) ([]mbrand.Brand, error) {
	rows, err := q.db.QueryContext(ctx, listBrands)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBrands(rows)
}

const listBrandsBySection = `
SELECT id, section_id, name, display_order FROM brands
WHERE section_id = ? ORDER BY display_order, name
`

func (q *Queries) ListBrandsBySection(ctx context.Context, sectionID idwrap.IDWrap) ([]mbrand.Brand, error) {
	rows, err := q.db.QueryContext(ctx, listBrandsBySection, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBrands(rows)
}

// Brands never assigned a section, or detached from one, form their own
// sequence. Legacy rows may carry an empty blob instead of NULL.
const listBrandsWithoutSection = `
SELECT id, section_id, name, display_order FROM brands
WHERE section_id IS NULL OR section_id = X''
ORDER BY display_order, name
`

func (q *Queries) ListBrandsWithoutSection(ctx context.Context) ([]mbrand.Brand, error) {
	rows, err := q.db.QueryContext(ctx, listBrandsWithoutSection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBrands(rows)
}

const updateBrandOrder = `
UPDATE brands SET display_order = ? WHERE id = ?
`

func (q *Queries) UpdateBrandOrder(ctx context.Context, id idwrap.IDWrap, order float64) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateBrandOrder, order, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateBrandName = `
UPDATE brands SET name = ? WHERE id = ?
`

func (q *Queries) UpdateBrandName(ctx context.Context, id idwrap.IDWrap, name string) error {
	_, err := q.db.ExecContext(ctx, updateBrandName, name, id)
	return err
}

const clearBrandSectionRefs = `
UPDATE brands SET section_id = NULL WHERE section_id = ?
`

// ClearBrandSectionRefs detaches every brand pointing at the given section,
// moving them into the "no section" group.
func (q *Queries) ClearBrandSectionRefs(ctx context.Context, sectionID idwrap.IDWrap) (int64, error) {
	res, err := q.db.ExecContext(ctx, clearBrandSectionRefs, sectionID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteBrand = `
DELETE FROM brands WHERE id = ?
`

func (q *Queries) DeleteBrand(ctx context.Context, id idwrap.IDWrap) error {
	_, err := q.db.ExecContext(ctx, deleteBrand, id)
	return err
}

const countBrandsBySection = `
SELECT COUNT(*) FROM brands WHERE section_id = ?
`

func (q *Queries) CountBrandsBySection(ctx context.Context, sectionID idwrap.IDWrap) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countBrandsBySection, sectionID).Scan(&n)
	return n, err
}

const countBrandsWithoutSection = `
SELECT COUNT(*) FROM brands WHERE section_id IS NULL OR section_id = X''
`

func (q *Queries) CountBrandsWithoutSection(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countBrandsWithoutSection).Scan(&n)
	return n, err
}

func sectionArg(id *idwrap.IDWrap) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBrand(row rowScanner) (mbrand.Brand, error) {
	var b mbrand.Brand
	var sectionID []byte
	if err := row.Scan(&b.ID, &sectionID, &b.Name, &b.Order); err != nil {
		return mbrand.Brand{}, err
	}
	if len(sectionID) > 0 {
		id, err := idwrap.NewFromBytes(sectionID)
		if err != nil {
			return mbrand.Brand{}, err
		}
		b.SectionID = &id
	}
	return b, nil
}

func scanBrands(rows *sql.Rows) ([]mbrand.Brand, error) {
	var brands []mbrand.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}
