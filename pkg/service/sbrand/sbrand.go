package sbrand

import (
	"context"
	"database/sql"
	"log/slog"

	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mbrand"
	"fixmarkt/server/pkg/ordering"
)

var ErrNoBrandFound = sql.ErrNoRows

type BrandService struct {
	queries *catalogdb.Queries
	logger  *slog.Logger
}

func New(queries *catalogdb.Queries, logger *slog.Logger) BrandService {
	if logger == nil {
		logger = slog.Default()
	}
	return BrandService{queries: queries, logger: logger}
}

func (s BrandService) TX(tx *sql.Tx) BrandService {
	if tx == nil {
		return s
	}
	return BrandService{queries: s.queries.WithTx(tx), logger: s.logger}
}

// Create appends the brand to the end of its section's sequence (or the
// sectionless sequence when sectionID is nil).
func (s BrandService) Create(ctx context.Context, name string, sectionID *idwrap.IDWrap) (mbrand.Brand, error) {
	var count int64
	var err error
	if sectionID != nil {
		count, err = s.queries.CountBrandsBySection(ctx, *sectionID)
	} else {
		count, err = s.queries.CountBrandsWithoutSection(ctx)
	}
	if err != nil {
		return mbrand.Brand{}, err
	}

	brand := mbrand.Brand{
		ID:        idwrap.NewNow(),
		SectionID: sectionID,
		Name:      name,
		Order:     float64(count),
	}
	if err := s.queries.InsertBrand(ctx, brand); err != nil {
		return mbrand.Brand{}, err
	}
	return brand, nil
}

func (s BrandService) Get(ctx context.Context, id idwrap.IDWrap) (mbrand.Brand, error) {
	return s.queries.GetBrand(ctx, id)
}

func (s BrandService) List(ctx context.Context) ([]mbrand.Brand, error) {
	return s.queries.ListBrands(ctx)
}

// ListBySection returns one section's sequence; nil selects the brands
// without a section.
func (s BrandService) ListBySection(ctx context.Context, sectionID *idwrap.IDWrap) ([]mbrand.Brand, error) {
	if sectionID == nil {
		return s.queries.ListBrandsWithoutSection(ctx)
	}
	return s.queries.ListBrandsBySection(ctx, *sectionID)
}

func (s BrandService) Rename(ctx context.Context, id idwrap.IDWrap, name string) error {
	return s.queries.UpdateBrandName(ctx, id, name)
}

func (s BrandService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return s.queries.DeleteBrand(ctx, id)
}

// ToRecords maps brands onto the ordering engine's record shape.
func ToRecords(brands []mbrand.Brand) []ordering.Record {
	records := make([]ordering.Record, len(brands))
	for i, b := range brands {
		records[i] = ordering.Record{ID: b.ID, Name: b.Name, Position: b.Order}
	}
	return records
}
