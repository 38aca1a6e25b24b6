package sbrandsection

import (
	"context"
	"database/sql"
	"log/slog"

	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mbrandsection"
	"fixmarkt/server/pkg/ordering"
)

var ErrNoBrandSectionFound = sql.ErrNoRows

type BrandSectionService struct {
	queries *catalogdb.Queries
	logger  *slog.Logger
}

func New(queries *catalogdb.Queries, logger *slog.Logger) BrandSectionService {
	if logger == nil {
		logger = slog.Default()
	}
	return BrandSectionService{queries: queries, logger: logger}
}

func (s BrandSectionService) TX(tx *sql.Tx) BrandSectionService {
	if tx == nil {
		return s
	}
	return BrandSectionService{queries: s.queries.WithTx(tx), logger: s.logger}
}

// Create appends a new section to the end of the global sequence.
func (s BrandSectionService) Create(ctx context.Context, name string) (mbrandsection.BrandSection, error) {
	count, err := s.queries.CountBrandSections(ctx)
	if err != nil {
		return mbrandsection.BrandSection{}, err
	}
	section := mbrandsection.BrandSection{
		ID:    idwrap.NewNow(),
		Name:  name,
		Order: float64(count),
	}
	if err := s.queries.InsertBrandSection(ctx, section); err != nil {
		return mbrandsection.BrandSection{}, err
	}
	return section, nil
}

func (s BrandSectionService) Get(ctx context.Context, id idwrap.IDWrap) (mbrandsection.BrandSection, error) {
	return s.queries.GetBrandSection(ctx, id)
}

func (s BrandSectionService) List(ctx context.Context) ([]mbrandsection.BrandSection, error) {
	return s.queries.ListBrandSections(ctx)
}

func (s BrandSectionService) Rename(ctx context.Context, id idwrap.IDWrap, name string) error {
	return s.queries.UpdateBrandSectionName(ctx, id, name)
}

// Delete removes the section and detaches its member brands into the
// "no section" group, so no brand is left with a dangling reference.
func (s BrandSectionService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	detached, err := s.queries.ClearBrandSectionRefs(ctx, id)
	if err != nil {
		return err
	}
	if err := s.queries.DeleteBrandSection(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "brand section deleted",
		slog.String("id", id.String()), slog.Int64("brands_detached", detached))
	return nil
}

// ToRecords maps sections onto the ordering engine's record shape.
func ToRecords(sections []mbrandsection.BrandSection) []ordering.Record {
	records := make([]ordering.Record, len(sections))
	for i, sec := range sections {
		records[i] = ordering.Record{ID: sec.ID, Name: sec.Name, Position: sec.Order}
	}
	return records
}
