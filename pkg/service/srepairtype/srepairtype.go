package srepairtype

import (
	"context"
	"database/sql"
	"log/slog"

	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mrepairtype"
	"fixmarkt/server/pkg/ordering"
)

var ErrNoRepairTypeFound = sql.ErrNoRows

type RepairTypeService struct {
	queries *catalogdb.Queries
	logger  *slog.Logger
}

func New(queries *catalogdb.Queries, logger *slog.Logger) RepairTypeService {
	if logger == nil {
		logger = slog.Default()
	}
	return RepairTypeService{queries: queries, logger: logger}
}

func (s RepairTypeService) TX(tx *sql.Tx) RepairTypeService {
	if tx == nil {
		return s
	}
	return RepairTypeService{queries: s.queries.WithTx(tx), logger: s.logger}
}

// Create appends the repair type to the end of the global sequence.
func (s RepairTypeService) Create(ctx context.Context, name string) (mrepairtype.RepairType, error) {
	count, err := s.queries.CountRepairTypes(ctx)
	if err != nil {
		return mrepairtype.RepairType{}, err
	}
	rt := mrepairtype.RepairType{
		ID:    idwrap.NewNow(),
		Name:  name,
		Order: float64(count),
	}
	if err := s.queries.InsertRepairType(ctx, rt); err != nil {
		return mrepairtype.RepairType{}, err
	}
	return rt, nil
}

func (s RepairTypeService) Get(ctx context.Context, id idwrap.IDWrap) (mrepairtype.RepairType, error) {
	return s.queries.GetRepairType(ctx, id)
}

func (s RepairTypeService) List(ctx context.Context) ([]mrepairtype.RepairType, error) {
	return s.queries.ListRepairTypes(ctx)
}

// Rename updates the canonical name and cascades it to every device-level
// repair still carrying the old name. Device repairs link to the type by
// that denormalized name, so the old value is the join key.
func (s RepairTypeService) Rename(ctx context.Context, id idwrap.IDWrap, newName string) error {
	rt, err := s.queries.GetRepairType(ctx, id)
	if err != nil {
		return err
	}
	if err := s.queries.UpdateRepairTypeName(ctx, id, newName); err != nil {
		return err
	}
	affected, err := s.queries.UpdateRepairNameByName(ctx, rt.Name, newName)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "repair type renamed",
		slog.String("id", id.String()),
		slog.String("old", rt.Name),
		slog.String("new", newName),
		slog.Int64("repairs_updated", affected))
	return nil
}

func (s RepairTypeService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return s.queries.DeleteRepairType(ctx, id)
}

// ToRecords maps repair types onto the ordering engine's record shape.
func ToRecords(types []mrepairtype.RepairType) []ordering.Record {
	records := make([]ordering.Record, len(types))
	for i, rt := range types {
		records[i] = ordering.Record{ID: rt.ID, Name: rt.Name, Position: rt.Order}
	}
	return records
}
