package srepair

import (
	"context"
	"database/sql"
	"log/slog"

	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mrepair"
	"fixmarkt/server/pkg/ordering"
)

var ErrNoRepairFound = sql.ErrNoRows

type RepairService struct {
	queries *catalogdb.Queries
	logger  *slog.Logger
}

func New(queries *catalogdb.Queries, logger *slog.Logger) RepairService {
	if logger == nil {
		logger = slog.Default()
	}
	return RepairService{queries: queries, logger: logger}
}

func (s RepairService) TX(tx *sql.Tx) RepairService {
	if tx == nil {
		return s
	}
	return RepairService{queries: s.queries.WithTx(tx), logger: s.logger}
}

// Create appends the repair to the end of its device's sequence.
func (s RepairService) Create(ctx context.Context, deviceID idwrap.IDWrap, name string, priceCents int64) (mrepair.Repair, error) {
	count, err := s.queries.CountRepairsByDevice(ctx, deviceID)
	if err != nil {
		return mrepair.Repair{}, err
	}
	repair := mrepair.Repair{
		ID:         idwrap.NewNow(),
		DeviceID:   deviceID,
		Name:       name,
		PriceCents: priceCents,
		Order:      float64(count),
	}
	if err := s.queries.InsertRepair(ctx, repair); err != nil {
		return mrepair.Repair{}, err
	}
	return repair, nil
}

func (s RepairService) Get(ctx context.Context, id idwrap.IDWrap) (mrepair.Repair, error) {
	return s.queries.GetRepair(ctx, id)
}

func (s RepairService) ListByDevice(ctx context.Context, deviceID idwrap.IDWrap) ([]mrepair.Repair, error) {
	return s.queries.ListRepairsByDevice(ctx, deviceID)
}

func (s RepairService) ListByName(ctx context.Context, name string) ([]mrepair.Repair, error) {
	return s.queries.ListRepairsByName(ctx, name)
}

func (s RepairService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return s.queries.DeleteRepair(ctx, id)
}

// ToRecords maps repairs onto the ordering engine's record shape.
func ToRecords(repairs []mrepair.Repair) []ordering.Record {
	records := make([]ordering.Record, len(repairs))
	for i, r := range repairs {
		records[i] = ordering.Record{ID: r.ID, Name: r.Name, Position: r.Order}
	}
	return records
}
