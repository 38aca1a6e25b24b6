package sdevice

import (
	"context"
	"database/sql"
	"log/slog"

	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mdevice"
	"fixmarkt/server/pkg/ordering"
)

var ErrNoDeviceFound = sql.ErrNoRows

type DeviceService struct {
	queries *catalogdb.Queries
	logger  *slog.Logger
}

func New(queries *catalogdb.Queries, logger *slog.Logger) DeviceService {
	if logger == nil {
		logger = slog.Default()
	}
	return DeviceService{queries: queries, logger: logger}
}

func (s DeviceService) TX(tx *sql.Tx) DeviceService {
	if tx == nil {
		return s
	}
	return DeviceService{queries: s.queries.WithTx(tx), logger: s.logger}
}

// Create appends the device to the end of both its sequences: Order within
// the brand, TypeOrder within the device type.
func (s DeviceService) Create(ctx context.Context, brandID idwrap.IDWrap, deviceType, name string) (mdevice.Device, error) {
	brandCount, err := s.queries.CountDevicesByBrand(ctx, brandID)
	if err != nil {
		return mdevice.Device{}, err
	}
	typeCount, err := s.queries.CountDevicesByType(ctx, deviceType)
	if err != nil {
		return mdevice.Device{}, err
	}

	device := mdevice.Device{
		ID:         idwrap.NewNow(),
		BrandID:    brandID,
		DeviceType: deviceType,
		Name:       name,
		Order:      float64(brandCount),
		TypeOrder:  float64(typeCount),
	}
	if err := s.queries.InsertDevice(ctx, device); err != nil {
		return mdevice.Device{}, err
	}
	return device, nil
}

func (s DeviceService) Get(ctx context.Context, id idwrap.IDWrap) (mdevice.Device, error) {
	return s.queries.GetDevice(ctx, id)
}

func (s DeviceService) List(ctx context.Context) ([]mdevice.Device, error) {
	return s.queries.ListDevices(ctx)
}

func (s DeviceService) ListByBrand(ctx context.Context, brandID idwrap.IDWrap) ([]mdevice.Device, error) {
	return s.queries.ListDevicesByBrand(ctx, brandID)
}

func (s DeviceService) ListByType(ctx context.Context, deviceType string) ([]mdevice.Device, error) {
	return s.queries.ListDevicesByType(ctx, deviceType)
}

func (s DeviceService) Rename(ctx context.Context, id idwrap.IDWrap, name string) error {
	return s.queries.UpdateDeviceName(ctx, id, name)
}

func (s DeviceService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return s.queries.DeleteDevice(ctx, id)
}

// ToRecords maps devices onto the ordering engine's record shape for one
// of the two position fields. The field choice is the caller's enum
// dispatch; the two sequences never mix.
func ToRecords(devices []mdevice.Device, field ordering.Field) []ordering.Record {
	records := make([]ordering.Record, len(devices))
	for i, d := range devices {
		pos := d.Order
		if field == ordering.FieldTypeOrder {
			pos = d.TypeOrder
		}
		records[i] = ordering.Record{ID: d.ID, Name: d.Name, Position: pos}
	}
	return records
}
