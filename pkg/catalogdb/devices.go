package catalogdb

import (
	"context"
	"database/sql"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mdevice"
)

const insertDevice = `
INSERT INTO devices (id, brand_id, device_type, name, display_order, type_order)
VALUES (?, ?, ?, ?, ?, ?)
`

func (q *Queries) InsertDevice(ctx context.Context, d mdevice.Device) error {
	_, err := q.db.ExecContext(ctx, insertDevice, d.ID, d.BrandID, d.DeviceType, d.Name, d.Order, d.TypeOrder)
	return err
}

const getDevice = `
SELECT id, brand_id, device_type, name, display_order, type_order FROM devices WHERE id = ?
`

func (q *Queries) GetDevice(ctx context.Context, id idwrap.IDWrap) (mdevice.Device, error) {
	var d mdevice.Device
	err := q.db.QueryRowContext(ctx, getDevice, id).Scan(
		&d.ID, &d.BrandID, &d.DeviceType, &d.Name, &d.Order, &d.TypeOrder)
	return d, err
}

const listDevices = `
SELECT id, brand_id, device_type, name, display_order, type_order
FROM devices ORDER BY display_order, name
`

func (q *Queries) ListDevices(ctx context.Context) ([]mdevice.Device, error) {
	rows, err := q.db.QueryContext(ctx, listDevices)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDevices(rows)
}

const listDevicesByBrand = `
SELECT id, brand_id, device_type, name, display_order, type_order
FROM devices WHERE brand_id = ? ORDER BY display_order, name
`

func (q *Queries) ListDevicesByBrand(ctx context.Context, brandID idwrap.IDWrap) ([]mdevice.Device, error) {
	rows, err := q.db.QueryContext(ctx, listDevicesByBrand, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDevices(rows)
}

const listDevicesByType = `
SELECT id, brand_id, device_type, name, display_order, type_order
FROM devices WHERE device_type = ? ORDER BY type_order, name
`

func (q *Queries) ListDevicesByType(ctx context.Context, deviceType string) ([]mdevice.Device, error) {
	rows, err := q.db.QueryContext(ctx, listDevicesByType, deviceType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDevices(rows)
}

const updateDeviceOrder = `
UPDATE devices SET display_order = ? WHERE id = ?
`

func (q *Queries) UpdateDeviceOrder(ctx context.Context, id idwrap.IDWrap, order float64) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateDeviceOrder, order, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateDeviceTypeOrder = `
UPDATE devices SET type_order = ? WHERE id = ?
`

func (q *Queries) UpdateDeviceTypeOrder(ctx context.Context, id idwrap.IDWrap, order float64) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateDeviceTypeOrder, order, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateDeviceName = `
UPDATE devices SET name = ? WHERE id = ?
`

func (q *Queries) UpdateDeviceName(ctx context.Context, id idwrap.IDWrap, name string) error {
	_, err := q.db.ExecContext(ctx, updateDeviceName, name, id)
	return err
}

const deleteDevice = `
DELETE FROM devices WHERE id = ?
`

func (q *Queries) DeleteDevice(ctx context.Context, id idwrap.IDWrap) error {
	_, err := q.db.ExecContext(ctx, deleteDevice, id)
	return err
}

const countDevicesByBrand = `
SELECT COUNT(*) FROM devices WHERE brand_id = ?
`

func (q *Queries) CountDevicesByBrand(ctx context.Context, brandID idwrap.IDWrap) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countDevicesByBrand, brandID).Scan(&n)
	return n, err
}

const countDevicesByType = `
SELECT COUNT(*) FROM devices WHERE device_type = ?
`

func (q *Queries) CountDevicesByType(ctx context.Context, deviceType string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countDevicesByType, deviceType).Scan(&n)
	return n, err
}

func scanDevices(rows *sql.Rows) ([]mdevice.Device, error) {
	var devices []mdevice.Device
	for rows.Next() {
		var d mdevice.Device
		if err := rows.Scan(&d.ID, &d.BrandID, &d.DeviceType, &d.Name, &d.Order, &d.TypeOrder); err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}
