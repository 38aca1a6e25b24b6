package catalogdb

import (
	"context"
	"database/sql"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mrepair"
)

const insertRepair = `
INSERT INTO repairs (id, device_id, name, price_cents, display_order)
VALUES (?, ?, ?, ?, ?)
`

func (q *Queries) InsertRepair(ctx context.Context, r mrepair.Repair) error {
	_, err := q.db.ExecContext(ctx, insertRepair, r.ID, r.DeviceID, r.Name, r.PriceCents, r.Order)
	return err
}

const getRepair = `
SELECT id, device_id, name, price_cents, display_order FROM repairs WHERE id = ?
`

func (q *Queries) GetRepair(ctx context.Context, id idwrap.IDWrap) (mrepair.Repair, error) {
	var r mrepair.Repair
	err := q.db.QueryRowContext(ctx, getRepair, id).Scan(&r.ID, &r.DeviceID, &r.Name, &r.PriceCents, &r.Order)
	return r, err
}

const listRepairsByDevice = `
SELECT id, device_id, name, price_cents, display_order
FROM repairs WHERE device_id = ? ORDER BY display_order, name
`

func (q *Queries) ListRepairsByDevice(ctx context.Context, deviceID idwrap.IDWrap) ([]mrepair.Repair, error) {
	rows, err := q.db.QueryContext(ctx, listRepairsByDevice, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRepairs(rows)
}

const listRepairsByName = `
SELECT id, device_id, name, price_cents, display_order
FROM repairs WHERE name = ? ORDER BY display_order
`

func (q *Queries) ListRepairsByName(ctx context.Context, name string) ([]mrepair.Repair, error) {
	rows, err := q.db.QueryContext(ctx, listRepairsByName, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRepairs(rows)
}

const updateRepairOrder = `
UPDATE repairs SET display_order = ? WHERE id = ?
`

func (q *Queries) UpdateRepairOrder(ctx context.Context, id idwrap.IDWrap, order float64) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateRepairOrder, order, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateRepairOrderByName = `
UPDATE repairs SET display_order = ? WHERE name = ?
`

// UpdateRepairOrderByName pushes a repair type's position onto every
// device-level copy. Repairs carry no foreign key to the type, only the
// denormalized name, so the match is by name across all devices.
func (q *Queries) UpdateRepairOrderByName(ctx context.Context, name string, order float64) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateRepairOrderByName, order, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateRepairNameByName = `
UPDATE repairs SET name = ? WHERE name = ?
`

// UpdateRepairNameByName renames every device-level copy matching the old
// display name.
func (q *Queries) UpdateRepairNameByName(ctx context.Context, oldName, newName string) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateRepairNameByName, newName, oldName)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteRepair = `
DELETE FROM repairs WHERE id = ?
`

func (q *Queries) DeleteRepair(ctx context.Context, id idwrap.IDWrap) error {
	_, err := q.db.ExecContext(ctx, deleteRepair, id)
	return err
}

const countRepairsByDevice = `
SELECT COUNT(*) FROM repairs WHERE device_id = ?
`

func (q *Queries) CountRepairsByDevice(ctx context.Context, deviceID idwrap.IDWrap) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countRepairsByDevice, deviceID).Scan(&n)
	return n, err
}

func scanRepairs(rows *sql.Rows) ([]mrepair.Repair, error) {
	var repairs []mrepair.Repair
	for rows.Next() {
		var r mrepair.Repair
		if err := rows.Scan(&r.ID, &r.DeviceID, &r.Name, &r.PriceCents, &r.Order); err != nil {
			return nil, err
		}
		repairs = append(repairs, r)
	}
	return repairs, rows.Err()
}
