package catalogdb

import (
	"context"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mrepairtype"
)

const insertRepairType = `
INSERT INTO repair_types (id, name, display_order) VALUES (?, ?, ?)
`

func (q *Queries) InsertRepairType(ctx context.Context, rt mrepairtype.RepairType) error {
	_, err := q.db.ExecContext(ctx, insertRepairType, rt.ID, rt.Name, rt.Order)
	return err
}

const getRepairType = `
SELECT id, name, display_order FROM repair_types WHERE id = ?
`

func (q *Queries) GetRepairType(ctx context.Context, id idwrap.IDWrap) (mrepairtype.RepairType, error) {
	var rt mrepairtype.RepairType
	err := q.db.QueryRowContext(ctx, getRepairType, id).Scan(&rt.ID, &rt.Name, &rt.Order)
	return rt, err
}

const listRepairTypes = `
SELECT id, name, display_order FROM repair_types ORDER BY display_order, name
`

func (q *Queries) ListRepairTypes(ctx context.Context) ([]mrepairtype.RepairType, error) {
	rows, err := q.db.QueryContext(ctx, listRepairTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []mrepairtype.RepairType
	for rows.Next() {
		var rt mrepairtype.RepairType
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.Order); err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, rows.Err()
}

const updateRepairTypeOrder = `
UPDATE repair_types SET display_order = ? WHERE id = ?
`

func (q *Queries) UpdateRepairTypeOrder(ctx context.Context, id idwrap.IDWrap, order float64) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateRepairTypeOrder, order, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateRepairTypeName = `
UPDATE repair_types SET name = ? WHERE id = ?
`

func (q *Queries) UpdateRepairTypeName(ctx context.Context, id idwrap.IDWrap, name string) error {
	_, err := q.db.ExecContext(ctx, updateRepairTypeName, name, id)
	return err
}

const deleteRepairType = `
DELETE FROM repair_types WHERE id = ?
`

func (q *Queries) DeleteRepairType(ctx context.Context, id idwrap.IDWrap) error {
	_, err := q.db.ExecContext(ctx, deleteRepairType, id)
	return err
}

const countRepairTypes = `
SELECT COUNT(*) FROM repair_types
`

func (q *Queries) CountRepairTypes(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countRepairTypes).Scan(&n)
	return n, err
}
