package sorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/ordering"
)

// CommitRequest is the bulk "apply this exact sequence" surface used by
// sort-A-Z, sort-Z-A and drag-and-drop commits.
type CommitRequest struct {
	Entity     ordering.Entity
	OrderedIDs []idwrap.IDWrap
	Scope      ordering.ScopeRequest
}

// Commit assigns position = index for every id in the supplied order, as
// one batched write, and returns how many rows were actually written; ids
// matching no row write nothing. Ids outside the list are untouched, so a
// caller may commit a single section's subset. Repair-type commits
// additionally push each index onto every device-level repair sharing the
// type's name.
//
// Re-committing the same list is idempotent, which makes a failed bulk
// write safe to retry.
func (s OrderService) Commit(ctx context.Context, req CommitRequest) (int, error) {
	scope, err := ordering.ResolveScope(req.Entity, req.Scope)
	if err != nil {
		return 0, err
	}
	if len(req.OrderedIDs) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin commit tx: %w", err)
	}
	defer tx.Rollback()

	q := s.queries.WithTx(tx)
	write, err := writerFor(q, scope)
	if err != nil {
		return 0, err
	}

	plan := ordering.SequencePlan(req.OrderedIDs)
	affected, err := applyUpdates(ctx, write, plan)
	if err != nil {
		return 0, fmt.Errorf("commit sequence: %w", err)
	}

	if scope.Entity == ordering.EntityRepairType {
		if err := s.propagateRepairTypeOrder(ctx, q, plan); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sequence tx: %w", err)
	}

	s.logger.InfoContext(ctx, "sequence committed",
		slog.String("entity", scope.Entity.String()),
		slog.String("field", scope.Field.String()),
		slog.Int64("records", affected))
	return int(affected), nil
}

// CommitDevicesByBrand commits one flat list interleaving every brand's
// devices. Each brand's sub-sequence restarts at 0, so the per-brand
// counters are re-derived in a single pass rather than taken from the flat
// index.
func (s OrderService) CommitDevicesByBrand(ctx context.Context, orderedIDs []idwrap.IDWrap) (int, error) {
	return s.commitDevicesGrouped(ctx, orderedIDs, ordering.FieldOrder)
}

// CommitDevicesByType is CommitDevicesByBrand's twin for the device-type
// sequence and the typeOrder field.
func (s OrderService) CommitDevicesByType(ctx context.Context, orderedIDs []idwrap.IDWrap) (int, error) {
	return s.commitDevicesGrouped(ctx, orderedIDs, ordering.FieldTypeOrder)
}

func (s OrderService) commitDevicesGrouped(ctx context.Context, orderedIDs []idwrap.IDWrap, field ordering.Field) (int, error) {
	if len(orderedIDs) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin device commit tx: %w", err)
	}
	defer tx.Rollback()

	q := s.queries.WithTx(tx)
	devices, err := q.ListDevices(ctx)
	if err != nil {
		return 0, err
	}
	scopes := make(map[string]string, len(devices))
	for _, d := range devices {
		if field == ordering.FieldTypeOrder {
			scopes[d.ID.String()] = d.DeviceType
		} else {
			scopes[d.ID.String()] = d.BrandID.String()
		}
	}

	plan := ordering.GroupedSequencePlan(orderedIDs, func(id idwrap.IDWrap) (string, bool) {
		scope, ok := scopes[id.String()]
		return scope, ok
	})

	write := q.UpdateDeviceOrder
	if field == ordering.FieldTypeOrder {
		write = q.UpdateDeviceTypeOrder
	}
	affected, err := applyUpdates(ctx, write, plan)
	if err != nil {
		return 0, fmt.Errorf("commit device sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit device sequence tx: %w", err)
	}

	if skipped := len(orderedIDs) - len(plan); skipped > 0 {
		s.logger.WarnContext(ctx, "device commit skipped unknown ids", slog.Int("skipped", skipped))
	}
	s.logger.InfoContext(ctx, "device sequence committed",
		slog.String("field", field.String()), slog.Int64("records", affected))
	return int(affected), nil
}

// propagateRepairTypeOrder pushes each committed repair-type position onto
// all device-level repairs carrying the same name. Unknown ids in the
// committed list are skipped rather than failing the batch.
func (s OrderService) propagateRepairTypeOrder(ctx context.Context, q *catalogdb.Queries, plan []ordering.PositionUpdate) error {
	var updated int64
	for _, u := range plan {
		rt, err := q.GetRepairType(ctx, u.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				s.logger.WarnContext(ctx, "commit references unknown repair type",
					slog.String("id", u.ID.String()))
				continue
			}
			return err
		}
		n, err := q.UpdateRepairOrderByName(ctx, rt.Name, u.Position)
		if err != nil {
			return fmt.Errorf("propagate order for %q: %w", rt.Name, err)
		}
		updated += n
	}
	s.logger.InfoContext(ctx, "repair order propagated", slog.Int64("repairs_updated", updated))
	return nil
}
