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

// OrderService runs the position engine against the catalog store: resolve
// the scope, repair it when dirty, then apply a midpoint move or a bulk
// sequence commit, plus the entity-specific propagation pass.
type OrderService struct {
	db      *sql.DB
	queries *catalogdb.Queries
	logger  *slog.Logger
}

func New(db *sql.DB, queries *catalogdb.Queries, logger *slog.Logger) OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	return OrderService{db: db, queries: queries, logger: logger}
}

// MoveRequest is the uniform single-step move surface.
type MoveRequest struct {
	Entity    ordering.Entity
	ID        idwrap.IDWrap
	Direction ordering.Direction
	Scope     ordering.ScopeRequest
}

// Move shifts one record a single step within its scope, writing only that
// record's position. Repair-type moves additionally cascade the new value
// onto every device-level repair sharing the type's name. The scope is
// normalized first when duplicate positions are found; that repair write
// stands even if the move itself then fails, since it is harmless on its
// own.
func (s OrderService) Move(ctx context.Context, req MoveRequest) error {
	scope, err := ordering.ResolveScope(req.Entity, req.Scope)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin move tx: %w", err)
	}
	defer tx.Rollback()

	q := s.queries.WithTx(tx)
	records, write, err := s.fetchScope(ctx, q, scope, &req.ID)
	if err != nil {
		return err
	}

	cmp := ordering.DutchNames()
	if updates, dirty := ordering.Normalize(records, cmp); dirty {
		if _, err := applyUpdates(ctx, write, updates); err != nil {
			return fmt.Errorf("normalize scope: %w", err)
		}
		if scope.Entity == ordering.EntityRepairType {
			if err := s.propagateRepairTypeOrder(ctx, q, updates); err != nil {
				return err
			}
		}
		s.logger.InfoContext(ctx, "scope normalized",
			slog.String("entity", scope.Entity.String()),
			slog.String("field", scope.Field.String()),
			slog.Int("records", len(records)))
	}

	result, moveErr := ordering.Move(records, req.ID, req.Direction)
	if moveErr != nil {
		// Keep the normalization repair; only the move is refused.
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit normalize: %w", err)
		}
		return moveErr
	}

	if result.Moved {
		if _, err := write(ctx, req.ID, result.Position); err != nil {
			return fmt.Errorf("write position: %w", err)
		}
		// Device-level repairs mirror their type's position, keyed by name.
		if scope.Entity == ordering.EntityRepairType {
			update := []ordering.PositionUpdate{{ID: req.ID, Position: result.Position}}
			if err := s.propagateRepairTypeOrder(ctx, q, update); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit move: %w", err)
	}

	s.logger.InfoContext(ctx, "record moved",
		slog.String("entity", scope.Entity.String()),
		slog.String("id", req.ID.String()),
		slog.Bool("moved", result.Moved),
		slog.Float64("position", result.Position))
	return nil
}

// NormalizeScope repairs one scope's sequence on demand and reports how
// many records were rewritten. Zero means the scope was already clean.
// Rewritten repair-type positions cascade to same-named repairs, like any
// other repair-type reorder.
func (s OrderService) NormalizeScope(ctx context.Context, entity ordering.Entity, scopeReq ordering.ScopeRequest) (int, error) {
	scope, err := ordering.ResolveScope(entity, scopeReq)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin normalize tx: %w", err)
	}
	defer tx.Rollback()

	q := s.queries.WithTx(tx)
	records, write, err := s.fetchScope(ctx, q, scope, nil)
	if err != nil {
		return 0, err
	}

	updates, dirty := ordering.Normalize(records, ordering.DutchNames())
	if !dirty {
		return 0, nil
	}
	if _, err := applyUpdates(ctx, write, updates); err != nil {
		return 0, err
	}
	if scope.Entity == ordering.EntityRepairType {
		if err := s.propagateRepairTypeOrder(ctx, q, updates); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit normalize: %w", err)
	}
	return len(updates), nil
}

// applyUpdates reports how many rows the writes actually hit; ids with no
// matching row write nothing.
func applyUpdates(ctx context.Context, write positionWriter, updates []ordering.PositionUpdate) (int64, error) {
	var affected int64
	for _, u := range updates {
		n, err := write(ctx, u.ID, u.Position)
		if err != nil {
			return affected, err
		}
		affected += n
	}
	return affected, nil
}

func asEngineNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ordering.ErrRecordNotFound
	}
	return err
}
