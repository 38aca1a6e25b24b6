package serverrun

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fixmarkt/server/internal/api"
	"fixmarkt/server/internal/api/rcatalog"
	"fixmarkt/server/internal/api/rorder"
	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/io/catalogyaml"
	"fixmarkt/server/pkg/service/sbrand"
	"fixmarkt/server/pkg/service/sbrandsection"
	"fixmarkt/server/pkg/service/sdevice"
	"fixmarkt/server/pkg/service/sorder"
	"fixmarkt/server/pkg/service/srepair"
	"fixmarkt/server/pkg/service/srepairtype"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

// Run wires the catalog server together and serves until a signal.
//
// Environment variables (besides the listener ones in internal/api):
//   - DB_PATH: sqlite file path, defaults to fixmarkt.db
//   - SEED_FILE: optional YAML catalog imported into an empty database
func Run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "fixmarkt.db"
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := catalogdb.CreateLocalTables(ctx, db); err != nil {
		return err
	}

	queries := catalogdb.New(db)
	sections := sbrandsection.New(queries, logger)
	brands := sbrand.New(queries, logger)
	devices := sdevice.New(queries, logger)
	types := srepairtype.New(queries, logger)
	repairs := srepair.New(queries, logger)
	orders := sorder.New(db, queries, logger)

	if err := maybeSeed(ctx, logger, queries, sections, brands, devices, types, repairs); err != nil {
		return err
	}

	services := []api.Service{
		{Path: "/catalog.order.v1/", Handler: rorder.New(orders, logger).Routes()},
		{Path: "/catalog.v1/", Handler: rcatalog.New(sections, brands, devices, types, repairs, logger).Routes()},
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.ListenServices(services, port)
	})
	g.Go(func() error {
		<-ctx.Done()
		return ctx.Err()
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// maybeSeed imports SEED_FILE into an empty catalog. A non-empty catalog
// is left alone so restarts never duplicate records.
func maybeSeed(
	ctx context.Context,
	logger *slog.Logger,
	queries *catalogdb.Queries,
	sections sbrandsection.BrandSectionService,
	brands sbrand.BrandService,
	devices sdevice.DeviceService,
	types srepairtype.RepairTypeService,
	repairs srepair.RepairService,
) error {
	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		return nil
	}

	count, err := queries.CountBrandSections(ctx)
	if err != nil {
		return err
	}
	typeCount, err := queries.CountRepairTypes(ctx)
	if err != nil {
		return err
	}
	if count > 0 || typeCount > 0 {
		logger.Info("catalog not empty, skipping seed", "file", seedFile)
		return nil
	}

	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	importer := catalogyaml.NewImporter(sections, brands, devices, types, repairs, logger)
	stats, err := importer.Import(ctx, f)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	logger.Info("catalog seeded", "brands", stats.Brands, "devices", stats.Devices)
	return nil
}
