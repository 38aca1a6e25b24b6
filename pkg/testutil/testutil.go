package testutil

import (
	"context"
	"database/sql"
	"testing"

	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/dbtest"
	"fixmarkt/server/pkg/logger/mocklogger"
	"fixmarkt/server/pkg/service/sbrand"
	"fixmarkt/server/pkg/service/sbrandsection"
	"fixmarkt/server/pkg/service/sdevice"
	"fixmarkt/server/pkg/service/sorder"
	"fixmarkt/server/pkg/service/srepair"
	"fixmarkt/server/pkg/service/srepairtype"
)

type BaseDBQueries struct {
	Queries *catalogdb.Queries
	DB      *sql.DB
	t       *testing.T
	ctx     context.Context
}

type BaseTestServices struct {
	DB       *sql.DB
	Sections sbrandsection.BrandSectionService
	Brands   sbrand.BrandService
	Devices  sdevice.DeviceService
	Types    srepairtype.RepairTypeService
	Repairs  srepair.RepairService
	Orders   sorder.OrderService
}

func CreateBaseDB(ctx context.Context, t *testing.T) *BaseDBQueries {
	db, err := dbtest.GetTestDB(ctx)
	if err != nil {
		t.Fatal(err)
	}
	queries := catalogdb.New(db)

	return &BaseDBQueries{Queries: queries, t: t, ctx: ctx, DB: db}
}

func (c BaseDBQueries) GetBaseServices() BaseTestServices {
	queries := c.Queries

	mockLogger := mocklogger.NewMockLogger()
	return BaseTestServices{
		DB:       c.DB,
		Sections: sbrandsection.New(queries, mockLogger),
		Brands:   sbrand.New(queries, mockLogger),
		Devices:  sdevice.New(queries, mockLogger),
		Types:    srepairtype.New(queries, mockLogger),
		Repairs:  srepair.New(queries, mockLogger),
		Orders:   sorder.New(c.DB, queries, mockLogger),
	}
}

func (b BaseDBQueries) Close() {
	if err := b.DB.Close(); err != nil {
		b.t.Error(err)
	}
}

func AssertFatal[c comparable](t *testing.T, expected, got c) {
	t.Helper()
	if got != expected {
		t.Fatalf("got %v, expected %v", got, expected)
	}
}

func Assert[c comparable](t *testing.T, expected, got c) {
	t.Helper()
	if got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
}
