package sorder_test

import (
	"context"
	"testing"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/ordering"
	"fixmarkt/server/pkg/service/sorder"
	"fixmarkt/server/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func TestCommitBrandSequence(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	svc := base.GetBaseServices()

	section, err := svc.Sections.Create(ctx, "Telefoons")
	require.NoError(t, err)
	brands := seedBrands(t, ctx, svc, &section.ID, "Apple", "Samsung", "Nokia")

	// Z-A sort commits the reversed list.
	updated, err := svc.Orders.Commit(ctx, sorder.CommitRequest{
		Entity:     ordering.EntityBrand,
		OrderedIDs: []idwrap.IDWrap{brands[1].ID, brands[2].ID, brands[0].ID},
	})
	require.NoError(t, err)
	require.Equal(t, 3, updated)

	listed, err := svc.Brands.ListBySection(ctx, &section.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Samsung", "Nokia", "Apple"}, brandNames(listed))
	for i, b := range listed {
		require.Equal(t, float64(i), b.Order)
	}

	// Re-committing the same list changes nothing.
	updated, err = svc.Orders.Commit(ctx, sorder.CommitRequest{
		Entity:     ordering.EntityBrand,
		OrderedIDs: []idwrap.IDWrap{brands[1].ID, brands[2].ID, brands[0].ID},
	})
	require.NoError(t, err)
	require.Equal(t, 3, updated)
	again, err := svc.Brands.ListBySection(ctx, &section.ID)
	require.NoError(t, err)
	require.Equal(t, brandNames(listed), brandNames(again))
}

func TestCommitEmptyListIsNoop(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	svc := base.GetBaseServices()

	updated, err := svc.Orders.Commit(ctx, sorder.CommitRequest{Entity: ordering.EntityBrand})
	require.NoError(t, err)
	require.Equal(t, 0, updated)
}

func TestCommitPartialSubset(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	svc := base.GetBaseServices()

	section, err := svc.Sections.Create(ctx, "Telefoons")
	require.NoError(t, err)
	brands := seedBrands(t, ctx, svc, &section.ID, "Apple", "Samsung", "Nokia")

	// Only two of three brands are in the list; the third keeps its value.
	updated, err := svc.Orders.Commit(ctx, sorder.CommitRequest{
		Entity:     ordering.EntityBrand,
		OrderedIDs: []idwrap.IDWrap{brands[1].ID, brands[0].ID},
	})
	require.NoError(t, err)
	require.Equal(t, 2, updated)

	nokia, err := svc.Brands.Get(ctx, brands[2].ID)
	require.NoError(t, err)
	require.Equal(t, float64(2), nokia.Order)
}

func TestCommitRepairTypesPropagatesToRepairs(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	svc := base.GetBaseServices()

	screen, err := svc.Types.Create(ctx, "Scherm vervangen")
	require.NoError(t, err)
	battery, err := svc.Types.Create(ctx, "Batterij vervangen")
	require.NoError(t, err)

	section, err := svc.Sections.Create(ctx, "Telefoons")
	require.NoError(t, err)
	apple := seedBrands(t, ctx, svc, &section.ID, "Apple")[0]
	device, err := svc.Devices.Create(ctx, apple.ID, "smartphone", "iPhone 15")
	require.NoError(t, err)
	other, err := svc.Devices.Create(ctx, apple.ID, "smartphone", "iPhone 14")
	require.NoError(t, err)

	_, err = svc.Repairs.Create(ctx, device.ID, "Scherm vervangen", 12900)
	require.NoError(t, err)
	_, err = svc.Repairs.Create(ctx, device.ID, "Batterij vervangen", 7900)
	require.NoError(t, err)
	_, err = svc.Repairs.Create(ctx, other.ID, "Scherm vervangen", 11900)
	require.NoError(t, err)

	updated, err := svc.Orders.Commit(ctx, sorder.CommitRequest{
		Entity:     ordering.EntityRepairType,
		OrderedIDs: []idwrap.IDWrap{battery.ID, screen.ID},
	})
	require.NoError(t, err)
	require.Equal(t, 2, updated)

	// Every device now lists its repairs in the committed type order.
	listed, err := svc.Repairs.ListByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.Equal(t, "Batterij vervangen", listed[0].Name)
	require.Equal(t, "Scherm vervangen", listed[1].Name)

	screens, err := svc.Repairs.ListByName(ctx, "Scherm vervangen")
	require.NoError(t, err)
	for _, r := range screens {
		require.Equal(t, float64(1), r.Order)
	}
}

func TestCommitRepairTypesSkipsUnknownIDs(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	svc := base.GetBaseServices()

	screen, err := svc.Types.Create(ctx, "Scherm vervangen")
	require.NoError(t, err)

	// The unknown id matches no row, so only one write counts.
	updated, err := svc.Orders.Commit(ctx, sorder.CommitRequest{
		Entity:     ordering.EntityRepairType,
		OrderedIDs: []idwrap.IDWrap{idwrap.NewNow(), screen.ID},
	})
	require.NoError(t, err)
	require.Equal(t, 1, updated)

	got, err := svc.Types.Get(ctx, screen.ID)
	require.NoError(t, err)
	require.Equal(t, float64(1), got.Order)
}

func TestCommitDevicesByBrandRestartsPerBrand(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	svc := base.GetBaseServices()

	section, err := svc.Sections.Create(ctx, "Telefoons")
	require.NoError(t, err)
	apple := seedBrands(t, ctx, svc, &section.ID, "Apple")[0]
	samsung := seedBrands(t, ctx, svc, &section.ID, "Samsung")[0]

	a1, err := svc.Devices.Create(ctx, apple.ID, "smartphone", "iPhone 15")
	require.NoError(t, err)
	a2, err := svc.Devices.Create(ctx, apple.ID, "smartphone", "iPhone 14")
	require.NoError(t, err)
	s1, err := svc.Devices.Create(ctx, samsung.ID, "smartphone", "Galaxy S24")
	require.NoError(t, err)

	// One flat interleaved list, each brand's sub-sequence from 0.
	updated, err := svc.Orders.CommitDevicesByBrand(ctx, []idwrap.IDWrap{a2.ID, s1.ID, a1.ID})
	require.NoError(t, err)
	require.Equal(t, 3, updated)

	appleDevices, err := svc.Devices.ListByBrand(ctx, apple.ID)
	require.NoError(t, err)
	require.Equal(t, "iPhone 14", appleDevices[0].Name)
	require.Equal(t, float64(0), appleDevices[0].Order)
	require.Equal(t, float64(1), appleDevices[1].Order)

	galaxy, err := svc.Devices.Get(ctx, s1.ID)
	require.NoError(t, err)
	require.Equal(t, float64(0), galaxy.Order)
	// The type sequence is untouched by a brand commit.
	require.Equal(t, float64(2), galaxy.TypeOrder)
}

func TestCommitDevicesByTypeSkipsUnknownIDs(t *testing.T) {
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	svc := base.GetBaseServices()

	section, err := svc.Sections.Create(ctx, "Telefoons")
	require.NoError(t, err)
	apple := seedBrands(t, ctx, svc, &section.ID, "Apple")[0]

	d1, err := svc.Devices.Create(ctx, apple.ID, "smartphone", "iPhone 15")
	require.NoError(t, err)
	d2, err := svc.Devices.Create(ctx, apple.ID, "smartphone", "iPhone 14")
	require.NoError(t, err)

	updated, err := svc.Orders.CommitDevicesByType(ctx, []idwrap.IDWrap{d2.ID, idwrap.NewNow(), d1.ID})
	require.NoError(t, err)
	require.Equal(t, 2, updated)

	listed, err := svc.Devices.ListByType(ctx, "smartphone")
	require.NoError(t, err)
	require.Equal(t, "iPhone 14", listed[0].Name)
	require.Equal(t, float64(0), listed[0].TypeOrder)
	require.Equal(t, float64(1), listed[1].TypeOrder)
}
