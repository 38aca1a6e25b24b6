package catalogyaml_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"fixmarkt/server/pkg/io/catalogyaml"
	"fixmarkt/server/pkg/logger/mocklogger"
	"fixmarkt/server/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const seedYAML = `
repairTypes:
  - Scherm vervangen
  - Batterij vervangen
sections:
  - name: Telefoons
    brands:
      - name: Apple
        devices:
          - name: iPhone 15
            type: smartphone
            repairs:
              - name: Scherm vervangen
                price: 12900
              - name: Batterij vervangen
                price: 7900
      - name: Samsung
        devices:
          - name: Galaxy S24
            type: smartphone
brands:
  - name: Fairphone
`

func newImporter(t *testing.T) (catalogyaml.Importer, testutil.BaseTestServices, func()) {
	t.Helper()
	base := testutil.CreateBaseDB(context.Background(), t)
	svc := base.GetBaseServices()
	im := catalogyaml.NewImporter(svc.Sections, svc.Brands, svc.Devices, svc.Types, svc.Repairs, mocklogger.NewMockLogger())
	return im, svc, base.Close
}

func TestImportAssignsFileOrder(t *testing.T) {
	ctx := context.Background()
	im, svc, done := newImporter(t)
	defer done()

	stats, err := im.Import(ctx, strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.Equal(t, catalogyaml.Stats{
		Sections:    1,
		Brands:      3,
		Devices:     2,
		RepairTypes: 2,
		Repairs:     2,
	}, stats)

	types, err := svc.Types.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Scherm vervangen", types[0].Name)
	require.Equal(t, float64(0), types[0].Order)
	require.Equal(t, float64(1), types[1].Order)

	sections, err := svc.Sections.List(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	brands, err := svc.Brands.ListBySection(ctx, &sections[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Apple", brands[0].Name)
	require.Equal(t, "Samsung", brands[1].Name)

	loose, err := svc.Brands.ListBySection(ctx, nil)
	require.NoError(t, err)
	require.Len(t, loose, 1)
	require.Equal(t, "Fairphone", loose[0].Name)
	require.Equal(t, float64(0), loose[0].Order)
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	im, _, done := newImporter(t)
	defer done()

	_, err := im.Import(ctx, strings.NewReader(seedYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, im.Export(ctx, &buf))

	var catalog catalogyaml.Catalog
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &catalog))

	require.Equal(t, []string{"Scherm vervangen", "Batterij vervangen"}, catalog.RepairTypes)
	require.Len(t, catalog.Sections, 1)
	require.Equal(t, "Telefoons", catalog.Sections[0].Name)
	require.Len(t, catalog.Sections[0].Brands, 2)

	apple := catalog.Sections[0].Brands[0]
	require.Equal(t, "Apple", apple.Name)
	require.Len(t, apple.Devices, 1)
	require.Len(t, apple.Devices[0].Repairs, 2)
	require.Equal(t, int64(12900), apple.Devices[0].Repairs[0].Price)

	require.Len(t, catalog.Brands, 1)
	require.Equal(t, "Fairphone", catalog.Brands[0].Name)
}
