// Package catalogyaml reads and writes the catalog seed format. Import
// order in the file becomes the initial display order: every record is
// appended to the end of its scope, so a fresh import yields clean
// sequential positions.
package catalogyaml

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/service/sbrand"
	"fixmarkt/server/pkg/service/sbrandsection"
	"fixmarkt/server/pkg/service/sdevice"
	"fixmarkt/server/pkg/service/srepair"
	"fixmarkt/server/pkg/service/srepairtype"

	"gopkg.in/yaml.v3"
)

type Catalog struct {
	RepairTypes []string  `yaml:"repairTypes,omitempty"`
	Sections    []Section `yaml:"sections,omitempty"`
	// Brands without a section live at the top level.
	Brands []Brand `yaml:"brands,omitempty"`
}

type Section struct {
	Name   string  `yaml:"name"`
	Brands []Brand `yaml:"brands,omitempty"`
}

type Brand struct {
	Name    string   `yaml:"name"`
	Devices []Device `yaml:"devices,omitempty"`
}

type Device struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Repairs []Repair `yaml:"repairs,omitempty"`
}

type Repair struct {
	Name  string `yaml:"name"`
	Price int64  `yaml:"price,omitempty"`
}

// Stats counts what an import created.
type Stats struct {
	Sections    int
	Brands      int
	Devices     int
	RepairTypes int
	Repairs     int
}

type Importer struct {
	sections sbrandsection.BrandSectionService
	brands   sbrand.BrandService
	devices  sdevice.DeviceService
	types    srepairtype.RepairTypeService
	repairs  srepair.RepairService
	logger   *slog.Logger
}

func NewImporter(
	sections sbrandsection.BrandSectionService,
	brands sbrand.BrandService,
	devices sdevice.DeviceService,
	types srepairtype.RepairTypeService,
	repairs srepair.RepairService,
	logger *slog.Logger,
) Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return Importer{
		sections: sections,
		brands:   brands,
		devices:  devices,
		types:    types,
		repairs:  repairs,
		logger:   logger,
	}
}

// Import creates every record in file order.
func (im Importer) Import(ctx context.Context, r io.Reader) (Stats, error) {
	var catalog Catalog
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		return Stats{}, fmt.Errorf("decode catalog: %w", err)
	}

	var stats Stats
	for _, name := range catalog.RepairTypes {
		if _, err := im.types.Create(ctx, name); err != nil {
			return stats, fmt.Errorf("create repair type %q: %w", name, err)
		}
		stats.RepairTypes++
	}

	for _, sec := range catalog.Sections {
		section, err := im.sections.Create(ctx, sec.Name)
		if err != nil {
			return stats, fmt.Errorf("create section %q: %w", sec.Name, err)
		}
		stats.Sections++
		if err := im.importBrands(ctx, sec.Brands, &section.ID, &stats); err != nil {
			return stats, err
		}
	}
	if err := im.importBrands(ctx, catalog.Brands, nil, &stats); err != nil {
		return stats, err
	}

	im.logger.InfoContext(ctx, "catalog imported",
		slog.Int("sections", stats.Sections),
		slog.Int("brands", stats.Brands),
		slog.Int("devices", stats.Devices),
		slog.Int("repairs", stats.Repairs))
	return stats, nil
}

func (im Importer) importBrands(ctx context.Context, brands []Brand, sectionID *idwrap.IDWrap, stats *Stats) error {
	for _, b := range brands {
		brand, err := im.brands.Create(ctx, b.Name, sectionID)
		if err != nil {
			return fmt.Errorf("create brand %q: %w", b.Name, err)
		}
		stats.Brands++
		for _, d := range b.Devices {
			device, err := im.devices.Create(ctx, brand.ID, d.Type, d.Name)
			if err != nil {
				return fmt.Errorf("create device %q: %w", d.Name, err)
			}
			stats.Devices++
			for _, rep := range d.Repairs {
				if _, err := im.repairs.Create(ctx, device.ID, rep.Name, rep.Price); err != nil {
					return fmt.Errorf("create repair %q: %w", rep.Name, err)
				}
				stats.Repairs++
			}
		}
	}
	return nil
}
