package catalogyaml

import (
	"context"
	"fmt"
	"io"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/model/mbrand"

	"gopkg.in/yaml.v3"
)

// Export writes the current catalog in display order, so a dump re-imports
// to the same sequences.
func (im Importer) Export(ctx context.Context, w io.Writer) error {
	var catalog Catalog

	types, err := im.types.List(ctx)
	if err != nil {
		return fmt.Errorf("list repair types: %w", err)
	}
	for _, rt := range types {
		catalog.RepairTypes = append(catalog.RepairTypes, rt.Name)
	}

	sections, err := im.sections.List(ctx)
	if err != nil {
		return fmt.Errorf("list sections: %w", err)
	}
	for _, sec := range sections {
		brands, err := im.brands.ListBySection(ctx, &sec.ID)
		if err != nil {
			return fmt.Errorf("list brands of %q: %w", sec.Name, err)
		}
		out, err := im.exportBrands(ctx, brands)
		if err != nil {
			return err
		}
		catalog.Sections = append(catalog.Sections, Section{Name: sec.Name, Brands: out})
	}

	loose, err := im.brands.ListBySection(ctx, nil)
	if err != nil {
		return fmt.Errorf("list sectionless brands: %w", err)
	}
	catalog.Brands, err = im.exportBrands(ctx, loose)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(catalog)
}

func (im Importer) exportBrands(ctx context.Context, brands []mbrand.Brand) ([]Brand, error) {
	out := make([]Brand, 0, len(brands))
	for _, b := range brands {
		devices, err := im.devices.ListByBrand(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("list devices of %q: %w", b.Name, err)
		}
		brand := Brand{Name: b.Name}
		for _, d := range devices {
			repairs, err := im.exportRepairs(ctx, d.ID)
			if err != nil {
				return nil, err
			}
			brand.Devices = append(brand.Devices, Device{
				Name:    d.Name,
				Type:    d.DeviceType,
				Repairs: repairs,
			})
		}
		out = append(out, brand)
	}
	return out, nil
}

func (im Importer) exportRepairs(ctx context.Context, deviceID idwrap.IDWrap) ([]Repair, error) {
	repairs, err := im.repairs.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	out := make([]Repair, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, Repair{Name: r.Name, Price: r.PriceCents})
	}
	return out, nil
}
