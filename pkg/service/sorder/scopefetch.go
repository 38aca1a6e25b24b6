package sorder

import (
	"context"
	"fmt"

	"fixmarkt/server/pkg/catalogdb"
	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/ordering"
	"fixmarkt/server/pkg/service/sbrand"
	"fixmarkt/server/pkg/service/sbrandsection"
	"fixmarkt/server/pkg/service/sdevice"
	"fixmarkt/server/pkg/service/srepair"
	"fixmarkt/server/pkg/service/srepairtype"
)

// positionWriter writes one record's position for the resolved scope's
// field and reports how many rows matched. Which column it hits is fixed
// by the scope, never by a runtime field name.
type positionWriter func(ctx context.Context, id idwrap.IDWrap, position float64) (int64, error)

// fetchScope loads the sibling records sharing the resolved sequence and
// returns the writer for its position field. When the scope value is empty
// the grouping value is derived from the target record itself (a device
// move without an explicit scope uses the device's own brand). target may
// be nil only for scopes whose value is explicit or global.
func (s OrderService) fetchScope(ctx context.Context, q *catalogdb.Queries, scope ordering.Scope, target *idwrap.IDWrap) ([]ordering.Record, positionWriter, error) {
	switch scope.Entity {
	case ordering.EntityBrandSection:
		sections, err := q.ListBrandSections(ctx)
		if err != nil {
			return nil, nil, err
		}
		return sbrandsection.ToRecords(sections), q.UpdateBrandSectionOrder, nil

	case ordering.EntityRepairType:
		types, err := q.ListRepairTypes(ctx)
		if err != nil {
			return nil, nil, err
		}
		return srepairtype.ToRecords(types), q.UpdateRepairTypeOrder, nil

	case ordering.EntityBrand:
		sectionID, none, err := s.brandScopeValue(ctx, q, scope, target)
		if err != nil {
			return nil, nil, err
		}
		var brands []ordering.Record
		if none {
			list, err := q.ListBrandsWithoutSection(ctx)
			if err != nil {
				return nil, nil, err
			}
			brands = sbrand.ToRecords(list)
		} else {
			list, err := q.ListBrandsBySection(ctx, sectionID)
			if err != nil {
				return nil, nil, err
			}
			brands = sbrand.ToRecords(list)
		}
		return brands, q.UpdateBrandOrder, nil

	case ordering.EntityDevice:
		return s.fetchDeviceScope(ctx, q, scope, target)

	case ordering.EntityRepair:
		deviceID, err := s.repairScopeValue(ctx, q, scope, target)
		if err != nil {
			return nil, nil, err
		}
		repairs, err := q.ListRepairsByDevice(ctx, deviceID)
		if err != nil {
			return nil, nil, err
		}
		return srepair.ToRecords(repairs), q.UpdateRepairOrder, nil

	default:
		return nil, nil, fmt.Errorf("%w: %v", ordering.ErrUnsupportedEntity, scope.Entity)
	}
}

// writerFor picks the position writer for a scope without loading its
// records; bulk commits overwrite values wholesale and need no neighbors.
func writerFor(q *catalogdb.Queries, scope ordering.Scope) (positionWriter, error) {
	switch scope.Entity {
	case ordering.EntityBrand:
		return q.UpdateBrandOrder, nil
	case ordering.EntityBrandSection:
		return q.UpdateBrandSectionOrder, nil
	case ordering.EntityDevice:
		if scope.Field == ordering.FieldTypeOrder {
			return q.UpdateDeviceTypeOrder, nil
		}
		return q.UpdateDeviceOrder, nil
	case ordering.EntityRepairType:
		return q.UpdateRepairTypeOrder, nil
	case ordering.EntityRepair:
		return q.UpdateRepairOrder, nil
	default:
		return nil, fmt.Errorf("%w: %v", ordering.ErrUnsupportedEntity, scope.Entity)
	}
}

func (s OrderService) fetchDeviceScope(ctx context.Context, q *catalogdb.Queries, scope ordering.Scope, target *idwrap.IDWrap) ([]ordering.Record, positionWriter, error) {
	if scope.Field == ordering.FieldTypeOrder {
		deviceType := scope.Value
		if deviceType == "" {
			if target == nil {
				return nil, nil, fmt.Errorf("%w: device type scope needs a value or target", ordering.ErrUnknownScopeKey)
			}
			device, err := q.GetDevice(ctx, *target)
			if err != nil {
				return nil, nil, asEngineNotFound(err)
			}
			deviceType = device.DeviceType
		}
		devices, err := q.ListDevicesByType(ctx, deviceType)
		if err != nil {
			return nil, nil, err
		}
		return sdevice.ToRecords(devices, ordering.FieldTypeOrder), q.UpdateDeviceTypeOrder, nil
	}

	var brandID idwrap.IDWrap
	if scope.Value != "" {
		id, err := idwrap.NewText(scope.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad brand id %q", ordering.ErrUnknownScopeKey, scope.Value)
		}
		brandID = id
	} else {
		if target == nil {
			return nil, nil, fmt.Errorf("%w: brand scope needs a value or target", ordering.ErrUnknownScopeKey)
		}
		device, err := q.GetDevice(ctx, *target)
		if err != nil {
			return nil, nil, asEngineNotFound(err)
		}
		brandID = device.BrandID
	}
	devices, err := q.ListDevicesByBrand(ctx, brandID)
	if err != nil {
		return nil, nil, err
	}
	return sdevice.ToRecords(devices, ordering.FieldOrder), q.UpdateDeviceOrder, nil
}

// brandScopeValue resolves which section sequence a brand operation works
// on: the explicit scope value, the sentinel "no section" group, or the
// target brand's own section. The sectionless group is only ever selected
// by the sentinel, never by omission.
func (s OrderService) brandScopeValue(ctx context.Context, q *catalogdb.Queries, scope ordering.Scope, target *idwrap.IDWrap) (idwrap.IDWrap, bool, error) {
	if scope.Value == ordering.NoSection {
		return idwrap.IDWrap{}, true, nil
	}
	if scope.Value != "" {
		id, err := idwrap.NewText(scope.Value)
		if err != nil {
			return idwrap.IDWrap{}, false, fmt.Errorf("%w: bad section id %q", ordering.ErrUnknownScopeKey, scope.Value)
		}
		return id, false, nil
	}
	if target == nil {
		return idwrap.IDWrap{}, false, fmt.Errorf("%w: brand scope needs a value or target", ordering.ErrUnknownScopeKey)
	}
	brand, err := q.GetBrand(ctx, *target)
	if err != nil {
		return idwrap.IDWrap{}, false, asEngineNotFound(err)
	}
	if brand.SectionID == nil {
		return idwrap.IDWrap{}, true, nil
	}
	return *brand.SectionID, false, nil
}

func (s OrderService) repairScopeValue(ctx context.Context, q *catalogdb.Queries, scope ordering.Scope, target *idwrap.IDWrap) (idwrap.IDWrap, error) {
	if scope.Value != "" {
		id, err := idwrap.NewText(scope.Value)
		if err != nil {
			return idwrap.IDWrap{}, fmt.Errorf("%w: bad device id %q", ordering.ErrUnknownScopeKey, scope.Value)
		}
		return id, nil
	}
	if target == nil {
		return idwrap.IDWrap{}, fmt.Errorf("%w: repair scope needs a value or target", ordering.ErrUnknownScopeKey)
	}
	repair, err := q.GetRepair(ctx, *target)
	if err != nil {
		return idwrap.IDWrap{}, asEngineNotFound(err)
	}
	return repair.DeviceID, nil
}
