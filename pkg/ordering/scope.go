package ordering

import "fmt"

// Scope keys accepted on the wire.
const (
	ScopeKeySection    = "sectionId"
	ScopeKeyBrand      = "brandId"
	ScopeKeyDeviceType = "deviceType"
	ScopeKeyDevice     = "deviceId"
)

// NoSection is the sentinel scope value selecting brands whose section
// reference is absent, null or empty. The unscoped group is a first-class
// scope, not an error.
const NoSection = "__none__"

// ScopeRequest carries the optional scope/field parameters of a move or
// commit request.
type ScopeRequest struct {
	ScopeKey   string
	ScopeValue string
	OrderField string
}

// Scope is the resolved sibling filter plus the position field to operate
// on. Value may be empty for scopes derived from the target record itself
// (e.g. a device move with no explicit scope uses the device's own brand).
type Scope struct {
	Entity Entity
	Field  Field
	Key    string
	Value  string
}

// ResolveScope computes which sibling set shares a sequence with the
// request's target and which position field the operation writes.
func ResolveScope(entity Entity, req ScopeRequest) (Scope, error) {
	switch entity {
	case EntityBrand:
		if req.ScopeKey != "" && req.ScopeKey != ScopeKeySection {
			return Scope{}, fmt.Errorf("%w: %q for brand", ErrUnknownScopeKey, req.ScopeKey)
		}
		if err := requireField(req.OrderField, FieldOrder); err != nil {
			return Scope{}, err
		}
		return Scope{Entity: entity, Field: FieldOrder, Key: req.ScopeKey, Value: req.ScopeValue}, nil

	case EntityBrandSection, EntityRepairType:
		// Single global sequence; a scope key here is a caller bug.
		if req.ScopeKey != "" {
			return Scope{}, fmt.Errorf("%w: %q for %s", ErrUnknownScopeKey, req.ScopeKey, entity)
		}
		if err := requireField(req.OrderField, FieldOrder); err != nil {
			return Scope{}, err
		}
		return Scope{Entity: entity, Field: FieldOrder}, nil

	case EntityDevice:
		switch req.ScopeKey {
		case ScopeKeyDeviceType:
			if err := requireField(req.OrderField, FieldTypeOrder); err != nil {
				return Scope{}, err
			}
			return Scope{Entity: entity, Field: FieldTypeOrder, Key: ScopeKeyDeviceType, Value: req.ScopeValue}, nil
		case "", ScopeKeyBrand:
			// typeOrder can also be selected by field name alone.
			if req.ScopeKey == "" && req.OrderField == FieldTypeOrder.String() {
				return Scope{Entity: entity, Field: FieldTypeOrder, Key: ScopeKeyDeviceType, Value: req.ScopeValue}, nil
			}
			if err := requireField(req.OrderField, FieldOrder); err != nil {
				return Scope{}, err
			}
			return Scope{Entity: entity, Field: FieldOrder, Key: ScopeKeyBrand, Value: req.ScopeValue}, nil
		default:
			return Scope{}, fmt.Errorf("%w: %q for device", ErrUnknownScopeKey, req.ScopeKey)
		}

	case EntityRepair:
		if req.ScopeKey != "" && req.ScopeKey != ScopeKeyDevice {
			return Scope{}, fmt.Errorf("%w: %q for repair", ErrUnknownScopeKey, req.ScopeKey)
		}
		if err := requireField(req.OrderField, FieldOrder); err != nil {
			return Scope{}, err
		}
		return Scope{Entity: entity, Field: FieldOrder, Key: ScopeKeyDevice, Value: req.ScopeValue}, nil

	default:
		return Scope{}, fmt.Errorf("%w: %v", ErrUnsupportedEntity, entity)
	}
}

func requireField(orderField string, want Field) error {
	if orderField == "" || orderField == want.String() {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrBadOrderField, orderField)
}
