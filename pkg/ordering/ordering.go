package ordering

import (
	"fmt"

	"fixmarkt/server/pkg/idwrap"
)

// Entity tags the catalog record kinds the engine knows how to position.
type Entity int8

const (
	EntityUnknown Entity = iota
	EntityBrand
	EntityBrandSection
	EntityDevice
	EntityRepairType
	EntityRepair
)

func (e Entity) String() string {
	switch e {
	case EntityBrand:
		return "brand"
	case EntityBrandSection:
		return "brandSection"
	case EntityDevice:
		return "device"
	case EntityRepairType:
		return "repairType"
	case EntityRepair:
		return "repair"
	default:
		return "unknown"
	}
}

// ParseEntity maps the wire tag to an Entity.
func ParseEntity(s string) (Entity, error) {
	switch s {
	case "brand":
		return EntityBrand, nil
	case "brandSection":
		return EntityBrandSection, nil
	case "device":
		return EntityDevice, nil
	case "repairType":
		return EntityRepairType, nil
	case "repair":
		return EntityRepair, nil
	default:
		return EntityUnknown, fmt.Errorf("%w: %q", ErrUnsupportedEntity, s)
	}
}

// Field selects which position column an operation targets. Devices carry
// two independent sequences; every other entity only has FieldOrder.
type Field int8

const (
	FieldOrder Field = iota
	FieldTypeOrder
)

func (f Field) String() string {
	if f == FieldTypeOrder {
		return "typeOrder"
	}
	return "order"
}

// Direction of a single-step move.
type Direction int8

const (
	DirectionUp Direction = iota
	DirectionDown
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
	}
}

// Record is the engine's view of one positioned catalog row. Name is the
// deterministic tie-break when positions compare equal.
type Record struct {
	ID       idwrap.IDWrap
	Name     string
	Position float64
}

// PositionUpdate is one element of a batched position write.
type PositionUpdate struct {
	ID       idwrap.IDWrap
	Position float64
}

func indexOf(records []Record, id idwrap.IDWrap) int {
	for i := range records {
		if records[i].ID.Compare(id) == 0 {
			return i
		}
	}
	return -1
}
