package ordering

import (
	"errors"
	"testing"
)

func TestResolveScopeBrand(t *testing.T) {
	scope, err := ResolveScope(EntityBrand, ScopeRequest{ScopeKey: ScopeKeySection, ScopeValue: "01ABC"})
	if err != nil {
		t.Fatal(err)
	}
	if scope.Field != FieldOrder || scope.Value != "01ABC" {
		t.Fatalf("unexpected scope: %+v", scope)
	}

	// The sentinel for unsectioned brands is a value, not a key.
	scope, err = ResolveScope(EntityBrand, ScopeRequest{ScopeKey: ScopeKeySection, ScopeValue: NoSection})
	if err != nil {
		t.Fatal(err)
	}
	if scope.Value != NoSection {
		t.Fatalf("sentinel value lost: %+v", scope)
	}

	_, err = ResolveScope(EntityBrand, ScopeRequest{ScopeKey: ScopeKeyBrand})
	if !errors.Is(err, ErrUnknownScopeKey) {
		t.Fatalf("got %v, want ErrUnknownScopeKey", err)
	}
}

func TestResolveScopeGlobalEntitiesRejectKeys(t *testing.T) {
	for _, entity := range []Entity{EntityBrandSection, EntityRepairType} {
		if _, err := ResolveScope(entity, ScopeRequest{}); err != nil {
			t.Fatalf("%s: %v", entity, err)
		}
		_, err := ResolveScope(entity, ScopeRequest{ScopeKey: ScopeKeySection})
		if !errors.Is(err, ErrUnknownScopeKey) {
			t.Fatalf("%s: got %v, want ErrUnknownScopeKey", entity, err)
		}
	}
}

func TestResolveScopeDevice(t *testing.T) {
	scope, err := ResolveScope(EntityDevice, ScopeRequest{ScopeKey: ScopeKeyBrand, ScopeValue: "01ABC"})
	if err != nil {
		t.Fatal(err)
	}
	if scope.Field != FieldOrder {
		t.Fatalf("brand scope picked field %v", scope.Field)
	}

	scope, err = ResolveScope(EntityDevice, ScopeRequest{ScopeKey: ScopeKeyDeviceType, ScopeValue: "smartphone"})
	if err != nil {
		t.Fatal(err)
	}
	if scope.Field != FieldTypeOrder {
		t.Fatalf("type scope picked field %v", scope.Field)
	}

	// The field name alone selects the type sequence.
	scope, err = ResolveScope(EntityDevice, ScopeRequest{OrderField: "typeOrder"})
	if err != nil {
		t.Fatal(err)
	}
	if scope.Field != FieldTypeOrder || scope.Key != ScopeKeyDeviceType {
		t.Fatalf("unexpected scope: %+v", scope)
	}

	// A brand scope cannot write the type column.
	_, err = ResolveScope(EntityDevice, ScopeRequest{ScopeKey: ScopeKeyBrand, OrderField: "typeOrder"})
	if !errors.Is(err, ErrBadOrderField) {
		t.Fatalf("got %v, want ErrBadOrderField", err)
	}

	_, err = ResolveScope(EntityDevice, ScopeRequest{ScopeKey: "warehouse"})
	if !errors.Is(err, ErrUnknownScopeKey) {
		t.Fatalf("got %v, want ErrUnknownScopeKey", err)
	}
}

func TestResolveScopeRepair(t *testing.T) {
	scope, err := ResolveScope(EntityRepair, ScopeRequest{ScopeKey: ScopeKeyDevice, ScopeValue: "01ABC"})
	if err != nil {
		t.Fatal(err)
	}
	if scope.Key != ScopeKeyDevice {
		t.Fatalf("unexpected scope: %+v", scope)
	}

	_, err = ResolveScope(EntityRepair, ScopeRequest{ScopeKey: ScopeKeySection})
	if !errors.Is(err, ErrUnknownScopeKey) {
		t.Fatalf("got %v, want ErrUnknownScopeKey", err)
	}
}

func TestResolveScopeUnknownEntity(t *testing.T) {
	_, err := ResolveScope(EntityUnknown, ScopeRequest{})
	if !errors.Is(err, ErrUnsupportedEntity) {
		t.Fatalf("got %v, want ErrUnsupportedEntity", err)
	}
}

func TestParseEntity(t *testing.T) {
	for _, tag := range []string{"brand", "brandSection", "device", "repairType", "repair"} {
		entity, err := ParseEntity(tag)
		if err != nil {
			t.Fatalf("%s: %v", tag, err)
		}
		if entity.String() != tag {
			t.Fatalf("round trip broken: %q became %q", tag, entity.String())
		}
	}
	if _, err := ParseEntity("warehouse"); !errors.Is(err, ErrUnsupportedEntity) {
		t.Fatalf("got %v, want ErrUnsupportedEntity", err)
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrBadDirection) {
		t.Fatalf("got %v, want ErrBadDirection", err)
	}
	dir, err := ParseDirection("down")
	if err != nil || dir != DirectionDown {
		t.Fatalf("got %v/%v", dir, err)
	}
}
