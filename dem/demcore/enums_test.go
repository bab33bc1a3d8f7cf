package demcore

import "testing"

func TestValueKindDefaults(t *testing.T) {
	cases := []struct {
		kind *ValueKind
		def  any
	}{
		{ValueKindString, ""},
		{ValueKindFloat, float32(0)},
		{ValueKindInt32, int32(0)},
		{ValueKindInt16, int16(0)},
		{ValueKindInt8, int8(0)},
		{ValueKindBool, false},
	}

	for _, c := range cases {
		if got := c.kind.DefaultValue(); got != c.def {
			t.Errorf("%v: expected: %#v, got: %#v", c.kind, c.def, got)
		}
	}
}

func TestByIDLookups(t *testing.T) {
	if ValueKindByID(0x04) != ValueKindInt16 {
		t.Error("Unexpected value kind!")
	}
	if k := ValueKindByID(0x99); k.Name != "Unknown 0x99" || k.ID != 0x99 {
		t.Errorf("Unexpected unknown kind: %+v", k)
	}

	if PropKindByID(0x06) != PropKindDataTable {
		t.Error("Unexpected prop kind!")
	}
	if UpdateTypeByID(0x02) != UpdateTypeEnterPvs {
		t.Error("Unexpected update type!")
	}
}

func TestPropFlagString(t *testing.T) {
	f := PropFlagUnsigned | PropFlagChangesOften
	if got := f.String(); got != "Unsigned|ChangesOften" {
		t.Errorf("Expected: %v, got: %v", "Unsigned|ChangesOften", got)
	}
	if got := PropFlag(0).String(); got != "0" {
		t.Errorf("Expected: %v, got: %v", "0", got)
	}
	if !f.Has(PropFlagUnsigned) || f.Has(PropFlagCoord) {
		t.Error("Unexpected Has() results!")
	}
}
