package demparser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/demcore"
)

func TestDataTablesFlatten(t *testing.T) {
	root := &dem.SendTable{
		Name: "DT_Root",
		Props: []*dem.SendProp{
			{Name: "prop_int8", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, Priority: 128, BitCount: 8},
			{Name: "prop_coord", Kind: demcore.PropKindFloat, Flags: demcore.PropFlagCoord, Priority: 128},
		},
	}
	class := &dem.ServerClass{ID: 0, Name: "CRoot", DataTableName: "DT_Root"}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.DataTables{
		MsgBase:    &dem.MsgBase{},
		SendTables: []*dem.SendTable{root},
		Classes:    []*dem.ServerClass{class},
	})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	d, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	dt := d.Messages[0].(*dem.DataTables)
	if len(dt.SendTables) != 1 || dt.SendTables[0].Name != "DT_Root" {
		t.Fatalf("Unexpected send tables: %v", dt.SendTables)
	}

	flat := dt.Classes[0].FlatTable
	if len(flat) != 2 {
		t.Fatalf("Expected: %v flat props, got: %v", 2, len(flat))
	}
	if flat[0].Prop.Name != "prop_int8" || flat[1].Prop.Name != "prop_coord" {
		t.Errorf("Unexpected flat table order: %v, %v", flat[0].Prop.Name, flat[1].Prop.Name)
	}
	if flat[0].TableName != "DT_Root" {
		t.Errorf("Expected: %v, got: %v", "DT_Root", flat[0].TableName)
	}
}

func TestFlattenInheritanceExclusionsPriority(t *testing.T) {
	base := &dem.SendTable{
		Name: "DT_Base",
		Props: []*dem.SendProp{
			{Name: "m_iHealth", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, Priority: 128, BitCount: 10},
			{Name: "m_iExcluded", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, Priority: 128, BitCount: 4},
		},
	}
	derived := &dem.SendTable{
		Name: "DT_Derived",
		Props: []*dem.SendProp{
			{Name: "m_iExcluded", Kind: demcore.PropKindInt, Flags: demcore.PropFlagExclude, DataTableName: "DT_Base"},
			{Name: "baseclass", Kind: demcore.PropKindDataTable, DataTableName: "DT_Base", Priority: 128},
			{Name: "m_vecOrigin", Kind: demcore.PropKindVector, Flags: demcore.PropFlagCoord | demcore.PropFlagChangesOften, Priority: 128},
		},
	}
	class := &dem.ServerClass{ID: 0, Name: "CDerived", DataTableName: "DT_Derived"}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.DataTables{
		MsgBase:    &dem.MsgBase{},
		SendTables: []*dem.SendTable{base, derived},
		Classes:    []*dem.ServerClass{class},
	})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})
	data := w.Bytes()

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	flat := d.Classes[0].FlatTable
	names := make([]string, len(flat))
	for i, fp := range flat {
		names[i] = fp.Prop.Name
	}
	// ChangesOften lowers m_vecOrigin's priority to 64, so it sorts first;
	// m_iExcluded is resolved away by the exclusion:
	expected := []string{"m_vecOrigin", "m_iHealth"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Expected: %v, got: %v", expected, names)
	}

	// Identical input must produce identical flat tables across runs:
	d2, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	for i, fp := range d.Classes[0].FlatTable {
		fp2 := d2.Classes[0].FlatTable[i]
		if fp.TableName != fp2.TableName || fp.Prop.Name != fp2.Prop.Name {
			t.Errorf("Flat tables differ at %d: %v vs %v", i, fp.Prop.Name, fp2.Prop.Name)
		}
	}
}

func TestFlattenStableTieBreak(t *testing.T) {
	// Many props of equal priority must keep their depth-first order.
	props := make([]*dem.SendProp, 8)
	for i := range props {
		props[i] = &dem.SendProp{
			Name:     string(rune('a' + i)),
			Kind:     demcore.PropKindInt,
			Flags:    demcore.PropFlagUnsigned,
			Priority: 128,
			BitCount: 8,
		}
	}
	table := &dem.SendTable{Name: "DT_Flat", Props: props}
	class := &dem.ServerClass{ID: 0, Name: "CFlat", DataTableName: "DT_Flat"}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.DataTables{MsgBase: &dem.MsgBase{}, SendTables: []*dem.SendTable{table}, Classes: []*dem.ServerClass{class}})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	d, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	for i, fp := range d.Classes[0].FlatTable {
		if expected := string(rune('a' + i)); fp.Prop.Name != expected {
			t.Errorf("Expected: %v, got: %v", expected, fp.Prop.Name)
		}
	}
}

func TestFlattenCyclicInclude(t *testing.T) {
	loop := &dem.SendTable{
		Name: "DT_Loop",
		Props: []*dem.SendProp{
			{Name: "self", Kind: demcore.PropKindDataTable, DataTableName: "DT_Loop", Priority: 128},
		},
	}
	class := &dem.ServerClass{ID: 0, Name: "CLoop", DataTableName: "DT_Loop"}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.DataTables{MsgBase: &dem.MsgBase{}, SendTables: []*dem.SendTable{loop}, Classes: []*dem.ServerClass{class}})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	_, err := Parse(w.Bytes())
	var iste *InvalidSendTableError
	if !errors.As(err, &iste) {
		t.Fatalf("Expected InvalidSendTableError, got: %v", err)
	}
}

func TestFlattenMissingTable(t *testing.T) {
	class := &dem.ServerClass{ID: 0, Name: "CGhost", DataTableName: "DT_Missing"}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.DataTables{MsgBase: &dem.MsgBase{}, Classes: []*dem.ServerClass{class}})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	_, err := Parse(w.Bytes())
	var iste *InvalidSendTableError
	if !errors.As(err, &iste) {
		t.Fatalf("Expected InvalidSendTableError, got: %v", err)
	}
}
