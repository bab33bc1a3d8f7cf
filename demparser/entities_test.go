package demparser

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
)

// flatClass builds a server class with the given props as its flat table.
func flatClass(name string, props ...*dem.SendProp) *dem.ServerClass {
	sc := &dem.ServerClass{ID: 0, Name: name, DataTableName: "DT_" + name}
	for _, p := range props {
		sc.FlatTable = append(sc.FlatTable, &dem.FlatProp{TableName: sc.DataTableName, Prop: p})
	}
	return sc
}

func TestPropsRoundTrip(t *testing.T) {
	elem := &dem.SendProp{Name: "elem", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned | demcore.PropFlagInsideArray, BitCount: 6}
	sc := flatClass("Thing",
		&dem.SendProp{Name: "u8", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, BitCount: 8},
		&dem.SendProp{Name: "s10", Kind: demcore.PropKindInt, BitCount: 10},
		&dem.SendProp{Name: "coord", Kind: demcore.PropKindFloat, Flags: demcore.PropFlagCoord},
		&dem.SendProp{Name: "raw", Kind: demcore.PropKindFloat, Flags: demcore.PropFlagNoScale},
		&dem.SendProp{Name: "name", Kind: demcore.PropKindString},
		&dem.SendProp{Name: "vel", Kind: demcore.PropKindVector, Flags: demcore.PropFlagNoScale},
		&dem.SendProp{Name: "flat", Kind: demcore.PropKindVectorXY, Flags: demcore.PropFlagNoScale},
		&dem.SendProp{Name: "arr", Kind: demcore.PropKindArray, ElementCount: 5, ArrayElem: elem},
	)

	props := []demmsg.PropUpdate{
		{Index: 0, Value: int64(200)},
		{Index: 1, Value: int64(-37)},
		{Index: 2, Value: float32(-12.5)},
		{Index: 3, Value: float32(3.25)},
		{Index: 4, Value: "scout"},
		{Index: 5, Value: demcore.Vector{X: 1, Y: -2, Z: 3.5}},
		{Index: 6, Value: demcore.Vector{X: 4, Y: 5}},
		{Index: 7, Value: []any{int64(1), int64(2), int64(3)}},
	}

	w := &dembit.Writer{}
	writeProps(w, sc, props)

	got := readProps(dembit.NewBuff(w.Bytes()), sc)
	if !reflect.DeepEqual(got, props) {
		t.Errorf("Expected: %v, got: %v", props, got)
	}
}

func TestPropsSparseIndices(t *testing.T) {
	sc := flatClass("Sparse",
		&dem.SendProp{Name: "a", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, BitCount: 4},
		&dem.SendProp{Name: "b", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, BitCount: 4},
		&dem.SendProp{Name: "c", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, BitCount: 4},
		&dem.SendProp{Name: "d", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, BitCount: 4},
	)

	props := []demmsg.PropUpdate{
		{Index: 1, Value: int64(5)},
		{Index: 3, Value: int64(9)},
	}

	w := &dembit.Writer{}
	writeProps(w, sc, props)
	got := readProps(dembit.NewBuff(w.Bytes()), sc)
	if !reflect.DeepEqual(got, props) {
		t.Errorf("Expected: %v, got: %v", props, got)
	}
}

func TestPropsEmptyDelta(t *testing.T) {
	sc := flatClass("Empty",
		&dem.SendProp{Name: "a", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, BitCount: 4},
	)

	w := &dembit.Writer{}
	writeProps(w, sc, nil)
	if got := readProps(dembit.NewBuff(w.Bytes()), sc); len(got) != 0 {
		t.Errorf("Expected no props, got: %v", got)
	}

	// Applying an empty delta leaves entity state unchanged:
	e := &dem.Entity{Props: map[int]any{0: int64(7)}}
	applyProps(e, nil)
	if e.Props[0] != int64(7) || len(e.Props) != 1 {
		t.Errorf("Entity state changed: %v", e.Props)
	}
}

func TestPropQuantizedFloat(t *testing.T) {
	prop := &dem.SendProp{Name: "q", Kind: demcore.PropKindFloat, BitCount: 10, LowValue: 0, HighValue: 100}

	w := &dembit.Writer{}
	writePropFloat(w, prop, 25)
	got := readPropFloat(dembit.NewBuff(w.Bytes()), prop)
	if math.Abs(float64(got)-25) > 100.0/1023 {
		t.Errorf("Expected: ~%v, got: %v", 25, got)
	}
}

func TestPropNormalVector(t *testing.T) {
	prop := &dem.SendProp{Name: "n", Kind: demcore.PropKindVector, Flags: demcore.PropFlagNoScale | demcore.PropFlagNormal}

	w := &dembit.Writer{}
	writePropValue(w, prop, demcore.Vector{X: 0.6, Y: 0, Z: -0.8})
	got := readPropValue(dembit.NewBuff(w.Bytes()), prop).(demcore.Vector)
	if got.X != 0.6 || got.Y != 0 {
		t.Errorf("Unexpected x/y: %v", got)
	}
	if math.Abs(float64(got.Z)+0.8) > 0.001 {
		t.Errorf("Expected: ~%v, got: %v", -0.8, got.Z)
	}
}

func TestEntityLifecycle(t *testing.T) {
	class := &dem.ServerClass{ID: 0, Name: "CThing", DataTableName: "DT_Thing"}
	table := &dem.SendTable{
		Name: "DT_Thing",
		Props: []*dem.SendProp{
			{Name: "m_iHealth", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, Priority: 128, BitCount: 8},
		},
	}
	class.FlatTable = []*dem.FlatProp{{TableName: "DT_Thing", Prop: table.Props[0]}}

	enter := &demmsg.SvcPacketEntities{
		Base:           &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcPacketEntities)},
		MaxEntries:     64,
		UpdatedEntries: 2,
		Updates: []*demmsg.EntityUpdate{
			{EntityIndex: 5, Type: demcore.UpdateTypeEnterPvs, ClassID: 0, Serial: 123,
				Props: []demmsg.PropUpdate{{Index: 0, Value: int64(42)}}},
			{EntityIndex: 7, Type: demcore.UpdateTypeEnterPvs, ClassID: 0, Serial: 9},
		},
	}
	second := &demmsg.SvcPacketEntities{
		Base:           &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcPacketEntities)},
		MaxEntries:     64,
		IsDelta:        true,
		DeltaFrom:      1,
		UpdatedEntries: 3,
		Updates: []*demmsg.EntityUpdate{
			{EntityIndex: 5, Type: demcore.UpdateTypeDelta, ClassID: 0,
				Props: []demmsg.PropUpdate{{Index: 0, Value: int64(17)}}},
			{EntityIndex: 6, Type: demcore.UpdateTypeLeavePvs},
			{EntityIndex: 7, Type: demcore.UpdateTypeDelete},
		},
	}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.DataTables{
		MsgBase:    &dem.MsgBase{},
		SendTables: []*dem.SendTable{table},
		Classes:    []*dem.ServerClass{class},
	})
	// The writer encodes entity props against the flat tables of the
	// written classes:
	w.WriteMessage(&dem.Packet{MsgBase: &dem.MsgBase{Tick: 1}, NetMsgs: []demmsg.Msg{enter}})
	w.WriteMessage(&dem.Packet{MsgBase: &dem.MsgBase{Tick: 2}, NetMsgs: []demmsg.Msg{second}})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{Tick: 2}})

	p, err := NewParser(w.Bytes())
	if err != nil {
		t.Fatalf("NewParser() error: %v", err)
	}

	// DataTables:
	if _, err = p.NextMessage(); err != nil {
		t.Fatalf("NextMessage() error: %v", err)
	}

	// First packet: both entities enter the PVS.
	m, err := p.NextMessage()
	if err != nil {
		t.Fatalf("NextMessage() error: %v", err)
	}
	pk := m.(*dem.Packet)
	if len(pk.EntityUpdates) != 2 {
		t.Fatalf("Expected: %v updates, got: %v", 2, len(pk.EntityUpdates))
	}
	if u := pk.EntityUpdates[0]; u.EntityIndex != 5 || u.Type != demcore.UpdateTypeEnterPvs || u.Serial != 123 {
		t.Errorf("Unexpected update: %+v", u)
	}

	ents := p.Entities()
	if len(ents) != 2 {
		t.Fatalf("Expected: %v entities, got: %v", 2, len(ents))
	}
	if v, ok := ents[0].Prop(0); !ok || v != int64(42) {
		t.Errorf("Expected: %v, got: %v (%v)", 42, v, ok)
	}

	// Second packet: delta, leave, delete.
	if _, err = p.NextMessage(); err != nil {
		t.Fatalf("NextMessage() error: %v", err)
	}
	ents = p.Entities()
	if len(ents) != 1 {
		t.Fatalf("Expected: %v entities, got: %v", 1, len(ents))
	}
	if v, _ := ents[0].Prop(0); v != int64(17) {
		t.Errorf("Expected: %v, got: %v", 17, v)
	}
	if !ents[0].InPVS {
		t.Error("Entity falsely out of PVS!")
	}
}

func TestEntityDeltaUnknownEntity(t *testing.T) {
	class := &dem.ServerClass{ID: 0, Name: "CThing", DataTableName: "DT_Thing"}
	table := &dem.SendTable{Name: "DT_Thing", Props: []*dem.SendProp{
		{Name: "a", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, Priority: 128, BitCount: 8},
	}}

	bad := &demmsg.SvcPacketEntities{
		Base:           &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcPacketEntities)},
		MaxEntries:     64,
		UpdatedEntries: 1,
		Updates: []*demmsg.EntityUpdate{
			{EntityIndex: 3, Type: demcore.UpdateTypeDelta, ClassID: 0},
		},
	}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.DataTables{MsgBase: &dem.MsgBase{}, SendTables: []*dem.SendTable{table}, Classes: []*dem.ServerClass{class}})
	w.WriteMessage(&dem.Packet{MsgBase: &dem.MsgBase{}, NetMsgs: []demmsg.Msg{bad}})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	_, err := Parse(w.Bytes())
	var meu *MalformedEntityUpdateError
	if !errors.As(err, &meu) {
		t.Fatalf("Expected MalformedEntityUpdateError, got: %v", err)
	}
	if meu.EntityIndex != 3 {
		t.Errorf("Expected: %v, got: %v", 3, meu.EntityIndex)
	}
}
