package demparser

import (
	"reflect"
	"testing"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
)

// buildFullDemo synthesizes a demo exercising every top-level command and
// the major packet messages, and returns its bytes.
func buildFullDemo(t *testing.T) []byte {
	table := &dem.SendTable{
		Name: "DT_TFPlayer",
		Props: []*dem.SendProp{
			{Name: "m_iHealth", Kind: demcore.PropKindInt, Flags: demcore.PropFlagUnsigned, Priority: 128, BitCount: 9},
			{Name: "m_vecOrigin", Kind: demcore.PropKindVector, Flags: demcore.PropFlagCoord | demcore.PropFlagChangesOften, Priority: 128},
		},
	}
	class := &dem.ServerClass{ID: 0, Name: "CTFPlayer", DataTableName: "DT_TFPlayer"}
	// The writer encodes entity props against the flat table; fill it the
	// way flattening will order it (ChangesOften first):
	class.FlatTable = []*dem.FlatProp{
		{TableName: "DT_TFPlayer", Prop: table.Props[1]},
		{TableName: "DT_TFPlayer", Prop: table.Props[0]},
	}

	st := &dem.StringTable{Name: "userinfo", MaxEntries: 32, Entries: make([]*dem.StringTableEntry, 32)}
	st.Entries[0] = &dem.StringTableEntry{Key: "0", UserData: []byte{1, 2, 3}}

	serverInfo := &demmsg.SvcServerInfo{
		Base:         &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcServerInfo)},
		Protocol:     24,
		ServerCount:  3,
		MaxClasses:   1,
		MaxClients:   24,
		TickInterval: 0.015,
		Platform:     'l',
		GameDir:      "tf",
		MapName:      "ctf_2fort",
		SkyName:      "sky_day01",
		HostName:     "test server",
	}

	signOn := &dem.SignOn{Packet: dem.Packet{
		MsgBase: &dem.MsgBase{},
		NetMsgs: []demmsg.Msg{
			serverInfo,
			eventListMsg(playerConnectDef()),
			makeCreateMsg(st, []int{0}),
			&demmsg.NetSignonState{Base: &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDNetSignonState)}, State: 6, SpawnCount: 1},
		},
	}}

	packet := &dem.Packet{
		MsgBase: &dem.MsgBase{Tick: 100},
		NetMsgs: []demmsg.Msg{
			&demmsg.NetTick{Base: &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDNetTick)}, Tick: 100, HostFrameTime: 150, HostFrameTimeDev: 3},
			eventMsg(&demmsg.PlayerConnect{Name: "Alice", Userid: 7}),
			&demmsg.SvcPacketEntities{
				Base:           &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcPacketEntities)},
				MaxEntries:     64,
				UpdatedEntries: 1,
				Updates: []*demmsg.EntityUpdate{
					{EntityIndex: 2, Type: demcore.UpdateTypeEnterPvs, ClassID: 0, Serial: 55,
						Props: []demmsg.PropUpdate{
							{Index: 0, Value: demcore.Vector{X: 128, Y: -64.5, Z: 12.25}},
							{Index: 1, Value: int64(175)},
						}},
				},
			},
			&demmsg.SvcPrint{Base: &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcPrint)}, Text: "hello\n"},
		},
	}

	w := NewWriter(testHeader())
	msgs := []dem.Message{
		signOn,
		&dem.SyncTick{MsgBase: &dem.MsgBase{}},
		&dem.DataTables{MsgBase: &dem.MsgBase{}, SendTables: []*dem.SendTable{table}, Classes: []*dem.ServerClass{class}},
		packet,
		&dem.ConsoleCmd{MsgBase: &dem.MsgBase{Tick: 101}, Command: "say hi"},
		&dem.UserCmd{MsgBase: &dem.MsgBase{Tick: 102}, Sequence: 9, Cmd: []byte{0xde, 0xad}},
		&dem.CustomData{MsgBase: &dem.MsgBase{Tick: 103}, Callback: 1, Data: []byte{7}},
		&dem.StringTables{MsgBase: &dem.MsgBase{Tick: 104}, Tables: []*dem.StringTable{
			{Name: "lightstyles", MaxEntries: 2, Entries: []*dem.StringTableEntry{{Key: "a"}, {Key: "b", UserData: []byte{4}}}},
		}},
		&dem.Stop{MsgBase: &dem.MsgBase{Tick: 105}},
	}
	for _, m := range msgs {
		if err := w.WriteMessage(m); err != nil {
			t.Fatalf("WriteMessage(%T) error: %v", m, err)
		}
	}
	return w.Bytes()
}

// Note on the flat table above: m_vecOrigin carries ChangesOften, so it
// sorts to index 0 and m_iHealth to index 1.

func TestWriterRoundTrip(t *testing.T) {
	data := buildFullDemo(t)

	d1, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	// Re-serialize the parsed messages and parse again; the message
	// sequences must be equivalent.
	w := NewWriter(d1.Header)
	for _, m := range d1.Messages {
		if err := w.WriteMessage(m); err != nil {
			t.Fatalf("WriteMessage(%T) error: %v", m, err)
		}
	}

	d2, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() (2nd) error: %v", err)
	}

	if !reflect.DeepEqual(d1.Header, d2.Header) {
		t.Errorf("Headers differ:\n%+v\n%+v", d1.Header, d2.Header)
	}
	if len(d1.Messages) != len(d2.Messages) {
		t.Fatalf("Expected: %v messages, got: %v", len(d1.Messages), len(d2.Messages))
	}
	for i := range d1.Messages {
		if !reflect.DeepEqual(d1.Messages[i], d2.Messages[i]) {
			t.Errorf("Message %d differs:\n%+v\n%+v", i, d1.Messages[i], d2.Messages[i])
		}
	}

	if !reflect.DeepEqual(d1.StringTables, d2.StringTables) {
		t.Error("String tables differ!")
	}
}

func TestFullDemoContent(t *testing.T) {
	d, err := Parse(buildFullDemo(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if d.ServerInfo == nil || d.ServerInfo.MapName != "ctf_2fort" {
		t.Fatalf("Unexpected server info: %+v", d.ServerInfo)
	}
	if len(d.Classes) != 1 || d.Classes[0].Name != "CTFPlayer" {
		t.Fatalf("Unexpected classes: %+v", d.Classes)
	}
	// ChangesOften moves m_vecOrigin to the front of the flat table:
	flat := d.Classes[0].FlatTable
	if flat[0].Prop.Name != "m_vecOrigin" || flat[1].Prop.Name != "m_iHealth" {
		t.Errorf("Unexpected flat table: %v, %v", flat[0].Prop.Name, flat[1].Prop.Name)
	}

	if len(d.EventDefs) != 1 {
		t.Errorf("Expected: %v event defs, got: %v", 1, len(d.EventDefs))
	}

	pk := d.Messages[3].(*dem.Packet)
	if len(pk.Events) != 1 || pk.Events[0].EventName() != "player_connect" {
		t.Fatalf("Unexpected events: %+v", pk.Events)
	}
	if len(pk.EntityUpdates) != 1 {
		t.Fatalf("Expected: %v entity updates, got: %v", 1, len(pk.EntityUpdates))
	}
	u := pk.EntityUpdates[0]
	if u.EntityIndex != 2 || u.Type != demcore.UpdateTypeEnterPvs {
		t.Errorf("Unexpected update: %+v", u)
	}
	if v := u.Props[0].Value.(demcore.Vector); v.X != 128 || v.Y != -64.5 || v.Z != 12.25 {
		t.Errorf("Unexpected origin: %v", v)
	}
	if v := u.Props[1].Value.(int64); v != 175 {
		t.Errorf("Expected: %v, got: %v", 175, v)
	}

	// Derived data:
	d.Compute()
	if d.Computed.EventCounts["player_connect"] != 1 {
		t.Errorf("Unexpected event counts: %v", d.Computed.EventCounts)
	}
	if d.Computed.EntityUpdateCount != 1 {
		t.Errorf("Expected: %v, got: %v", 1, d.Computed.EntityUpdateCount)
	}
	if len(d.Computed.ChatMessages) != 1 || d.Computed.ChatMessages[0].Text != "hi" {
		t.Errorf("Unexpected chat: %+v", d.Computed.ChatMessages)
	}
	if d.Computed.TickRate < 66 || d.Computed.TickRate > 67 {
		t.Errorf("Unexpected tick rate: %v", d.Computed.TickRate)
	}
}
