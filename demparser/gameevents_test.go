package demparser

import (
	"errors"
	"testing"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
)

func playerConnectDef() *demmsg.GameEventDef {
	return &demmsg.GameEventDef{
		ID:   1,
		Name: "player_connect",
		Entries: []demmsg.GameEventEntry{
			demmsg.NewGameEventEntry("name", demcore.ValueKindString),
			demmsg.NewGameEventEntry("userid", demcore.ValueKindInt16),
		},
	}
}

func eventListMsg(defs ...*demmsg.GameEventDef) *demmsg.SvcGameEventList {
	return &demmsg.SvcGameEventList{
		Base:        &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcGameEventList)},
		Definitions: defs,
	}
}

func eventMsg(ev demmsg.GameEvent) *demmsg.SvcGameEvent {
	return &demmsg.SvcGameEvent{
		Base:  &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcGameEvent)},
		Event: ev,
	}
}

func TestGameEventStaticDispatch(t *testing.T) {
	w := NewWriter(testHeader())
	w.WriteMessage(&dem.Packet{
		MsgBase: &dem.MsgBase{},
		NetMsgs: []demmsg.Msg{
			eventListMsg(playerConnectDef()),
			eventMsg(&demmsg.PlayerConnect{Name: "Alice", Userid: 7}),
		},
	})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	d, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	pk := d.Messages[0].(*dem.Packet)
	if len(pk.Events) != 1 {
		t.Fatalf("Expected: %v events, got: %v", 1, len(pk.Events))
	}
	pc, ok := pk.Events[0].(*demmsg.PlayerConnect)
	if !ok {
		t.Fatalf("Expected *demmsg.PlayerConnect, got: %T", pk.Events[0])
	}
	if pc.Name != "Alice" {
		t.Errorf("Expected: %v, got: %v", "Alice", pc.Name)
	}
	if pc.Userid != 7 {
		t.Errorf("Expected: %v, got: %v", 7, pc.Userid)
	}
	// Fields the definition did not include default per their kind:
	if pc.Networkid != "" || pc.Bot != 0 {
		t.Errorf("Expected defaults, got: %q, %v", pc.Networkid, pc.Bot)
	}
}

func TestGameEventKindMismatch(t *testing.T) {
	// The definition declares userid as String; the static struct expects
	// Int16. Decoding must fail naming the field and both kinds.
	def := &demmsg.GameEventDef{
		ID:   1,
		Name: "player_connect",
		Entries: []demmsg.GameEventEntry{
			demmsg.NewGameEventEntry("name", demcore.ValueKindString),
			demmsg.NewGameEventEntry("userid", demcore.ValueKindString),
		},
	}
	raw := &demmsg.RawGameEvent{
		Name:    "player_connect",
		Entries: def.Entries,
		Values: []demmsg.EventValue{
			{Kind: demcore.ValueKindString, Val: "Alice"},
			{Kind: demcore.ValueKindString, Val: "7"},
		},
	}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.Packet{
		MsgBase: &dem.MsgBase{},
		NetMsgs: []demmsg.Msg{eventListMsg(def), eventMsg(raw)},
	})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	_, err := Parse(w.Bytes())
	var ige *demmsg.InvalidGameEventError
	if !errors.As(err, &ige) {
		t.Fatalf("Expected InvalidGameEventError, got: %v", err)
	}
	if ige.Name != "userid" {
		t.Errorf("Expected: %v, got: %v", "userid", ige.Name)
	}
	if ige.ExpectedKind != demcore.ValueKindInt16 {
		t.Errorf("Expected: %v, got: %v", demcore.ValueKindInt16, ige.ExpectedKind)
	}
	if ige.FoundKind != demcore.ValueKindString {
		t.Errorf("Expected: %v, got: %v", demcore.ValueKindString, ige.FoundKind)
	}
}

func TestGameEventUnknownName(t *testing.T) {
	def := &demmsg.GameEventDef{
		ID:   5,
		Name: "my_mod_event",
		Entries: []demmsg.GameEventEntry{
			demmsg.NewGameEventEntry("magnitude", demcore.ValueKindFloat),
			demmsg.NewGameEventEntry("active", demcore.ValueKindBool),
		},
	}
	raw := &demmsg.RawGameEvent{
		Name:    "my_mod_event",
		Entries: def.Entries,
		Values: []demmsg.EventValue{
			{Kind: demcore.ValueKindFloat, Val: float32(1.5)},
			{Kind: demcore.ValueKindBool, Val: true},
		},
	}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.Packet{
		MsgBase: &dem.MsgBase{},
		NetMsgs: []demmsg.Msg{eventListMsg(def), eventMsg(raw)},
	})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	d, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	pk := d.Messages[0].(*dem.Packet)
	got, ok := pk.Events[0].(*demmsg.RawGameEvent)
	if !ok {
		t.Fatalf("Expected *demmsg.RawGameEvent, got: %T", pk.Events[0])
	}
	if got.Name != "my_mod_event" {
		t.Errorf("Expected: %v, got: %v", "my_mod_event", got.Name)
	}
	if len(got.Values) != 2 {
		t.Fatalf("Expected: %v values, got: %v", 2, len(got.Values))
	}
	if v := got.Values[0].Val.(float32); v != 1.5 {
		t.Errorf("Expected: %v, got: %v", 1.5, v)
	}
	if v := got.Values[1].Val.(bool); !v {
		t.Errorf("Expected: %v, got: %v", true, v)
	}
}

func TestGameEventDefinitionOrderEmit(t *testing.T) {
	// The definition lists text before userid, the static struct declares
	// them in the opposite order; the emit must follow definition order.
	def := &demmsg.GameEventDef{
		ID:   3,
		Name: "player_say",
		Entries: []demmsg.GameEventEntry{
			demmsg.NewGameEventEntry("text", demcore.ValueKindString),
			demmsg.NewGameEventEntry("userid", demcore.ValueKindInt16),
		},
	}
	ev := &demmsg.PlayerSay{Userid: 12, Text: "hello"}

	w := &dembit.Writer{}
	encodeGameEvent(w, def, ev)

	b := dembit.NewBuff(w.Bytes())
	if id := b.ReadBits(9); id != 3 {
		t.Errorf("Expected: %v, got: %v", 3, id)
	}
	if text := b.ReadString(64); text != "hello" {
		t.Errorf("Expected: %v, got: %v", "hello", text)
	}
	if userid := int16(b.ReadBits(16)); userid != 12 {
		t.Errorf("Expected: %v, got: %v", 12, userid)
	}
}

func TestGameEventListRoundTrip(t *testing.T) {
	defs := []*demmsg.GameEventDef{
		playerConnectDef(),
		{ID: 2, Name: "teamplay_round_start", Entries: []demmsg.GameEventEntry{
			demmsg.NewGameEventEntry("full_reset", demcore.ValueKindBool),
		}},
	}

	w := &dembit.Writer{}
	writeGameEventList(w, defs)

	got := parseGameEventList(dembit.NewBuff(w.Bytes()))
	if len(got) != 2 {
		t.Fatalf("Expected: %v defs, got: %v", 2, len(got))
	}
	if got[0].Name != "player_connect" || got[0].ID != 1 {
		t.Errorf("Unexpected def: %+v", got[0])
	}
	if len(got[0].Entries) != 2 || got[0].Entries[1].Name != "userid" {
		t.Errorf("Unexpected entries: %+v", got[0].Entries)
	}
	if got[0].Entries[1].Kind != demcore.ValueKindInt16 {
		t.Errorf("Expected: %v, got: %v", demcore.ValueKindInt16, got[0].Entries[1].Kind)
	}
	if got[1].Entries[0].Hash != demmsg.EntryHash("full_reset") {
		t.Error("Entry hash not filled!")
	}
}
