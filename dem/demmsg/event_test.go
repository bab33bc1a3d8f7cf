package demmsg

import (
	"testing"

	"github.com/icza/sdem/dem/demcore"
)

func TestEntryHash(t *testing.T) {
	// The hash is computed over the lower-cased ASCII name:
	if EntryHash("UserID") != EntryHash("userid") {
		t.Error("Hash is not case-insensitive!")
	}
	if EntryHash("userid") == EntryHash("attacker") {
		t.Error("Distinct names must not collide!")
	}
	// Stable across calls:
	if EntryHash("weapon") != EntryHash("weapon") {
		t.Error("Hash is not stable!")
	}
}

func TestBuildEventStatic(t *testing.T) {
	def := &GameEventDef{
		ID:   7,
		Name: "player_hurt",
		Entries: []GameEventEntry{
			NewGameEventEntry("userid", demcore.ValueKindInt16),
			NewGameEventEntry("health", demcore.ValueKindInt16),
			NewGameEventEntry("crit", demcore.ValueKindBool),
		},
	}
	vals := EventValues{
		EntryHash("userid"): {Kind: demcore.ValueKindInt16, Val: int16(3)},
		EntryHash("health"): {Kind: demcore.ValueKindInt16, Val: int16(85)},
		EntryHash("crit"):   {Kind: demcore.ValueKindBool, Val: true},
	}

	ev, err := BuildEvent(def, vals)
	if err != nil {
		t.Fatalf("BuildEvent() error: %v", err)
	}
	ph, ok := ev.(*PlayerHurt)
	if !ok {
		t.Fatalf("Expected *PlayerHurt, got: %T", ev)
	}
	if ph.Userid != 3 || ph.Health != 85 || !ph.Crit {
		t.Errorf("Unexpected event: %+v", ph)
	}
	// Fields absent from the definition keep their kind's default:
	if ph.Attacker != 0 || ph.Weaponid != 0 {
		t.Errorf("Expected defaults, got: %+v", ph)
	}
}

func TestBuildEventUnknown(t *testing.T) {
	def := &GameEventDef{
		ID:   9,
		Name: "server_mod_event",
		Entries: []GameEventEntry{
			NewGameEventEntry("payload", demcore.ValueKindString),
		},
	}
	vals := EventValues{
		EntryHash("payload"): {Kind: demcore.ValueKindString, Val: "data"},
	}

	ev, err := BuildEvent(def, vals)
	if err != nil {
		t.Fatalf("BuildEvent() error: %v", err)
	}
	raw, ok := ev.(*RawGameEvent)
	if !ok {
		t.Fatalf("Expected *RawGameEvent, got: %T", ev)
	}
	if raw.Values[0].Val != "data" {
		t.Errorf("Expected: %v, got: %v", "data", raw.Values[0].Val)
	}
}

func TestBuildEventKindMismatch(t *testing.T) {
	def := &GameEventDef{
		ID:   7,
		Name: "player_hurt",
		Entries: []GameEventEntry{
			NewGameEventEntry("userid", demcore.ValueKindFloat),
		},
	}
	vals := EventValues{
		EntryHash("userid"): {Kind: demcore.ValueKindFloat, Val: float32(3)},
	}

	_, err := BuildEvent(def, vals)
	ige, ok := err.(*InvalidGameEventError)
	if !ok {
		t.Fatalf("Expected *InvalidGameEventError, got: %v", err)
	}
	if ige.Name != "userid" {
		t.Errorf("Expected: %v, got: %v", "userid", ige.Name)
	}
	if ige.ExpectedKind != demcore.ValueKindInt16 || ige.FoundKind != demcore.ValueKindFloat {
		t.Errorf("Unexpected kinds: %v, %v", ige.ExpectedKind, ige.FoundKind)
	}
}

func TestEventWireValuesDefinitionOrder(t *testing.T) {
	def := &GameEventDef{
		ID:   1,
		Name: "player_connect",
		Entries: []GameEventEntry{
			NewGameEventEntry("userid", demcore.ValueKindInt16),
			NewGameEventEntry("name", demcore.ValueKindString),
			// Declared by the definition but not carried by the struct:
			NewGameEventEntry("mod_extra", demcore.ValueKindInt8),
		},
	}
	ev := &PlayerConnect{Name: "Bob", Userid: 2}

	vals, err := EventWireValues(def, ev)
	if err != nil {
		t.Fatalf("EventWireValues() error: %v", err)
	}
	if len(vals) != 3 {
		t.Fatalf("Expected: %v values, got: %v", 3, len(vals))
	}
	if vals[0].Val != int16(2) {
		t.Errorf("Expected: %v, got: %v", 2, vals[0].Val)
	}
	if vals[1].Val != "Bob" {
		t.Errorf("Expected: %v, got: %v", "Bob", vals[1].Val)
	}
	// The extra field defaults per its kind:
	if vals[2].Val != int8(0) {
		t.Errorf("Expected: %v, got: %v", 0, vals[2].Val)
	}
}

func TestKnownEventName(t *testing.T) {
	cases := []struct {
		name  string
		known bool
	}{
		{"player_death", true},
		{"player_connect", true},
		{"teamplay_round_win", true},
		{"definitely_not_an_event", false},
	}

	for _, c := range cases {
		if got := KnownEventName(c.name); got != c.known {
			t.Errorf("KnownEventName(%q): expected: %v, got: %v", c.name, c.known, got)
		}
	}
}
