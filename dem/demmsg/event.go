// This file contains the game event model: definitions built from the
// GameEventList message, the typed value carrier, and the dynamic fallback
// event. The statically typed event structs are in the generated events.go.

package demmsg

import (
	"fmt"

	"github.com/icza/sdem/dem/demcore"
)

// GameEventDef is the schema of one game event type, built from the
// GameEventList message. Definitions are immutable once built.
type GameEventDef struct {
	// ID of the event type on the wire
	ID uint32

	// Name of the event type, e.g. "player_death"
	Name string

	// Entries of the event in definition order
	Entries []GameEventEntry
}

// GameEventEntry is one field of a game event definition.
type GameEventEntry struct {
	// Name of the field
	Name string

	// Kind of the field value
	Kind *demcore.ValueKind

	// Hash is the 64-bit FNV-1a hash of the lower-cased field name,
	// computed identically on the encode and decode sides.
	Hash uint64
}

// EntryHash returns the stable 64-bit hash of a field name:
// FNV-1a over the lower-cased ASCII bytes.
func EntryHash(name string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		h ^= uint64(c)
		h *= prime64
	}
	return h
}

// NewGameEventEntry returns an entry with its hash filled in.
func NewGameEventEntry(name string, kind *demcore.ValueKind) GameEventEntry {
	return GameEventEntry{Name: name, Kind: kind, Hash: EntryHash(name)}
}

// EventValue is one decoded game event field value.
type EventValue struct {
	// Kind the value was decoded as
	Kind *demcore.ValueKind

	// Val holds string, float32, int32, int16, int8 or bool
	// according to Kind.
	Val any
}

// EventValues maps field-name hashes to decoded values.
// It is the hand-off format between the wire decoder and the statically
// typed event structs.
type EventValues map[uint64]EventValue

// InvalidGameEventError is returned when a statically typed event field's
// kind disagrees with the kind declared by the event definition.
type InvalidGameEventError struct {
	// Name of the field in question
	Name string

	// ExpectedKind is the kind the static struct declares
	ExpectedKind *demcore.ValueKind

	// FoundKind is the kind the definition declares
	FoundKind *demcore.ValueKind
}

// Error implements error.
func (e *InvalidGameEventError) Error() string {
	return fmt.Sprintf("invalid game event: field %q declared as %v, definition says %v",
		e.Name, e.ExpectedKind, e.FoundKind)
}

// MissingGameEventValueError is returned by RawGameEvent.Value when the
// event's definition did not include the requested field. Statically typed
// structs default such fields per kind and do not return it.
type MissingGameEventValueError struct {
	// Type is the event type name
	Type string

	// Field is the missing field name
	Field string
}

// Error implements error.
func (e *MissingGameEventValueError) Error() string {
	return fmt.Sprintf("missing game event value: %s.%s", e.Type, e.Field)
}

// Typed accessors used by the generated event structs. A field absent from
// the values defaults per its kind; a kind mismatch is an error carrying
// the field name.

func (vals EventValues) stringVal(h uint64, field string) (string, error) {
	v, ok := vals[h]
	if !ok {
		return "", nil
	}
	if v.Kind != demcore.ValueKindString {
		return "", &InvalidGameEventError{Name: field, ExpectedKind: demcore.ValueKindString, FoundKind: v.Kind}
	}
	return v.Val.(string), nil
}

func (vals EventValues) floatVal(h uint64, field string) (float32, error) {
	v, ok := vals[h]
	if !ok {
		return 0, nil
	}
	if v.Kind != demcore.ValueKindFloat {
		return 0, &InvalidGameEventError{Name: field, ExpectedKind: demcore.ValueKindFloat, FoundKind: v.Kind}
	}
	return v.Val.(float32), nil
}

func (vals EventValues) int32Val(h uint64, field string) (int32, error) {
	v, ok := vals[h]
	if !ok {
		return 0, nil
	}
	if v.Kind != demcore.ValueKindInt32 {
		return 0, &InvalidGameEventError{Name: field, ExpectedKind: demcore.ValueKindInt32, FoundKind: v.Kind}
	}
	return v.Val.(int32), nil
}

func (vals EventValues) int16Val(h uint64, field string) (int16, error) {
	v, ok := vals[h]
	if !ok {
		return 0, nil
	}
	if v.Kind != demcore.ValueKindInt16 {
		return 0, &InvalidGameEventError{Name: field, ExpectedKind: demcore.ValueKindInt16, FoundKind: v.Kind}
	}
	return v.Val.(int16), nil
}

func (vals EventValues) int8Val(h uint64, field string) (int8, error) {
	v, ok := vals[h]
	if !ok {
		return 0, nil
	}
	if v.Kind != demcore.ValueKindInt8 {
		return 0, &InvalidGameEventError{Name: field, ExpectedKind: demcore.ValueKindInt8, FoundKind: v.Kind}
	}
	return v.Val.(int8), nil
}

func (vals EventValues) boolVal(h uint64, field string) (bool, error) {
	v, ok := vals[h]
	if !ok {
		return false, nil
	}
	if v.Kind != demcore.ValueKindBool {
		return false, &InvalidGameEventError{Name: field, ExpectedKind: demcore.ValueKindBool, FoundKind: v.Kind}
	}
	return v.Val.(bool), nil
}

// GameEvent is a decoded game event: one of the generated statically typed
// structs, or RawGameEvent for event types not known statically.
type GameEvent interface {
	// EventName returns the wire name of the event type.
	EventName() string

	// setValues fills the event from decoded values, matching fields by
	// name hash. Absent fields default per kind; kind mismatches fail.
	setValues(vals EventValues) error

	// valueByHash returns the field value for a name hash,
	// and whether the event carries such a field.
	valueByHash(h uint64) (any, bool)
}

// RawGameEvent is the fallback representation for event types with no
// statically typed counterpart. It preserves all (entry, value) pairs in
// definition order.
type RawGameEvent struct {
	// Name of the event type
	Name string

	// Entries of the definition, in order
	Entries []GameEventEntry

	// Values of the entries, parallel to Entries
	Values []EventValue
}

// EventName returns the wire name of the event type.
func (e *RawGameEvent) EventName() string { return e.Name }

func (e *RawGameEvent) setValues(vals EventValues) error {
	e.Values = make([]EventValue, len(e.Entries))
	for i, entry := range e.Entries {
		if v, ok := vals[entry.Hash]; ok {
			e.Values[i] = v
		} else {
			e.Values[i] = EventValue{Kind: entry.Kind, Val: entry.Kind.DefaultValue()}
		}
	}
	return nil
}

// Value returns the value of the named field.
// A MissingGameEventValueError is returned if the event's definition did
// not include the field.
func (e *RawGameEvent) Value(name string) (any, error) {
	if v, ok := e.valueByHash(EntryHash(name)); ok {
		return v, nil
	}
	return nil, &MissingGameEventValueError{Type: e.Name, Field: name}
}

func (e *RawGameEvent) valueByHash(h uint64) (any, bool) {
	for i, entry := range e.Entries {
		if entry.Hash == h && i < len(e.Values) {
			return e.Values[i].Val, true
		}
	}
	return nil, false
}

// BuildEvent materializes a game event from its definition and the decoded
// values. Known event names produce their generated statically typed
// struct; unknown names produce a *RawGameEvent.
func BuildEvent(def *GameEventDef, vals EventValues) (GameEvent, error) {
	var ev GameEvent
	if factory, ok := eventFactories[def.Name]; ok {
		ev = factory()
	} else {
		ev = &RawGameEvent{Name: def.Name, Entries: def.Entries}
	}
	if err := ev.setValues(vals); err != nil {
		return nil, err
	}
	return ev, nil
}

// EventWireValues returns the values to emit for the event against the
// given definition, in definition order. Fields the event does not carry
// default per the entry's kind, so a round trip against a definition
// succeeds even when the static struct lacks a field.
func EventWireValues(def *GameEventDef, ev GameEvent) ([]EventValue, error) {
	out := make([]EventValue, len(def.Entries))
	for i, entry := range def.Entries {
		v, ok := ev.valueByHash(entry.Hash)
		if !ok {
			out[i] = EventValue{Kind: entry.Kind, Val: entry.Kind.DefaultValue()}
			continue
		}
		if err := checkWireKind(entry, v); err != nil {
			return nil, err
		}
		out[i] = EventValue{Kind: entry.Kind, Val: v}
	}
	return out, nil
}

// checkWireKind verifies the Go type of a static field value against the
// kind the definition declares for the entry.
func checkWireKind(entry GameEventEntry, v any) error {
	var found *demcore.ValueKind
	switch v.(type) {
	case string:
		found = demcore.ValueKindString
	case float32:
		found = demcore.ValueKindFloat
	case int32:
		found = demcore.ValueKindInt32
	case int16:
		found = demcore.ValueKindInt16
	case int8:
		found = demcore.ValueKindInt8
	case bool:
		found = demcore.ValueKindBool
	default:
		return &InvalidGameEventError{Name: entry.Name, ExpectedKind: nil, FoundKind: entry.Kind}
	}
	if found != entry.Kind {
		return &InvalidGameEventError{Name: entry.Name, ExpectedKind: found, FoundKind: entry.Kind}
	}
	return nil
}
