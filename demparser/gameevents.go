// This file contains the game event registry: decoding the game event list
// into definitions and decoding / encoding events against them.

package demparser

import (
	"fmt"

	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
)

// Bit widths of the game event wire format.
const (
	eventCountBits  = 9
	eventIDBits     = 9
	eventKindBits   = 3
	eventLengthBits = 20
	maxEventNameLen = 32
	maxEventStrLen  = 1024
)

// parseGameEventList decodes the SvcGameEventList message body: the event
// count, a bit length, then the definitions. Each definition is the event
// id and name followed by (kind, name) entries terminated by kind 0.
func parseGameEventList(b *dembit.Buff) []*demmsg.GameEventDef {
	numEvents := int(b.ReadBits(eventCountBits))
	lengthBits := int(b.ReadBits(eventLengthBits))
	sub := b.Sub(lengthBits)

	defs := make([]*demmsg.GameEventDef, numEvents)
	for i := range defs {
		def := &demmsg.GameEventDef{
			ID:   uint32(sub.ReadBits(eventIDBits)),
			Name: sub.ReadString(maxEventNameLen),
		}
		for {
			kind := byte(sub.ReadBits(eventKindBits))
			if kind == demcore.ValueKindLocal.ID {
				break
			}
			name := sub.ReadString(maxEventNameLen)
			def.Entries = append(def.Entries, demmsg.NewGameEventEntry(name, demcore.ValueKindByID(kind)))
		}
		defs[i] = def
	}
	return defs
}

// writeGameEventList encodes definitions in the format read by
// parseGameEventList.
func writeGameEventList(w *dembit.Writer, defs []*demmsg.GameEventDef) {
	sub := &dembit.Writer{}
	for _, def := range defs {
		sub.WriteBits(uint64(def.ID), eventIDBits)
		sub.WriteString(def.Name)
		for _, entry := range def.Entries {
			sub.WriteBits(uint64(entry.Kind.ID), eventKindBits)
			sub.WriteString(entry.Name)
		}
		sub.WriteBits(uint64(demcore.ValueKindLocal.ID), eventKindBits)
	}

	w.WriteBits(uint64(len(defs)), eventCountBits)
	w.WriteBits(uint64(sub.BitLen()), eventLengthBits)
	w.WriteBitStream(sub.Bytes(), sub.BitLen())
}

// decodeGameEvent decodes one game event body: the event type id followed
// by the entry values per the definition's kinds.
func (p *Parser) decodeGameEvent(b *dembit.Buff) demmsg.GameEvent {
	id := uint32(b.ReadBits(eventIDBits))
	def, ok := p.eventDefs[id]
	if !ok {
		panic(fmt.Errorf("game event with unknown id: %d", id))
	}

	vals := make(demmsg.EventValues, len(def.Entries))
	for _, entry := range def.Entries {
		vals[entry.Hash] = demmsg.EventValue{Kind: entry.Kind, Val: readEventValue(b, entry.Kind)}
	}

	ev, err := demmsg.BuildEvent(def, vals)
	if err != nil {
		panic(err)
	}
	return ev
}

// readEventValue decodes one event field value per its kind.
func readEventValue(b *dembit.Buff, kind *demcore.ValueKind) any {
	switch kind {
	case demcore.ValueKindString:
		return b.ReadString(maxEventStrLen)
	case demcore.ValueKindFloat:
		return b.ReadFloat()
	case demcore.ValueKindInt32:
		return int32(b.ReadBits(32))
	case demcore.ValueKindInt16:
		return int16(b.ReadBits(16))
	case demcore.ValueKindInt8:
		return int8(b.ReadBits(8))
	case demcore.ValueKindBool:
		return b.ReadBits1()
	}
	// Local and unknown kinds carry no wire data.
	return kind.DefaultValue()
}

// encodeGameEvent encodes ev against its definition: the event type id
// followed by the field values in definition order, defaulting fields the
// event does not carry.
func encodeGameEvent(w *dembit.Writer, def *demmsg.GameEventDef, ev demmsg.GameEvent) {
	vals, err := demmsg.EventWireValues(def, ev)
	if err != nil {
		panic(err)
	}

	w.WriteBits(uint64(def.ID), eventIDBits)
	for i, entry := range def.Entries {
		writeEventValue(w, entry.Kind, vals[i].Val)
	}
}

// writeEventValue encodes one event field value per its kind.
func writeEventValue(w *dembit.Writer, kind *demcore.ValueKind, v any) {
	switch kind {
	case demcore.ValueKindString:
		w.WriteString(v.(string))
	case demcore.ValueKindFloat:
		w.WriteFloat(v.(float32))
	case demcore.ValueKindInt32:
		w.WriteBits(uint64(uint32(v.(int32))), 32)
	case demcore.ValueKindInt16:
		w.WriteBits(uint64(uint16(v.(int16))), 16)
	case demcore.ValueKindInt8:
		w.WriteBits(uint64(uint8(v.(int8))), 8)
	case demcore.ValueKindBool:
		w.WriteBits1(v.(bool))
	}
}
