// This file contains the entity delta engine: applying packet entities
// messages against per-slot entity state, and the per-kind property value
// codec.

package demparser

import (
	"math"
	"sort"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
)

// propStringLengthBits is the bit width of string prop lengths.
const propStringLengthBits = 9

// entityTable holds the reconstructed entity states by slot index.
type entityTable struct {
	slots map[uint16]*dem.Entity
}

// snapshot returns the entities in slot order.
func (t *entityTable) snapshot() []*dem.Entity {
	ents := make([]*dem.Entity, 0, len(t.slots))
	for _, e := range t.slots {
		ents = append(ents, e)
	}
	sort.SliceStable(ents, func(i, j int) bool { return ents[i].Index < ents[j].Index })
	return ents
}

// applyPacketEntities decodes the update records of a packet entities
// message and applies them to the entity table, producing the updates in
// wire index order.
func (p *Parser) applyPacketEntities(msg *demmsg.SvcPacketEntities, b *dembit.Buff) []*demmsg.EntityUpdate {
	updates := make([]*demmsg.EntityUpdate, 0, msg.UpdatedEntries)

	index := -1
	for i := 0; i < int(msg.UpdatedEntries); i++ {
		index += 1 + int(b.ReadUBitVar())
		if index >= 1<<dem.MaxEntityIndexBits {
			panic(&MalformedEntityUpdateError{EntityIndex: uint16(index & 0xffff), Reason: "entity index out of range"})
		}
		entIdx := uint16(index)

		u := &demmsg.EntityUpdate{
			EntityIndex: entIdx,
			Type:        demcore.UpdateTypeByID(byte(b.ReadBits(2))),
		}

		switch u.Type {
		case demcore.UpdateTypeEnterPvs:
			classID := uint16(b.ReadBits(p.classBits))
			if int(classID) >= len(p.classes) {
				panic(&MalformedEntityUpdateError{EntityIndex: entIdx, Reason: "class id out of range"})
			}
			u.ClassID = classID
			u.Serial = uint32(b.ReadBits(dem.EntitySerialBits))
			sc := p.classes[classID]
			// Entering entities are deltas against the zero baseline:
			u.Props = readProps(b, sc)

			e := &dem.Entity{
				Index:   entIdx,
				Serial:  u.Serial,
				ClassID: classID,
				Class:   sc,
				InPVS:   true,
				Props:   map[int]any{},
			}
			applyProps(e, u.Props)
			p.entities.slots[entIdx] = e

		case demcore.UpdateTypeDelta:
			e := p.entities.slots[entIdx]
			if e == nil {
				panic(&MalformedEntityUpdateError{EntityIndex: entIdx, Reason: "delta for an unknown entity"})
			}
			u.ClassID = e.ClassID
			u.Props = readProps(b, e.Class)
			applyProps(e, u.Props)
			e.InPVS = true

		case demcore.UpdateTypeLeavePvs:
			if e := p.entities.slots[entIdx]; e != nil {
				e.InPVS = false
			}

		case demcore.UpdateTypeDelete:
			delete(p.entities.slots, entIdx)
		}

		updates = append(updates, u)
	}

	return updates
}

// applyProps merges decoded prop updates into the entity state.
func applyProps(e *dem.Entity, props []demmsg.PropUpdate) {
	for _, pu := range props {
		e.Props[pu.Index] = pu.Value
	}
}

// readProps decodes the changed property list of one entity update: a
// sorted sequence of index deltas and values, terminated by a zero delta.
func readProps(b *dembit.Buff, sc *dem.ServerClass) []demmsg.PropUpdate {
	var props []demmsg.PropUpdate

	index := -1
	for {
		delta := int(b.ReadUBitVar())
		if delta == 0 {
			break
		}
		index += delta
		if index >= len(sc.FlatTable) {
			panic(&MalformedEntityUpdateError{Reason: "property index beyond flat table bounds"})
		}
		props = append(props, demmsg.PropUpdate{
			Index: index,
			Value: readPropValue(b, sc.FlatTable[index].Prop),
		})
	}
	return props
}

// writeProps encodes a changed property list in the format read by
// readProps. Props must be in ascending index order.
func writeProps(w *dembit.Writer, sc *dem.ServerClass, props []demmsg.PropUpdate) {
	index := -1
	for _, pu := range props {
		w.WriteUBitVar(uint32(pu.Index - index))
		index = pu.Index
		writePropValue(w, sc.FlatTable[pu.Index].Prop, pu.Value)
	}
	w.WriteUBitVar(0)
}

// readPropValue decodes one property value per the prop's kind and flags.
func readPropValue(b *dembit.Buff, prop *dem.SendProp) any {
	switch prop.Kind {
	case demcore.PropKindInt, demcore.PropKindInt64:
		return readPropInt(b, prop)

	case demcore.PropKindFloat:
		return readPropFloat(b, prop)

	case demcore.PropKindVector:
		v := demcore.Vector{X: readPropFloat(b, prop), Y: readPropFloat(b, prop)}
		if prop.Flags.Has(demcore.PropFlagNormal) {
			// Unit vector: z is derived from x and y, only its sign is sent.
			neg := b.ReadBits1()
			zz := 1 - float64(v.X)*float64(v.X) - float64(v.Y)*float64(v.Y)
			if zz > 0 {
				v.Z = float32(math.Sqrt(zz))
			}
			if neg {
				v.Z = -v.Z
			}
		} else {
			v.Z = readPropFloat(b, prop)
		}
		return v

	case demcore.PropKindVectorXY:
		return demcore.Vector{X: readPropFloat(b, prop), Y: readPropFloat(b, prop)}

	case demcore.PropKindString:
		return b.ReadLengthString(propStringLengthBits)

	case demcore.PropKindArray:
		bits := log2ceil(int(prop.ElementCount))
		if bits == 0 {
			bits = 1
		}
		count := int(b.ReadBits(bits))
		elems := make([]any, count)
		for i := range elems {
			elems[i] = readPropValue(b, prop.ArrayElem)
		}
		return elems
	}

	panic(&MalformedEntityUpdateError{Reason: "prop of kind " + prop.Kind.Name + " cannot be decoded"})
}

// writePropValue encodes one property value in the format read by
// readPropValue.
func writePropValue(w *dembit.Writer, prop *dem.SendProp, v any) {
	switch prop.Kind {
	case demcore.PropKindInt, demcore.PropKindInt64:
		writePropInt(w, prop, v.(int64))

	case demcore.PropKindFloat:
		writePropFloat(w, prop, v.(float32))

	case demcore.PropKindVector:
		vec := v.(demcore.Vector)
		writePropFloat(w, prop, vec.X)
		writePropFloat(w, prop, vec.Y)
		if prop.Flags.Has(demcore.PropFlagNormal) {
			w.WriteBits1(vec.Z < 0)
		} else {
			writePropFloat(w, prop, vec.Z)
		}

	case demcore.PropKindVectorXY:
		vec := v.(demcore.Vector)
		writePropFloat(w, prop, vec.X)
		writePropFloat(w, prop, vec.Y)

	case demcore.PropKindString:
		w.WriteLengthString(propStringLengthBits, v.(string))

	case demcore.PropKindArray:
		bits := log2ceil(int(prop.ElementCount))
		if bits == 0 {
			bits = 1
		}
		elems := v.([]any)
		w.WriteBits(uint64(len(elems)), bits)
		for _, elem := range elems {
			writePropValue(w, prop.ArrayElem, elem)
		}
	}
}

// readPropInt decodes an integer prop: raw bits if unsigned, else a sign
// bit followed by the magnitude.
func readPropInt(b *dembit.Buff, prop *dem.SendProp) int64 {
	if prop.Flags.Has(demcore.PropFlagUnsigned) {
		return int64(b.ReadBits(prop.BitCount))
	}
	neg := b.ReadBits1()
	value := int64(b.ReadBits(prop.BitCount - 1))
	if neg {
		value = -value
	}
	return value
}

// writePropInt encodes an integer prop in the format read by readPropInt.
func writePropInt(w *dembit.Writer, prop *dem.SendProp, value int64) {
	if prop.Flags.Has(demcore.PropFlagUnsigned) {
		w.WriteBits(uint64(value), prop.BitCount)
		return
	}
	neg := value < 0
	if neg {
		value = -value
	}
	w.WriteBits1(neg)
	w.WriteBits(uint64(value), prop.BitCount-1)
}

// readPropFloat decodes a float prop by one of its sub-encodings, selected
// by the prop's flags: coordinate (any of the coord flags), raw 32-bit
// (NoScale), normal, or otherwise quantized between the prop's bounds.
func readPropFloat(b *dembit.Buff, prop *dem.SendProp) float32 {
	f := prop.Flags
	switch {
	case f.Has(demcore.PropFlagCoord), f.Has(demcore.PropFlagCoordMP),
		f.Has(demcore.PropFlagCoordMPLowPrecision), f.Has(demcore.PropFlagCoordMPIntegral):
		return b.ReadCoord()
	case f.Has(demcore.PropFlagNoScale):
		return b.ReadFloat()
	case f.Has(demcore.PropFlagNormal):
		return b.ReadNormal()
	}

	q := b.ReadBits(prop.BitCount)
	max := uint64(1)<<prop.BitCount - 1
	return prop.LowValue + (prop.HighValue-prop.LowValue)*float32(q)/float32(max)
}

// writePropFloat encodes a float prop in the format read by readPropFloat.
func writePropFloat(w *dembit.Writer, prop *dem.SendProp, value float32) {
	f := prop.Flags
	switch {
	case f.Has(demcore.PropFlagCoord), f.Has(demcore.PropFlagCoordMP),
		f.Has(demcore.PropFlagCoordMPLowPrecision), f.Has(demcore.PropFlagCoordMPIntegral):
		w.WriteCoord(value)
		return
	case f.Has(demcore.PropFlagNoScale):
		w.WriteFloat(value)
		return
	case f.Has(demcore.PropFlagNormal):
		w.WriteNormal(value)
		return
	}

	max := uint64(1)<<prop.BitCount - 1
	ratio := (value - prop.LowValue) / (prop.HighValue - prop.LowValue)
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	w.WriteBits(uint64(math.Round(float64(ratio)*float64(max))), prop.BitCount)
}

// writeEntityUpdates encodes update records in the format read by
// applyPacketEntities. classBits is the width of the class id written for
// enter updates; classes, indexed by each update's ClassID, resolves the
// flat table of delta and enter updates.
func writeEntityUpdates(w *dembit.Writer, updates []*demmsg.EntityUpdate, classBits byte, classes []*dem.ServerClass) {
	index := -1
	for _, u := range updates {
		w.WriteUBitVar(uint32(int(u.EntityIndex) - index - 1))
		index = int(u.EntityIndex)

		w.WriteBits(uint64(u.Type.ID), 2)
		switch u.Type {
		case demcore.UpdateTypeEnterPvs:
			w.WriteBits(uint64(u.ClassID), classBits)
			w.WriteBits(uint64(u.Serial), dem.EntitySerialBits)
			writeProps(w, classes[u.ClassID], u.Props)
		case demcore.UpdateTypeDelta:
			writeProps(w, classes[u.ClassID], u.Props)
		}
	}
}
