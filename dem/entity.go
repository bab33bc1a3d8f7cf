// This file contains the entity model.

package dem

// MaxEntityIndexBits is the bit width of entity indices; entities occupy
// indices 0..2047.
const MaxEntityIndexBits = 11

// EntitySerialBits is the bit width of entity serial numbers.
const EntitySerialBits = 10

// Entity is the reconstructed state of one entity slot.
type Entity struct {
	// Index of the entity slot, 0..2047
	Index uint16

	// Serial number distinguishing successive occupants of the slot
	Serial uint32

	// ClassID of the entity's server class
	ClassID uint16

	// Class of the entity
	Class *ServerClass `json:"-"`

	// InPVS tells if the entity is currently in the potentially visible set
	InPVS bool

	// Props maps flat-table indices to decoded values
	Props map[int]any
}

// Prop returns the decoded value of the prop at the given flat-table index,
// and whether the entity carries it.
func (e *Entity) Prop(index int) (any, bool) {
	v, ok := e.Props[index]
	return v, ok
}

// PropByName returns the decoded value of the named prop, and whether the
// entity carries it. The name is matched as "TableName.PropName".
func (e *Entity) PropByName(name string) (any, bool) {
	if e.Class == nil {
		return nil, false
	}
	for i, fp := range e.Class.FlatTable {
		if fp.TableName+"."+fp.Prop.Name == name {
			return e.Prop(i)
		}
	}
	return nil, false
}
