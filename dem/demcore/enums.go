// This file contains general enum types.

package demcore

import "fmt"

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity
	Name string
}

// String returns the string representation of the enum (the name).
// Defined with value receiver so this gets called even if a non-pointer is used.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unknown entity with a name:
//
//	"Unknown 0xID"
//
// ID must be an integer number.
func UnknownEnum(ID any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", ID)}
}

// ValueKind is the type of a game event field value.
type ValueKind struct {
	Enum

	// ID as it appears in game event definitions
	ID byte
}

// ValueKinds is an enumeration of the possible game event value kinds.
// ID 0 marks the end of an event definition's entry list on the wire.
var ValueKinds = []*ValueKind{
	{Enum{"Local"}, 0x00},
	{Enum{"String"}, 0x01},
	{Enum{"Float"}, 0x02},
	{Enum{"Int32"}, 0x03},
	{Enum{"Int16"}, 0x04},
	{Enum{"Int8"}, 0x05},
	{Enum{"Bool"}, 0x06},
}

// Named value kinds
var (
	ValueKindLocal  = ValueKinds[0]
	ValueKindString = ValueKinds[1]
	ValueKindFloat  = ValueKinds[2]
	ValueKindInt32  = ValueKinds[3]
	ValueKindInt16  = ValueKinds[4]
	ValueKindInt8   = ValueKinds[5]
	ValueKindBool   = ValueKinds[6]
)

// ValueKindByID returns the ValueKind for a given ID.
// A new ValueKind with Unknown name is returned if one is not found
// for the given ID (preserving the unknown ID).
func ValueKindByID(ID byte) *ValueKind {
	if int(ID) < len(ValueKinds) {
		return ValueKinds[ID]
	}
	return &ValueKind{UnknownEnum(ID), ID}
}

// DefaultValue returns the canonical default value of the kind:
// empty string, 0.0, 0 or false.
func (k *ValueKind) DefaultValue() any {
	switch k {
	case ValueKindString:
		return ""
	case ValueKindFloat:
		return float32(0)
	case ValueKindInt32:
		return int32(0)
	case ValueKindInt16:
		return int16(0)
	case ValueKindInt8:
		return int8(0)
	case ValueKindBool:
		return false
	}
	return nil
}

// PropKind is the type of a send-prop.
type PropKind struct {
	Enum

	// ID as it appears in send tables
	ID byte
}

// PropKinds is an enumeration of the possible send-prop kinds.
var PropKinds = []*PropKind{
	{Enum{"Int"}, 0x00},
	{Enum{"Float"}, 0x01},
	{Enum{"Vector"}, 0x02},
	{Enum{"VectorXY"}, 0x03},
	{Enum{"String"}, 0x04},
	{Enum{"Array"}, 0x05},
	{Enum{"DataTable"}, 0x06},
	{Enum{"Int64"}, 0x07},
}

// Named prop kinds
var (
	PropKindInt       = PropKinds[0]
	PropKindFloat     = PropKinds[1]
	PropKindVector    = PropKinds[2]
	PropKindVectorXY  = PropKinds[3]
	PropKindString    = PropKinds[4]
	PropKindArray     = PropKinds[5]
	PropKindDataTable = PropKinds[6]
	PropKindInt64     = PropKinds[7]
)

// PropKindByID returns the PropKind for a given ID.
// A new PropKind with Unknown name is returned if one is not found
// for the given ID (preserving the unknown ID).
func PropKindByID(ID byte) *PropKind {
	if int(ID) < len(PropKinds) {
		return PropKinds[ID]
	}
	return &PropKind{UnknownEnum(ID), ID}
}

// UpdateType is the kind of an entity update inside a packet entities message.
type UpdateType struct {
	Enum

	// ID as it appears on the wire (2 bits)
	ID byte
}

// UpdateTypes is an enumeration of the possible entity update types.
var UpdateTypes = []*UpdateType{
	{Enum{"Delta"}, 0x00},
	{Enum{"LeavePvs"}, 0x01},
	{Enum{"EnterPvs"}, 0x02},
	{Enum{"Delete"}, 0x03},
}

// Named update types
var (
	UpdateTypeDelta    = UpdateTypes[0]
	UpdateTypeLeavePvs = UpdateTypes[1]
	UpdateTypeEnterPvs = UpdateTypes[2]
	UpdateTypeDelete   = UpdateTypes[3]
)

// UpdateTypeByID returns the UpdateType for a given ID.
func UpdateTypeByID(ID byte) *UpdateType {
	if int(ID) < len(UpdateTypes) {
		return UpdateTypes[ID]
	}
	return &UpdateType{UnknownEnum(ID), ID}
}
