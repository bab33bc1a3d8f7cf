// This file contains the send table and server class model.

package dem

import "github.com/icza/sdem/dem/demcore"

// SendProp is one property of a network-replicated class schema.
type SendProp struct {
	// Name of the prop
	Name string

	// Kind of the prop
	Kind *demcore.PropKind

	// Flags qualifying the encoding
	Flags demcore.PropFlag

	// Priority used when sorting the flat table
	Priority byte

	// BitCount is the encoded bit width for Int / quantized Float props
	BitCount byte

	// LowValue and HighValue bound quantized Float props
	LowValue  float32
	HighValue float32

	// ElementCount is the max element count for Array props
	ElementCount uint16

	// DataTableName references the inlined table for DataTable props,
	// or the exclusion target table for Exclude props
	DataTableName string

	// ArrayElem is the element prop of Array props
	ArrayElem *SendProp
}

// IsExclude tells if the prop is an exclusion marker rather than a value.
func (p *SendProp) IsExclude() bool {
	return p.Flags.Has(demcore.PropFlagExclude)
}

// SendTable is a named collection of send-props serving as an inlinable
// composite.
type SendTable struct {
	// Name of the table, e.g. "DT_TFPlayer"
	Name string

	// NeedsDecoder tells if the client must build a decoder for the table
	NeedsDecoder bool

	// Props of the table in wire order
	Props []*SendProp
}

// FlatProp is one entry of a compiled flat table: a send-prop together with
// the name of the table it was inlined from.
type FlatProp struct {
	// TableName the prop originates from
	TableName string

	// Prop is the underlying send-prop
	Prop *SendProp
}

// ServerClass is one networked entity class.
type ServerClass struct {
	// ID of the class
	ID uint16

	// Name of the class, e.g. "CTFPlayer"
	Name string

	// DataTableName of the class's root send table
	DataTableName string

	// FlatTable is the fully inlined, exclusion-resolved, priority-sorted
	// sequence of props. The index into this slice is the wire identity
	// of a property.
	FlatTable []*FlatProp
}
