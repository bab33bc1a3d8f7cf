// This file contains the send table engine: decoding the DataTables demo
// command and compiling per-class flat property tables.

package demparser

import (
	"sort"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demcore"
)

// Bit widths of the data tables wire format.
const (
	propKindBits     = 5
	propFlagBits     = 16
	propNumBits      = 7
	propCountBits    = 10
	arrayElementBits = 10
	classCountBits   = 16
	classIDBits      = 16
)

// Priorities used when sorting flat tables.
const (
	priorityChangesOften = 64
)

// parseDataTables decodes the DataTables command payload: the send table
// sequence followed by the server class list, and compiles the flat table
// of every class.
func (p *Parser) parseDataTables(data []byte) ([]*dem.SendTable, []*dem.ServerClass) {
	b := dembit.NewBuff(data)

	var tables []*dem.SendTable
	for b.ReadBits1() {
		tables = append(tables, parseSendTable(b))
	}

	byName := make(map[string]*dem.SendTable, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}

	count := int(b.ReadBits(classCountBits))
	classes := make([]*dem.ServerClass, count)
	for i := range classes {
		sc := &dem.ServerClass{
			ID:            uint16(b.ReadBits(classIDBits)),
			Name:          b.ReadString(256),
			DataTableName: b.ReadString(256),
		}
		sc.FlatTable = flattenClass(sc, byName)
		classes[i] = sc
	}

	p.sendTables = tables
	p.classes = classes
	p.classBits = log2ceil(len(classes))
	return tables, classes
}

// parseSendTable decodes one send table.
func parseSendTable(b *dembit.Buff) *dem.SendTable {
	t := &dem.SendTable{}
	t.NeedsDecoder = b.ReadBits1()
	t.Name = b.ReadString(256)

	numProps := int(b.ReadBits(propCountBits))
	t.Props = make([]*dem.SendProp, 0, numProps)
	for i := 0; i < numProps; i++ {
		prop := &dem.SendProp{}
		prop.Kind = demcore.PropKindByID(byte(b.ReadBits(propKindBits)))
		prop.Name = b.ReadString(256)
		prop.Flags = demcore.PropFlag(b.ReadBits(propFlagBits))
		prop.Priority = byte(b.ReadBits(8))

		switch {
		case prop.Kind == demcore.PropKindDataTable || prop.IsExclude():
			prop.DataTableName = b.ReadString(256)
		case prop.Kind == demcore.PropKindArray:
			prop.ElementCount = uint16(b.ReadBits(arrayElementBits))
			if i == 0 {
				panic(&InvalidSendTableError{Table: t.Name, Reason: "array prop without a preceding element prop"})
			}
			prop.ArrayElem = t.Props[i-1]
		default:
			prop.LowValue = b.ReadFloat()
			prop.HighValue = b.ReadFloat()
			prop.BitCount = byte(b.ReadBits(propNumBits))
		}

		t.Props = append(t.Props, prop)
	}
	return t
}

// writeSendTable encodes one send table in the format read by
// parseSendTable.
func writeSendTable(w *dembit.Writer, t *dem.SendTable) {
	w.WriteBits1(t.NeedsDecoder)
	w.WriteString(t.Name)
	w.WriteBits(uint64(len(t.Props)), propCountBits)
	for _, prop := range t.Props {
		w.WriteBits(uint64(prop.Kind.ID), propKindBits)
		w.WriteString(prop.Name)
		w.WriteBits(uint64(prop.Flags), propFlagBits)
		w.WriteBits(uint64(prop.Priority), 8)

		switch {
		case prop.Kind == demcore.PropKindDataTable || prop.IsExclude():
			w.WriteString(prop.DataTableName)
		case prop.Kind == demcore.PropKindArray:
			w.WriteBits(uint64(prop.ElementCount), arrayElementBits)
		default:
			w.WriteFloat(prop.LowValue)
			w.WriteFloat(prop.HighValue)
			w.WriteBits(uint64(prop.BitCount), propNumBits)
		}
	}
}

// writeDataTables encodes the DataTables command payload in the format read
// by parseDataTables.
func writeDataTables(w *dembit.Writer, tables []*dem.SendTable, classes []*dem.ServerClass) {
	for _, t := range tables {
		w.WriteBits1(true)
		writeSendTable(w, t)
	}
	w.WriteBits1(false)

	w.WriteBits(uint64(len(classes)), classCountBits)
	for _, sc := range classes {
		w.WriteBits(uint64(sc.ID), classIDBits)
		w.WriteString(sc.Name)
		w.WriteString(sc.DataTableName)
	}
}

// exclusion identifies one excluded prop as (table name, prop name).
type exclusion struct {
	table string
	prop  string
}

// flattenClass compiles the flat property table of a server class:
// recursive inlining of referenced data tables, exclusion resolution, and
// a stable priority sort. The index into the result is the wire identity
// of a property.
func flattenClass(sc *dem.ServerClass, byName map[string]*dem.SendTable) []*dem.FlatProp {
	root, ok := byName[sc.DataTableName]
	if !ok {
		panic(&InvalidSendTableError{Table: sc.DataTableName, Reason: "class references a missing table"})
	}

	excludes := map[exclusion]bool{}
	gatherExcludes(root, byName, excludes, map[string]bool{})

	var flat []*dem.FlatProp
	collectProps(root, byName, excludes, map[string]bool{}, &flat)

	// The sort MUST be stable: props with equal priority keep their
	// depth-first collection order, which defines wire compatibility.
	sort.SliceStable(flat, func(i, j int) bool {
		return flatPriority(flat[i].Prop) < flatPriority(flat[j].Prop)
	})
	return flat
}

// flatPriority returns the sort priority of a prop.
func flatPriority(prop *dem.SendProp) int {
	if prop.Flags.Has(demcore.PropFlagChangesOften) {
		return priorityChangesOften
	}
	return int(prop.Priority)
}

// gatherExcludes collects the exclusion set of all tables reachable from t.
func gatherExcludes(t *dem.SendTable, byName map[string]*dem.SendTable, excludes map[exclusion]bool, visiting map[string]bool) {
	if visiting[t.Name] {
		panic(&InvalidSendTableError{Table: t.Name, Reason: "cyclic table include"})
	}
	visiting[t.Name] = true
	defer delete(visiting, t.Name)

	for _, prop := range t.Props {
		if prop.IsExclude() {
			excludes[exclusion{prop.DataTableName, prop.Name}] = true
			continue
		}
		if prop.Kind == demcore.PropKindDataTable {
			child, ok := byName[prop.DataTableName]
			if !ok {
				panic(&InvalidSendTableError{Table: t.Name, Reason: "prop references a missing table"})
			}
			gatherExcludes(child, byName, excludes, visiting)
		}
	}
}

// collectProps appends the non-excluded value props of t and its included
// tables to flat, in depth-first order.
func collectProps(t *dem.SendTable, byName map[string]*dem.SendTable, excludes map[exclusion]bool, visiting map[string]bool, flat *[]*dem.FlatProp) {
	if visiting[t.Name] {
		panic(&InvalidSendTableError{Table: t.Name, Reason: "cyclic table include"})
	}
	visiting[t.Name] = true
	defer delete(visiting, t.Name)

	for _, prop := range t.Props {
		if prop.IsExclude() || excludes[exclusion{t.Name, prop.Name}] {
			continue
		}
		if prop.Kind == demcore.PropKindDataTable {
			// Missing tables were already caught by gatherExcludes.
			collectProps(byName[prop.DataTableName], byName, excludes, visiting, flat)
			continue
		}
		if prop.Flags.Has(demcore.PropFlagInsideArray) {
			// Element props are reached through their array prop.
			continue
		}
		*flat = append(*flat, &dem.FlatProp{TableName: t.Name, Prop: prop})
	}
}
