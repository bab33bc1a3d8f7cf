// This file contains the string table engine: creation and incremental
// update decoding with entry name history, and the full snapshot format of
// the StringTables demo command.

package demparser

import (
	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demmsg"
)

// maxStringTableKeyLen bounds entry key lengths on the wire.
const maxStringTableKeyLen = 1024

// userDataLengthBits is the bit width of the variable user data byte length.
const userDataLengthBits = 14

// tableSet holds the string tables of a demo in creation order.
type tableSet struct {
	list   []*dem.StringTable
	byName map[string]int
}

func (s *tableSet) add(t *dem.StringTable) {
	if s.byName == nil {
		s.byName = map[string]int{}
	}
	if i, ok := s.byName[t.Name]; ok {
		s.list[i] = t
		return
	}
	s.byName[t.Name] = len(s.list)
	s.list = append(s.list, t)
}

// createStringTable materializes a table from a creation message and
// decodes its initial entries.
func (p *Parser) createStringTable(msg *demmsg.SvcCreateStringTable) {
	t := &dem.StringTable{
		Name:              msg.Name,
		MaxEntries:        msg.MaxEntries,
		Entries:           make([]*dem.StringTableEntry, msg.MaxEntries),
		UserDataFixedSize: msg.UserDataFixedSize,
		UserDataSize:      msg.UserDataSize,
		UserDataSizeBits:  msg.UserDataSizeBits,
		Flags:             msg.Flags,
	}

	b := dembit.NewBuff(msg.Data)
	decodeStringTableEntries(t, b.Sub(msg.LengthBits), int(msg.NumEntries))
	p.tables.add(t)
}

// updateStringTable applies an incremental update message to an existing
// table.
func (p *Parser) updateStringTable(msg *demmsg.SvcUpdateStringTable) {
	if int(msg.TableID) >= len(p.tables.list) {
		panic(&InvalidStringTableUpdateError{
			Table:  "",
			Reason: "table id out of range",
		})
	}
	t := p.tables.list[msg.TableID]

	b := dembit.NewBuff(msg.Data)
	decodeStringTableEntries(t, b.Sub(msg.LengthBits), int(msg.NumChangedEntries))
}

// decodeStringTableEntries decodes num bit-packed entry records into t,
// maintaining the entry name history ring.
func decodeStringTableEntries(t *dem.StringTable, b *dembit.Buff, num int) {
	entryBits := log2ceil(int(t.MaxEntries))
	history := make([]string, 0, dem.StringTableKeyHistorySize)
	lastIndex := -1

	for i := 0; i < num; i++ {
		index := lastIndex + 1
		if b.ReadBits1() {
			index = int(b.ReadBits(entryBits))
		}
		lastIndex = index

		if index < 0 || index >= int(t.MaxEntries) {
			panic(&InvalidStringTableUpdateError{Table: t.Name, Reason: "entry index out of range"})
		}

		var key string
		hasKey := b.ReadBits1()
		if hasKey {
			if b.ReadBits1() { // Key is a back-reference into the history
				hIdx := int(b.ReadBits(5))
				if hIdx >= len(history) {
					panic(&InvalidStringTableUpdateError{Table: t.Name, Reason: "history back-reference out of bounds"})
				}
				key = history[hIdx] + b.ReadString(maxStringTableKeyLen)
			} else {
				key = b.ReadString(maxStringTableKeyLen)
			}
		}

		var userData []byte
		hasUserData := b.ReadBits1()
		if hasUserData {
			if t.UserDataFixedSize {
				userData = b.ReadBitStream(int(t.UserDataSizeBits))
			} else {
				n := int(b.ReadBits(userDataLengthBits))
				userData = b.ReadBytes(n)
			}
		}

		e := t.Entries[index]
		if e == nil {
			e = &dem.StringTableEntry{}
			t.Entries[index] = e
		}
		if hasKey {
			e.Key = key
		}
		if hasUserData {
			e.UserData = userData
		}

		history = append(history, e.Key)
		if len(history) > dem.StringTableKeyHistorySize {
			history = history[1:]
		}
	}
}

// EncodeStringTableEntries encodes the entries of t at the given indices in
// the creation / update wire format, with literal keys; an index is written
// explicitly unless it directly follows the previous one. It returns the bit-packed data and its exact bit length, suitable
// for the Data / LengthBits fields of the creation and update messages.
func EncodeStringTableEntries(t *dem.StringTable, indices []int) (data []byte, lengthBits int) {
	w := &dembit.Writer{}
	entryBits := log2ceil(int(t.MaxEntries))
	lastIndex := -1

	for _, index := range indices {
		e := t.Entries[index]
		if index == lastIndex+1 {
			w.WriteBits1(false)
		} else {
			w.WriteBits1(true)
			w.WriteBits(uint64(index), entryBits)
		}
		lastIndex = index

		w.WriteBits1(true)  // key present
		w.WriteBits1(false) // literal, no history back-reference
		w.WriteString(e.Key)

		if e.UserData == nil {
			w.WriteBits1(false)
			continue
		}
		w.WriteBits1(true)
		if t.UserDataFixedSize {
			w.WriteBitStream(e.UserData, int(t.UserDataSizeBits))
		} else {
			w.WriteBits(uint64(len(e.UserData)), userDataLengthBits)
			w.WriteBytes(e.UserData)
		}
	}
	return w.Bytes(), w.BitLen()
}

// parseStringTablesSnapshot decodes the full snapshot payload of the
// StringTables demo command and adopts the tables as authoritative state.
func (p *Parser) parseStringTablesSnapshot(data []byte) []*dem.StringTable {
	b := dembit.NewBuff(data)

	numTables := int(b.ReadBits8())
	tables := make([]*dem.StringTable, numTables)
	for i := range tables {
		t := &dem.StringTable{}
		t.Name = b.ReadString(256)
		numEntries := int(b.ReadBits(16))
		t.MaxEntries = uint16(numEntries)
		t.Entries = make([]*dem.StringTableEntry, numEntries)
		for j := 0; j < numEntries; j++ {
			e := &dem.StringTableEntry{Key: b.ReadString(maxStringTableKeyLen)}
			if b.ReadBits1() {
				n := int(b.ReadBits(16))
				e.UserData = b.ReadBytes(n)
			}
			t.Entries[j] = e
		}
		tables[i] = t
		p.tables.add(t)
	}
	return tables
}

// writeStringTablesSnapshot encodes tables in the snapshot format read by
// parseStringTablesSnapshot.
func writeStringTablesSnapshot(w *dembit.Writer, tables []*dem.StringTable) {
	w.WriteBits(uint64(len(tables)), 8)
	for _, t := range tables {
		w.WriteString(t.Name)
		w.WriteBits(uint64(len(t.Entries)), 16)
		for _, e := range t.Entries {
			key := ""
			var userData []byte
			if e != nil {
				key, userData = e.Key, e.UserData
			}
			w.WriteString(key)
			if userData == nil {
				w.WriteBits1(false)
				continue
			}
			w.WriteBits1(true)
			w.WriteBits(uint64(len(userData)), 16)
			w.WriteBytes(userData)
		}
	}
}
