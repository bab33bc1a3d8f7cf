package demparser

import (
	"bytes"
	"errors"
	"testing"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demmsg"
)

// makeCreateMsg builds a creation message carrying the entries of st at the
// given indices.
func makeCreateMsg(st *dem.StringTable, indices []int) *demmsg.SvcCreateStringTable {
	data, bits := EncodeStringTableEntries(st, indices)
	return &demmsg.SvcCreateStringTable{
		Base:              &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcCreateStringTable)},
		Name:              st.Name,
		MaxEntries:        st.MaxEntries,
		NumEntries:        uint16(len(indices)),
		UserDataFixedSize: st.UserDataFixedSize,
		UserDataSize:      st.UserDataSize,
		UserDataSizeBits:  st.UserDataSizeBits,
		Flags:             st.Flags,
		Data:              data,
		LengthBits:        bits,
	}
}

func TestCreateStringTable(t *testing.T) {
	st := &dem.StringTable{Name: "userinfo", MaxEntries: 64, Entries: make([]*dem.StringTableEntry, 64)}
	st.Entries[2] = &dem.StringTableEntry{Key: "2", UserData: []byte{0x01}}
	st.Entries[3] = &dem.StringTableEntry{Key: "3", UserData: []byte{0x02}}

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.Packet{
		MsgBase: &dem.MsgBase{},
		NetMsgs: []demmsg.Msg{makeCreateMsg(st, []int{2, 3})},
	})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	d, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if len(d.StringTables) != 1 {
		t.Fatalf("Expected: %v tables, got: %v", 1, len(d.StringTables))
	}
	tbl := d.StringTables[0]
	if tbl.Name != "userinfo" {
		t.Errorf("Expected: %v, got: %v", "userinfo", tbl.Name)
	}
	if tbl.EntryCount() != 2 {
		t.Errorf("Expected: %v entries, got: %v", 2, tbl.EntryCount())
	}
	if e := tbl.Entry(2); e == nil || e.Key != "2" || !bytes.Equal(e.UserData, []byte{0x01}) {
		t.Errorf("Unexpected entry 2: %+v", e)
	}
	if e := tbl.Entry(3); e == nil || e.Key != "3" || !bytes.Equal(e.UserData, []byte{0x02}) {
		t.Errorf("Unexpected entry 3: %+v", e)
	}
}

func TestStringTableUpdate(t *testing.T) {
	st := &dem.StringTable{Name: "downloadables", MaxEntries: 32, Entries: make([]*dem.StringTableEntry, 32)}
	st.Entries[0] = &dem.StringTableEntry{Key: "maps/ctf_2fort.bsp"}

	upd := &dem.StringTable{Name: "downloadables", MaxEntries: 32, Entries: make([]*dem.StringTableEntry, 32)}
	upd.Entries[1] = &dem.StringTableEntry{Key: "sound/ambient.wav", UserData: []byte{9, 9}}
	updData, updBits := EncodeStringTableEntries(upd, []int{1})

	w := NewWriter(testHeader())
	w.WriteMessage(&dem.Packet{
		MsgBase: &dem.MsgBase{},
		NetMsgs: []demmsg.Msg{
			makeCreateMsg(st, []int{0}),
			&demmsg.SvcUpdateStringTable{
				Base:              &demmsg.Base{Type: demmsg.TypeByID(demmsg.TypeIDSvcUpdateStringTable)},
				TableID:           0,
				NumChangedEntries: 1,
				Data:              updData,
				LengthBits:        updBits,
			},
		},
	})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}})

	d, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tbl := d.StringTables[0]
	if tbl.EntryCount() != 2 {
		t.Errorf("Expected: %v entries, got: %v", 2, tbl.EntryCount())
	}
	if e := tbl.Entry(1); e == nil || e.Key != "sound/ambient.wav" || !bytes.Equal(e.UserData, []byte{9, 9}) {
		t.Errorf("Unexpected entry 1: %+v", e)
	}
}

func TestStringTableHistoryBackReference(t *testing.T) {
	// Hand-craft an update list where the second entry's key back-references
	// the first through the history ring:
	t1 := &dem.StringTable{Name: "t", MaxEntries: 16, Entries: make([]*dem.StringTableEntry, 16)}

	w := &dembit.Writer{}
	// Entry 0, literal key "models/player":
	w.WriteBits1(false) // implicit index 0
	w.WriteBits1(true)  // key present
	w.WriteBits1(false) // literal
	w.WriteString("models/player")
	w.WriteBits1(false) // no user data
	// Entry 1, key = history[0] + "/scout.mdl":
	w.WriteBits1(false) // implicit index 1
	w.WriteBits1(true)  // key present
	w.WriteBits1(true)  // back-reference
	w.WriteBits(0, 5)   // history index 0
	w.WriteString("/scout.mdl")
	w.WriteBits1(false) // no user data

	decodeStringTableEntries(t1, dembit.NewBuff(w.Bytes()).Sub(w.BitLen()), 2)

	if e := t1.Entry(1); e == nil || e.Key != "models/player/scout.mdl" {
		t.Errorf("Unexpected entry 1: %+v", e)
	}
}

func TestStringTableHistoryRingBound(t *testing.T) {
	// The ring holds the last 32 keys; a back-reference index beyond the
	// current history size is fatal.
	t1 := &dem.StringTable{Name: "t", MaxEntries: 8, Entries: make([]*dem.StringTableEntry, 8)}

	w := &dembit.Writer{}
	w.WriteBits1(false)
	w.WriteBits1(true)
	w.WriteBits1(true)  // back-reference with empty history
	w.WriteBits(3, 5)
	w.WriteString("x")
	w.WriteBits1(false)

	err := decodeProtected(func() {
		decodeStringTableEntries(t1, dembit.NewBuff(w.Bytes()).Sub(w.BitLen()), 1)
	})
	var iste *InvalidStringTableUpdateError
	if !errors.As(err, &iste) {
		t.Fatalf("Expected InvalidStringTableUpdateError, got: %v", err)
	}
}

func TestStringTableIndexOverflow(t *testing.T) {
	t1 := &dem.StringTable{Name: "t", MaxEntries: 4, Entries: make([]*dem.StringTableEntry, 4)}

	w := &dembit.Writer{}
	// 4 implicit-index entries fit exactly; the 5th overflows MaxEntries.
	for i := 0; i < 5; i++ {
		w.WriteBits1(false)
		w.WriteBits1(true)
		w.WriteBits1(false)
		w.WriteString("k")
		w.WriteBits1(false)
	}

	err := decodeProtected(func() {
		decodeStringTableEntries(t1, dembit.NewBuff(w.Bytes()).Sub(w.BitLen()), 5)
	})
	var iste *InvalidStringTableUpdateError
	if !errors.As(err, &iste) {
		t.Fatalf("Expected InvalidStringTableUpdateError, got: %v", err)
	}
}

func TestStringTableFixedSizeUserData(t *testing.T) {
	st := &dem.StringTable{
		Name:              "instancebaseline",
		MaxEntries:        16,
		Entries:           make([]*dem.StringTableEntry, 16),
		UserDataFixedSize: true,
		UserDataSize:      1,
		UserDataSizeBits:  8,
	}
	st.Entries[0] = &dem.StringTableEntry{Key: "0", UserData: []byte{0xa5}}

	data, bits := EncodeStringTableEntries(st, []int{0})
	t2 := &dem.StringTable{
		Name:              st.Name,
		MaxEntries:        st.MaxEntries,
		Entries:           make([]*dem.StringTableEntry, 16),
		UserDataFixedSize: true,
		UserDataSize:      1,
		UserDataSizeBits:  8,
	}
	decodeStringTableEntries(t2, dembit.NewBuff(data).Sub(bits), 1)

	if e := t2.Entry(0); e == nil || !bytes.Equal(e.UserData, []byte{0xa5}) {
		t.Errorf("Unexpected entry 0: %+v", e)
	}
}

// decodeProtected runs f converting parse panics to an error.
func decodeProtected(f func()) (err error) {
	defer protect(&err)
	f()
	return nil
}
