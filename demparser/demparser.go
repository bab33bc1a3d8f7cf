/*

Package demparser implements Source-engine demo file parsing.

The package is safe for concurrent use (each Parser instance is not; use one
per goroutine).

A demo is a container of tick-stamped commands. Packet commands hold a
bit-packed sequence of network messages, out of which game events, string
table updates and entity deltas are reconstructed against state established
by earlier commands: send tables before entities, the game event list before
game events, string table creation before updates.

Information sources:

Valve demo format description:

https://developer.valvesoftware.com/wiki/DEM_(file_format)

Source engine network message reference:

https://developer.valvesoftware.com/wiki/Networking_Events_%26_Messages

*/
package demparser

import (
	"log"
	"runtime"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
	"github.com/icza/sdem/demparser/demdecoder"
)

const (
	// Version is a Semver2 compatible version of the parser.
	Version = "v1.2.0"
)

// Config holds parser configuration.
type Config struct {
	// Debug tells if raw command payloads are to be retained in the
	// returned messages.
	Debug bool

	_ struct{} // To prevent unkeyed literals
}

// Parse parses a complete demo from the given byte slice.
func Parse(data []byte) (*dem.Demo, error) {
	return ParseConfig(data, Config{})
}

// ParseFile parses a complete demo file. The file is memory-mapped and may
// be gzip- or zstd-compressed.
func ParseFile(name string) (*dem.Demo, error) {
	src, err := demdecoder.NewFromFile(name)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ParseConfig(src.Data(), Config{})
}

// ParseConfig parses a complete demo from the given byte slice based on the
// given parser configuration.
func ParseConfig(data []byte, cfg Config) (*dem.Demo, error) {
	p, err := NewParserConfig(data, cfg)
	if err != nil {
		return nil, err
	}

	d := &dem.Demo{Header: p.Header()}
	for {
		m, err := p.NextMessage()
		if err != nil {
			return nil, err
		}
		if m == nil {
			break
		}
		d.Messages = append(d.Messages, m)
	}

	d.ServerInfo = p.ServerInfo()
	d.SendTables = p.SendTables()
	d.Classes = p.Classes()
	d.EventDefs = p.EventDefs()
	d.StringTables = p.StringTables()
	return d, nil
}

// Parser is the demo orchestrator: a pull-based cursor over the demo's
// messages. All decoding state (send tables, server classes, game event
// definitions, string tables, entities) is owned by the Parser; accessors
// return views that must be treated as read-only.
type Parser struct {
	cfg Config
	b   *dembit.Buff

	header *dem.Header

	serverInfo *demmsg.SvcServerInfo
	sendTables []*dem.SendTable
	classes    []*dem.ServerClass
	classBits  byte
	eventDefs  map[uint32]*demmsg.GameEventDef
	tables     tableSet
	entities   entityTable

	stopped bool
}

// NewParser creates a Parser over the given demo data, decoding the header
// eagerly.
func NewParser(data []byte) (*Parser, error) {
	return NewParserConfig(data, Config{})
}

// NewParserConfig creates a Parser based on the given parser configuration.
func NewParserConfig(data []byte, cfg Config) (p *Parser, err error) {
	defer protect(&err)

	p = &Parser{
		cfg:      cfg,
		b:        dembit.NewBuff(data),
		entities: entityTable{slots: map[uint16]*dem.Entity{}},
	}
	p.parseHeader()
	return p, nil
}

// protect converts panics of the parsing internals into errors:
// typed parse errors pass through, anything else is logged and reported as
// ErrParsing. Input is untrusted data; this also protects against
// implementation bugs.
func protect(errp *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*errp = e
			return
		}
		log.Printf("Parsing error: %v", r)
		buf := make([]byte, 2000)
		n := runtime.Stack(buf, false)
		log.Printf("Stack: %s", buf[:n])
		*errp = ErrParsing
	}
}

// Header returns the demo header.
func (p *Parser) Header() *dem.Header {
	return p.header
}

// ServerInfo returns the server info message seen, or nil.
func (p *Parser) ServerInfo() *demmsg.SvcServerInfo {
	return p.serverInfo
}

// SendTables returns the send tables of the DataTables command, or nil.
func (p *Parser) SendTables() []*dem.SendTable {
	return p.sendTables
}

// Classes returns the server classes with compiled flat tables, or nil.
func (p *Parser) Classes() []*dem.ServerClass {
	return p.classes
}

// EventDefs returns the game event definitions mapped from event type ID,
// or nil before the game event list is seen.
func (p *Parser) EventDefs() map[uint32]*demmsg.GameEventDef {
	return p.eventDefs
}

// StringTables returns the current state of the string tables in creation
// order.
func (p *Parser) StringTables() []*dem.StringTable {
	return p.tables.list
}

// Entities returns the current entity states in slot order.
func (p *Parser) Entities() []*dem.Entity {
	return p.entities.snapshot()
}

// parseHeader decodes the fixed demo header.
func (p *Parser) parseHeader() {
	b := p.b
	if b.BitsLeft() < dem.HeaderSize*8 {
		panic(ErrNotDemoFile)
	}
	if string(b.ReadBytes(8)) != dem.Magic {
		panic(ErrNotDemoFile)
	}

	h := new(dem.Header)
	p.header = h

	h.DemoProtocol = b.ReadInt32()
	h.NetworkProtocol = b.ReadInt32()
	h.RawServerName = fixedString(b)
	h.ServerName = dem.DecodeString(h.RawServerName)
	h.RawClientName = fixedString(b)
	h.ClientName = dem.DecodeString(h.RawClientName)
	h.RawMapName = fixedString(b)
	h.MapName = dem.DecodeString(h.RawMapName)
	h.RawGameDirectory = fixedString(b)
	h.GameDirectory = dem.DecodeString(h.RawGameDirectory)
	h.PlaybackTime = b.ReadFloat()
	h.PlaybackTicks = b.ReadInt32()
	h.PlaybackFrames = b.ReadInt32()
	h.SignonLength = b.ReadInt32()
}

// fixedStringSize is the size of the fixed string fields of the header.
const fixedStringSize = 260

// fixedString reads a fixed-size NUL-padded header string field.
func fixedString(b *dembit.Buff) string {
	data := b.ReadBytes(fixedStringSize)
	for i, ch := range data {
		if ch == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// NextMessage returns the next top-level message of the demo, nil after the
// Stop message has been returned.
func (p *Parser) NextMessage() (msg dem.Message, err error) {
	if p.stopped {
		return nil, nil
	}
	defer protect(&err)

	b := p.b
	if b.EOF() {
		panic(dembit.ErrUnexpectedEOF) // Truncated: no Stop command
	}

	cmd := b.ReadBits8()
	tick := demcore.Tick(b.ReadInt32())
	slot := b.ReadBits8()
	base := &dem.MsgBase{Cmd: cmd, Tick: tick, Slot: slot}

	switch cmd {
	case dem.CmdIDSignOn:
		so := &dem.SignOn{}
		p.parsePacket(base, &so.Packet)
		return so, nil

	case dem.CmdIDPacket:
		pk := &dem.Packet{}
		p.parsePacket(base, pk)
		return pk, nil

	case dem.CmdIDSyncTick:
		return &dem.SyncTick{MsgBase: base}, nil

	case dem.CmdIDConsoleCmd:
		data := p.readSized(base)
		return &dem.ConsoleCmd{MsgBase: base, Command: cString(data)}, nil

	case dem.CmdIDUserCmd:
		seq := b.ReadInt32()
		data := p.readSized(base)
		return &dem.UserCmd{MsgBase: base, Sequence: seq, Cmd: data}, nil

	case dem.CmdIDDataTables:
		data := p.readSized(base)
		tables, classes := p.parseDataTables(data)
		return &dem.DataTables{MsgBase: base, SendTables: tables, Classes: classes}, nil

	case dem.CmdIDStop:
		p.stopped = true
		return &dem.Stop{MsgBase: base}, nil

	case dem.CmdIDCustomData:
		callback := b.ReadInt32()
		data := p.readSized(base)
		return &dem.CustomData{MsgBase: base, Callback: callback, Data: data}, nil

	case dem.CmdIDStringTables:
		data := p.readSized(base)
		tables := p.parseStringTablesSnapshot(data)
		return &dem.StringTables{MsgBase: base, Tables: tables}, nil

	default:
		panic(&UnknownCommandError{Tag: cmd})
	}
}

// readSized reads a 32-bit byte length followed by that many bytes.
// The payload is retained on base if debug retention is enabled.
func (p *Parser) readSized(base *dem.MsgBase) []byte {
	length := p.b.ReadInt32()
	if length < 0 {
		panic(dembit.ErrUnexpectedEOF)
	}
	data := p.b.ReadBytes(int(length))
	if p.cfg.Debug {
		base.Debug = data
	}
	return data
}

// parsePacket decodes a Packet / SignOn command into pk.
func (p *Parser) parsePacket(base *dem.MsgBase, pk *dem.Packet) {
	b := p.b
	pk.MsgBase = base

	ci := &pk.CmdInfo
	ci.Flags = b.ReadInt32()
	ci.ViewOrigin = readVector(b)
	ci.ViewAngles = readQAngle(b)
	ci.LocalViewAngles = readQAngle(b)
	ci.ViewOrigin2 = readVector(b)
	ci.ViewAngles2 = readQAngle(b)
	ci.LocalViewAngles2 = readQAngle(b)

	pk.SeqNrIn = b.ReadInt32()
	pk.SeqNrOut = b.ReadInt32()

	data := p.readSized(base)
	p.parsePacketMessages(dembit.NewBuff(data), pk)
}

func readVector(b *dembit.Buff) demcore.Vector {
	return demcore.Vector{X: b.ReadFloat(), Y: b.ReadFloat(), Z: b.ReadFloat()}
}

func readQAngle(b *dembit.Buff) demcore.QAngle {
	return demcore.QAngle{Pitch: b.ReadFloat(), Yaw: b.ReadFloat(), Roll: b.ReadFloat()}
}

// cString returns the bytes up to the first NUL as a string.
func cString(data []byte) string {
	for i, ch := range data {
		if ch == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// log2ceil returns the number of bits needed to represent values 0..n-1.
func log2ceil(n int) byte {
	bits := byte(0)
	for v := n - 1; v > 0; v >>= 1 {
		bits++
	}
	return bits
}
