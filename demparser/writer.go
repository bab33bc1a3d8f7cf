// This file contains the demo writer: re-emitting a header and a message
// sequence as a demo file that parses back to an equivalent sequence.

package demparser

import (
	"fmt"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
)

// Writer produces a demo file from a header and a sequence of messages.
// Like the parser, it maintains the schema state the wire format depends
// on: server classes from a written DataTables message and game event
// definitions from a written SvcGameEventList message must precede the
// messages that reference them.
type Writer struct {
	w *dembit.Writer

	classes    []*dem.ServerClass
	classBits  byte
	defsByName map[string]*demmsg.GameEventDef
}

// NewWriter creates a Writer and emits the fixed demo header.
func NewWriter(h *dem.Header) *Writer {
	w := &Writer{w: &dembit.Writer{}}
	w.writeHeader(h)
	return w
}

// Bytes returns the demo file produced so far.
func (w *Writer) Bytes() []byte {
	return w.w.Bytes()
}

// writeHeader emits the fixed 1072-byte demo header.
func (w *Writer) writeHeader(h *dem.Header) {
	b := w.w
	b.WriteBytes([]byte(dem.Magic))
	b.WriteBits(uint64(uint32(h.DemoProtocol)), 32)
	b.WriteBits(uint64(uint32(h.NetworkProtocol)), 32)
	writeFixedString(b, h.RawServerName, h.ServerName)
	writeFixedString(b, h.RawClientName, h.ClientName)
	writeFixedString(b, h.RawMapName, h.MapName)
	writeFixedString(b, h.RawGameDirectory, h.GameDirectory)
	b.WriteFloat(h.PlaybackTime)
	b.WriteBits(uint64(uint32(h.PlaybackTicks)), 32)
	b.WriteBits(uint64(uint32(h.PlaybackFrames)), 32)
	b.WriteBits(uint64(uint32(h.SignonLength)), 32)
}

// writeFixedString emits a fixed-size NUL-padded header string field,
// preferring the raw wire form when present.
func writeFixedString(b *dembit.Writer, raw, decoded string) {
	s := raw
	if s == "" {
		s = decoded
	}
	if len(s) > fixedStringSize-1 {
		s = s[:fixedStringSize-1]
	}
	b.WriteBytes([]byte(s))
	for i := len(s); i < fixedStringSize; i++ {
		b.WriteBits(0, 8)
	}
}

// WriteMessage appends one top-level message.
func (w *Writer) WriteMessage(m dem.Message) (err error) {
	defer protect(&err)

	base := m.BaseMessage()
	b := w.w
	b.WriteBits(uint64(cmdTag(m)), 8)
	b.WriteBits(uint64(uint32(base.Tick)), 32)
	b.WriteBits(uint64(base.Slot), 8)

	switch msg := m.(type) {
	case *dem.SignOn:
		w.writePacket(&msg.Packet)
	case *dem.Packet:
		w.writePacket(msg)
	case *dem.SyncTick, *dem.Stop:
		// No payload.
	case *dem.ConsoleCmd:
		w.writeSized(append([]byte(msg.Command), 0))
	case *dem.UserCmd:
		b.WriteBits(uint64(uint32(msg.Sequence)), 32)
		w.writeSized(msg.Cmd)
	case *dem.DataTables:
		sub := &dembit.Writer{}
		writeDataTables(sub, msg.SendTables, msg.Classes)
		sub.ByteAlign()
		w.writeSized(sub.Bytes())
		w.adoptClasses(msg.Classes)
	case *dem.CustomData:
		b.WriteBits(uint64(uint32(msg.Callback)), 32)
		w.writeSized(msg.Data)
	case *dem.StringTables:
		sub := &dembit.Writer{}
		writeStringTablesSnapshot(sub, msg.Tables)
		sub.ByteAlign()
		w.writeSized(sub.Bytes())
	default:
		panic(fmt.Errorf("message type %T cannot be written", m))
	}
	return nil
}

// cmdTag returns the command tag of a message, derived from its concrete
// type so synthesized messages need not fill MsgBase.Cmd.
func cmdTag(m dem.Message) byte {
	switch m.(type) {
	case *dem.SignOn:
		return dem.CmdIDSignOn
	case *dem.Packet:
		return dem.CmdIDPacket
	case *dem.SyncTick:
		return dem.CmdIDSyncTick
	case *dem.ConsoleCmd:
		return dem.CmdIDConsoleCmd
	case *dem.UserCmd:
		return dem.CmdIDUserCmd
	case *dem.DataTables:
		return dem.CmdIDDataTables
	case *dem.Stop:
		return dem.CmdIDStop
	case *dem.CustomData:
		return dem.CmdIDCustomData
	case *dem.StringTables:
		return dem.CmdIDStringTables
	}
	panic(fmt.Errorf("message type %T cannot be written", m))
}

// adoptClasses records the written server classes for entity encoding.
func (w *Writer) adoptClasses(classes []*dem.ServerClass) {
	w.classes = classes
	w.classBits = log2ceil(len(classes))
}

// writeSized emits a 32-bit byte length followed by the bytes.
func (w *Writer) writeSized(data []byte) {
	w.w.WriteBits(uint64(uint32(len(data))), 32)
	w.w.WriteBytes(data)
}

// writePacket emits a Packet / SignOn payload: the command info block, the
// sequence numbers and the re-encoded packet messages.
func (w *Writer) writePacket(pk *dem.Packet) {
	b := w.w
	ci := &pk.CmdInfo
	b.WriteBits(uint64(uint32(ci.Flags)), 32)
	writeVector(b, ci.ViewOrigin)
	writeQAngle(b, ci.ViewAngles)
	writeQAngle(b, ci.LocalViewAngles)
	writeVector(b, ci.ViewOrigin2)
	writeQAngle(b, ci.ViewAngles2)
	writeQAngle(b, ci.LocalViewAngles2)
	b.WriteBits(uint64(uint32(pk.SeqNrIn)), 32)
	b.WriteBits(uint64(uint32(pk.SeqNrOut)), 32)

	sub := &dembit.Writer{}
	for _, msg := range pk.NetMsgs {
		w.writePacketMsg(sub, msg)
	}
	sub.ByteAlign()
	w.writeSized(sub.Bytes())
}

func writeVector(b *dembit.Writer, v demcore.Vector) {
	b.WriteFloat(v.X)
	b.WriteFloat(v.Y)
	b.WriteFloat(v.Z)
}

func writeQAngle(b *dembit.Writer, a demcore.QAngle) {
	b.WriteFloat(a.Pitch)
	b.WriteFloat(a.Yaw)
	b.WriteFloat(a.Roll)
}

// writePacketMsg emits one packet message, symmetric to
// Parser.parsePacketMessages.
func (w *Writer) writePacketMsg(b *dembit.Writer, m demmsg.Msg) {
	b.WriteVarInt32(uint32(m.BaseMsg().Type.ID))

	switch msg := m.(type) {
	case *demmsg.NetNop:

	case *demmsg.NetTick:
		b.WriteBits(uint64(uint32(msg.Tick)), 32)
		b.WriteBits(uint64(msg.HostFrameTime), 16)
		b.WriteBits(uint64(msg.HostFrameTimeDev), 16)

	case *demmsg.SvcPacketEntities:
		b.WriteBits(uint64(msg.MaxEntries), 11)
		b.WriteBits1(msg.IsDelta)
		if msg.IsDelta {
			b.WriteBits(uint64(uint32(msg.DeltaFrom)), 32)
		}
		b.WriteBits1(msg.BaseLine)
		b.WriteBits(uint64(msg.UpdatedEntries), 11)
		sub := &dembit.Writer{}
		writeEntityUpdates(sub, msg.Updates, w.classBits, w.classes)
		b.WriteBits(uint64(sub.BitLen()), 20)
		b.WriteBits1(msg.UpdateBaseline)
		b.WriteBitStream(sub.Bytes(), sub.BitLen())

	case *demmsg.SvcGameEvent:
		def := w.defsByName[msg.Event.EventName()]
		if def == nil {
			panic(fmt.Errorf("no definition for game event %q", msg.Event.EventName()))
		}
		sub := &dembit.Writer{}
		encodeGameEvent(sub, def, msg.Event)
		b.WriteBits(uint64(sub.BitLen()), 11)
		b.WriteBitStream(sub.Bytes(), sub.BitLen())

	case *demmsg.SvcUpdateStringTable:
		b.WriteBits(uint64(msg.TableID), 5)
		b.WriteBits(uint64(msg.NumChangedEntries), 16)
		b.WriteBits(uint64(msg.LengthBits), 20)
		b.WriteBitStream(msg.Data, msg.LengthBits)

	case *demmsg.NetDisconnect:
		b.WriteString(msg.Reason)

	case *demmsg.NetFile:
		b.WriteBits(uint64(msg.TransferID), 32)
		b.WriteString(msg.FileName)
		b.WriteBits1(msg.Requested)

	case *demmsg.NetStringCmd:
		b.WriteString(msg.Command)

	case *demmsg.NetSetConVar:
		b.WriteBits(uint64(len(msg.ConVars)), 8)
		for _, cv := range msg.ConVars {
			b.WriteString(cv.Name)
			b.WriteString(cv.Value)
		}

	case *demmsg.NetSignonState:
		b.WriteBits(uint64(msg.State), 8)
		b.WriteBits(uint64(uint32(msg.SpawnCount)), 32)

	case *demmsg.SvcPrint:
		b.WriteString(msg.Text)

	case *demmsg.SvcServerInfo:
		b.WriteBits(uint64(uint16(msg.Protocol)), 16)
		b.WriteBits(uint64(uint32(msg.ServerCount)), 32)
		b.WriteBits1(msg.IsHLTV)
		b.WriteBits1(msg.IsDedicated)
		b.WriteBits(uint64(uint32(msg.ClientCRC)), 32)
		b.WriteBits(uint64(msg.MaxClasses), 16)
		b.WriteBits(uint64(uint32(msg.MapCRC)), 32)
		b.WriteBits(uint64(msg.PlayerSlot), 8)
		b.WriteBits(uint64(msg.MaxClients), 8)
		b.WriteFloat(msg.TickInterval)
		b.WriteBits(uint64(msg.Platform), 8)
		b.WriteString(msg.GameDir)
		b.WriteString(msg.MapName)
		b.WriteString(msg.SkyName)
		b.WriteString(msg.HostName)

	case *demmsg.SvcSendTable:
		b.WriteBits1(msg.NeedsDecoder)
		b.WriteBits(uint64(msg.LengthBits), 16)
		b.WriteBitStream(msg.Data, msg.LengthBits)

	case *demmsg.SvcClassInfo:
		b.WriteBits(uint64(len(msg.Entries)), 16)
		b.WriteBits1(msg.CreateOnClient)
		if !msg.CreateOnClient {
			bits := log2ceil(len(msg.Entries)) + 1
			for _, e := range msg.Entries {
				b.WriteBits(uint64(e.ClassID), bits)
				b.WriteString(e.ClassName)
				b.WriteString(e.DataTableName)
			}
		}

	case *demmsg.SvcSetPause:
		b.WriteBits1(msg.Paused)

	case *demmsg.SvcCreateStringTable:
		b.WriteString(msg.Name)
		b.WriteBits(uint64(msg.MaxEntries), 16)
		b.WriteBits(uint64(msg.NumEntries), log2ceil(int(msg.MaxEntries))+1)
		b.WriteBits1(msg.UserDataFixedSize)
		if msg.UserDataFixedSize {
			b.WriteBits(uint64(msg.UserDataSize), 12)
			b.WriteBits(uint64(msg.UserDataSizeBits), 4)
		}
		b.WriteBits(uint64(msg.Flags), 16)
		b.WriteBits(uint64(msg.LengthBits), 20)
		b.WriteBitStream(msg.Data, msg.LengthBits)

	case *demmsg.SvcVoiceInit:
		b.WriteString(msg.Codec)
		b.WriteBits(uint64(msg.Quality), 8)

	case *demmsg.SvcVoiceData:
		b.WriteBits(uint64(msg.Client), 8)
		b.WriteBits(uint64(msg.Proximity), 8)
		b.WriteBits(uint64(msg.LengthBits), 16)
		b.WriteBitStream(msg.Data, msg.LengthBits)

	case *demmsg.SvcSounds:
		b.WriteBits1(msg.Reliable)
		if msg.Reliable {
			b.WriteBits(uint64(msg.LengthBits), 8)
		} else {
			b.WriteBits(uint64(msg.NumSounds), 8)
			b.WriteBits(uint64(msg.LengthBits), 16)
		}
		b.WriteBitStream(msg.Data, msg.LengthBits)

	case *demmsg.SvcSetView:
		b.WriteBits(uint64(msg.EntityIndex), 11)

	case *demmsg.SvcFixAngle:
		b.WriteBits1(msg.Relative)
		b.WriteAngle(msg.Angle.Pitch, 16)
		b.WriteAngle(msg.Angle.Yaw, 16)
		b.WriteAngle(msg.Angle.Roll, 16)

	case *demmsg.SvcCrosshairAngle:
		b.WriteAngle(msg.Angle.Pitch, 16)
		b.WriteAngle(msg.Angle.Yaw, 16)
		b.WriteAngle(msg.Angle.Roll, 16)

	case *demmsg.SvcBspDecal:
		b.WriteVectorCoord(msg.Pos.X, msg.Pos.Y, msg.Pos.Z)
		b.WriteBits(uint64(msg.DecalTextureIndex), 9)
		b.WriteBits(uint64(msg.EntityIndex), 11)
		b.WriteBits(uint64(msg.ModelIndex), 12)
		b.WriteBits1(msg.LowPriority)

	case *demmsg.SvcUserMessage:
		b.WriteBits(uint64(msg.MsgType), 8)
		b.WriteBits(uint64(msg.LengthBits), 11)
		b.WriteBitStream(msg.Data, msg.LengthBits)

	case *demmsg.SvcEntityMessage:
		b.WriteBits(uint64(msg.EntityIndex), 11)
		b.WriteBits(uint64(msg.ClassID), 9)
		b.WriteBits(uint64(msg.LengthBits), 11)
		b.WriteBitStream(msg.Data, msg.LengthBits)

	case *demmsg.SvcTempEntities:
		b.WriteBits(uint64(msg.NumEntries), 8)
		b.WriteBits(uint64(msg.LengthBits), 17)
		b.WriteBitStream(msg.Data, msg.LengthBits)

	case *demmsg.SvcPrefetch:
		b.WriteBits(uint64(msg.SoundIndex), 13)

	case *demmsg.SvcMenu:
		b.WriteBits(uint64(msg.MenuType), 16)
		b.WriteBits(uint64(len(msg.Data)), 16)
		b.WriteBytes(msg.Data)

	case *demmsg.SvcGameEventList:
		writeGameEventList(b, msg.Definitions)
		w.adoptEventDefs(msg.Definitions)

	case *demmsg.SvcGetCvarValue:
		b.WriteBits(uint64(uint32(msg.Cookie)), 32)
		b.WriteString(msg.CvarName)

	case *demmsg.SvcCmdKeyValues:
		b.WriteBits(uint64(len(msg.Data)), 32)
		b.WriteBytes(msg.Data)

	default:
		panic(fmt.Errorf("packet message type %T cannot be written", m))
	}
}

// adoptEventDefs records the written game event definitions for event
// encoding.
func (w *Writer) adoptEventDefs(defs []*demmsg.GameEventDef) {
	w.defsByName = make(map[string]*demmsg.GameEventDef, len(defs))
	for _, def := range defs {
		w.defsByName[def.Name] = def
	}
}
