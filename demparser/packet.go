// This file contains decoding and encoding of the packet messages: the
// bit-packed sequence of Net/Svc messages inside Packet and SignOn commands.

package demparser

import (
	"fmt"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
)

// parsePacketMessages decodes the packet messages of a Packet / SignOn blob
// and collects them (and the game events and entity updates they carry)
// into pk. The blob must be fully consumed; trailing bits up to byte
// alignment are ignored.
func (p *Parser) parsePacketMessages(b *dembit.Buff, pk *dem.Packet) {
	for b.BitsLeft() >= 8 {
		tag := byte(b.ReadVarInt32())
		mt := demmsg.TypeByID(tag)
		if mt == nil {
			panic(&UnknownMessageTypeError{Tag: tag})
		}

		base := &demmsg.Base{Type: mt}
		var msg demmsg.Msg

		switch tag { // Try to list in frequency order:

		case demmsg.TypeIDNetNop:
			msg = &demmsg.NetNop{Base: base}

		case demmsg.TypeIDNetTick:
			msg = &demmsg.NetTick{
				Base:             base,
				Tick:             demcore.Tick(b.ReadInt32()),
				HostFrameTime:    uint16(b.ReadBits(16)),
				HostFrameTimeDev: uint16(b.ReadBits(16)),
			}

		case demmsg.TypeIDSvcPacketEntities:
			pe := &demmsg.SvcPacketEntities{Base: base}
			pe.MaxEntries = uint16(b.ReadBits(11))
			pe.IsDelta = b.ReadBits1()
			if pe.IsDelta {
				pe.DeltaFrom = b.ReadInt32()
			}
			pe.BaseLine = b.ReadBits1()
			pe.UpdatedEntries = uint16(b.ReadBits(11))
			lengthBits := int(b.ReadBits(20))
			pe.UpdateBaseline = b.ReadBits1()
			sub := b.Sub(lengthBits)
			pe.Updates = p.applyPacketEntities(pe, sub)
			pk.EntityUpdates = append(pk.EntityUpdates, pe.Updates...)
			msg = pe

		case demmsg.TypeIDSvcGameEvent:
			lengthBits := int(b.ReadBits(11))
			sub := b.Sub(lengthBits)
			ev := p.decodeGameEvent(sub)
			pk.Events = append(pk.Events, ev)
			msg = &demmsg.SvcGameEvent{Base: base, Event: ev}

		case demmsg.TypeIDSvcUpdateStringTable:
			ust := &demmsg.SvcUpdateStringTable{Base: base}
			ust.TableID = byte(b.ReadBits(5))
			ust.NumChangedEntries = uint16(b.ReadBits(16))
			ust.LengthBits = int(b.ReadBits(20))
			ust.Data = b.ReadBitStream(ust.LengthBits)
			p.updateStringTable(ust)
			msg = ust

		case demmsg.TypeIDNetDisconnect:
			msg = &demmsg.NetDisconnect{Base: base, Reason: b.ReadString(1024)}

		case demmsg.TypeIDNetFile:
			msg = &demmsg.NetFile{
				Base:       base,
				TransferID: uint32(b.ReadBits(32)),
				FileName:   b.ReadString(1024),
				Requested:  b.ReadBits1(),
			}

		case demmsg.TypeIDNetStringCmd:
			msg = &demmsg.NetStringCmd{Base: base, Command: b.ReadString(1024)}

		case demmsg.TypeIDNetSetConVar:
			scv := &demmsg.NetSetConVar{Base: base}
			count := int(b.ReadBits(8))
			scv.ConVars = make([]demmsg.ConVar, count)
			for i := 0; i < count; i++ {
				scv.ConVars[i].Name = b.ReadString(260)
				scv.ConVars[i].Value = b.ReadString(260)
			}
			msg = scv

		case demmsg.TypeIDNetSignonState:
			msg = &demmsg.NetSignonState{
				Base:       base,
				State:      b.ReadBits8(),
				SpawnCount: b.ReadInt32(),
			}

		case demmsg.TypeIDSvcPrint:
			msg = &demmsg.SvcPrint{Base: base, Text: b.ReadString(2048)}

		case demmsg.TypeIDSvcServerInfo:
			si := &demmsg.SvcServerInfo{Base: base}
			si.Protocol = b.ReadInt16()
			si.ServerCount = b.ReadInt32()
			si.IsHLTV = b.ReadBits1()
			si.IsDedicated = b.ReadBits1()
			si.ClientCRC = b.ReadInt32()
			si.MaxClasses = uint16(b.ReadBits(16))
			si.MapCRC = b.ReadInt32()
			si.PlayerSlot = b.ReadBits8()
			si.MaxClients = b.ReadBits8()
			si.TickInterval = b.ReadFloat()
			si.Platform = b.ReadBits8()
			si.GameDir = b.ReadString(260)
			si.MapName = b.ReadString(260)
			si.SkyName = b.ReadString(260)
			si.HostName = b.ReadString(260)
			p.serverInfo = si
			msg = si

		case demmsg.TypeIDSvcSendTable:
			st := &demmsg.SvcSendTable{Base: base}
			st.NeedsDecoder = b.ReadBits1()
			st.LengthBits = int(b.ReadBits(16))
			st.Data = b.ReadBitStream(st.LengthBits)
			msg = st

		case demmsg.TypeIDSvcClassInfo:
			ci := &demmsg.SvcClassInfo{Base: base}
			count := int(b.ReadBits(16))
			ci.CreateOnClient = b.ReadBits1()
			if !ci.CreateOnClient {
				bits := log2ceil(count) + 1
				ci.Entries = make([]demmsg.ClassInfoEntry, count)
				for i := range ci.Entries {
					ci.Entries[i].ClassID = uint16(b.ReadBits(bits))
					ci.Entries[i].ClassName = b.ReadString(256)
					ci.Entries[i].DataTableName = b.ReadString(256)
				}
			}
			msg = ci

		case demmsg.TypeIDSvcSetPause:
			msg = &demmsg.SvcSetPause{Base: base, Paused: b.ReadBits1()}

		case demmsg.TypeIDSvcCreateStringTable:
			cst := &demmsg.SvcCreateStringTable{Base: base}
			cst.Name = b.ReadString(256)
			cst.MaxEntries = uint16(b.ReadBits(16))
			cst.NumEntries = uint16(b.ReadBits(log2ceil(int(cst.MaxEntries)) + 1))
			cst.UserDataFixedSize = b.ReadBits1()
			if cst.UserDataFixedSize {
				cst.UserDataSize = uint16(b.ReadBits(12))
				cst.UserDataSizeBits = byte(b.ReadBits(4))
			}
			cst.Flags = uint16(b.ReadBits(16))
			cst.LengthBits = int(b.ReadBits(20))
			cst.Data = b.ReadBitStream(cst.LengthBits)
			p.createStringTable(cst)
			msg = cst

		case demmsg.TypeIDSvcVoiceInit:
			msg = &demmsg.SvcVoiceInit{
				Base:    base,
				Codec:   b.ReadString(260),
				Quality: b.ReadBits8(),
			}

		case demmsg.TypeIDSvcVoiceData:
			vd := &demmsg.SvcVoiceData{Base: base}
			vd.Client = b.ReadBits8()
			vd.Proximity = b.ReadBits8()
			vd.LengthBits = int(b.ReadBits(16))
			vd.Data = b.ReadBitStream(vd.LengthBits)
			msg = vd

		case demmsg.TypeIDSvcSounds:
			snd := &demmsg.SvcSounds{Base: base}
			snd.Reliable = b.ReadBits1()
			if snd.Reliable {
				snd.NumSounds = 1
				snd.LengthBits = int(b.ReadBits(8))
			} else {
				snd.NumSounds = b.ReadBits8()
				snd.LengthBits = int(b.ReadBits(16))
			}
			snd.Data = b.ReadBitStream(snd.LengthBits)
			msg = snd

		case demmsg.TypeIDSvcSetView:
			msg = &demmsg.SvcSetView{Base: base, EntityIndex: uint16(b.ReadBits(11))}

		case demmsg.TypeIDSvcFixAngle:
			msg = &demmsg.SvcFixAngle{
				Base:     base,
				Relative: b.ReadBits1(),
				Angle: demcore.QAngle{
					Pitch: b.ReadAngle(16),
					Yaw:   b.ReadAngle(16),
					Roll:  b.ReadAngle(16),
				},
			}

		case demmsg.TypeIDSvcCrosshairAngle:
			msg = &demmsg.SvcCrosshairAngle{
				Base: base,
				Angle: demcore.QAngle{
					Pitch: b.ReadAngle(16),
					Yaw:   b.ReadAngle(16),
					Roll:  b.ReadAngle(16),
				},
			}

		case demmsg.TypeIDSvcBspDecal:
			bd := &demmsg.SvcBspDecal{Base: base}
			x, y, z := b.ReadVectorCoord()
			bd.Pos = demcore.Vector{X: x, Y: y, Z: z}
			bd.DecalTextureIndex = uint16(b.ReadBits(9))
			bd.EntityIndex = uint16(b.ReadBits(11))
			bd.ModelIndex = uint16(b.ReadBits(12))
			bd.LowPriority = b.ReadBits1()
			msg = bd

		case demmsg.TypeIDSvcUserMessage:
			um := &demmsg.SvcUserMessage{Base: base}
			um.MsgType = b.ReadBits8()
			um.LengthBits = int(b.ReadBits(11))
			um.Data = b.ReadBitStream(um.LengthBits)
			msg = um

		case demmsg.TypeIDSvcEntityMessage:
			em := &demmsg.SvcEntityMessage{Base: base}
			em.EntityIndex = uint16(b.ReadBits(11))
			em.ClassID = uint16(b.ReadBits(9))
			em.LengthBits = int(b.ReadBits(11))
			em.Data = b.ReadBitStream(em.LengthBits)
			msg = em

		case demmsg.TypeIDSvcTempEntities:
			te := &demmsg.SvcTempEntities{Base: base}
			te.NumEntries = b.ReadBits8()
			te.LengthBits = int(b.ReadBits(17))
			te.Data = b.ReadBitStream(te.LengthBits)
			msg = te

		case demmsg.TypeIDSvcPrefetch:
			msg = &demmsg.SvcPrefetch{Base: base, SoundIndex: uint16(b.ReadBits(13))}

		case demmsg.TypeIDSvcMenu:
			mn := &demmsg.SvcMenu{Base: base}
			mn.MenuType = uint16(b.ReadBits(16))
			length := int(b.ReadBits(16))
			mn.Data = b.ReadBytes(length)
			msg = mn

		case demmsg.TypeIDSvcGameEventList:
			gel := &demmsg.SvcGameEventList{Base: base}
			gel.Definitions = parseGameEventList(b)
			p.setEventDefs(gel.Definitions)
			msg = gel

		case demmsg.TypeIDSvcGetCvarValue:
			msg = &demmsg.SvcGetCvarValue{
				Base:     base,
				Cookie:   b.ReadInt32(),
				CvarName: b.ReadString(260),
			}

		case demmsg.TypeIDSvcCmdKeyValues:
			kv := &demmsg.SvcCmdKeyValues{Base: base}
			length := int(b.ReadBits(32))
			kv.Data = b.ReadBytes(length)
			msg = kv

		default:
			// Type is registered but has no decoder; this is a bug in the
			// type table rather than the input.
			panic(fmt.Errorf("no decoder for packet message type %v", mt))
		}

		pk.NetMsgs = append(pk.NetMsgs, msg)
	}
}

// setEventDefs records the game event definitions.
func (p *Parser) setEventDefs(defs []*demmsg.GameEventDef) {
	p.eventDefs = make(map[uint32]*demmsg.GameEventDef, len(defs))
	for _, def := range defs {
		p.eventDefs[def.ID] = def
	}
}
