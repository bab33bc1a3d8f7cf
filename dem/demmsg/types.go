// This file contains the packet message types.

package demmsg

import "github.com/icza/sdem/dem/demcore"

// Type IDs of packet messages
const (
	TypeIDNetNop               byte = 0
	TypeIDNetDisconnect        byte = 1
	TypeIDNetFile              byte = 2
	TypeIDNetTick              byte = 3
	TypeIDNetStringCmd         byte = 4
	TypeIDNetSetConVar         byte = 5
	TypeIDNetSignonState       byte = 6
	TypeIDSvcPrint             byte = 7
	TypeIDSvcServerInfo        byte = 8
	TypeIDSvcSendTable         byte = 9
	TypeIDSvcClassInfo         byte = 10
	TypeIDSvcSetPause          byte = 11
	TypeIDSvcCreateStringTable byte = 12
	TypeIDSvcUpdateStringTable byte = 13
	TypeIDSvcVoiceInit         byte = 14
	TypeIDSvcVoiceData         byte = 15
	TypeIDSvcSounds            byte = 17
	TypeIDSvcSetView           byte = 18
	TypeIDSvcFixAngle          byte = 19
	TypeIDSvcCrosshairAngle    byte = 20
	TypeIDSvcBspDecal          byte = 21
	TypeIDSvcUserMessage       byte = 23
	TypeIDSvcEntityMessage     byte = 24
	TypeIDSvcGameEvent         byte = 25
	TypeIDSvcPacketEntities    byte = 26
	TypeIDSvcTempEntities      byte = 27
	TypeIDSvcPrefetch          byte = 28
	TypeIDSvcMenu              byte = 29
	TypeIDSvcGameEventList     byte = 30
	TypeIDSvcGetCvarValue      byte = 31
	TypeIDSvcCmdKeyValues      byte = 32
)

// MsgType describes a packet message type.
type MsgType struct {
	demcore.Enum

	// ID as it appears on the wire
	ID byte
}

// MsgTypes is an enumeration of the known packet message types.
var MsgTypes = []*MsgType{
	{demcore.Enum{Name: "NetNop"}, TypeIDNetNop},
	{demcore.Enum{Name: "NetDisconnect"}, TypeIDNetDisconnect},
	{demcore.Enum{Name: "NetFile"}, TypeIDNetFile},
	{demcore.Enum{Name: "NetTick"}, TypeIDNetTick},
	{demcore.Enum{Name: "NetStringCmd"}, TypeIDNetStringCmd},
	{demcore.Enum{Name: "NetSetConVar"}, TypeIDNetSetConVar},
	{demcore.Enum{Name: "NetSignonState"}, TypeIDNetSignonState},
	{demcore.Enum{Name: "SvcPrint"}, TypeIDSvcPrint},
	{demcore.Enum{Name: "SvcServerInfo"}, TypeIDSvcServerInfo},
	{demcore.Enum{Name: "SvcSendTable"}, TypeIDSvcSendTable},
	{demcore.Enum{Name: "SvcClassInfo"}, TypeIDSvcClassInfo},
	{demcore.Enum{Name: "SvcSetPause"}, TypeIDSvcSetPause},
	{demcore.Enum{Name: "SvcCreateStringTable"}, TypeIDSvcCreateStringTable},
	{demcore.Enum{Name: "SvcUpdateStringTable"}, TypeIDSvcUpdateStringTable},
	{demcore.Enum{Name: "SvcVoiceInit"}, TypeIDSvcVoiceInit},
	{demcore.Enum{Name: "SvcVoiceData"}, TypeIDSvcVoiceData},
	{demcore.Enum{Name: "SvcSounds"}, TypeIDSvcSounds},
	{demcore.Enum{Name: "SvcSetView"}, TypeIDSvcSetView},
	{demcore.Enum{Name: "SvcFixAngle"}, TypeIDSvcFixAngle},
	{demcore.Enum{Name: "SvcCrosshairAngle"}, TypeIDSvcCrosshairAngle},
	{demcore.Enum{Name: "SvcBspDecal"}, TypeIDSvcBspDecal},
	{demcore.Enum{Name: "SvcUserMessage"}, TypeIDSvcUserMessage},
	{demcore.Enum{Name: "SvcEntityMessage"}, TypeIDSvcEntityMessage},
	{demcore.Enum{Name: "SvcGameEvent"}, TypeIDSvcGameEvent},
	{demcore.Enum{Name: "SvcPacketEntities"}, TypeIDSvcPacketEntities},
	{demcore.Enum{Name: "SvcTempEntities"}, TypeIDSvcTempEntities},
	{demcore.Enum{Name: "SvcPrefetch"}, TypeIDSvcPrefetch},
	{demcore.Enum{Name: "SvcMenu"}, TypeIDSvcMenu},
	{demcore.Enum{Name: "SvcGameEventList"}, TypeIDSvcGameEventList},
	{demcore.Enum{Name: "SvcGetCvarValue"}, TypeIDSvcGetCvarValue},
	{demcore.Enum{Name: "SvcCmdKeyValues"}, TypeIDSvcCmdKeyValues},
}

// msgTypesByID maps from message type ID to MsgType.
var msgTypesByID = map[byte]*MsgType{}

func init() {
	for _, mt := range MsgTypes {
		msgTypesByID[mt.ID] = mt
	}
}

// TypeByID returns the MsgType for a given ID, or nil if the ID is not a
// known message type. Unknown message types are fatal to the packet decoder
// because their size is not self-describing.
func TypeByID(ID byte) *MsgType {
	return msgTypesByID[ID]
}
