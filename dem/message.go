// This file contains the top-level demo message (command) types.

package dem

import (
	"github.com/icza/sdem/dem/demcore"
	"github.com/icza/sdem/dem/demmsg"
)

// Command tags of the demo container.
const (
	CmdIDSignOn       byte = 1
	CmdIDPacket       byte = 2
	CmdIDSyncTick     byte = 3
	CmdIDConsoleCmd   byte = 4
	CmdIDUserCmd      byte = 5
	CmdIDDataTables   byte = 6
	CmdIDStop         byte = 7
	CmdIDCustomData   byte = 8
	CmdIDStringTables byte = 9
)

// Message is the interface of all top-level demo messages.
type Message interface {
	// BaseMessage returns the base message.
	BaseMessage() *MsgBase
}

// MsgBase is the base of all top-level demo messages.
type MsgBase struct {
	// Cmd is the command tag of the message
	Cmd byte

	// Tick the message is stamped with
	Tick demcore.Tick

	// Slot is the split-screen player slot
	Slot byte

	// Debug holds the raw payload bytes if debug retention is enabled.
	Debug []byte `json:"-"`
}

// BaseMessage implements Message.BaseMessage.
func (b *MsgBase) BaseMessage() *MsgBase {
	return b
}

// CmdInfo is the fixed command-info block preceding Packet and SignOn
// payloads: the recording view's origin and angles for the two
// split-screen slots.
type CmdInfo struct {
	Flags int32

	ViewOrigin      demcore.Vector
	ViewAngles      demcore.QAngle
	LocalViewAngles demcore.QAngle

	ViewOrigin2      demcore.Vector
	ViewAngles2      demcore.QAngle
	LocalViewAngles2 demcore.QAngle
}

// Packet is a network packet message: the payload is a sequence of packet
// messages, out of which game events and entity updates are also collected
// separately for convenience.
type Packet struct {
	*MsgBase

	// CmdInfo is the view info block
	CmdInfo CmdInfo

	// SeqNrIn and SeqNrOut are the network channel sequence numbers
	SeqNrIn  int32
	SeqNrOut int32

	// NetMsgs are the packet messages in wire order
	NetMsgs []demmsg.Msg

	// Events are the game events of this packet in wire order
	Events []demmsg.GameEvent

	// EntityUpdates are the entity updates of this packet in wire order
	EntityUpdates []*demmsg.EntityUpdate
}

// SignOn is a Packet recorded during the sign-on phase.
type SignOn struct {
	Packet
}

// SyncTick marks the synchronization point of the recording.
type SyncTick struct {
	*MsgBase
}

// ConsoleCmd is a console command issued during recording.
type ConsoleCmd struct {
	*MsgBase

	// Command text
	Command string
}

// UserCmd is a user (client) command.
type UserCmd struct {
	*MsgBase

	// Sequence number of the command
	Sequence int32

	// Cmd is the raw user command payload
	Cmd []byte
}

// DataTables carries the send tables and the server class list.
type DataTables struct {
	*MsgBase

	// SendTables in wire order
	SendTables []*SendTable

	// Classes with their compiled flat tables
	Classes []*ServerClass
}

// Stop terminates the demo.
type Stop struct {
	*MsgBase
}

// CustomData is an opaque engine-specific payload.
type CustomData struct {
	*MsgBase

	// Callback index of the custom data handler
	Callback int32

	// Data is the raw payload
	Data []byte
}

// StringTables carries a full string table snapshot.
type StringTables struct {
	*MsgBase

	// Tables of the snapshot
	Tables []*StringTable
}
