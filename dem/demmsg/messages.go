// This file contains the packet message types' data models.
// Wire-level parsing and serialization of these live in the demparser package.

package demmsg

import "github.com/icza/sdem/dem/demcore"

// Msg is the interface of all packet messages.
type Msg interface {
	// BaseMsg returns the base message.
	BaseMsg() *Base
}

// Base is the base of all packet messages.
type Base struct {
	// Type of the message
	Type *MsgType
}

// BaseMsg implements Msg.BaseMsg.
func (b *Base) BaseMsg() *Base {
	return b
}

// NetNop is a no-op keepalive message.
type NetNop struct {
	*Base
}

// NetDisconnect instructs the client to disconnect.
type NetDisconnect struct {
	*Base

	// Reason of the disconnect
	Reason string
}

// NetFile is a file transfer request / denial.
type NetFile struct {
	*Base

	TransferID uint32
	FileName   string
	Requested  bool
}

// NetTick carries the current server tick and timing info.
type NetTick struct {
	*Base

	Tick             demcore.Tick
	HostFrameTime    uint16 // in 1e-5 s units
	HostFrameTimeDev uint16 // in 1e-5 s units
}

// NetStringCmd is a console command forwarded over the network.
type NetStringCmd struct {
	*Base

	Command string
}

// ConVar is one cvar name-value pair.
type ConVar struct {
	Name  string
	Value string
}

// NetSetConVar sets console variables on the receiving side.
type NetSetConVar struct {
	*Base

	ConVars []ConVar
}

// NetSignonState signals a sign-on state transition.
type NetSignonState struct {
	*Base

	State      byte
	SpawnCount int32
}

// SvcPrint is text the server prints to the console.
type SvcPrint struct {
	*Base

	Text string
}

// SvcServerInfo describes the server and the loaded map.
type SvcServerInfo struct {
	*Base

	Protocol        int16
	ServerCount     int32
	IsHLTV          bool
	IsDedicated     bool
	ClientCRC       int32
	MaxClasses      uint16
	MapCRC          int32
	PlayerSlot      byte
	MaxClients      byte
	TickInterval    float32
	Platform        byte
	GameDir         string
	MapName         string
	SkyName         string
	HostName        string
}

// SvcSendTable carries one send table inside a packet.
// Send tables normally arrive in the DataTables demo command instead.
type SvcSendTable struct {
	*Base

	NeedsDecoder bool

	// Data is the raw bit-packed send table payload
	Data []byte

	// LengthBits is the exact payload length in bits
	LengthBits int
}

// ClassInfoEntry is one server class reference of SvcClassInfo.
type ClassInfoEntry struct {
	ClassID       uint16
	ClassName     string
	DataTableName string
}

// SvcClassInfo lists the server classes.
type SvcClassInfo struct {
	*Base

	CreateOnClient bool
	Entries        []ClassInfoEntry
}

// SvcSetPause pauses / unpauses the game.
type SvcSetPause struct {
	*Base

	Paused bool
}

// SvcCreateStringTable declares a new string table and its initial entries.
type SvcCreateStringTable struct {
	*Base

	Name              string
	MaxEntries        uint16
	NumEntries        uint16
	UserDataFixedSize bool
	UserDataSize      uint16
	UserDataSizeBits  byte
	Flags             uint16

	// Data is the raw bit-packed entry list
	Data []byte

	// LengthBits is the exact entry list length in bits
	LengthBits int
}

// SvcUpdateStringTable carries incremental updates to an existing table.
type SvcUpdateStringTable struct {
	*Base

	TableID           byte
	NumChangedEntries uint16

	// Data is the raw bit-packed update list
	Data []byte

	// LengthBits is the exact update list length in bits
	LengthBits int
}

// SvcVoiceInit initializes the voice codec.
type SvcVoiceInit struct {
	*Base

	Codec   string
	Quality byte
}

// SvcVoiceData carries a compressed voice payload.
type SvcVoiceData struct {
	*Base

	Client    byte
	Proximity byte

	Data       []byte
	LengthBits int
}

// SvcSounds carries sound events.
type SvcSounds struct {
	*Base

	Reliable  bool
	NumSounds byte

	Data       []byte
	LengthBits int
}

// SvcSetView sets the view entity.
type SvcSetView struct {
	*Base

	EntityIndex uint16
}

// SvcFixAngle snaps or offsets the client view angle.
type SvcFixAngle struct {
	*Base

	Relative bool
	Angle    demcore.QAngle
}

// SvcCrosshairAngle points the client crosshair.
type SvcCrosshairAngle struct {
	*Base

	Angle demcore.QAngle
}

// SvcBspDecal places a decal on world geometry.
type SvcBspDecal struct {
	*Base

	Pos               demcore.Vector
	DecalTextureIndex uint16
	EntityIndex       uint16
	ModelIndex        uint16
	LowPriority       bool
}

// SvcUserMessage carries a game-specific user message.
type SvcUserMessage struct {
	*Base

	MsgType byte

	Data       []byte
	LengthBits int
}

// SvcEntityMessage carries a message addressed to one entity.
type SvcEntityMessage struct {
	*Base

	EntityIndex uint16
	ClassID     uint16

	Data       []byte
	LengthBits int
}

// SvcGameEvent carries one game event.
type SvcGameEvent struct {
	*Base

	// Event is the decoded game event
	Event GameEvent
}

// SvcPacketEntities carries entity delta updates for one tick.
type SvcPacketEntities struct {
	*Base

	MaxEntries     uint16
	IsDelta        bool
	DeltaFrom      int32
	BaseLine       bool
	UpdatedEntries uint16
	UpdateBaseline bool

	// Updates are the decoded entity updates in wire index order
	Updates []*EntityUpdate
}

// SvcTempEntities carries temporary entity events.
type SvcTempEntities struct {
	*Base

	NumEntries byte

	Data       []byte
	LengthBits int
}

// SvcPrefetch asks the client to prefetch a resource.
type SvcPrefetch struct {
	*Base

	SoundIndex uint16
}

// SvcMenu shows a plugin menu.
type SvcMenu struct {
	*Base

	MenuType uint16
	Data     []byte
}

// SvcGameEventList declares the game event definitions of the demo.
type SvcGameEventList struct {
	*Base

	// Definitions in wire order
	Definitions []*GameEventDef
}

// SvcGetCvarValue queries a client cvar.
type SvcGetCvarValue struct {
	*Base

	Cookie   int32
	CvarName string
}

// SvcCmdKeyValues carries an opaque key-values command blob.
type SvcCmdKeyValues struct {
	*Base

	Data []byte
}

// PropUpdate is one changed property of an entity update:
// the property's flat-table index and its new decoded value.
type PropUpdate struct {
	// Index into the owning class's flat table; the wire identity
	// of the property.
	Index int

	// Value holds int64, float32, string, demcore.Vector or []any
	// according to the prop's kind.
	Value any
}

// EntityUpdate is one entity's state transition within a packet entities
// message.
type EntityUpdate struct {
	// EntityIndex in 0..2047
	EntityIndex uint16

	// Type of the update
	Type *demcore.UpdateType

	// ClassID of the entity's server class; set on EnterPvs and Delta
	ClassID uint16

	// Serial number of the entity; set on EnterPvs
	Serial uint32

	// Props are the changed properties in ascending flat-table
	// index order
	Props []PropUpdate
}
