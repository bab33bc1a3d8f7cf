// This file contains the Demo type and its components which model a complete
// Source-engine demo.

package dem

import "github.com/icza/sdem/dem/demmsg"

// Demo models a Source-engine demo.
type Demo struct {
	// Header of the demo
	Header *Header

	// Messages of the demo in file order, ending with *Stop
	Messages []Message

	// ServerInfo recorded by the last SvcServerInfo message, if any
	ServerInfo *demmsg.SvcServerInfo

	// SendTables built from the DataTables command, if present
	SendTables []*SendTable

	// Classes are the server classes with their compiled flat tables,
	// built from the DataTables command
	Classes []*ServerClass

	// EventDefs are the game event definitions declared by the
	// SvcGameEventList message, mapped from event type ID
	EventDefs map[uint32]*demmsg.GameEventDef

	// StringTables holds the final state of the string tables,
	// in creation order
	StringTables []*StringTable

	// Computed contains data that is computed / derived from other parts
	// of the demo.
	Computed *Computed
}
