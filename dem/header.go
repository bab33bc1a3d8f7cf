// This file contains the types describing the demo header.

package dem

import (
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// HeaderSize is the size of the fixed demo header in bytes.
const HeaderSize = 1072

// Magic is the expected content of the header magic field.
const Magic = "HL2DEMO\x00"

// Header models the fixed 1072-byte demo header.
type Header struct {
	// DemoProtocol is the demo container protocol version
	DemoProtocol int32

	// NetworkProtocol is the network protocol version
	NetworkProtocol int32

	// ServerName is the address or name of the recording server
	ServerName string

	// RawServerName is the undecoded ServerName data. It may differ from
	// ServerName if the latter is invalid UTF-8.
	RawServerName string `json:"-"`

	// ClientName is the recording client's name
	ClientName string

	// RawClientName is the undecoded ClientName data.
	RawClientName string `json:"-"`

	// MapName is the name of the recorded map
	MapName string

	// RawMapName is the undecoded MapName data.
	RawMapName string `json:"-"`

	// GameDirectory is the game directory, e.g. "tf"
	GameDirectory string

	// RawGameDirectory is the undecoded GameDirectory data.
	RawGameDirectory string `json:"-"`

	// PlaybackTime is the playback time in seconds
	PlaybackTime float32

	// PlaybackTicks is the number of recorded ticks
	PlaybackTicks int32

	// PlaybackFrames is the number of recorded frames
	PlaybackFrames int32

	// SignonLength is the byte length of the sign-on data
	SignonLength int32
}

// Duration returns the playback duration.
func (h *Header) Duration() time.Duration {
	return time.Duration(float64(h.PlaybackTime) * float64(time.Second))
}

// DecodeString returns a valid UTF-8 view of a raw wire string.
// Wire strings are bytes that are probably UTF-8; if raw is valid UTF-8 it
// is returned as-is, else it is decoded as Windows-1252 so the parse never
// fails on invalid UTF-8 and the raw bytes stay available to the caller.
func DecodeString(raw string) string {
	if utf8.ValidString(raw) {
		return raw
	}
	decoded, err := charmap.Windows1252.NewDecoder().String(raw)
	if err != nil {
		return raw
	}
	return decoded
}
