package demparser

import (
	"errors"
	"testing"

	"github.com/icza/sdem/dem"
	"github.com/icza/sdem/dem/dembit"
)

// testHeader returns a header used by the synthesized test demos.
func testHeader() *dem.Header {
	return &dem.Header{
		DemoProtocol:    4,
		NetworkProtocol: 24,
		ServerName:      "local",
		ClientName:      "player",
		MapName:         "ctf_2fort",
		GameDirectory:   "tf",
		PlaybackTime:    0,
		PlaybackTicks:   1,
		PlaybackFrames:  0,
		SignonLength:    0,
	}
}

func TestParseMinimal(t *testing.T) {
	w := NewWriter(testHeader())
	if err := w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{}}); err != nil {
		t.Fatalf("WriteMessage() error: %v", err)
	}

	d, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	h := d.Header
	if h.DemoProtocol != 4 || h.NetworkProtocol != 24 {
		t.Errorf("Unexpected protocols: %v, %v", h.DemoProtocol, h.NetworkProtocol)
	}
	if h.ServerName != "local" {
		t.Errorf("Expected: %v, got: %v", "local", h.ServerName)
	}
	if h.MapName != "ctf_2fort" {
		t.Errorf("Expected: %v, got: %v", "ctf_2fort", h.MapName)
	}
	if h.PlaybackTicks != 1 {
		t.Errorf("Expected: %v, got: %v", 1, h.PlaybackTicks)
	}

	if len(d.Messages) != 1 {
		t.Fatalf("Expected: %v messages, got: %v", 1, len(d.Messages))
	}
	if _, ok := d.Messages[0].(*dem.Stop); !ok {
		t.Errorf("Expected *dem.Stop, got: %T", d.Messages[0])
	}
}

func TestParserStopsCleanly(t *testing.T) {
	w := NewWriter(testHeader())
	w.WriteMessage(&dem.SyncTick{MsgBase: &dem.MsgBase{Tick: 0}})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{Tick: 1}})

	p, err := NewParser(w.Bytes())
	if err != nil {
		t.Fatalf("NewParser() error: %v", err)
	}

	if m, err := p.NextMessage(); err != nil {
		t.Fatalf("NextMessage() error: %v", err)
	} else if _, ok := m.(*dem.SyncTick); !ok {
		t.Errorf("Expected *dem.SyncTick, got: %T", m)
	}

	if m, err := p.NextMessage(); err != nil {
		t.Fatalf("NextMessage() error: %v", err)
	} else if _, ok := m.(*dem.Stop); !ok {
		t.Errorf("Expected *dem.Stop, got: %T", m)
	}

	// After Stop the cursor reports end without error, repeatedly:
	for i := 0; i < 2; i++ {
		if m, err := p.NextMessage(); m != nil || err != nil {
			t.Errorf("Expected: nil, nil, got: %v, %v", m, err)
		}
	}
}

func TestNotDemoFile(t *testing.T) {
	if _, err := Parse([]byte("definitely not a demo")); !errors.Is(err, ErrNotDemoFile) {
		t.Errorf("Expected: %v, got: %v", ErrNotDemoFile, err)
	}

	// Valid size but wrong magic:
	data := make([]byte, dem.HeaderSize)
	copy(data, "WRONGMAG")
	if _, err := Parse(data); !errors.Is(err, ErrNotDemoFile) {
		t.Errorf("Expected: %v, got: %v", ErrNotDemoFile, err)
	}
}

func TestUnknownCommand(t *testing.T) {
	data := NewWriter(testHeader()).Bytes()
	data = append(data, 0x2a, 0, 0, 0, 0, 0)

	p, err := NewParser(data)
	if err != nil {
		t.Fatalf("NewParser() error: %v", err)
	}
	_, err = p.NextMessage()
	var uce *UnknownCommandError
	if !errors.As(err, &uce) {
		t.Fatalf("Expected UnknownCommandError, got: %v", err)
	}
	if uce.Tag != 0x2a {
		t.Errorf("Expected: %v, got: %v", 0x2a, uce.Tag)
	}
}

func TestTruncatedDemo(t *testing.T) {
	// Header only, no Stop command:
	p, err := NewParser(NewWriter(testHeader()).Bytes())
	if err != nil {
		t.Fatalf("NewParser() error: %v", err)
	}
	if _, err = p.NextMessage(); !errors.Is(err, dembit.ErrUnexpectedEOF) {
		t.Errorf("Expected: %v, got: %v", dembit.ErrUnexpectedEOF, err)
	}
}

func TestConsoleAndUserCmd(t *testing.T) {
	w := NewWriter(testHeader())
	w.WriteMessage(&dem.ConsoleCmd{MsgBase: &dem.MsgBase{Tick: 10}, Command: `say "gg"`})
	w.WriteMessage(&dem.UserCmd{MsgBase: &dem.MsgBase{Tick: 11}, Sequence: 42, Cmd: []byte{1, 2, 3}})
	w.WriteMessage(&dem.Stop{MsgBase: &dem.MsgBase{Tick: 12}})

	d, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	cc := d.Messages[0].(*dem.ConsoleCmd)
	if cc.Command != `say "gg"` {
		t.Errorf("Expected: %v, got: %v", `say "gg"`, cc.Command)
	}
	if cc.Tick != 10 {
		t.Errorf("Expected: %v, got: %v", 10, cc.Tick)
	}

	uc := d.Messages[1].(*dem.UserCmd)
	if uc.Sequence != 42 {
		t.Errorf("Expected: %v, got: %v", 42, uc.Sequence)
	}
	if len(uc.Cmd) != 3 || uc.Cmd[0] != 1 || uc.Cmd[2] != 3 {
		t.Errorf("Unexpected user cmd payload: %v", uc.Cmd)
	}
}
