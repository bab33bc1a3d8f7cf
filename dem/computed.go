// This file contains the types describing the computed / derived data.

package dem

import (
	"sort"
	"strings"
	"time"
)

// Computed contains computed, derived data from other parts of the demo.
type Computed struct {
	// Duration of the recording derived from the header
	Duration time.Duration

	// TickRate is the server ticks per second, derived from the server
	// info's tick interval; 0 if no server info was recorded.
	TickRate float32

	// MsgCounts maps packet message type names to occurrence counts.
	MsgCounts map[string]int

	// EventCounts maps game event names to occurrence counts.
	EventCounts map[string]int

	// ChatMessages collects the chat of the demo.
	ChatMessages []*ChatMessage

	// EntityUpdateCount is the total number of entity updates.
	EntityUpdateCount int
}

// ChatMessage is one chat line extracted from the console commands.
type ChatMessage struct {
	// Tick the message was issued at
	Tick int32

	// Text of the message
	Text string
}

// Compute computes and fills the Computed field of the demo.
// If it is already filled, this is a no-op.
func (d *Demo) Compute() {
	if d.Computed != nil {
		return
	}

	c := &Computed{
		MsgCounts:   map[string]int{},
		EventCounts: map[string]int{},
	}
	d.Computed = c

	if d.Header != nil {
		c.Duration = d.Header.Duration()
	}
	if d.ServerInfo != nil && d.ServerInfo.TickInterval > 0 {
		c.TickRate = 1 / d.ServerInfo.TickInterval
	}

	for _, m := range d.Messages {
		var p *Packet
		switch msg := m.(type) {
		case *Packet:
			p = msg
		case *SignOn:
			p = &msg.Packet
		case *ConsoleCmd:
			if text, ok := chatText(msg.Command); ok {
				c.ChatMessages = append(c.ChatMessages, &ChatMessage{
					Tick: int32(msg.Tick),
					Text: DecodeString(text),
				})
			}
			continue
		default:
			continue
		}

		for _, nm := range p.NetMsgs {
			c.MsgCounts[nm.BaseMsg().Type.Name]++
		}
		for _, ev := range p.Events {
			c.EventCounts[ev.EventName()]++
		}
		c.EntityUpdateCount += len(p.EntityUpdates)
	}
}

// chatText extracts the said text from a "say"/"say_team" console command.
func chatText(command string) (string, bool) {
	rest, ok := strings.CutPrefix(command, "say ")
	if !ok {
		rest, ok = strings.CutPrefix(command, "say_team ")
	}
	if !ok {
		return "", false
	}
	return strings.Trim(rest, `"`), true
}

// TopEvents returns the n most frequent game event names with their counts,
// most frequent first; ties are broken by name.
func (c *Computed) TopEvents(n int) []string {
	names := make([]string, 0, len(c.EventCounts))
	for name := range c.EventCounts {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		if ci, cj := c.EventCounts[names[i]], c.EventCounts[names[j]]; ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	if n < len(names) {
		names = names[:n]
	}
	return names
}
