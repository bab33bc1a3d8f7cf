// This file contains core types used throughout the demo model.

package demcore

import (
	"fmt"
	"time"
)

// Tick is one server simulation step. Demo commands are time-stamped by tick.
type Tick int32

// Duration returns the wall-clock duration covered by the tick count,
// given the server's tick interval.
func (t Tick) Duration(interval float32) time.Duration {
	return time.Duration(float64(t) * float64(interval) * float64(time.Second))
}

// Vector is a 3-component coordinate vector.
type Vector struct {
	X, Y, Z float32
}

// String returns a compact string representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// QAngle is a Euler angle triple (pitch, yaw, roll).
type QAngle struct {
	Pitch, Yaw, Roll float32
}

// String returns a compact string representation of the angle.
func (a QAngle) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a.Pitch, a.Yaw, a.Roll)
}
