package sprig

import "time"

// Timestep is the elapsed frame time in seconds.
type Timestep float32

// TimestepFromDuration converts a time.Duration to a Timestep.
func TimestepFromDuration(d time.Duration) Timestep {
	return Timestep(d.Seconds())
}

// Seconds returns the timestep in seconds.
func (t Timestep) Seconds() float32 { return float32(t) }

// Milliseconds returns the timestep in milliseconds.
func (t Timestep) Milliseconds() float32 { return float32(t) * 1000 }
