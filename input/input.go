package input

// Snapshot is one tick of control input.
// Missing or disconnected devices produce the zero Snapshot.
type Snapshot struct {
	// Thrust stick, -1 (idle) to 1 (full)
	Thrust float64
	// Roll stick, -1 (left) to 1 (right)
	Roll float64
	Arm  bool
	Grab bool
}

// Snapshot3D is one tick of control input for the 3D craft
type Snapshot3D struct {
	Thrust float64
	Roll   float64
	Pitch  float64
	Yaw    float64
}

type Sampler interface {
	Sample() Snapshot
}

type Sampler3D interface {
	Sample3D() Snapshot3D
}

// Clamped returns the snapshot with its axes in [-1, 1]
func (s Snapshot) Clamped() Snapshot {
	s.Thrust = clamp(s.Thrust)
	s.Roll = clamp(s.Roll)
	return s
}

func (s Snapshot3D) Clamped() Snapshot3D {
	s.Thrust = clamp(s.Thrust)
	s.Roll = clamp(s.Roll)
	s.Pitch = clamp(s.Pitch)
	s.Yaw = clamp(s.Yaw)
	return s
}

// Throttle maps the thrust stick to [0, 1]
func Throttle(axis float64) float64 {
	return (clamp(axis) + 1) / 2
}

func clamp(v float64) float64 {
	// NaN from a broken driver reads as a centered stick
	if v != v {
		return 0
	}
	return min(1, max(-1, v))
}

// Edge detects rising edges of a button sampled once per tick
type Edge struct {
	prev bool
}

// Rising records v and reports whether it went from released to pressed
func (e *Edge) Rising(v bool) bool {
	rising := v && !e.prev
	e.prev = v
	return rising
}

func (e *Edge) Prev() bool {
	return e.prev
}

// Script replays a fixed sequence of snapshots, then the zero Snapshot
type Script struct {
	Frames []Snapshot
	next   int
}

func (s *Script) Sample() Snapshot {
	if s.next >= len(s.Frames) {
		return Snapshot{}
	}
	frame := s.Frames[s.next]
	s.next++
	return frame
}

// Hold repeats the same snapshot n times
func Hold(snapshot Snapshot, n int) []Snapshot {
	frames := make([]Snapshot, n)
	for i := range frames {
		frames[i] = snapshot
	}
	return frames
}
