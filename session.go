package clover

import (
	"io"

	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/input"
	"github.com/akmonengine/clover/level"
	"github.com/akmonengine/clover/tuning"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// Session owns the whole simulation state of one level run.
// It is not safe for concurrent use: Tick runs on a single goroutine.
type Session struct {
	Level  *level.Level
	Tuning tuning.Tuning

	Player *actor.Body
	Ball   *actor.Body

	Controls Controls
	Grab     Grab
	Grounded bool
	Timer    Timer

	Events Events

	logger *log.Logger
	ticks  uint64
}

// NewSession places the player and the ball on the level spawns.
// A nil logger discards the output.
func NewSession(lvl *level.Level, t tuning.Tuning, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		Level:  lvl,
		Tuning: t,
		Events: NewEvents(),
		logger: logger,
	}
	s.reset()

	return s
}

// Reset restarts the run on the same level. Listeners stay subscribed.
func (s *Session) Reset() {
	s.reset()
	s.logger.Info("run reset")
}

func (s *Session) reset() {
	f := s.Tuning.Flight
	s.Player = actor.NewBody(s.Level.PlayerSpawn, mgl64.Vec2(f.PlayerHalfExtents))
	s.Ball = actor.NewBody(s.Level.BallSpawn, mgl64.Vec2(f.BallHalfExtents))
	s.Controls = Controls{}
	s.Grab = Grab{}
	s.Grounded = false
	s.Timer = Timer{}
	s.ticks = 0
	s.Events.discard()
}

// Subscribe adds a listener for an event type
func (s *Session) Subscribe(eventType EventType, listener EventListener) {
	s.Events.Subscribe(eventType, listener)
}

// Tick advances the simulation by dt. The order is fixed: controls, player, grab,
// ball, then the run clock. Events are delivered when the tick is complete.
func (s *Session) Tick(snapshot input.Snapshot, dt float64) {
	f := s.Tuning.Flight
	space := s.Level.Space

	if s.Controls.Apply(snapshot) {
		s.Events.emit(ArmedEvent{Armed: s.Controls.Armed})
		s.logger.Debug("armed", "armed", s.Controls.Armed, "tick", s.ticks)
	}

	s.Grounded = AdvancePlayer(s.Player, s.Controls, s.Grounded, space, s.Grab.PlayerMask(), f, dt)

	switch s.Grab.Evaluate(s.Controls.Grab, s.Player, s.Ball, space, f.GrabRadius) {
	case Grabbed:
		s.Events.emit(GrabEvent{Position: s.Ball.Position})
		s.logger.Debug("ball grabbed", "tick", s.ticks)
		if s.Timer.Start() {
			s.logger.Info("run started", "tick", s.ticks)
		}
	case Released:
		s.Events.emit(ReleaseEvent{Velocity: s.Ball.Velocity})
		s.logger.Debug("ball released", "tick", s.ticks, "velocity", s.Ball.Velocity)
	}

	for _, b := range AdvanceBall(s.Ball, s.Player, s.Grab.Attached(), space, f, dt) {
		s.Events.emit(BounceEvent{Axis: b.Axis, Intensity: b.Intensity})
	}

	if s.Timer.Running() {
		s.Timer.Advance(dt)
		if space.Overlaps(s.Ball.Bounds(), finishMask) && s.Timer.Finish() {
			tier := Classify(s.Timer.Elapsed(), s.Tuning.Tiers)
			s.Events.emit(FinishEvent{Elapsed: s.Timer.Elapsed(), Tier: tier})
			s.logger.Info("run finished", "elapsed", s.Timer.Elapsed(), "tier", tier)
		}
	}

	s.ticks++
	s.Events.flush()
}

// Run ticks the session n times at the tuning tick with inputs from sampler
func (s *Session) Run(sampler input.Sampler, n int) {
	for i := 0; i < n; i++ {
		s.Tick(sampler.Sample(), s.Tuning.Tick)
	}
}

// BodyState is a copy of the kinematic state of a body
type BodyState struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Angle    float64
	Bounds   actor.Rect
}

// State is a read-only view of a session, for presentation
type State struct {
	Tick     uint64
	Player   BodyState
	Ball     BodyState
	Armed    bool
	Grounded bool
	Grab     GrabState
	Elapsed  float64
	Started  bool
	Finished bool
}

func (s *Session) Snapshot() State {
	return State{
		Tick:     s.ticks,
		Player:   bodyState(s.Player),
		Ball:     bodyState(s.Ball),
		Armed:    s.Controls.Armed,
		Grounded: s.Grounded,
		Grab:     s.Grab.State,
		Elapsed:  s.Timer.Elapsed(),
		Started:  s.Timer.Started(),
		Finished: s.Timer.Finished(),
	}
}

func bodyState(b *actor.Body) BodyState {
	return BodyState{
		Position: b.Position,
		Velocity: b.Velocity,
		Angle:    b.Angle,
		Bounds:   b.Bounds(),
	}
}
