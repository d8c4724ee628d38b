package sfx

import (
	"math"
	"testing"
	"time"

	"github.com/akmonengine/clover"
	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count and the peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(sample[0]), math.Abs(sample[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ends")
	return 0, 0
}

func TestTone(t *testing.T) {
	s := newTone(440, 100*time.Millisecond, SampleRate)

	n, peak := drain(t, s)
	if want := SampleRate.N(100 * time.Millisecond); n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
	if peak > 1 || peak < 0.5 {
		t.Errorf("peak = %v, want in [0.5, 1]", peak)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}

	buf := make([][2]float64, 16)
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("drained tone streamed %d, %v", n, ok)
	}
}

func TestCues_Bounce(t *testing.T) {
	c := NewCues(SampleRate, nil)

	if c.Bounce(0) != nil || c.Bounce(-1) != nil {
		t.Error("silent bounce should have no cue")
	}

	loud := c.Bounce(1)
	soft := c.Bounce(0.25)
	n, loudPeak := drain(t, loud)
	_, softPeak := drain(t, soft)

	if want := SampleRate.N(bounceDuration); n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
	if softPeak > 0.25+1e-9 {
		t.Errorf("soft peak = %v, want <= 0.25", softPeak)
	}
	if softPeak >= loudPeak {
		t.Errorf("soft peak %v should be below loud peak %v", softPeak, loudPeak)
	}
}

func TestCues_Finish(t *testing.T) {
	c := NewCues(SampleRate, nil)

	for _, tier := range []clover.Tier{clover.TierGold, clover.TierSilver, clover.TierBronze, clover.Tier(42)} {
		n, peak := drain(t, c.Finish(tier))
		want := SampleRate.N(finishDuration/2) + SampleRate.N(finishDuration)
		if n != want {
			t.Errorf("tier %v: streamed %d samples, want %d", tier, n, want)
		}
		if peak > 0.7+1e-9 {
			t.Errorf("tier %v: peak = %v, want <= 0.7", tier, peak)
		}
	}
}

type fakeSession struct {
	listeners map[clover.EventType][]clover.EventListener
}

func (f *fakeSession) Subscribe(eventType clover.EventType, listener clover.EventListener) {
	if f.listeners == nil {
		f.listeners = make(map[clover.EventType][]clover.EventListener)
	}
	f.listeners[eventType] = append(f.listeners[eventType], listener)
}

func (f *fakeSession) send(event clover.Event) {
	for _, listener := range f.listeners[event.Type()] {
		listener(event)
	}
}

func TestCues_Listen(t *testing.T) {
	played := 0
	c := NewCues(SampleRate, func(s ...beep.Streamer) { played += len(s) })
	session := &fakeSession{}
	c.Listen(session)

	tests := []struct {
		event clover.Event
		want  int
	}{
		{clover.BounceEvent{Intensity: 0.5}, 1},
		{clover.BounceEvent{Intensity: 0}, 0},
		{clover.ArmedEvent{Armed: true}, 1},
		{clover.ArmedEvent{Armed: false}, 1},
		{clover.FinishEvent{Elapsed: 90, Tier: clover.TierGold}, 1},
		{clover.GrabEvent{}, 0},
		{clover.ReleaseEvent{}, 0},
	}

	for _, tt := range tests {
		played = 0
		session.send(tt.event)
		if played != tt.want {
			t.Errorf("%T: played %d cues, want %d", tt.event, played, tt.want)
		}
	}
}

func TestCues_Muted(t *testing.T) {
	c := NewCues(SampleRate, nil)
	c.Volume = 0

	if c.Bounce(1) != nil {
		t.Error("muted bounce should have no cue")
	}
	if _, peak := drain(t, c.Armed(true)); peak != 0 {
		t.Errorf("muted armed peak = %v, want 0", peak)
	}
}
