// Package sfx turns simulation events into short synthesized sound cues.
package sfx

import (
	"time"

	"github.com/akmonengine/clover"
	"github.com/gopxl/beep"
)

const SampleRate = beep.SampleRate(44100)

const (
	bounceFreq   = 220.0
	armedFreq    = 880.0
	disarmedFreq = 440.0

	bounceDuration = 80 * time.Millisecond
	armedDuration  = 120 * time.Millisecond
	finishDuration = 400 * time.Millisecond
)

var finishFreqs = map[clover.Tier]float64{
	clover.TierGold:   1320,
	clover.TierSilver: 990,
	clover.TierBronze: 660,
}

// Subscriber is implemented by clover.Session
type Subscriber interface {
	Subscribe(eventType clover.EventType, listener clover.EventListener)
}

// Cues renders events to streamers and hands them to play
type Cues struct {
	Volume float64

	rate beep.SampleRate
	play func(...beep.Streamer)
}

// NewCues creates the cues. play is usually speaker.Play.
func NewCues(rate beep.SampleRate, play func(...beep.Streamer)) *Cues {
	return &Cues{
		Volume: 1,
		rate:   rate,
		play:   play,
	}
}

// Bounce returns a thud as loud as intensity, nil when silent
func (c *Cues) Bounce(intensity float64) beep.Streamer {
	vol := min(1, intensity) * c.Volume
	if vol <= 0 {
		return nil
	}
	return newVolume(newTone(bounceFreq, bounceDuration, c.rate), vol)
}

func (c *Cues) Armed(armed bool) beep.Streamer {
	freq := disarmedFreq
	if armed {
		freq = armedFreq
	}
	return newVolume(newTone(freq, armedDuration, c.rate), 0.5*c.Volume)
}

// Finish chimes two notes, the second one depends on the tier
func (c *Cues) Finish(tier clover.Tier) beep.Streamer {
	freq, ok := finishFreqs[tier]
	if !ok {
		freq = finishFreqs[clover.TierBronze]
	}
	return newVolume(beep.Seq(
		newTone(freq/2, finishDuration/2, c.rate),
		newTone(freq, finishDuration, c.rate),
	), 0.7*c.Volume)
}

// Handle plays the cue of an event, if it has one
func (c *Cues) Handle(event clover.Event) {
	var s beep.Streamer
	switch e := event.(type) {
	case clover.BounceEvent:
		s = c.Bounce(e.Intensity)
	case clover.ArmedEvent:
		s = c.Armed(e.Armed)
	case clover.FinishEvent:
		s = c.Finish(e.Tier)
	}
	if s != nil {
		c.play(s)
	}
}

// Listen subscribes the cues to every event with a sound
func (c *Cues) Listen(s Subscriber) {
	for _, eventType := range []clover.EventType{clover.BOUNCE, clover.ARMED, clover.FINISH} {
		s.Subscribe(eventType, c.Handle)
	}
}
