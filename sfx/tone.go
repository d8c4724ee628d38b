package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine wave fading out linearly over its duration
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(duration),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		fade := 1 - float64(t.position)/float64(t.total)
		val := math.Sin(2*math.Pi*t.phase) * fade
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// math.Log2(0) is -Inf: zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
