package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/folio-fx/parameter"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine   WaveType = iota
	WaveSquare          // Hover tick
	WaveNoise           // Deselect onset, freq ignored
)

// oscillator streams a mono wave duplicated to both channels
type oscillator struct {
	wave     WaveType
	step     float64 // Phase advance per sample
	phase    float64 // [0, 1)
	position int
	length   int
}

// NewOscillator returns a finite wave of the given shape, frequency and duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:   wave,
		step:   freq / float64(rate),
		length: rate.N(duration),
	}
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, false
		}
		v := o.sample()
		samples[i][0], samples[i][1] = v, v

		o.phase += o.step
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateSelectSound generates a two-note rising chime for selecting a category
func CreateSelectSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.SelectFreqLow, parameter.SelectNoteDuration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.SelectNoteDuration, parameter.SelectAttack, parameter.SelectRelease, rate)

	n2 := NewOscillator(parameter.SelectFreqHigh, parameter.SelectNoteDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.SelectNoteDuration, parameter.SelectAttack, parameter.SelectRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.Volume(SoundSelect))
}

// CreateDeselectSound generates a single soft note with an octave undertone and a short noise onset
func CreateDeselectSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.DeselectNoiseDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.DeselectNoiseDuration, 0, parameter.DeselectNoiseDuration, rate)

	fund := NewOscillator(parameter.DeselectFreq, parameter.DeselectDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.DeselectDuration, parameter.DeselectAttack, parameter.DeselectRelease, rate)

	under := NewOscillator(parameter.DeselectFreq/2, parameter.DeselectDuration, WaveSine, rate)
	underShaped := NewEnvelope(under, parameter.DeselectDuration, parameter.DeselectAttack, parameter.DeselectRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(underShaped, 0.3),
		newVolume(noiseShaped, parameter.DeselectNoiseVolume),
	)
	return newVolume(mixed, cfg.Volume(SoundDeselect))
}

// CreateHoverSound generates a very short tick
func CreateHoverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.HoverFreq, parameter.HoverDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.HoverDuration, parameter.HoverAttack, parameter.HoverRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundHover))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundSelect:
		return CreateSelectSound(cfg)
	case SoundDeselect:
		return CreateDeselectSound(cfg)
	case SoundHover:
		return CreateHoverSound(cfg)
	default:
		return nil
	}
}
