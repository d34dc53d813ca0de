package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func sample(w WaveType, phase float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator is a fixed-length tone. A sweep moves the frequency linearly
// from freq to freq+sweep over the tone's length.
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	position int
	duration int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a tone of the given wave and length.
func NewOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep creates a tone gliding from one frequency to another.
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweep:    to - from,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		v := sample(o.wave, o.phase, o.rng)
		samples[i][0] = v
		samples[i][1] = v

		f := o.freq + o.sweep*float64(o.position)/float64(o.duration)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release within d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume scales s linearly; 0 or below is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// melody loops a note sequence forever. Zero frequencies are rests.
type melody struct {
	notes    []float64
	noteLen  int
	attack   int
	release  int
	wave     WaveType
	amp      float64
	rate     beep.SampleRate
	position int
	phase    float64
}

func newMelody(notes []float64, noteLen time.Duration, wave WaveType, amp float64, rate beep.SampleRate) *melody {
	return &melody{
		notes:   notes,
		noteLen: max(rate.N(noteLen), 1),
		attack:  rate.N(10 * time.Millisecond),
		release: rate.N(noteLen / 3),
		wave:    wave,
		amp:     amp,
		rate:    rate,
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.position / m.noteLen) % len(m.notes)
		at := m.position % m.noteLen
		if at == 0 {
			m.phase = 0
		}

		v := 0.0
		if f := m.notes[idx]; f > 0 {
			env := 1.0
			if m.attack > 0 && at < m.attack {
				env = float64(at) / float64(m.attack)
			}
			if left := m.noteLen - at; m.release > 0 && left < m.release {
				env = min(env, float64(left)/float64(m.release))
			}
			v = m.amp * env * sample(m.wave, m.phase, nil)
			m.phase += f / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		m.position++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// Note frequencies in Hz.
const (
	noteA2 = 110.00
	noteC3 = 130.81
	noteD3 = 146.83
	noteE3 = 164.81
	noteF3 = 174.61
	noteG3 = 196.00
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteE5 = 659.25
	noteA5 = 880.00
)

// NewMusic is the looping background track: a driving minor arpeggio.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	lead := newMelody([]float64{
		noteA3, noteC4, noteE4, noteA4, noteE4, noteC4,
		noteG3, noteC4, noteE4, noteG4, noteE4, noteC4,
		noteF3, noteA3, noteC4, noteF3, noteA3, noteC4,
		noteE3, noteG3, noteE4, noteG3, noteE3, 0,
	}, 150*time.Millisecond, WaveSquare, 0.08, rate)
	bass := newMelody([]float64{noteA2, noteA2, noteC3, noteD3}, 900*time.Millisecond, WaveSine, 0.15, rate)
	return beep.Mix(lead, bass)
}

// NewDefeat is the looping game-over track: a slow descending line.
func NewDefeat(rate beep.SampleRate) beep.Streamer {
	return newMelody([]float64{
		noteE4, noteD3, noteC4, noteA3, noteG3, noteE3, noteA2, 0,
	}, 450*time.Millisecond, WaveSine, 0.2, rate)
}

// NewHit is the damage cue: a short falling saw buzz.
func NewHit(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	tone := NewSweep(220, 80, d, WaveSaw, rate)
	noise := NewOscillator(0, d, WaveNoise, rate)
	mixed := beep.Mix(volume(tone, 0.7), volume(noise, 0.15))
	return volume(NewEnvelope(mixed, d, 5*time.Millisecond, 120*time.Millisecond, rate), 0.4)
}

// NewPickup is the heal cue: a rising two-note chime.
func NewPickup(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(noteE5, 70*time.Millisecond, WaveSine, rate),
		70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(noteA5, 160*time.Millisecond, WaveSine, rate),
		160*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, rate)
	return volume(beep.Seq(n1, n2), 0.35)
}
