// Package audio plays a short hiss whenever grains are painted.
package audio

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	burstDuration = 40 * time.Millisecond
	// grainsForFullVolume is the number of grains per tick that plays at the
	// base volume; smaller pours are quieter.
	grainsForFullVolume = 64
	minVolume           = -6.0
)

// Pourer mixes one noise burst per painted batch into the speaker. The zero
// value and a nil *Pourer are silent.
type Pourer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	seed        uint64
}

// NewPourer creates a silent Pourer; call Init to open the audio device.
func NewPourer() *Pourer {
	return &Pourer{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (p *Pourer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Pour plays a burst sized by the number of grains deposited this tick.
func (p *Pourer) Pour(grains int) {
	if p == nil || grains <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.seed++
	burst := beep.Take(sampleRate.N(burstDuration), &effects.Volume{
		Streamer: newGrainNoise(p.seed),
		Base:     2,
		Volume:   volumeFor(grains),
	})
	speaker.Lock()
	p.mixer.Add(burst)
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (p *Pourer) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// volumeFor maps a grain count onto a log2 volume in [minVolume, 0].
func volumeFor(grains int) float64 {
	if grains <= 0 {
		return minVolume
	}
	v := math.Log2(float64(grains) / grainsForFullVolume)
	if v > 0 {
		return 0
	}
	if v < minVolume {
		return minVolume
	}
	return v
}

// grainNoise is low-passed white noise; the filter takes the edge off the
// hiss so it reads as trickling sand.
type grainNoise struct {
	rng  *rand.Rand
	prev float64
}

func newGrainNoise(seed uint64) *grainNoise {
	return &grainNoise{rng: rand.New(rand.NewPCG(seed, 0x5a4d))}
}

func (n *grainNoise) Stream(samples [][2]float64) (int, bool) {
	const alpha = 0.35
	for i := range samples {
		white := n.rng.Float64()*2 - 1
		n.prev += alpha * (white - n.prev)
		samples[i][0] = n.prev
		samples[i][1] = n.prev
	}
	return len(samples), true
}

func (n *grainNoise) Err() error { return nil }
