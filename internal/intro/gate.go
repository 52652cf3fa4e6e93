// Package intro drives the candle-blow gate in front of the card.
package intro

import (
	"errors"
	"sync"
)

// ErrDenied is returned by a Source that cannot sample input.
var ErrDenied = errors.New("intro: input denied")

// DefaultThreshold is the average frame level that counts as a blow.
const DefaultThreshold = 40.0

// Source yields frequency frames, one byte per bin.
type Source interface {
	Sample() ([]byte, error)
}

// Average is the mean bin level of frame.
func Average(frame []byte) float64 {
	if len(frame) == 0 {
		return 0
	}
	sum := 0
	for _, v := range frame {
		sum += int(v)
	}
	return float64(sum) / float64(len(frame))
}

// Gate fires once when a frame's average exceeds Threshold.
type Gate struct {
	Threshold float64
	fired     bool
}

// Feed reports true for the first frame over the threshold only.
func (g *Gate) Feed(frame []byte) bool {
	if g.fired || Average(frame) <= g.Threshold {
		return false
	}
	g.fired = true
	return true
}

func (g *Gate) Fired() bool { return g.fired }

// Breath turns key presses into frames. Each puff adds energy; Decay bleeds it
// off between samples.
type Breath struct {
	Bins  int
	Gain  float64
	Fade  float64
	mu    sync.Mutex
	level float64
}

func NewBreath() *Breath {
	return &Breath{Bins: 32, Gain: 30, Fade: 0.8}
}

func (b *Breath) Puff() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = min(b.level+b.Gain, 255)
}

func (b *Breath) Decay() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level *= b.Fade
	if b.level < 0.5 {
		b.level = 0
	}
}

func (b *Breath) Level() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

// Sample shapes the current level into a falling spectrum: low bins carry
// the full level, the top bin half of it.
func (b *Breath) Sample() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	frame := make([]byte, b.Bins)
	for i := range frame {
		v := b.level * (1 - float64(i)/float64(2*b.Bins))
		frame[i] = byte(min(max(v, 0), 255))
	}
	return frame, nil
}

// Denied is a Source with no input available.
type Denied struct{}

func (Denied) Sample() ([]byte, error) { return nil, ErrDenied }
