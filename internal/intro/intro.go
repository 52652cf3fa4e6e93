package intro

import "errors"

// Stage is the intro's progress.
type Stage int

const (
	Lit Stage = iota
	Extinguished
	CardOpen
	Ready
)

// Intro sequences candles, card and the continue prompt.
type Intro struct {
	gate   Gate
	source Source
	stage  Stage
	denied bool
}

func New(src Source, threshold float64) *Intro {
	return &Intro{source: src, gate: Gate{Threshold: threshold}}
}

func (in *Intro) Stage() Stage { return in.stage }

func (in *Intro) Denied() bool { return in.denied }

// Poll samples the source once and reports whether the candles just went out.
func (in *Intro) Poll() (bool, error) {
	if in.stage != Lit || in.denied {
		return false, nil
	}
	frame, err := in.source.Sample()
	if errors.Is(err, ErrDenied) {
		in.denied = true
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if in.gate.Feed(frame) {
		in.stage = Extinguished
		return true, nil
	}
	return false, nil
}

// BlowOut extinguishes the candles without a sample.
func (in *Intro) BlowOut() bool {
	if in.stage != Lit {
		return false
	}
	in.stage = Extinguished
	return true
}

// OpenCard moves past the candles. From Lit it only works once input was denied.
func (in *Intro) OpenCard() bool {
	switch {
	case in.stage == Extinguished, in.stage == Lit && in.denied:
		in.stage = CardOpen
		return true
	}
	return false
}

// Offer shows the continue prompt once the card is open.
func (in *Intro) Offer() bool {
	if in.stage != CardOpen {
		return false
	}
	in.stage = Ready
	return true
}

// Instruction is the line shown under the candles.
func (in *Intro) Instruction() string {
	switch {
	case in.stage == Lit && in.denied:
		return "Please allow mic access to blow out the candles 🎤 (press Enter to open the card)"
	case in.stage == Lit:
		return "Make a wish and blow out the candles! (tap space to blow)"
	case in.stage == Extinguished:
		return "🎉 The candles are out! Opening your card..."
	case in.stage == CardOpen:
		return "Happy Birthday!"
	default:
		return "Continue to Puzzles 🎯"
	}
}
