package orbits

import (
	"fmt"
	"math"
)

type StepKind int

const (
	Const StepKind = iota
	LinearStep
	Smooth
)

var stepKindNames = []string{"const", "linear", "smooth"}

func (k StepKind) String() string { return enumName(stepKindNames, k) }

func (k StepKind) MarshalText() ([]byte, error) {
	if int(k) < 0 || int(k) >= len(stepKindNames) {
		return nil, ErrUnknownStep
	}
	return []byte(k.String()), nil
}

func (k *StepKind) UnmarshalText(b []byte) error {
	v, err := parseEnum[StepKind](stepKindNames, string(b), ErrUnknownStep)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// RenderStep moves a value from From to To over [Start, End] seconds. A
// const step holds From.
type RenderStep struct {
	Kind  StepKind `json:"kind" yaml:"kind"`
	From  Real     `json:"from" yaml:"from"`
	To    Real     `json:"to,omitempty" yaml:"to,omitempty"`
	Start Real     `json:"start" yaml:"start"`
	End   Real     `json:"end" yaml:"end"`
}

func (s RenderStep) Covers(t Real) bool { return s.Start <= t && t <= s.End }

func (s RenderStep) Value(t Real) Real {
	if s.Kind == Const || s.End <= s.Start {
		return s.From
	}
	w := (t - s.Start) / (s.End - s.Start)
	if s.Kind == Smooth {
		w = w * w * (3 - 2*w)
	}
	return s.From*(1-w) + s.To*w
}

// Track is a list of steps; the first step covering t gives the value.
type Track []RenderStep

func (tr Track) At(t Real) (Real, error) {
	for _, s := range tr {
		if s.Covers(t) {
			return s.Value(t), nil
		}
	}
	return 0, fmt.Errorf("%w: t=%g", ErrNoStep, t)
}

// Animation overrides the frame values of Params with tracks. Empty tracks
// keep the static value.
type Animation struct {
	Duration    Real  `json:"duration" yaml:"duration"`
	FPS         Real  `json:"fps" yaml:"fps"`
	Zoom        Track `json:"zoom,omitempty" yaml:"zoom,omitempty"`
	CenterX     Track `json:"centerX,omitempty" yaml:"centerX,omitempty"`
	CenterY     Track `json:"centerY,omitempty" yaml:"centerY,omitempty"`
	RotationDeg Track `json:"rotationDeg,omitempty" yaml:"rotationDeg,omitempty"`
	Exp         Track `json:"exp,omitempty" yaml:"exp,omitempty"`
	ARe         Track `json:"aRe,omitempty" yaml:"aRe,omitempty"`
	AIm         Track `json:"aIm,omitempty" yaml:"aIm,omitempty"`
}

func (a *Animation) FrameCount() int {
	if a == nil || a.FPS <= 0 || a.Duration <= 0 {
		return 0
	}
	return int(math.Ceil(a.Duration * a.FPS))
}

// FrameTime returns the time of frame i in seconds.
func (a *Animation) FrameTime(i int) Real { return Real(i) / a.FPS }

type animTrack struct {
	name string
	tr   Track
	dst  *Real
}

// bind pairs every track with the field of f it drives.
func (a *Animation) bind(f *Params) []animTrack {
	return []animTrack{
		{"zoom", a.Zoom, &f.Zoom},
		{"centerX", a.CenterX, &f.CenterX},
		{"centerY", a.CenterY, &f.CenterY},
		{"rotationDeg", a.RotationDeg, &f.RotationDeg},
		{"exp", a.Exp, &f.Fractal.Exp},
		{"aRe", a.ARe, &f.Fractal.ARe},
		{"aIm", a.AIm, &f.Fractal.AIm},
	}
}

func (a *Animation) validate(p *Params) error {
	if !(a.Duration > 0) || !(a.FPS > 0) {
		return fmt.Errorf("duration and fps must be positive, got %g and %g", a.Duration, a.FPS)
	}
	for _, t := range a.bind(&Params{}) {
		for i, s := range t.tr {
			if int(s.Kind) < 0 || int(s.Kind) >= len(stepKindNames) {
				return fmt.Errorf("%s step %d: %w", t.name, i, ErrUnknownStep)
			}
			if s.End < s.Start {
				return fmt.Errorf("%s step %d: end %g before start %g", t.name, i, s.End, s.Start)
			}
		}
	}
	for i := 0; i < a.FrameCount(); i++ {
		f, err := p.FrameAt(a.FrameTime(i))
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if !validZoom(f.Zoom) {
			return fmt.Errorf("frame %d at t=%g: %w, got %g", i, a.FrameTime(i), ErrInvalidView, f.Zoom)
		}
	}
	return nil
}

// FrameAt resolves the animated values of p at time t. The returned params
// have no animation.
func (p *Params) FrameAt(t Real) (*Params, error) {
	f := *p
	f.Animation = nil
	a := p.Animation
	if a == nil {
		return &f, nil
	}
	for _, b := range a.bind(&f) {
		if len(b.tr) == 0 {
			continue
		}
		v, err := b.tr.At(t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.name, err)
		}
		*b.dst = v
	}
	return &f, nil
}
