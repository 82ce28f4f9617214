package orbits

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params describes one render: the frame, the fractal, sampling, coloring
// and, optionally, an animation of some of the values over time.
type Params struct {
	ImgWidth       int            `json:"imgWidth" yaml:"imgWidth"`
	ImgHeight      int            `json:"imgHeight" yaml:"imgHeight"`
	Zoom           Real           `json:"zoom" yaml:"zoom"`
	CenterX        Real           `json:"centerX" yaml:"centerX"`
	CenterY        Real           `json:"centerY" yaml:"centerY"`
	RotationDeg    Real           `json:"rotationDeg,omitempty" yaml:"rotationDeg,omitempty"`
	MaxIter        int            `json:"maxIter" yaml:"maxIter"`
	Fractal        Fractal        `json:"fractal" yaml:"fractal"`
	Coloring       ColoringMode   `json:"coloring" yaml:"coloring"`
	Sampling       Sampling       `json:"sampling" yaml:"sampling"`
	CustomGradient []GradientStop `json:"customGradient,omitempty" yaml:"customGradient,omitempty"`
	Animation      *Animation     `json:"animation,omitempty" yaml:"animation,omitempty"`
	Out            string         `json:"out,omitempty" yaml:"out,omitempty"`
	GIFDelay       int            `json:"gifDelay,omitempty" yaml:"gifDelay,omitempty"`
}

// LoadParams reads a YAML or JSON parameter file.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := ParseParams(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded params from %s: size=(%d, %d), zoom=%g, center=(%g, %g), maxIter=%d, fractal=%v",
		path, p.ImgWidth, p.ImgHeight, p.Zoom, p.CenterX, p.CenterY, p.MaxIter, p.Fractal.Kind)
	return p, nil
}

// ParseParams decodes parameters over the defaults and validates them. Only
// keys missing from data keep their default; an explicit 0 stays 0.
func ParseParams(data []byte) (*Params, error) {
	p := defaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func defaultParams() Params {
	return Params{
		ImgWidth:  ImgWidth,
		ImgHeight: ImgHeight,
		Zoom:      Zoom,
		MaxIter:   MaxIter,
		Out:       Out,
		GIFDelay:  GIFDelay,
	}
}

// applyDefaults fills values that have no meaningful empty form.
func (p *Params) applyDefaults() {
	if p.Out == "" {
		p.Out = Out
	}
}

func (p *Params) Validate() error {
	if p.ImgWidth < 0 || p.ImgHeight < 0 {
		return &ParamError{Field: "imgWidth/imgHeight", Err: fmt.Errorf("negative size %dx%d", p.ImgWidth, p.ImgHeight)}
	}
	if !isFinite(p.CenterX) || !isFinite(p.CenterY) || !isFinite(p.RotationDeg) {
		return &ParamError{Field: "center/rotationDeg", Err: fmt.Errorf("non finite value")}
	}
	if !validZoom(p.Zoom) {
		return &ParamError{Field: "zoom", Err: fmt.Errorf("%w, got %g", ErrInvalidView, p.Zoom)}
	}
	if p.GIFDelay < 0 {
		return &ParamError{Field: "gifDelay", Err: fmt.Errorf("negative value %d", p.GIFDelay)}
	}
	if p.MaxIter < 0 {
		return &ParamError{Field: "maxIter", Err: fmt.Errorf("negative value %d", p.MaxIter)}
	}
	if err := p.Fractal.Validate(); err != nil {
		return &ParamError{Field: "fractal", Err: err}
	}
	if err := p.Coloring.Validate(); err != nil {
		return &ParamError{Field: "coloring", Err: err}
	}
	if p.Sampling.Level.Count() == 0 {
		return &ParamError{Field: "sampling.level", Err: ErrUnknownSampling}
	}
	if len(p.CustomGradient) > 0 {
		if _, err := ParseGradient(p.CustomGradient); err != nil {
			return &ParamError{Field: "customGradient", Err: err}
		}
	}
	if p.Animation != nil {
		if err := p.Animation.validate(p); err != nil {
			return &ParamError{Field: "animation", Err: err}
		}
	}
	return nil
}

// View returns the frame geometry of p.
func (p *Params) View() View {
	return NewView(p.ImgWidth, p.ImgHeight, p.Zoom, Point2{p.CenterX, p.CenterY}, p.RotationDeg)
}

// Marshal encodes p as YAML.
func (p *Params) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
