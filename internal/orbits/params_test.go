package orbits

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseParamsDefaults(t *testing.T) {
	p, err := ParseParams([]byte("fractal: {kind: thirdDegreePairs}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.ImgWidth != ImgWidth || p.ImgHeight != ImgHeight || p.Zoom != Zoom || p.MaxIter != MaxIter {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.Out != Out || p.GIFDelay != GIFDelay {
		t.Fatalf("output defaults not applied: %q %d", p.Out, p.GIFDelay)
	}
	if p.Fractal.Kind != ThirdDegreePairs || p.Sampling.Level != Single || p.Coloring.Kind != CumulativeHistogram {
		t.Fatalf("decoded %+v", p)
	}
}

func TestParseParamsExplicitZeros(t *testing.T) {
	p, err := ParseParams([]byte("imgWidth: 0\nimgHeight: 0\nmaxIter: 0\ngifDelay: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.ImgWidth != 0 || p.ImgHeight != 0 || p.MaxIter != 0 || p.GIFDelay != 0 {
		t.Fatalf("explicit zeros replaced by defaults: %+v", p)
	}
	if p.Zoom != Zoom || p.Out != Out {
		t.Fatalf("missing keys lost their defaults: %+v", p)
	}
	if !p.View().Valid() {
		t.Fatal("zero sized view with default zoom should be valid")
	}
	for _, src := range []string{"zoom: 0\n", "zoom: -3\n", "zoom: .nan\n"} {
		_, err := ParseParams([]byte(src))
		var pe *ParamError
		if !errors.As(err, &pe) || pe.Field != "zoom" || !errors.Is(err, ErrInvalidView) {
			t.Fatalf("%q: expected zoom ParamError, got %v", src, err)
		}
	}
	if _, err := ParseParams([]byte("maxIter: -1\n")); err == nil {
		t.Fatal("expected error for negative maxIter")
	}
	if _, err := ParseParams([]byte("gifDelay: -1\n")); err == nil {
		t.Fatal("expected error for negative gifDelay")
	}
}

func TestParseParamsJSON(t *testing.T) {
	src := `{
  "imgWidth": 100,
  "imgHeight": 50,
  "zoom": 2.5,
  "centerX": -0.5,
  "centerY": 0.1,
  "maxIter": 300,
  "fractal": {"kind": "nthDegreeWithGrowingExponent", "n": 4},
  "coloring": {"kind": "minMaxNorm", "map": {"kind": "powf", "exp": 0.5}, "max": 10},
  "sampling": {"level": "ultra", "randomOffsets": true, "seed": 5},
  "customGradient": [{"pos": 0, "color": "#000000"}, {"pos": 1, "color": "#ffffff"}]
}`
	p, err := ParseParams([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if p.ImgWidth != 100 || p.ImgHeight != 50 || p.Zoom != 2.5 || p.CenterX != -0.5 || p.MaxIter != 300 {
		t.Fatalf("frame fields: %+v", p)
	}
	if p.Fractal.N != 4 || p.Sampling.Level != Ultra || !p.Sampling.RandomOffsets || p.Sampling.Seed != 5 {
		t.Fatalf("fractal/sampling: %+v %+v", p.Fractal, p.Sampling)
	}
	if p.Coloring.Map.Kind != Powf || p.Coloring.Max == nil || *p.Coloring.Max != 10 || p.Coloring.Min != nil {
		t.Fatalf("coloring: %+v", p.Coloring)
	}
	if len(p.CustomGradient) != 2 {
		t.Fatalf("gradient: %+v", p.CustomGradient)
	}
}

func TestParseParamsErrors(t *testing.T) {
	cases := []struct {
		src   string
		field string
		err   error
	}{
		{"fractal: {kind: nthDegreeWithGrowingExponent}\n", "fractal", ErrInvalidDegree},
		{"customGradient: [{pos: 0, color: nope}]\n", "customGradient", ErrInvalidGradient},
		{"animation: {duration: 1, fps: 2, zoom: [{kind: const, from: 1, start: 0, end: 0.1}]}\n", "animation", ErrNoStep},
	}
	for _, tc := range cases {
		_, err := ParseParams([]byte(tc.src))
		var pe *ParamError
		if !errors.As(err, &pe) || pe.Field != tc.field {
			t.Fatalf("%q: expected ParamError on %s, got %v", tc.src, tc.field, err)
		}
		if !errors.Is(err, tc.err) {
			t.Fatalf("%q: expected %v, got %v", tc.src, tc.err, err)
		}
	}
	if _, err := ParseParams([]byte("fractal: {kind: julia}\n")); !errors.Is(err, ErrUnknownFractal) {
		t.Fatalf("expected ErrUnknownFractal, got %v", err)
	}
	if _, err := ParseParams([]byte("sampling: {level: insane}\n")); !errors.Is(err, ErrUnknownSampling) {
		t.Fatalf("expected ErrUnknownSampling, got %v", err)
	}
}

func TestLoadParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	if err := os.WriteFile(path, []byte("imgWidth: 10\nimgHeight: 20\nrotationDeg: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadParams(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.ImgWidth != 10 || p.ImgHeight != 20 || p.RotationDeg != 45 {
		t.Fatalf("loaded %+v", p)
	}
	v := p.View()
	if v.W != 10 || v.H != 20 || v.RotationDeg != 45 {
		t.Fatalf("view %+v", v)
	}
	if _, err := LoadParams(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParamsMarshalRoundTrip(t *testing.T) {
	p, err := LoadPreset("param_zoom")
	if err != nil {
		t.Fatal(err)
	}
	data, err := p.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseParams(data)
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, data)
	}
	if back.Fractal != p.Fractal || back.Animation.FrameCount() != p.Animation.FrameCount() || len(back.Animation.ARe) != 2 {
		t.Fatalf("round trip changed params:\n%s", data)
	}
}
