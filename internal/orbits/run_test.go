package orbits

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func setOutputGlobals(t *testing.T, png, raw bool) {
	t.Helper()
	oldP, oldR := PNG, RAW
	PNG, RAW = png, raw
	t.Cleanup(func() { PNG, RAW = oldP, oldR })
}

func TestRunSingleFrame(t *testing.T) {
	setOutputGlobals(t, false, true)
	dir := t.TempDir()
	params := filepath.Join(dir, "p.yaml")
	src := "imgWidth: 16\nimgHeight: 12\nmaxIter: 20\nfractal: {kind: mandelbrot}\nsampling: {level: low}\n"
	if err := os.WriteFile(params, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out", "frame.png")
	if err := Run(params, out); err != nil {
		t.Fatal(err)
	}
	img, format := decodeFile(t, out)
	if format != "png" || img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Fatalf("output %s %v", format, img.Bounds())
	}
	g, err := LoadRawGrid(filepath.Join(dir, "out", "frame.raw"))
	if err != nil {
		t.Fatal(err)
	}
	if g.W != 16 || g.H != 12 || g.Sum() <= 0 {
		t.Fatalf("raw grid %dx%d mass %v", g.W, g.H, g.Sum())
	}
}

func animatedParams() *Params {
	p := smallParams()
	p.ImgWidth, p.ImgHeight = 12, 12
	p.MaxIter = 15
	p.GIFDelay = 4
	p.Animation = &Animation{
		Duration: 1,
		FPS:      3,
		Zoom:     Track{{Kind: Smooth, From: 4, To: 3, Start: 0, End: 1}},
	}
	return p
}

func TestRunParamsAnimationGIF(t *testing.T) {
	setOutputGlobals(t, false, false)
	out := filepath.Join(t.TempDir(), "anim.png")
	if err := RunParams(animatedParams(), out); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(filepath.Join(filepath.Dir(out), "anim.gif"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 3 || g.Delay[0] != 4 {
		t.Fatalf("%d frames, delays %v", len(g.Image), g.Delay)
	}
}

func TestRunParamsAnimationPNG(t *testing.T) {
	setOutputGlobals(t, true, false)
	out := filepath.Join(t.TempDir(), "seq.gif")
	if err := RunParams(animatedParams(), out); err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"seq_0.png", "seq_1.png", "seq_2.png"} {
		if _, err := os.Stat(filepath.Join(filepath.Dir(out), n)); err != nil {
			t.Fatalf("missing %s: %v", n, err)
		}
	}
}

func TestRunMissingParams(t *testing.T) {
	if err := Run(filepath.Join(t.TempDir(), "none.yaml"), ""); err == nil {
		t.Fatal("expected error for missing params file")
	}
}
