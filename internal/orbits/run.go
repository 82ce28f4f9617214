package orbits

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Run renders the parameter file at paramsPath. An empty outPath uses the
// output named in the file.
func Run(paramsPath, outPath string) error {
	p, err := LoadParams(paramsPath)
	if err != nil {
		return err
	}
	return RunParams(p, outPath)
}

func RunParams(p *Params, outPath string) error {
	if outPath == "" {
		outPath = p.Out
	}
	points, err := GenerateSamplingPoints(p.Sampling.Level)
	if err != nil {
		return err
	}
	logExpectedHits(p, len(points))

	if p.Animation == nil {
		start := time.Now()
		grid, img, err := RenderFrame(p, points, nil)
		if err != nil {
			return err
		}
		Logger().WithFields(logrus.Fields{
			"size": fmt.Sprintf("%dx%d", p.ImgWidth, p.ImgHeight),
			"mass": grid.Sum(),
			"time": time.Since(start),
		}).Info("rendered frame")
		if err := SaveImage(img, outPath); err != nil {
			return err
		}
		Logger().Infof("Saved image: %s", outPath)
		if RAW {
			raw := stripExt(outPath) + ".raw"
			if err := grid.SaveRaw(raw); err != nil {
				return err
			}
			Logger().Infof("Saved raw grid: %s", raw)
		}
		return nil
	}

	frames, err := RenderAnimation(p, points)
	if err != nil {
		return err
	}
	if PNG {
		names, err := SavePNGSequence(frames, stripExt(outPath))
		if err != nil {
			return err
		}
		Logger().Infof("Saved PNG sequence: %d files with prefix %s", len(names), stripExt(outPath))
		return nil
	}
	gifPath := stripExt(outPath) + ".gif"
	if err := SaveAnimatedGIF(frames, gifPath, p.GIFDelay); err != nil {
		return err
	}
	Logger().Infof("Saved animated GIF: %s", gifPath)
	return nil
}

// RenderFrame renders and colors one frame of p, which must have no animation.
func RenderFrame(p *Params, points []SamplePoint, progress *Progress) (*DensityGrid, *image.RGBA, error) {
	grid, err := RenderRawImage(p, p.View(), points, progress)
	if err != nil {
		return nil, nil, err
	}
	img, err := ColorRawImage(p, grid)
	if err != nil {
		return nil, nil, err
	}
	return grid, img, nil
}

// RenderAnimation renders every frame of the animation of p in order.
func RenderAnimation(p *Params, points []SamplePoint) ([]*image.RGBA, error) {
	n := p.Animation.FrameCount()
	groups := (len(points) + Lanes - 1) / Lanes
	progress := NewProgress(int64(n) * int64(p.ImgWidth*p.ImgHeight) * int64(groups*Lanes))
	frames := make([]*image.RGBA, 0, n)
	start := time.Now()
	for i := 0; i < n; i++ {
		t := p.Animation.FrameTime(i)
		fp, err := p.FrameAt(t)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		_, img, err := RenderFrame(fp, points, progress)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, img)
		DebugLog("Frame %d/%d at t=%.3fs: zoom=%g center=(%g, %g)", i+1, n, t, fp.Zoom, fp.CenterX, fp.CenterY)
	}
	Logger().WithFields(logrus.Fields{
		"frames": n,
		"time":   time.Since(start),
	}).Info("rendered animation")
	return frames, nil
}

func logExpectedHits(p *Params, nPoints int) {
	if p.ImgWidth <= 0 || p.ImgHeight <= 0 {
		return
	}
	fp, err := p.FrameAt(0)
	if err != nil {
		return
	}
	mean := estimateOrbitLength(fp.Fractal, fp.View(), uint32(p.MaxIter), ProbeOrbits)
	hits := mean * Real(p.ImgWidth*p.ImgHeight*nPoints)
	Logger().Infof("Mean orbit length: %.2f, expected points per frame: %.3g", mean, hits)
}

func stripExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
