package orbits

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"path/filepath"
)

// SaveAnimatedGIF writes one GIF frame per image.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(frames []*image.RGBA, path string, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to write to %s", path)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	n := len(frames)
	for k, img := range frames {
		if k%max(1, n/100) == 0 {
			Logger().Infof("[GIF] %.2f%%", Real(k+1)*100/Real(n))
		}
		out.Image = append(out.Image, quantize(img))
		out.Delay = append(out.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
