package orbits

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
)

// SavePNGSequence writes frames as prefix_<k>.png, zero padded to the
// width of the last index, and returns the file names.
func SavePNGSequence(frames []*image.RGBA, prefix string) ([]string, error) {
	n := len(frames)
	width := 1
	if n > 1 {
		width = int(math.Log10(Real(n-1))) + 1
	}
	if err := os.MkdirAll(filepath.Dir(prefix), 0o755); err != nil {
		return nil, err
	}

	step := 1
	if n >= 100 {
		step = n / 100
	}
	names := make([]string, 0, n)
	for k, img := range frames {
		if k%step == 0 {
			Logger().Infof("[PNG]  %.2f%%", Real(k+1)*100/Real(n))
		}
		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		if err := SaveImage(img, full); err != nil {
			return names, err
		}
		names = append(names, full)
	}
	return names, nil
}
