package orbits

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRaw writes W and H as little-endian int32 followed by W*H float64 densities.
func (g *DensityGrid) SaveRaw(path string) error {
	if g.W < 0 || g.H < 0 {
		return fmt.Errorf("negative dimensions: W=%d H=%d", g.W, g.H)
	}
	exp64 := int64(g.W) * int64(g.H)
	if int64(len(g.Buf)) != exp64 {
		return fmt.Errorf("Buf length mismatch: got %d, expected %d (W*H)", len(g.Buf), exp64)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, [2]int32{int32(g.W), int32(g.H)}); err != nil {
		return err
	}
	if exp64 > 0 {
		if err := binary.Write(w, binary.LittleEndian, g.Buf); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	DebugLog("saved raw grid %dx%d to %s", g.W, g.H, path)
	return nil
}

// LoadRawGrid reads a grid written by SaveRaw.
func LoadRawGrid(path string) (*DensityGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var hdr [2]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("read raw header: %w", err)
	}
	if hdr[0] < 0 || hdr[1] < 0 {
		return nil, fmt.Errorf("negative dimensions: W=%d H=%d", hdr[0], hdr[1])
	}
	g := NewDensityGrid(int(hdr[0]), int(hdr[1]))
	if len(g.Buf) > 0 {
		if err := binary.Read(r, binary.LittleEndian, g.Buf); err != nil {
			return nil, fmt.Errorf("read raw body: %w", err)
		}
	}
	return g, nil
}
