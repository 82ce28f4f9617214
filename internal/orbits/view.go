package orbits

// View maps between pixel coordinates of a W×H image and the complex plane.
// Zoom is the visible plane width; rotation turns the frame about the center.
type View struct {
	W, H        int
	Zoom        Real
	Center      Point2
	RotationDeg Real

	toPlane Mat3
	toPixel Mat3
	valid   bool
}

// NewView builds the pixel/plane transforms. A non positive or non finite
// zoom, a non finite center or rotation, or a singular transform leaves the
// view invalid; see Valid.
func NewView(w, h int, zoom Real, center Point2, rotationDeg Real) View {
	v := View{W: w, H: h, Zoom: zoom, Center: center, RotationDeg: rotationDeg, toPlane: I3(), toPixel: I3()}
	if !validZoom(zoom) || !isFinite(center.X) || !isFinite(center.Y) || !isFinite(rotationDeg) {
		return v
	}
	if w <= 0 || h <= 0 {
		// nothing to map
		v.valid = true
		return v
	}
	width := zoom
	height := zoom * Real(h) / Real(w)
	xMin, yMin := center.X-width/2, center.Y-height/2
	M := scale(width/Real(w), height/Real(h))
	M = translate(xMin, yMin).Mul(M)
	M = rotAbout(degToRad(rotationDeg), center).Mul(M)
	v.toPlane = M
	if inv, ok := M.Inverse(); ok {
		v.toPixel = inv
		v.valid = true
	}
	return v
}

// Valid reports whether both transforms are usable.
func (v View) Valid() bool { return v.valid }

func validZoom(z Real) bool { return z > 0 && isFinite(z) }

// PixelToPlane maps continuous pixel coordinates (pixel centers at i+0.5) to
// the plane.
func (v View) PixelToPlane(p Point2) Point2 { return v.toPlane.Apply(p) }

func (v View) PlaneToPixel(p Point2) Point2 { return v.toPixel.Apply(p) }

// Cell returns the pixel containing p and whether it lies inside the image.
func (v View) Cell(p Point2) (i, j int, ok bool) {
	if !(p.X >= 0 && p.Y >= 0 && p.X < Real(v.W) && p.Y < Real(v.H)) {
		return 0, 0, false
	}
	return int(p.X), int(p.Y), true
}
