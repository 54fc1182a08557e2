package export

import "math"

// PixelToMM converts CSS pixels (96 per inch) to millimetres.
const PixelToMM = 0.264583

// A4 page size in millimetres, portrait.
const (
	A4Width  = 210.0
	A4Height = 297.0
)

// Placement is where an image goes on the page, in millimetres.
type Placement struct {
	X, Y, Width, Height float64
}

// FitToPage scales an image of imgW x imgH pixels to the largest size that fits a
// pageW x pageH millimetre page while keeping its aspect ratio, and centers it.
func FitToPage(imgW, imgH int, pageW, pageH float64) Placement {
	if imgW <= 0 || imgH <= 0 {
		return Placement{}
	}
	w := float64(imgW) * PixelToMM
	h := float64(imgH) * PixelToMM
	scale := math.Min(pageW/w, pageH/h)

	scaledW := w * scale
	scaledH := h * scale
	return Placement{
		X:      (pageW - scaledW) / 2,
		Y:      (pageH - scaledH) / 2,
		Width:  scaledW,
		Height: scaledH,
	}
}
