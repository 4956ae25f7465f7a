// Package render implements the draw-context side of pick resolution: pixel
// color readback from the frame's color-coded offscreen pass, unique pick
// color allocation, and the per-frame result lists the registry appends to.
package render

import (
	"image"
	"sort"

	"globeview/internal/pick"
	"globeview/internal/profiling"
)

// Pick color codes pack an RGB triple into bits 0-23: bits 16-23 red, 8-15
// green, 0-7 blue. Code 0 is the clear color and always means "nothing drawn".
const maxPickCode = 1<<24 - 1

// PackRGB converts framebuffer color components to a pick color code.
func PackRGB(r, g, b uint8) int {
	return int(r)<<16 | int(g)<<8 | int(b)
}

// UnpackRGB splits a pick color code into its color components.
func UnpackRGB(code int) (r, g, b uint8) {
	return uint8(code >> 16), uint8(code >> 8), uint8(code)
}

// PickBuffer reads pick colors back from a completed offscreen pass.
type PickBuffer interface {
	// ColorAt returns the pick color code at p, 0 for background or
	// out-of-bounds.
	ColorAt(p image.Point) int

	// DistinctColorsIn returns the distinct non-zero codes drawn inside r.
	// hint bounds every registered code; colors outside it cannot resolve and
	// may be skipped while scanning.
	DistinctColorsIn(r image.Rectangle, hint *pick.CodeSpan) []int
}

// ImageBuffer is a software pick buffer over an RGBA image. Used by headless
// rendering paths and tests; the GL path reads the real framebuffer instead.
type ImageBuffer struct {
	img *image.RGBA
}

// NewImageBuffer returns a cleared (all-background) software pick buffer.
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Bounds returns the buffer's pixel bounds.
func (b *ImageBuffer) Bounds() image.Rectangle { return b.img.Bounds() }

// SetCode writes a pick color code at p. Writes outside the buffer are dropped.
func (b *ImageBuffer) SetCode(p image.Point, code int) {
	if !p.In(b.img.Bounds()) {
		return
	}
	r, g, bl := UnpackRGB(code)
	i := b.img.PixOffset(p.X, p.Y)
	b.img.Pix[i+0] = r
	b.img.Pix[i+1] = g
	b.img.Pix[i+2] = bl
	b.img.Pix[i+3] = 0xff
}

// FillCode writes a pick color code over a rectangle.
func (b *ImageBuffer) FillCode(rect image.Rectangle, code int) {
	rect = rect.Intersect(b.img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			b.SetCode(image.Pt(x, y), code)
		}
	}
}

func (b *ImageBuffer) ColorAt(p image.Point) int {
	if !p.In(b.img.Bounds()) {
		return 0
	}
	i := b.img.PixOffset(p.X, p.Y)
	return PackRGB(b.img.Pix[i+0], b.img.Pix[i+1], b.img.Pix[i+2])
}

func (b *ImageBuffer) DistinctColorsIn(r image.Rectangle, hint *pick.CodeSpan) []int {
	defer profiling.Track("render.DistinctColorsIn")()

	r = r.Intersect(b.img.Bounds())
	if r.Empty() {
		return nil
	}

	seen := make(map[int]struct{})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := b.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			code := PackRGB(b.img.Pix[i+0], b.img.Pix[i+1], b.img.Pix[i+2])
			i += 4
			if code == 0 {
				continue
			}
			// Codes outside the registered span cannot resolve; skipping them
			// here keeps the distinct set small.
			if hint != nil && (code < hint.Min || code > hint.Max) {
				continue
			}
			seen[code] = struct{}{}
		}
	}

	return sortedCodes(seen)
}

func sortedCodes(set map[int]struct{}) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Ints(out)
	return out
}
