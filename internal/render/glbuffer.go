package render

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"globeview/internal/pick"
	"globeview/internal/profiling"
)

// FrameBuffer reads pick colors from the bound GL framebuffer after the
// color-coded pass has been drawn with blending, dithering, and texturing
// disabled. Screen coordinates use a top-left origin and are flipped to GL's
// bottom-left rows on read.
//
// All methods must run on the rendering thread with a current GL context.
type FrameBuffer struct {
	width  int
	height int
}

// NewFrameBuffer returns a reader for a framebuffer of the given pixel size.
// Call Resize when the drawable area changes.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{width: width, height: height}
}

// Resize updates the drawable size used for bounds checks and row flipping.
func (b *FrameBuffer) Resize(width, height int) {
	b.width = width
	b.height = height
}

func (b *FrameBuffer) ColorAt(p image.Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= b.width || p.Y >= b.height {
		return 0
	}

	var px [3]uint8
	gl.ReadPixels(int32(p.X), int32(b.height-1-p.Y), 1, 1, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	return PackRGB(px[0], px[1], px[2])
}

func (b *FrameBuffer) DistinctColorsIn(r image.Rectangle, hint *pick.CodeSpan) []int {
	defer profiling.Track("render.DistinctColorsIn")()

	r = r.Intersect(image.Rect(0, 0, b.width, b.height))
	if r.Empty() {
		return nil
	}

	w, h := r.Dx(), r.Dy()
	px := make([]uint8, w*h*3)
	gl.ReadPixels(int32(r.Min.X), int32(b.height-r.Max.Y), int32(w), int32(h), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))

	seen := make(map[int]struct{})
	for i := 0; i+2 < len(px); i += 3 {
		code := PackRGB(px[i], px[i+1], px[i+2])
		if code == 0 {
			continue
		}
		if hint != nil && (code < hint.Min || code > hint.Max) {
			continue
		}
		seen[code] = struct{}{}
	}

	return sortedCodes(seen)
}
