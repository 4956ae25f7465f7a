package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a point of interest on the globe: heading and tilt in
// degrees, range in scene units from the center.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Center  mgl32.Vec3
	Heading float32
	Tilt    float32
	Range   float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         45.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Tilt:        30.0,
		Range:       10.0,
	}
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// GetViewMatrix places the eye on the orbit defined by heading, tilt and
// range, looking at the center.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	heading := mgl32.DegToRad(c.Heading)
	tilt := mgl32.DegToRad(c.Tilt)

	rot := mgl32.Rotate3DY(heading).Mul3(mgl32.Rotate3DX(-tilt))
	eye := c.Center.Add(rot.Mul3x1(mgl32.Vec3{0, 0, c.Range}))

	return mgl32.LookAtV(eye, c.Center, mgl32.Vec3{0, 1, 0})
}
