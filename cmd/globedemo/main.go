// globedemo is the interactive picking demo: a terrain grid and a few
// placemarks rendered with OpenGL. Clicking runs a color-coded pick pass,
// resolves the point and a small tolerance rectangle around it, and shows the
// result on the HUD.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
	"golang.org/x/image/font/gofont/goregular"

	"globeview/internal/config"
	"globeview/internal/geom"
	"globeview/internal/graphics"
	"globeview/internal/layers"
	"globeview/internal/pick"
	"globeview/internal/profiling"
	"globeview/internal/render"
	"globeview/internal/terrain"
)

func init() {
	runtime.LockOSThread()
}

const (
	winW = 900
	winH = 600
)

const sceneVertSrc = `#version 410 core
layout (location = 0) in vec3 pos;
uniform mat4 mvp;
void main() {
    gl_Position = mvp * vec4(pos, 1.0);
}
`

const sceneFragSrc = `#version 410 core
out vec4 fragColor;
uniform vec3 color;
void main() {
    fragColor = vec4(color, 1.0);
}
`

// Placemark is an overlay object above the terrain.
type Placemark struct {
	Name string
	Pos  geom.Position
}

type demo struct {
	window *glfw.Window
	shader *graphics.Shader
	camera *graphics.Camera
	font   *graphics.FontRenderer

	model  *terrain.Model
	marks  []*Placemark
	sector terrain.Sector

	registry *pick.Registry
	dc       *render.Context
	fb       *render.FrameBuffer
	overlay  *layers.Layer

	quadVAO uint32
	quadVBO uint32

	status string
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}
	if err := gl.Init(); err != nil {
		panic(err)
	}

	d, err := newDemo(window)
	if err != nil {
		panic(err)
	}

	var clicked *image.Point
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Press {
			x, y := w.GetCursorPos()
			p := image.Pt(int(x), int(y))
			clicked = &p
		}
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		d.fb.Resize(width, height)
		d.camera.SetViewport(width, height)
		d.font.SetViewport(width, height)
	})

	for !window.ShouldClose() {
		profiling.ResetFrame()

		if clicked != nil {
			d.pick(*clicked)
			clicked = nil
		}

		d.drawFrame()
		window.SwapBuffers()
		glfw.PollEvents()
	}

	closer.Close()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winW, winH, "globedemo", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

func newDemo(window *glfw.Window) (*demo, error) {
	sector := terrain.Sector{MinLat: 44, MaxLat: 46, MinLon: 6, MaxLon: 8}
	model, err := terrain.NewModel(sector, 8, 10)
	if err != nil {
		return nil, err
	}
	for row := 0; row < model.Rows(); row++ {
		for col := 0; col < model.Cols(); col++ {
			model.SetElevation(row, col, float64(150*((row+col)%4)))
		}
	}

	shader, err := graphics.NewShader(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, err
	}

	atlas, err := graphics.BuildFontAtlas(goregular.TTF, 24)
	if err != nil {
		return nil, err
	}
	font, err := graphics.NewFontRenderer(atlas, winW, winH)
	if err != nil {
		return nil, err
	}

	camera := graphics.NewCamera(winW, winH)
	camera.Range = 6
	camera.Tilt = 55

	fb := render.NewFrameBuffer(winW, winH)

	d := &demo{
		window: window,
		shader: shader,
		camera: camera,
		font:   font,
		model:  model,
		sector: sector,
		marks: []*Placemark{
			{Name: "Mont Blanc", Pos: geom.NewPosition(45.83, 6.86, 4808)},
			{Name: "Matterhorn", Pos: geom.NewPosition(45.98, 7.66, 4478)},
			{Name: "Gran Paradiso", Pos: geom.NewPosition(45.52, 7.27, 4061)},
		},
		registry: pick.NewRegistry(),
		fb:       fb,
		dc:       render.NewContext(fb),
		overlay:  layers.New("placemarks"),
		status:   "click to pick",
	}
	d.initQuad()
	return d, nil
}

// initQuad uploads a unit quad reused for terrain cells and markers.
func (d *demo) initQuad() {
	verts := []float32{
		0, 0, 0,
		1, 0, 0,
		1, 0, 1,
		0, 0, 0,
		1, 0, 1,
		0, 0, 1,
	}
	gl.GenVertexArrays(1, &d.quadVAO)
	gl.GenBuffers(1, &d.quadVBO)
	gl.BindVertexArray(d.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// cellTransform maps the unit quad onto one terrain cell in scene units.
func (d *demo) cellTransform(row, col int) mgl32.Mat4 {
	w := 4.0 / float32(d.model.Cols())
	h := 2.0 / float32(d.model.Rows())
	x := -2 + float32(col)*w
	z := -1 + float32(row)*h
	y := float32(d.model.Elevation(row, col) / 4000.0)
	return mgl32.Translate3D(x, y, z).Mul4(mgl32.Scale3D(w, 1, h))
}

// markTransform places a small marker quad above its position.
func (d *demo) markTransform(m *Placemark) mgl32.Mat4 {
	x := float32((m.Pos.Lon-d.sector.MinLon)/(d.sector.MaxLon-d.sector.MinLon))*4 - 2
	z := float32((d.sector.MaxLat-m.Pos.Lat)/(d.sector.MaxLat-d.sector.MinLat))*2 - 1
	y := float32(m.Pos.Elevation/4000.0) + 0.05
	return mgl32.Translate3D(x-0.05, y, z-0.05).Mul4(mgl32.Scale3D(0.1, 1, 0.1))
}

func (d *demo) drawQuad(mvp mgl32.Mat4, r, g, b float32) {
	d.shader.SetMatrix4("mvp", &mvp[0])
	d.shader.SetVector3("color", r, g, b)
	gl.BindVertexArray(d.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// drawScene renders terrain then markers. In the pick pass every quad draws
// with its registered pick color instead of its display color.
func (d *demo) drawScene(pickPass bool) {
	view := d.camera.GetViewMatrix()
	proj := d.camera.GetProjectionMatrix()
	vp := proj.Mul4(view)

	d.shader.Use()

	var terrainFirst int
	if pickPass {
		terrainFirst = d.dc.UniquePickColor()
		for i := 1; i < d.model.CellCount(); i++ {
			d.dc.UniquePickColor()
		}
		d.model.RegisterPick(d.registry, terrainFirst)
	}

	for row := 0; row < d.model.Rows(); row++ {
		for col := 0; col < d.model.Cols(); col++ {
			mvp := vp.Mul4(d.cellTransform(row, col))
			if pickPass {
				r, g, b := render.UnpackRGB(d.model.CellCode(terrainFirst, row, col))
				d.drawQuad(mvp, float32(r)/255, float32(g)/255, float32(b)/255)
			} else {
				shade := 0.3 + 0.5*float32(d.model.Elevation(row, col)/600.0)
				d.drawQuad(mvp, 0.1, shade, 0.1)
			}
		}
	}

	for _, m := range d.marks {
		mvp := vp.Mul4(d.markTransform(m))
		if pickPass {
			code := d.dc.UniquePickColor()
			d.registry.AddObjectAt(code, m, m.Pos)
			r, g, b := render.UnpackRGB(code)
			d.drawQuad(mvp, float32(r)/255, float32(g)/255, float32(b)/255)
		} else {
			d.drawQuad(mvp, 0.9, 0.2, 0.1)
		}
	}
}

func (d *demo) drawFrame() {
	gl.ClearColor(0.05, 0.08, 0.15, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	d.drawScene(false)
	d.font.Render(d.status, 12, 30, 0.8, mgl32.Vec3{1, 1, 1})
}

// pick redraws the scene color-coded into the back buffer, resolves the
// clicked point plus a tolerance rectangle, and restores nothing: the next
// visible frame overwrites the pick pass before the buffer swap.
func (d *demo) pick(p image.Point) {
	defer profiling.Track("demo.pick")()

	d.dc.ResetFrame()
	d.dc.SetDeepPicking(config.GetDeepPicking())

	gl.ClearColor(0, 0, 0, 1) // clear color is pick code 0: background
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DITHER)
	if d.dc.IsDeepPicking() {
		// Deep picking surfaces occluded objects too: draw without depth
		// testing so every candidate leaves its color in the buffer.
		gl.Disable(gl.DEPTH_TEST)
	} else {
		gl.Enable(gl.DEPTH_TEST)
	}

	d.drawScene(true)
	gl.Finish()

	tol := config.GetPickTolerance()
	rect := image.Rect(p.X-tol, p.Y-tol, p.X+tol+1, p.Y+tol+1)
	d.dc.SetPickPoint(&p)
	d.dc.SetPickRectangle(&rect)

	top := d.registry.Resolve(d.dc, &p, d.overlay)
	switch {
	case top == nil:
		d.status = "nothing picked"
	case top.IsTerrain():
		pos, _ := top.Position()
		d.status = fmt.Sprintf("terrain %.2f, %.2f (%.0fm)", pos.Lat, pos.Lon, pos.Elevation)
	default:
		m := top.Value().(*Placemark)
		d.status = fmt.Sprintf("%s (%.0fm)", m.Name, m.Pos.Elevation)
	}

	slog.Debug("pick resolved",
		"point", p,
		"at_point", d.dc.PickedObjects().Len(),
		"in_rect", d.dc.ObjectsInPickRectangle().Len(),
		"timings", profiling.TopN(3))
}
