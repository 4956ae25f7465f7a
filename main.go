// Headless picking demo: draws a color-coded frame into a software pick
// buffer, registers overlay objects and a terrain range, then resolves a
// point pick and a rectangle pick and prints what was hit. The interactive
// GL viewer lives in cmd/globedemo.
package main

import (
	"fmt"
	"image"

	"globeview/internal/config"
	"globeview/internal/geom"
	"globeview/internal/layers"
	"globeview/internal/pick"
	"globeview/internal/render"
	"globeview/internal/terrain"
)

const (
	bufW = 320
	bufH = 200
)

// Placemark is a minimal overlay object for the demo.
type Placemark struct {
	Name string
	Pos  geom.Position
}

func main() {
	sector := terrain.Sector{MinLat: 44, MaxLat: 46, MinLon: 6, MaxLon: 8}
	model, err := terrain.NewModel(sector, 4, 5)
	if err != nil {
		panic(err)
	}
	for row := 0; row < model.Rows(); row++ {
		for col := 0; col < model.Cols(); col++ {
			model.SetElevation(row, col, float64(200*(row+col)))
		}
	}

	buf := render.NewImageBuffer(bufW, bufH)
	dc := render.NewContext(buf)
	reg := pick.NewRegistry()
	overlay := layers.New("demo overlay")

	// Pick pass: terrain cells first, overlay objects above them, exactly as
	// a depth-ordered draw would leave the framebuffer.
	terrainFirst := dc.UniquePickColor()
	for i := 1; i < model.CellCount(); i++ {
		dc.UniquePickColor() // claim the rest of the terrain range
	}
	drawTerrain(buf, model, terrainFirst)
	model.RegisterPick(reg, terrainFirst)

	marks := []*Placemark{
		{Name: "Mont Blanc", Pos: geom.NewPosition(45.83, 6.86, 4808)},
		{Name: "Matterhorn", Pos: geom.NewPosition(45.98, 7.66, 4478)},
	}
	for _, m := range marks {
		code := dc.UniquePickColor()
		buf.FillCode(markerRect(m.Pos, sector), code)
		reg.AddObjectAt(code, m, m.Pos)
	}

	// Resolve a click on the first marker and a drag box over the whole scene.
	click := screenPoint(marks[0].Pos, sector)
	tol := config.GetPickTolerance()
	box := image.Rect(click.X-tol, click.Y-tol, click.X+tol, click.Y+tol).Union(image.Rect(0, 0, bufW/2, bufH))
	dc.SetPickPoint(&click)
	dc.SetPickRectangle(&box)

	top := reg.Resolve(dc, &click, overlay)
	if top == nil {
		fmt.Println("nothing picked")
		return
	}

	if m, ok := top.Value().(*Placemark); ok {
		fmt.Printf("picked %q (code %d, layer %s)\n", m.Name, top.Code(), top.Layer().Name())
	}
	if pos, ok := top.Position(); ok {
		fmt.Printf("  at %.2f, %.2f, %.0fm\n", pos.Lat, pos.Lon, pos.Elevation)
	}

	inRect := dc.ObjectsInPickRectangle()
	fmt.Printf("rectangle hit %d objects", inRect.Len())
	if t := inRect.Terrain(); t != nil {
		if pos, ok := t.Position(); ok {
			fmt.Printf(", terrain cell at %.2f, %.2f", pos.Lat, pos.Lon)
		}
	}
	fmt.Println()
}

// drawTerrain fills every cell's screen rectangle with its pick code.
func drawTerrain(buf *render.ImageBuffer, model *terrain.Model, firstCode int) {
	cellW := bufW / model.Cols()
	cellH := bufH / model.Rows()
	for row := 0; row < model.Rows(); row++ {
		for col := 0; col < model.Cols(); col++ {
			r := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)
			buf.FillCode(r, model.CellCode(firstCode, row, col))
		}
	}
}

// screenPoint projects a position into buffer coordinates, north up.
func screenPoint(pos geom.Position, s terrain.Sector) image.Point {
	x := (pos.Lon - s.MinLon) / (s.MaxLon - s.MinLon) * bufW
	y := (s.MaxLat - pos.Lat) / (s.MaxLat - s.MinLat) * bufH
	return image.Pt(int(x), int(y))
}

// markerRect is the screen footprint a placemark icon would cover.
func markerRect(pos geom.Position, s terrain.Sector) image.Rectangle {
	p := screenPoint(pos, s)
	return image.Rect(p.X-4, p.Y-4, p.X+5, p.Y+5)
}
