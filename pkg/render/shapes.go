// pkg/render/shapes.go
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	// fillImg это белый пиксель-источник для DrawTriangles.
	fillImg = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Arc is a piece of a circle between two angles in radians.
type Arc struct {
	From, To float64
}

// DashArcs splits a circle of the given radius into dashes of dash length
// separated by gaps of the same length, measured along the circumference.
func DashArcs(radius, dash float64) []Arc {
	if radius <= 0 || dash <= 0 {
		return nil
	}
	circumference := 2 * math.Pi * radius
	step := dash / radius
	arcs := make([]Arc, 0, int(circumference/(2*dash))+1)
	for from := 0.0; from < 2*math.Pi; from += 2 * step {
		arcs = append(arcs, Arc{From: from, To: math.Min(from+step, 2*math.Pi)})
	}
	return arcs
}

// StrokeDashedCircle draws a dashed outline of a circle.
func StrokeDashedCircle(dst *ebiten.Image, cx, cy, radius, dash float64, width float32, clr color.Color) {
	for _, a := range DashArcs(radius, dash) {
		var path vector.Path
		path.Arc(float32(cx), float32(cy), float32(radius), float32(a.From), float32(a.To), vector.Clockwise)
		strokePath(dst, &path, &vector.StrokeOptions{Width: width}, clr)
	}
}

// StrokePolyline draws connected segments with round caps and joins.
func StrokePolyline(dst *ebiten.Image, points [][2]float64, width float32, clr color.Color) {
	if len(points) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0][0]), float32(points[0][1]))
	for _, p := range points[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	strokePath(dst, &path, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}, clr)
}

func strokePath(dst *ebiten.Image, path *vector.Path, opts *vector.StrokeOptions, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
