package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an opaque RGB color with components in [0, 1]
type Color struct {
	R, G, B float32
}

var (
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// Triangle is a world-space triangle with a flat color
type Triangle struct {
	V     [3]mgl32.Vec3
	Color Color
}

// Line is a world-space line segment with a flat color
type Line struct {
	A, B  mgl32.Vec3
	Color Color
}

// DrawList collects primitives the way a fixed-function pipeline would
// receive them: a current color, a matrix stack, and vertices that are
// transformed by the top of the stack as they are emitted. The result is
// plain world-space geometry that any backend can draw.
type DrawList struct {
	Triangles []Triangle
	Lines     []Line

	color Color
	stack []mgl32.Mat4
}

// NewDrawList returns an empty list with an identity transform and white
// as the current color.
func NewDrawList() *DrawList {
	dl := &DrawList{}
	dl.Reset()
	return dl
}

// Reset empties the list so its storage can be reused for the next frame.
func (dl *DrawList) Reset() {
	dl.Triangles = dl.Triangles[:0]
	dl.Lines = dl.Lines[:0]
	dl.stack = append(dl.stack[:0], mgl32.Ident4())
	dl.color = White
}

func (dl *DrawList) top() *mgl32.Mat4 {
	return &dl.stack[len(dl.stack)-1]
}

// Matrix returns the current transform.
func (dl *DrawList) Matrix() mgl32.Mat4 {
	return *dl.top()
}

func (dl *DrawList) PushMatrix() {
	dl.stack = append(dl.stack, *dl.top())
}

// PopMatrix restores the previous transform. Popping the last entry is a
// no-op, as with a GL stack underflow.
func (dl *DrawList) PopMatrix() {
	if len(dl.stack) > 1 {
		dl.stack = dl.stack[:len(dl.stack)-1]
	}
}

func (dl *DrawList) LoadMatrix(m mgl32.Mat4) {
	*dl.top() = m
}

func (dl *DrawList) MultMatrix(m mgl32.Mat4) {
	*dl.top() = dl.top().Mul4(m)
}

func (dl *DrawList) Translate(x, y, z float32) {
	dl.MultMatrix(mgl32.Translate3D(x, y, z))
}

// Rotate rotates by angle degrees about the given axis.
func (dl *DrawList) Rotate(angle float32, axis mgl32.Vec3) {
	dl.MultMatrix(mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis.Normalize()))
}

func (dl *DrawList) Scale(x, y, z float32) {
	dl.MultMatrix(mgl32.Scale3D(x, y, z))
}

func (dl *DrawList) SetColor(c Color) {
	dl.color = c
}

func (dl *DrawList) Color() Color {
	return dl.color
}

func (dl *DrawList) xform(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, *dl.top())
}

func (dl *DrawList) Triangle(a, b, c mgl32.Vec3) {
	dl.Triangles = append(dl.Triangles, Triangle{
		V:     [3]mgl32.Vec3{dl.xform(a), dl.xform(b), dl.xform(c)},
		Color: dl.color,
	})
}

// Quad emits a planar convex quadrilateral as two triangles.
func (dl *DrawList) Quad(a, b, c, d mgl32.Vec3) {
	dl.Triangle(a, b, c)
	dl.Triangle(a, c, d)
}

func (dl *DrawList) Line(a, b mgl32.Vec3) {
	dl.Lines = append(dl.Lines, Line{A: dl.xform(a), B: dl.xform(b), Color: dl.color})
}

// Cube emits a solid axis-aligned cube of the given edge length centered
// at the origin.
func (dl *DrawList) Cube(size float32) {
	h := size / 2
	v := [8]mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	faces := [6][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}
	for _, f := range faces {
		dl.Quad(v[f[0]], v[f[1]], v[f[2]], v[f[3]])
	}
}

// Cylinder emits an open tube along +z starting at z=0, with the radius
// changing linearly from base to top. There are no end caps.
func (dl *DrawList) Cylinder(base, top, height float32, slices, stacks int) {
	if slices < 3 || stacks < 1 {
		return
	}

	ring := func(i, j int) mgl32.Vec3 {
		t := float32(j) / float32(stacks)
		r := base + (top-base)*t
		theta := 2 * math.Pi * float64(i) / float64(slices)
		return mgl32.Vec3{
			r * float32(math.Sin(theta)),
			r * float32(math.Cos(theta)),
			height * t,
		}
	}

	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			dl.Quad(ring(i, j), ring(i+1, j), ring(i+1, j+1), ring(i, j+1))
		}
	}
}
