package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightsim/core"
)

const (
	groundTriangles   = 4
	towerTriangles    = 3 * 12
	fuselageTriangles = fuselageSlices * fuselageStacks * 2
	planeTriangles    = fuselageTriangles + 3
)

func bounds(tris []Triangle) (lo, hi mgl32.Vec3) {
	lo = mgl32.Vec3{1e9, 1e9, 1e9}
	hi = mgl32.Vec3{-1e9, -1e9, -1e9}
	for _, t := range tris {
		for _, v := range t.V {
			for i := 0; i < 3; i++ {
				lo[i] = min(lo[i], v[i])
				hi[i] = max(hi[i], v[i])
			}
		}
	}
	return lo, hi
}

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4)
	}
}

func TestBuildGroundCamera(t *testing.T) {
	dl := NewDrawList()
	Build(dl, core.NewFlightState(), core.CameraGround)

	require.Len(t, dl.Triangles, groundTriangles+towerTriangles+planeTriangles)
	require.Len(t, dl.Lines, 3)

	assert.Equal(t, GrassColor, dl.Triangles[0].Color)
	assert.Equal(t, RunwayColor, dl.Triangles[2].Color)
	for _, tri := range dl.Triangles[groundTriangles : groundTriangles+towerTriangles] {
		assert.Equal(t, RunwayColor, tri.Color, "towers keep the runway color")
	}
	for _, tri := range dl.Triangles[groundTriangles+towerTriangles:] {
		assert.Equal(t, White, tri.Color)
	}
}

func TestBuildFirstPersonOmitsPlane(t *testing.T) {
	dl := NewDrawList()
	Build(dl, core.NewFlightState(), core.CameraFirst)

	assert.Len(t, dl.Triangles, groundTriangles+towerTriangles)
	assert.Len(t, dl.Lines, 3)
}

func TestGroundGeometry(t *testing.T) {
	dl := NewDrawList()
	Ground(dl)

	lo, hi := bounds(dl.Triangles[:2])
	assertVecNear(t, mgl32.Vec3{-100, -0.1, -100}, lo)
	assertVecNear(t, mgl32.Vec3{100, -0.1, 100}, hi)

	lo, hi = bounds(dl.Triangles[2:])
	assertVecNear(t, mgl32.Vec3{-10, 0, -100}, lo)
	assertVecNear(t, mgl32.Vec3{10, 0, 100}, hi)
}

func TestTowerBlocks(t *testing.T) {
	dl := NewDrawList()
	TowerBlocks(dl)
	require.Len(t, dl.Triangles, towerTriangles)

	for i, center := range Towers {
		lo, hi := bounds(dl.Triangles[i*12 : (i+1)*12])
		assertVecNear(t, center.Sub(mgl32.Vec3{1, 5, 1}), lo)
		assertVecNear(t, center.Add(mgl32.Vec3{1, 5, 1}), hi)
		assert.InDelta(t, 0, lo.Y(), 1e-4, "towers stand on the ground")
	}
}

func TestPlaneAtReset(t *testing.T) {
	dl := NewDrawList()
	s := core.NewFlightState()
	Build(dl, s, core.CameraGround)

	plane := dl.Triangles[groundTriangles+towerTriangles:]
	fuselage := plane[:fuselageTriangles]

	// Heading -180 points the model's +z towards world -z.
	lo, hi := bounds(fuselage)
	assertVecNear(t, mgl32.Vec3{-0.5, 2.5, -12.5}, lo)
	assertVecNear(t, mgl32.Vec3{0.5, 3.5, -7.5}, hi)

	for _, tri := range fuselage {
		for _, v := range tri.V {
			dx, dy := v.X(), v.Y()-3
			assert.InDelta(t, 0.25, dx*dx+dy*dy, 1e-4)
		}
	}

	tail := plane[len(plane)-1]
	assertVecNear(t, mgl32.Vec3{0, 5, -7.5}, tail.V[1])
}

func TestDrawListMatrixStack(t *testing.T) {
	dl := NewDrawList()
	dl.Translate(1, 2, 3)
	dl.PushMatrix()
	dl.Scale(2, 2, 2)
	dl.Line(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 0})
	dl.PopMatrix()
	dl.Line(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 0})

	assertVecNear(t, mgl32.Vec3{3, 2, 3}, dl.Lines[0].A)
	assertVecNear(t, mgl32.Vec3{2, 2, 3}, dl.Lines[1].A)

	dl.PopMatrix()
	dl.PopMatrix()
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), dl.Matrix(), "underflow keeps the last matrix")

	dl.Rotate(90, mgl32.Vec3{0, 2, 0})
	dl.Line(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{})
	assertVecNear(t, mgl32.Vec3{2, 2, 3}, dl.Lines[2].A)
}

func TestDrawListReset(t *testing.T) {
	dl := NewDrawList()
	dl.SetColor(Red)
	dl.Translate(5, 5, 5)
	dl.Cube(1)
	require.Len(t, dl.Triangles, 12)

	dl.Reset()
	assert.Empty(t, dl.Triangles)
	assert.Empty(t, dl.Lines)
	assert.Equal(t, White, dl.Color())
	assert.Equal(t, mgl32.Ident4(), dl.Matrix())
}

func TestCylinderDegenerate(t *testing.T) {
	dl := NewDrawList()
	dl.Cylinder(1, 1, 1, 2, 4)
	dl.Cylinder(1, 1, 1, 8, 0)
	assert.Empty(t, dl.Triangles)

	dl.Cylinder(1, 0, 2, 4, 1)
	assert.Len(t, dl.Triangles, 8)
	lo, hi := bounds(dl.Triangles)
	assert.InDelta(t, 0, lo.Z(), 1e-6)
	assert.InDelta(t, 2, hi.Z(), 1e-6)
}

func BenchmarkBuild(b *testing.B) {
	dl := NewDrawList()
	s := core.NewFlightState()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dl.Reset()
		Build(dl, s, core.CameraGround)
	}
}
