package meshing

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/world"
)

func singleChunkWorld() (*world.World, *world.Chunk) {
	w := world.New(world.ChunkBounds{XMin: 0, XMax: 0, YMin: 0, YMax: 0, ZMin: 0, ZMax: 0})
	return w, w.ChunkAt(0, 0, 0)
}

// fillSphere writes a solid ball centered in the chunk, densities ramping down
// toward the surface so interpolation has work to do.
func fillSphere(c *world.Chunk, radius float64) {
	for ly := 0; ly < world.ChunkSize; ly++ {
		for lz := 0; lz < world.ChunkSize; lz++ {
			for lx := 0; lx < world.ChunkSize; lx++ {
				dx := float64(lx) - 8
				dy := float64(ly) - 8
				dz := float64(lz) - 8
				d := math.Sqrt(dx*dx + dy*dy + dz*dz)
				if d < radius {
					v := 255 * (1 - d/radius)
					c.Set(lx, ly, lz, uint8(math.Min(255, v+128)), 200, 100, 50)
				}
			}
		}
	}
}

func TestMeshEmptyChunk(t *testing.T) {
	w, c := singleChunkWorld()
	out := NewChunkGeometry()
	NewMesher().Mesh(w, c, out)
	if out.VertexCount() != 0 {
		t.Errorf("empty chunk produced %d vertices, want 0", out.VertexCount())
	}
}

func TestMeshUniformBelowIsolevel(t *testing.T) {
	w, c := singleChunkWorld()
	for ly := 0; ly < world.ChunkSize; ly++ {
		for lz := 0; lz < world.ChunkSize; lz++ {
			for lx := 0; lx < world.ChunkSize; lx++ {
				c.Set(lx, ly, lz, world.Isolevel-1, 0, 0, 0)
			}
		}
	}
	out := NewChunkGeometry()
	NewMesher().Mesh(w, c, out)
	if out.VertexCount() != 0 {
		t.Errorf("sub-isolevel chunk produced %d vertices, want 0", out.VertexCount())
	}
}

func TestMeshSphereProducesTriangles(t *testing.T) {
	w, c := singleChunkWorld()
	fillSphere(c, 5)

	out := NewChunkGeometry()
	NewMesher().Mesh(w, c, out)

	n := out.VertexCount()
	if n == 0 {
		t.Fatal("sphere chunk produced no vertices")
	}
	if n%3 != 0 {
		t.Errorf("vertex count %d is not a multiple of 3", n)
	}

	// Every position must stay inside the cell grid, every normal must be
	// unit length, every color channel must be a valid linear value.
	pos := out.Positions()
	norm := out.Normals()
	col := out.Colors()
	for i := 0; i < len(pos); i += 3 {
		for a := 0; a < 3; a++ {
			if pos[i+a] < 0 || pos[i+a] > world.ChunkSize {
				t.Fatalf("position component %v outside [0,%d]", pos[i+a], world.ChunkSize)
			}
			if col[i+a] < 0 || col[i+a] > 1 {
				t.Fatalf("color component %v outside [0,1]", col[i+a])
			}
		}
		l := math.Sqrt(float64(norm[i]*norm[i] + norm[i+1]*norm[i+1] + norm[i+2]*norm[i+2]))
		if math.Abs(l-1) > 1e-4 {
			t.Fatalf("normal length %v at vertex %d, want 1", l, i/3)
		}
	}
}

func TestMeshDeterministicAcrossMeshers(t *testing.T) {
	w, c := singleChunkWorld()
	fillSphere(c, 6)

	a := NewChunkGeometry()
	b := NewChunkGeometry()
	NewMesher().Mesh(w, c, a)
	NewMesher().Mesh(w, c, b)

	if a.VertexCount() != b.VertexCount() {
		t.Fatalf("vertex counts differ: %d vs %d", a.VertexCount(), b.VertexCount())
	}
	pa, pb := a.Positions(), b.Positions()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("position[%d] differs: %v vs %v", i, pa[i], pb[i])
		}
	}
}

func TestMeshReuseResetsOutput(t *testing.T) {
	w, c := singleChunkWorld()
	fillSphere(c, 5)

	m := NewMesher()
	out := NewChunkGeometry()
	m.Mesh(w, c, out)
	first := out.VertexCount()

	m.Mesh(w, c, out)
	if out.VertexCount() != first {
		t.Errorf("second Mesh into the same buffer gave %d vertices, want %d", out.VertexCount(), first)
	}
}

func TestMeshLeavesDirtyFlagAlone(t *testing.T) {
	w, c := singleChunkWorld()
	fillSphere(c, 5)
	c.MarkDirty()

	NewMesher().Mesh(w, c, NewChunkGeometry())
	if !c.IsDirty() {
		t.Error("Mesh cleared the dirty flag; that is the scheduler's call")
	}
}

func TestMeshReadsNeighborLayer(t *testing.T) {
	// Two chunks along x; a surface crossing the boundary must be stitched
	// from both sides, so meshing the left chunk alone still emits the cells
	// in its last column.
	w := world.New(world.ChunkBounds{XMin: 0, XMax: 1, YMin: 0, YMax: 0, ZMin: 0, ZMax: 0})
	for wx := 14; wx <= 17; wx++ {
		w.SetVoxel(wx, 8, 8, 255, 100, 100, 100)
	}

	out := NewChunkGeometry()
	NewMesher().Mesh(w, w.ChunkAt(0, 0, 0), out)
	if out.VertexCount() == 0 {
		t.Fatal("boundary surface produced no vertices in the left chunk")
	}

	// The left chunk's mesh may extend up to local coordinate 16, the
	// neighbor's first layer, but never beyond.
	pos := out.Positions()
	maxX := float32(0)
	for i := 0; i < len(pos); i += 3 {
		if pos[i] > maxX {
			maxX = pos[i]
		}
	}
	if maxX > world.ChunkSize {
		t.Errorf("left chunk mesh reaches x=%v, beyond the shared layer", maxX)
	}
}

func TestInterpolateEqualDensities(t *testing.T) {
	m := NewMesher()
	m.corners[0] = sample{position: mgl32.Vec3{0, 0, 0}, density: 200, color: [3]uint8{255, 0, 0}}
	m.corners[1] = sample{position: mgl32.Vec3{0, 1, 0}, density: 200, color: [3]uint8{0, 0, 255}}

	m.interpolate(0)
	p := m.edges[0]
	if p.position.Y() != 0.5 {
		t.Errorf("equal-density crossing at y=%v, want midpoint 0.5", p.position.Y())
	}
}
