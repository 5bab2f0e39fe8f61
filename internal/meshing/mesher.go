package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/profiling"
	"voxelcore/internal/world"
)

// gridSize is the pre-sampled corner grid edge: 17 corners span a 16-cell
// chunk, with the last layer read from the neighbor chunk.
const gridSize = world.ChunkSize + 1

// sample is one cube-corner value: chunk-local position plus the voxel's
// density and sRGB color.
type sample struct {
	position mgl32.Vec3
	density  uint8
	color    [3]uint8
}

// edgePoint is the interpolated isosurface crossing on a cube edge. Color is
// in linear space.
type edgePoint struct {
	position mgl32.Vec3
	color    mgl32.Vec3
}

// cornerOffsets lists the 8 cell corners in table winding order.
var cornerOffsets = [8][3]int{
	{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0},
	{0, 0, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 1},
}

// edgeCorners maps each of the 12 cube edges to its corner pair, matching the
// edge table's bit order.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Mesher extracts the density≥Isolevel isosurface of one chunk at a time via
// marching cubes. It owns its scratch state (the 17³ pre-sampled corner grid
// and the per-cell corner/edge slots), so a single Mesher must not run
// concurrent Mesh calls; give each goroutine its own.
type Mesher struct {
	values  [gridSize][gridSize][gridSize]uint8
	colors  [gridSize][gridSize][gridSize][3]uint8
	corners [8]sample
	edges   [12]edgePoint
}

// NewMesher creates a mesher with its scratch buffers ready.
func NewMesher() *Mesher {
	return &Mesher{}
}

// Mesh extracts the chunk's triangle soup into out, which must be sized for
// the worst case (NewChunkGeometry guarantees that). Output coordinates are
// chunk-local (0..16). The chunk's dirty flag is left untouched; identical
// input yields bit-identical output.
func (m *Mesher) Mesh(w *world.World, c *world.Chunk, out *ChunkGeometry) {
	defer profiling.Track("meshing.Mesh")()

	out.Reset()

	// Pre-sample the full corner grid once so shared corners are read a
	// single time instead of up to eight.
	for ly := 0; ly < gridSize; ly++ {
		for lz := 0; lz < gridSize; lz++ {
			for lx := 0; lx < gridSize; lx++ {
				d, r, g, b := w.VoxelRelative(c, lx, ly, lz)
				m.values[ly][lz][lx] = d
				m.colors[ly][lz][lx] = [3]uint8{r, g, b}
			}
		}
	}

	for ly := 0; ly < world.ChunkSize; ly++ {
		for lz := 0; lz < world.ChunkSize; lz++ {
			for lx := 0; lx < world.ChunkSize; lx++ {
				cubeIndex := 0
				for ci, off := range cornerOffsets {
					x, y, z := lx+off[0], ly+off[1], lz+off[2]
					s := &m.corners[ci]
					s.position = mgl32.Vec3{float32(x), float32(y), float32(z)}
					s.density = m.values[y][z][x]
					s.color = m.colors[y][z][x]
					if s.density >= world.Isolevel {
						cubeIndex |= 1 << ci
					}
				}

				edges := edgeTable[cubeIndex]
				if edges == 0 {
					continue
				}

				for e := 0; e < 12; e++ {
					if edges&(1<<e) != 0 {
						m.interpolate(e)
					}
				}

				tri := &triTable[cubeIndex]
				for i := 0; i < 16; i += 3 {
					if tri[i] < 0 {
						break
					}
					p0 := &m.edges[tri[i]]
					p1 := &m.edges[tri[i+1]]
					p2 := &m.edges[tri[i+2]]

					normal := triangleNormal(p0.position, p1.position, p2.position)
					appendVertex(out, p0, normal)
					appendVertex(out, p1, normal)
					appendVertex(out, p2, normal)
				}
			}
		}
	}
}

// interpolate fills the edge slot with the isosurface crossing between the
// edge's two corner samples. Equal densities resolve to the midpoint instead
// of dividing by zero; colors are moved to linear space before lerping.
func (m *Mesher) interpolate(edge int) {
	a := &m.corners[edgeCorners[edge][0]]
	b := &m.corners[edgeCorners[edge][1]]

	var t float32
	if a.density == b.density {
		t = 0.5
	} else {
		t = (float32(world.Isolevel) - float32(a.density)) / (float32(b.density) - float32(a.density))
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	p := &m.edges[edge]
	p.position = a.position.Add(b.position.Sub(a.position).Mul(t))
	for ch := 0; ch < 3; ch++ {
		la := srgbToLinear[a.color[ch]]
		lb := srgbToLinear[b.color[ch]]
		p.color[ch] = la + t*(lb-la)
	}
}

// triangleNormal returns the flat-shading normal for the triangle (a, b, c).
// Near-zero-area triangles fall back to the up vector rather than emitting
// NaN components.
func triangleNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := c.Sub(b).Cross(a.Sub(b))
	if n.Dot(n) < 1e-8 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

func appendVertex(out *ChunkGeometry, p *edgePoint, normal mgl32.Vec3) {
	out.positions = append(out.positions, p.position[0], p.position[1], p.position[2])
	out.normals = append(out.normals, normal[0], normal[1], normal[2])
	out.colors = append(out.colors, p.color[0], p.color[1], p.color[2])
}
