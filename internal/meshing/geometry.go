package meshing

import (
	"voxelcore/internal/world"
)

const (
	// Worst-case non-indexed marching cubes output: 5 triangles per cell,
	// 15 vertices.
	verticesPerVoxelWorst = 15
	componentsPerVertex   = 3

	worstCaseVertices   = world.ChunkVoxels * verticesPerVoxelWorst
	worstCaseComponents = worstCaseVertices * componentsPerVertex
)

// ChunkGeometry is a caller-owned, reusable triangle-soup buffer: flat XYZ
// position components, matching per-vertex normals, and linear-space RGB
// colors. The backing arrays are sized for the worst case up front; Mesh
// appends without bounds checks, so shrinking them is not an option.
type ChunkGeometry struct {
	positions []float32
	normals   []float32
	colors    []float32
}

// NewChunkGeometry allocates a geometry buffer large enough for any single
// chunk.
func NewChunkGeometry() *ChunkGeometry {
	return &ChunkGeometry{
		positions: make([]float32, 0, worstCaseComponents),
		normals:   make([]float32, 0, worstCaseComponents),
		colors:    make([]float32, 0, worstCaseComponents),
	}
}

// Reset empties the buffer, keeping capacity. Mesh calls this on entry.
func (g *ChunkGeometry) Reset() {
	g.positions = g.positions[:0]
	g.normals = g.normals[:0]
	g.colors = g.colors[:0]
}

// Positions returns the flat position components written so far (x,y,z per
// vertex, chunk-local coordinates).
func (g *ChunkGeometry) Positions() []float32 {
	return g.positions
}

// Normals returns the flat normal components, one shared flat-shading normal
// repeated for each of a triangle's three vertices.
func (g *ChunkGeometry) Normals() []float32 {
	return g.normals
}

// Colors returns the flat linear-space RGB components.
func (g *ChunkGeometry) Colors() []float32 {
	return g.colors
}

// VertexCount returns the number of vertices currently in the buffer.
func (g *ChunkGeometry) VertexCount() int {
	return len(g.positions) / componentsPerVertex
}
