package world

// Chunk is a dense 16x16x16 block of voxels. Each voxel carries a density
// (0-255) and an RGB color. The chunk keeps a running sum of all densities so
// callers can tell an entirely empty chunk apart in O(1), and a dirty flag
// marking its extracted mesh stale.
type Chunk struct {
	X, Y, Z int // chunk coordinate, fixed at world init

	density [ChunkVoxels]uint8
	color   [ChunkVoxels * 3]uint8

	sum       int
	dirtyMesh bool
}

// voxelIndex converts a local offset to the flat storage index.
func voxelIndex(lx, ly, lz int) int {
	return lx + lz*ChunkSize + ly*ChunkSize*ChunkSize
}

// At returns the density and color at a local offset. The offset must be in
// range; world-level accessors handle everything else.
func (c *Chunk) At(lx, ly, lz int) (density, r, g, b uint8) {
	i := voxelIndex(lx, ly, lz)
	return c.density[i], c.color[i*3], c.color[i*3+1], c.color[i*3+2]
}

// Set writes density and color at a local offset, adjusting the running sum
// by the signed delta and marking the chunk dirty.
func (c *Chunk) Set(lx, ly, lz int, density, r, g, b uint8) {
	i := voxelIndex(lx, ly, lz)
	c.sum += int(density) - int(c.density[i])
	c.density[i] = density
	c.color[i*3] = r
	c.color[i*3+1] = g
	c.color[i*3+2] = b
	c.dirtyMesh = true
}

// Sum returns the running density sum. Zero means the chunk holds no solid
// data at all, which the raycaster exploits to skip it wholesale.
func (c *Chunk) Sum() int {
	return c.sum
}

// RecomputeSum rebuilds the running sum from the density array and returns
// it. O(volume); meant for consistency repair after bulk writes through the
// raw views.
func (c *Chunk) RecomputeSum() int {
	s := 0
	for _, d := range c.density {
		s += int(d)
	}
	c.sum = s
	return s
}

// IsDirty reports whether voxel data in this chunk or an adjacent chunk
// changed since the mesh was last extracted.
func (c *Chunk) IsDirty() bool {
	return c.dirtyMesh
}

// MarkDirty flags the chunk's mesh as stale.
func (c *Chunk) MarkDirty() {
	c.dirtyMesh = true
}

// ClearDirty resets the flag. Only the caller's remesh scheduler clears it;
// meshing itself never does.
func (c *Chunk) ClearDirty() {
	c.dirtyMesh = false
}

// Densities exposes the raw density array for bulk access. Callers that write
// through it must RecomputeSum and MarkDirty themselves.
func (c *Chunk) Densities() []uint8 {
	return c.density[:]
}

// Colors exposes the raw color array (r,g,b per voxel).
func (c *Chunk) Colors() []uint8 {
	return c.color[:]
}
