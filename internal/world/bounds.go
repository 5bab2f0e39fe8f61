package world

const (
	// Chunk dimensions
	ChunkBits = 4
	ChunkSize = 1 << ChunkBits // 16
	ChunkMask = ChunkSize - 1  // 15

	ChunkVoxels = ChunkSize * ChunkSize * ChunkSize

	// Isolevel separates "empty" from "solid" densities.
	Isolevel = 128
)

// ChunkBounds describes the fixed, inclusive chunk-coordinate extent of a
// world. Bounds never change after world creation.
type ChunkBounds struct {
	XMin, XMax int
	YMin, YMax int
	ZMin, ZMax int
}

// Contains reports whether the chunk coordinate lies inside the bounds.
func (b ChunkBounds) Contains(cx, cy, cz int) bool {
	return cx >= b.XMin && cx <= b.XMax &&
		cy >= b.YMin && cy <= b.YMax &&
		cz >= b.ZMin && cz <= b.ZMax
}

// Count returns the total number of chunks inside the bounds.
func (b ChunkBounds) Count() int {
	return (b.XMax - b.XMin + 1) * (b.YMax - b.YMin + 1) * (b.ZMax - b.ZMin + 1)
}

// Index converts a chunk coordinate to a flat array index, row-major over the
// x, y, z spans. Returns false for coordinates outside the bounds.
func (b ChunkBounds) Index(cx, cy, cz int) (int, bool) {
	if !b.Contains(cx, cy, cz) {
		return 0, false
	}
	ys := b.YMax - b.YMin + 1
	zs := b.ZMax - b.ZMin + 1
	return ((cx-b.XMin)*ys+(cy-b.YMin))*zs + (cz - b.ZMin), true
}

// Coord inverts Index. It is only needed once, at world initialization, to
// label each chunk with its coordinate.
func (b ChunkBounds) Coord(index int) (cx, cy, cz int) {
	ys := b.YMax - b.YMin + 1
	zs := b.ZMax - b.ZMin + 1
	plane := ys * zs
	cx = index/plane + b.XMin
	rem := index % plane
	cy = rem/zs + b.YMin
	cz = rem%zs + b.ZMin
	return
}

// ChunkCoordAt converts a world voxel coordinate to the coordinate of its
// owning chunk. Arithmetic shift keeps this correct for negative coordinates.
func ChunkCoordAt(wx, wy, wz int) (cx, cy, cz int) {
	return wx >> ChunkBits, wy >> ChunkBits, wz >> ChunkBits
}

// LocalOffset converts a world voxel coordinate to its offset inside the
// owning chunk, in [0, ChunkSize) per axis.
func LocalOffset(wx, wy, wz int) (lx, ly, lz int) {
	return wx & ChunkMask, wy & ChunkMask, wz & ChunkMask
}
