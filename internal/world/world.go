package world

// World owns a dense rectangular lattice of chunks over fixed bounds. Chunks
// are allocated zero-filled at creation and never added or removed afterwards;
// presence is decided by the bounds check alone.
type World struct {
	bounds ChunkBounds
	chunks []*Chunk
}

// New allocates a world covering the given inclusive chunk bounds.
func New(bounds ChunkBounds) *World {
	w := &World{
		bounds: bounds,
		chunks: make([]*Chunk, bounds.Count()),
	}
	for i := range w.chunks {
		cx, cy, cz := bounds.Coord(i)
		w.chunks[i] = &Chunk{X: cx, Y: cy, Z: cz}
	}
	return w
}

// Bounds returns the world's fixed chunk bounds.
func (w *World) Bounds() ChunkBounds {
	return w.bounds
}

// ChunkAt returns the chunk at the given chunk coordinate, or nil outside the
// bounds.
func (w *World) ChunkAt(cx, cy, cz int) *Chunk {
	i, ok := w.bounds.Index(cx, cy, cz)
	if !ok {
		return nil
	}
	return w.chunks[i]
}

// ChunkAtPos returns the chunk owning the given world voxel coordinate, or
// nil outside the bounds.
func (w *World) ChunkAtPos(wx, wy, wz int) *Chunk {
	return w.ChunkAt(ChunkCoordAt(wx, wy, wz))
}

// GetVoxel returns the density and color at a world coordinate. Coordinates
// outside the bounds read as a zero sample; the call never fails.
func (w *World) GetVoxel(wx, wy, wz int) (density, r, g, b uint8) {
	c := w.ChunkAtPos(wx, wy, wz)
	if c == nil {
		return 0, 0, 0, 0
	}
	lx, ly, lz := LocalOffset(wx, wy, wz)
	return c.At(lx, ly, lz)
}

// SetVoxel writes density and color at a world coordinate. Writes outside the
// bounds are silently ignored. Because meshing a chunk reads one voxel layer
// from its neighbors, an edit on a chunk face, edge or corner also marks the
// face-, edge- and corner-adjacent neighbors dirty (up to 7 extra chunks).
func (w *World) SetVoxel(wx, wy, wz int, density, r, g, b uint8) {
	c := w.ChunkAtPos(wx, wy, wz)
	if c == nil {
		return
	}
	lx, ly, lz := LocalOffset(wx, wy, wz)
	c.Set(lx, ly, lz, density, r, g, b)

	// Neighbor direction per axis: -1 on the low face, +1 on the high face,
	// 0 in the interior.
	dx, dy, dz := 0, 0, 0
	if lx == 0 {
		dx = -1
	} else if lx == ChunkMask {
		dx = 1
	}
	if ly == 0 {
		dy = -1
	} else if ly == ChunkMask {
		dy = 1
	}
	if lz == 0 {
		dz = -1
	} else if lz == ChunkMask {
		dz = 1
	}

	if dx != 0 {
		w.markDirty(c.X+dx, c.Y, c.Z)
	}
	if dy != 0 {
		w.markDirty(c.X, c.Y+dy, c.Z)
	}
	if dz != 0 {
		w.markDirty(c.X, c.Y, c.Z+dz)
	}
	if dx != 0 && dy != 0 {
		w.markDirty(c.X+dx, c.Y+dy, c.Z)
	}
	if dx != 0 && dz != 0 {
		w.markDirty(c.X+dx, c.Y, c.Z+dz)
	}
	if dy != 0 && dz != 0 {
		w.markDirty(c.X, c.Y+dy, c.Z+dz)
	}
	if dx != 0 && dy != 0 && dz != 0 {
		w.markDirty(c.X+dx, c.Y+dy, c.Z+dz)
	}
}

// markDirty flags the chunk at a chunk coordinate, skipping missing neighbors
// at the world edge.
func (w *World) markDirty(cx, cy, cz int) {
	if c := w.ChunkAt(cx, cy, cz); c != nil {
		c.MarkDirty()
	}
}

// VoxelRelative reads a voxel by chunk-local offset. Offsets inside
// [0, ChunkSize) hit the chunk's own storage; offsets one step outside (the
// neighbor layer the mesher samples) are converted to world coordinates and
// resolved through GetVoxel, which zero-fills past the world edge.
func (w *World) VoxelRelative(c *Chunk, lx, ly, lz int) (density, r, g, b uint8) {
	if lx >= 0 && lx < ChunkSize &&
		ly >= 0 && ly < ChunkSize &&
		lz >= 0 && lz < ChunkSize {
		return c.At(lx, ly, lz)
	}
	return w.GetVoxel((c.X<<ChunkBits)+lx, (c.Y<<ChunkBits)+ly, (c.Z<<ChunkBits)+lz)
}
