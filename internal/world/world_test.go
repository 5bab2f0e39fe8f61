package world

import "testing"

func testBounds() ChunkBounds {
	return ChunkBounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, ZMin: -1, ZMax: 1}
}

func clearAllDirty(w *World) {
	b := w.Bounds()
	for cx := b.XMin; cx <= b.XMax; cx++ {
		for cy := b.YMin; cy <= b.YMax; cy++ {
			for cz := b.ZMin; cz <= b.ZMax; cz++ {
				w.ChunkAt(cx, cy, cz).ClearDirty()
			}
		}
	}
}

func dirtyChunks(w *World) map[[3]int]bool {
	out := make(map[[3]int]bool)
	b := w.Bounds()
	for cx := b.XMin; cx <= b.XMax; cx++ {
		for cy := b.YMin; cy <= b.YMax; cy++ {
			for cz := b.ZMin; cz <= b.ZMax; cz++ {
				if w.ChunkAt(cx, cy, cz).IsDirty() {
					out[[3]int{cx, cy, cz}] = true
				}
			}
		}
	}
	return out
}

func TestWorldChunkLabels(t *testing.T) {
	w := New(testBounds())
	c := w.ChunkAt(-1, 0, 1)
	if c == nil {
		t.Fatal("ChunkAt(-1,0,1) = nil inside bounds")
	}
	if c.X != -1 || c.Y != 0 || c.Z != 1 {
		t.Errorf("chunk labeled (%d,%d,%d), want (-1,0,1)", c.X, c.Y, c.Z)
	}
	if w.ChunkAt(2, 0, 0) != nil {
		t.Error("ChunkAt(2,0,0) returned a chunk outside the bounds")
	}
}

func TestWorldSetGetRoundTrip(t *testing.T) {
	w := New(testBounds())
	w.SetVoxel(-5, 3, 12, 210, 1, 2, 3)

	d, r, g, b := w.GetVoxel(-5, 3, 12)
	if d != 210 || r != 1 || g != 2 || b != 3 {
		t.Errorf("GetVoxel(-5,3,12) = (%d,%d,%d,%d), want (210,1,2,3)", d, r, g, b)
	}

	if w.ChunkAtPos(-5, 3, 12) != w.ChunkAt(-1, 0, 0) {
		t.Error("ChunkAtPos(-5,3,12) did not resolve to chunk (-1,0,0)")
	}
}

func TestWorldOutOfBoundsAccess(t *testing.T) {
	w := New(testBounds())

	// Writes past the edge are dropped, reads come back zero.
	w.SetVoxel(100, 0, 0, 255, 255, 255, 255)
	d, r, g, b := w.GetVoxel(100, 0, 0)
	if d != 0 || r != 0 || g != 0 || b != 0 {
		t.Errorf("GetVoxel outside bounds = (%d,%d,%d,%d), want zeros", d, r, g, b)
	}
}

func TestSetVoxelInteriorMarksOwnChunkOnly(t *testing.T) {
	w := New(testBounds())
	clearAllDirty(w)

	w.SetVoxel(8, 8, 8, 255, 0, 0, 0)

	dirty := dirtyChunks(w)
	if len(dirty) != 1 || !dirty[[3]int{0, 0, 0}] {
		t.Errorf("interior edit dirtied %v, want only (0,0,0)", dirty)
	}
}

func TestSetVoxelFaceMarksOneNeighbor(t *testing.T) {
	w := New(testBounds())
	clearAllDirty(w)

	// lx == 0, interior on y and z.
	w.SetVoxel(0, 8, 8, 255, 0, 0, 0)

	dirty := dirtyChunks(w)
	want := map[[3]int]bool{{0, 0, 0}: true, {-1, 0, 0}: true}
	if len(dirty) != len(want) {
		t.Fatalf("face edit dirtied %v, want %v", dirty, want)
	}
	for k := range want {
		if !dirty[k] {
			t.Errorf("face edit did not dirty chunk %v", k)
		}
	}
}

func TestSetVoxelCornerMarksSevenNeighbors(t *testing.T) {
	w := New(testBounds())
	clearAllDirty(w)

	// The (0,0,0) local corner of chunk (0,0,0) touches all chunks with a
	// coordinate in {-1,0} on each axis.
	w.SetVoxel(0, 0, 0, 255, 0, 0, 0)

	dirty := dirtyChunks(w)
	if len(dirty) != 8 {
		t.Fatalf("corner edit dirtied %d chunks, want 8: %v", len(dirty), dirty)
	}
	for _, dx := range []int{-1, 0} {
		for _, dy := range []int{-1, 0} {
			for _, dz := range []int{-1, 0} {
				if !dirty[[3]int{dx, dy, dz}] {
					t.Errorf("corner edit did not dirty chunk (%d,%d,%d)", dx, dy, dz)
				}
			}
		}
	}
}

func TestSetVoxelEdgeOfWorldSkipsMissingNeighbors(t *testing.T) {
	w := New(testBounds())
	clearAllDirty(w)

	// World-corner voxel: 7 of the neighbors do not exist. Must not panic and
	// must mark only the owning chunk.
	w.SetVoxel(-16, -16, -16, 255, 0, 0, 0)

	dirty := dirtyChunks(w)
	if len(dirty) != 1 || !dirty[[3]int{-1, -1, -1}] {
		t.Errorf("world-corner edit dirtied %v, want only (-1,-1,-1)", dirty)
	}
}

func TestVoxelRelative(t *testing.T) {
	w := New(testBounds())
	c := w.ChunkAt(0, 0, 0)

	w.SetVoxel(3, 4, 5, 77, 7, 8, 9)
	if d, _, _, _ := w.VoxelRelative(c, 3, 4, 5); d != 77 {
		t.Errorf("VoxelRelative in-chunk = %d, want 77", d)
	}

	// Offset 16 reaches the first layer of the +x neighbor.
	w.SetVoxel(16, 0, 0, 88, 0, 0, 0)
	if d, _, _, _ := w.VoxelRelative(c, 16, 0, 0); d != 88 {
		t.Errorf("VoxelRelative neighbor layer = %d, want 88", d)
	}

	// Negative offsets reach the -x neighbor.
	w.SetVoxel(-1, 0, 0, 99, 0, 0, 0)
	if d, _, _, _ := w.VoxelRelative(c, -1, 0, 0); d != 99 {
		t.Errorf("VoxelRelative negative offset = %d, want 99", d)
	}

	// Past the world edge reads zero.
	edge := w.ChunkAt(1, 0, 0)
	if d, _, _, _ := w.VoxelRelative(edge, 16, 0, 0); d != 0 {
		t.Errorf("VoxelRelative past world edge = %d, want 0", d)
	}
}
