package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/profiling"
	"voxelcore/internal/world"
)

// RaycastResult reports the first solid voxel (density ≥ Isolevel) along a
// ray, if any.
type RaycastResult struct {
	Hit      bool
	Position mgl32.Vec3 // world-space hit point
	Normal   mgl32.Vec3 // face normal of the entered voxel face
	Density  uint8
	Color    [3]uint8
	Distance float32
	Voxel    [3]int // integer coordinates of the hit voxel
}

var inf = float32(math.Inf(1))

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

// RaycastVoxels walks the ray through the voxel grid with DDA, skipping whole
// chunks that are absent or hold no density at all. Direction must be
// normalized. The traversal runs in a 0.5-shifted space so integer voxel
// coordinates align with cell centers.
func RaycastVoxels(w *world.World, origin, dir mgl32.Vec3, maxDistance float32) RaycastResult {
	defer profiling.Track("physics.RaycastVoxels")()

	ox := origin.X() + 0.5
	oy := origin.Y() + 0.5
	oz := origin.Z() + 0.5

	x := int(floorf(ox))
	y := int(floorf(oy))
	z := int(floorf(oz))

	stepX, stepY, stepZ := 1, 1, 1
	if dir.X() < 0 {
		stepX = -1
	}
	if dir.Y() < 0 {
		stepY = -1
	}
	if dir.Z() < 0 {
		stepZ = -1
	}

	// Parametric distance to cross one voxel per axis; infinite for axes the
	// ray never crosses.
	tDeltaX, tDeltaY, tDeltaZ := inf, inf, inf
	if dir.X() != 0 {
		tDeltaX = abs32(1 / dir.X())
	}
	if dir.Y() != 0 {
		tDeltaY = abs32(1 / dir.Y())
	}
	if dir.Z() != 0 {
		tDeltaZ = abs32(1 / dir.Z())
	}

	tMaxX := axisEntry(ox, dir.X())
	tMaxY := axisEntry(oy, dir.Y())
	tMaxZ := axisEntry(oz, dir.Z())

	var normalX, normalY, normalZ float32
	var distance float32

	for distance < maxDistance {
		cx, cy, cz := world.ChunkCoordAt(x, y, z)
		chunk := w.ChunkAt(cx, cy, cz)

		if chunk == nil || chunk.Sum() == 0 {
			// Nothing to hit in this chunk: jump straight to its exit
			// boundary instead of stepping 16³ voxels through it.
			tExitX := chunkExit(ox, dir.X(), cx, distance)
			tExitY := chunkExit(oy, dir.Y(), cy, distance)
			tExitZ := chunkExit(oz, dir.Z(), cz, distance)

			tExit := min32(tExitX, min32(tExitY, tExitZ))
			if tExit >= maxDistance || tExit == inf {
				return RaycastResult{}
			}

			// Land just inside the next chunk.
			const epsilon = 0.0001
			x = int(floorf(ox + dir.X()*(tExit+epsilon)))
			y = int(floorf(oy + dir.Y()*(tExit+epsilon)))
			z = int(floorf(oz + dir.Z()*(tExit+epsilon)))

			if dir.X() != 0 {
				tMaxX = boundaryDistance(ox, dir.X(), x)
			}
			if dir.Y() != 0 {
				tMaxY = boundaryDistance(oy, dir.Y(), y)
			}
			if dir.Z() != 0 {
				tMaxZ = boundaryDistance(oz, dir.Z(), z)
			}

			distance = tExit

			switch tExit {
			case tExitX:
				normalX, normalY, normalZ = float32(-stepX), 0, 0
			case tExitY:
				normalX, normalY, normalZ = 0, float32(-stepY), 0
			default:
				normalX, normalY, normalZ = 0, 0, float32(-stepZ)
			}
			continue
		}

		density, r, g, b := w.GetVoxel(x, y, z)
		if density >= world.Isolevel {
			hit := mgl32.Vec3{
				ox + dir.X()*distance - 0.5,
				oy + dir.Y()*distance - 0.5,
				oz + dir.Z()*distance - 0.5,
			}
			return RaycastResult{
				Hit:      true,
				Position: hit,
				Normal:   mgl32.Vec3{normalX, normalY, normalZ},
				Density:  density,
				Color:    [3]uint8{r, g, b},
				Distance: distance,
				Voxel:    [3]int{x, y, z},
			}
		}

		// Advance along whichever axis crosses a voxel boundary first.
		if tMaxX < tMaxY && tMaxX < tMaxZ {
			x += stepX
			distance = tMaxX
			tMaxX += tDeltaX
			normalX, normalY, normalZ = float32(-stepX), 0, 0
		} else if tMaxY < tMaxZ {
			y += stepY
			distance = tMaxY
			tMaxY += tDeltaY
			normalX, normalY, normalZ = 0, float32(-stepY), 0
		} else {
			z += stepZ
			distance = tMaxZ
			tMaxZ += tDeltaZ
			normalX, normalY, normalZ = 0, 0, float32(-stepZ)
		}
	}

	return RaycastResult{}
}

// axisEntry returns the parametric distance from the shifted origin to the
// first voxel boundary on one axis. Division by a zero direction component
// yields +Inf, which the stepping logic treats as "never".
func axisEntry(o, d float32) float32 {
	if d >= 0 {
		return (floorf(o) + 1 - o) / d
	}
	return (o - floorf(o)) / -d
}

// boundaryDistance returns the parametric distance from the shifted origin to
// the next boundary of the voxel v along one axis.
func boundaryDistance(o, d float32, v int) float32 {
	if d >= 0 {
		return (float32(v) + 1 - o) / d
	}
	return (o - float32(v)) / -d
}

// chunkExit returns the parametric distance at which the ray leaves chunk
// coordinate c on one axis, or +Inf if the axis never exits ahead of the
// current distance.
func chunkExit(o, d float32, c int, distance float32) float32 {
	switch {
	case d > 0:
		if t := (float32((c+1)*world.ChunkSize) - o) / d; t > distance {
			return t
		}
	case d < 0:
		if t := (float32(c*world.ChunkSize) - o) / d; t > distance {
			return t
		}
	}
	return inf
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
