package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"voxelcore/internal/config"
	"voxelcore/internal/meshing"
	"voxelcore/internal/physics"
	"voxelcore/internal/profiling"
	"voxelcore/internal/world"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	seed := flag.Int("seed", 0, "override the config seed (0 keeps the config value)")
	output := flag.String("o", "world.gltf", "output glTF file")
	verbose := flag.Bool("v", false, "print per-stage timing")
	flag.Parse()

	if err := run(*configPath, *seed, *output, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "voxelcore: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seedOverride int, output string, verbose bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	seed := cfg.World.Seed
	if seedOverride != 0 {
		seed = seedOverride
	}

	w := world.New(cfg.Bounds())
	gen := world.NewGenerator(seed, cfg.Params())

	bounds := w.Bounds()
	for cx := bounds.XMin; cx <= bounds.XMax; cx++ {
		for cy := bounds.YMin; cy <= bounds.YMax; cy++ {
			for cz := bounds.ZMin; cz <= bounds.ZMax; cz++ {
				gen.Generate(w.ChunkAt(cx, cy, cz))
			}
		}
	}

	mesher := meshing.NewMesher()
	geom := meshing.NewChunkGeometry()

	var positions, normals, colors [][3]float32
	meshed := 0
	for cx := bounds.XMin; cx <= bounds.XMax; cx++ {
		for cy := bounds.YMin; cy <= bounds.YMax; cy++ {
			for cz := bounds.ZMin; cz <= bounds.ZMax; cz++ {
				c := w.ChunkAt(cx, cy, cz)
				if !c.IsDirty() {
					continue
				}
				mesher.Mesh(w, c, geom)
				c.ClearDirty()
				meshed++

				ox := float32(cx * world.ChunkSize)
				oy := float32(cy * world.ChunkSize)
				oz := float32(cz * world.ChunkSize)
				p := geom.Positions()
				n := geom.Normals()
				col := geom.Colors()
				for i := 0; i < len(p); i += 3 {
					positions = append(positions, [3]float32{p[i] + ox, p[i+1] + oy, p[i+2] + oz})
					normals = append(normals, [3]float32{n[i], n[i+1], n[i+2]})
					colors = append(colors, [3]float32{col[i], col[i+1], col[i+2]})
				}
			}
		}
	}

	if err := writeGLTF(output, positions, normals, colors); err != nil {
		return err
	}

	// Drop a probe ray through the world center as a quick sanity check on
	// the generated terrain.
	top := float32((bounds.YMax + 1) * world.ChunkSize)
	maxDist := float32((bounds.YMax - bounds.YMin + 2) * world.ChunkSize)
	hit := physics.RaycastVoxels(w, mgl32.Vec3{0, top, 0}, mgl32.Vec3{0, -1, 0}, maxDist)

	color.Green("meshed %d chunks, %d vertices -> %s", meshed, len(positions), output)
	if hit.Hit {
		color.Cyan("probe ray hit voxel (%d, %d, %d) at distance %.2f",
			hit.Voxel[0], hit.Voxel[1], hit.Voxel[2], hit.Distance)
	} else {
		color.Yellow("probe ray hit nothing")
	}

	if verbose {
		fmt.Println(profiling.TopN(10))
	}
	return nil
}

// writeGLTF exports the merged triangle soup as a single glTF mesh with
// per-vertex colors.
func writeGLTF(path string, positions, normals, colors [][3]float32) error {
	doc := gltf.NewDocument()

	if len(positions) == 0 {
		if err := gltf.Save(doc, path); err != nil {
			return errors.Wrap(err, "write gltf")
		}
		return nil
	}

	posIdx := modeler.WritePosition(doc, positions)
	normIdx := modeler.WriteNormal(doc, normals)
	colorIdx := modeler.WriteColor(doc, colors)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "terrain",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{
				gltf.POSITION: posIdx,
				gltf.NORMAL:   normIdx,
				gltf.COLOR_0:  colorIdx,
			},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: "terrain",
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	if err := gltf.Save(doc, path); err != nil {
		return errors.Wrap(err, "write gltf")
	}
	return nil
}
