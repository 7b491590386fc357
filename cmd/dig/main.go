// Command dig replays a YAML stroke script against a terrain grid without a
// window and reports what the clips did to the surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"dig2d/internal/collider"
	"dig2d/internal/config"
	"dig2d/internal/gesture"
	"dig2d/internal/profiling"
	"dig2d/internal/raster"
	"dig2d/internal/script"
	"dig2d/internal/terrain"

	"github.com/fatih/color"
	"github.com/xlab/closer"
)

var (
	configPath = flag.String("config", "", "settings file (falls back to $"+config.EnvPath+")")
	scriptPath = flag.String("script", "", "stroke script to replay")
	dt         = flag.Float64("dt", 1.0/60, "scheduler step in seconds")
	maskPath   = flag.String("mask", "", "write the material mask PNG here on exit")
	ppu        = flag.Float64("ppu", 32, "mask pixels per unit")
)

func main() {
	flag.Parse()
	defer closer.Close()

	f, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	if err := config.Apply(f); err != nil {
		closer.Fatalln(err)
	}
	if *scriptPath == "" {
		closer.Fatalln("dig: -script is required")
	}
	s, err := script.Load(*scriptPath)
	if err != nil {
		closer.Fatalln(err)
	}

	arena := collider.NewArena()
	grid, err := terrain.New(config.Terrain(), terrain.WithColliderHost(arena))
	if err != nil {
		closer.Fatalln(err)
	}
	if *maskPath != "" {
		closer.Bind(func() {
			if err := raster.SavePNG(*maskPath, raster.Mask(grid, float32(*ppu))); err != nil {
				log.Printf("dig: mask: %v", err)
				return
			}
			color.Green("mask written to %s", *maskPath)
		})
	}

	sched := gesture.NewScheduler()
	tracker := gesture.NewTracker(grid, sched, config.Brush())

	color.Blue("Replaying %d strokes on a %dx%d grid...", len(s.Strokes), config.Terrain().ResolutionX, config.Terrain().ResolutionY)
	profiling.ResetFrame()
	start := time.Now()
	stats, err := s.Run(tracker, sched, *dt)
	elapsed := time.Since(start)
	if err != nil {
		color.Red("%v", err)
	}

	consistent := report(grid, arena, stats, elapsed)
	if code := exitCode(err, consistent); code != 0 {
		closer.Exit(code)
	}
}

// exitCode maps a replay outcome to the process status: 1 when a gesture
// failed, 2 when the collider handles drifted from the polylines.
func exitCode(replay error, consistent bool) int {
	switch {
	case replay != nil:
		return 1
	case !consistent:
		return 2
	default:
		return 0
	}
}

// report prints the replay summary and whether the live collider handles
// match the grid's polylines.
func report(grid *terrain.Grid, arena *collider.Arena, stats script.Stats, elapsed time.Duration) bool {
	size := grid.Size()
	total := float64(size.X() * size.Y())
	mesh := grid.Mesh()

	label := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s %d strokes, %d gestures, %d updates in %v\n", label("replay:"), stats.Strokes, stats.Gestures, stats.Updates, elapsed)
	fmt.Printf("%s %.3f of %.3f (%.1f%%)\n", label("solid area:"), grid.Area(), total, 100*grid.Area()/total)
	fmt.Printf("%s %d vertices, %d triangles\n", label("edge mesh:"), mesh.VertexCount(), mesh.TriangleCount())
	fmt.Printf("%s %d polylines, %d live handles\n", label("colliders:"), grid.LoopCount(), arena.Live())
	fmt.Printf("%s %d clips, %v clipping, %v simplifying\n", label("profile:"),
		profiling.Count("terrain.ApplyClip"), profiling.SumWithPrefix("clip."), profiling.SumWithPrefix("simplify."))
	fmt.Printf("%s %s\n", label("top tasks:"), profiling.TopN(5))
	if grid.LoopCount() != arena.Live() {
		color.Red("collider count mismatch")
		return false
	}
	return true
}
