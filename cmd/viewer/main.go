// Command viewer opens a window onto a terrain grid: left drag digs, right
// drag fills, R resets, P saves the mask, +/- zoom, V toggles profiling.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"dig2d/internal/clip"
	"dig2d/internal/config"
	"dig2d/internal/frame"
	"dig2d/internal/gesture"
	"dig2d/internal/graphics"
	"dig2d/internal/input"
	"dig2d/internal/profiling"
	"dig2d/internal/raster"
	"dig2d/internal/terrain"
	"dig2d/internal/view"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	windowWidth  = 900
	windowHeight = 600
)

var (
	configPath = flag.String("config", "", "settings file (falls back to $"+config.EnvPath+")")
	maskPath   = flag.String("mask", "mask.png", "where P saves the material mask")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	f, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := config.Apply(f); err != nil {
		log.Fatal(err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	grid, err := terrain.New(config.Terrain())
	if err != nil {
		log.Fatal(err)
	}
	r, err := graphics.NewRenderer(grid, config.GetPixelsPerUnit())
	if err != nil {
		panic(err)
	}
	defer r.Delete()

	fbw, fbh := window.GetFramebufferSize()
	cam := view.NewCamera(fbw, fbh, grid.Size(), grid.Settings().Origin)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		cam.Resize(w, h)
	})

	im := input.NewInputManager()
	im.SetCallbacks(window)

	v := &viewer{
		window:  window,
		grid:    grid,
		render:  r,
		cam:     cam,
		input:   im,
		sched:   gesture.NewScheduler(),
		limiter: frame.NewLimiter(),
		clock:   frame.NewClock(100 * time.Millisecond),
	}
	v.tracker = gesture.NewTracker(grid, v.sched, config.Brush())
	v.run()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "dig2d", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; the frame limiter paces the loop
	glfw.SwapInterval(0)
	return window, nil
}

type viewer struct {
	window  *glfw.Window
	grid    *terrain.Grid
	render  *graphics.Renderer
	cam     *view.Camera
	input   *input.InputManager
	sched   *gesture.Scheduler
	tracker *gesture.Tracker
	limiter *frame.Limiter
	clock   *frame.Clock

	showProfile bool
}

func (v *viewer) run() {
	frames := 0
	last := time.Now()
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	for !v.window.ShouldClose() {
		glfw.PollEvents()
		profiling.ResetFrame()
		startTick := time.Now()
		dt := v.clock.Tick()

		v.handleInput()

		if v.sched.Len() > 0 {
			if err := v.sched.Update(dt); err != nil {
				log.Printf("viewer: %v", err)
			}
			v.render.Sync(v.grid)
		}
		v.render.Render(v.cam)
		v.window.SwapBuffers()
		v.input.PostUpdate()

		// Check if frame took too long (> 16ms)
		if d := time.Since(startTick); d > 16*time.Millisecond {
			log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
		}

		frames++
		select {
		case <-fpsTicker.C:
			now := time.Now()
			if elapsed := now.Sub(last).Seconds(); elapsed > 0 && v.showProfile {
				fmt.Printf("FPS: %d, solid %.2f, loops %d, top: %s\n",
					int(float64(frames)/elapsed+0.5), v.grid.Area(), v.grid.LoopCount(), profiling.TopN(3))
			}
			frames = 0
			last = now
		default:
		}

		v.limiter.Wait(config.GetFPSLimit())
	}
}

func (v *viewer) handleInput() {
	im := v.input
	if im.JustPressed(input.ActionQuit) {
		v.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		v.showProfile = !v.showProfile
	}
	if im.JustPressed(input.ActionZoomIn) {
		v.cam.Zoom(0.9)
	}
	if im.JustPressed(input.ActionZoomOut) {
		v.cam.Zoom(1.1)
	}
	if im.JustPressed(input.ActionReset) {
		v.grid.Reset()
		v.render.Sync(v.grid)
	}
	if im.JustPressed(input.ActionSaveMask) {
		if err := raster.SavePNG(*maskPath, raster.Mask(v.grid, config.GetPixelsPerUnit())); err != nil {
			log.Printf("viewer: %v", err)
		} else {
			log.Printf("mask saved to %s", *maskPath)
		}
	}

	for _, b := range []struct {
		action input.Action
		op     clip.Op
	}{{input.ActionDig, clip.Subtract}, {input.ActionFill, clip.Add}} {
		if im.JustPressed(b.action) {
			if p, ok := v.pointer(); ok {
				params := config.Brush()
				params.Op = b.op
				v.tracker.SetParams(params)
				v.tracker.Began(p)
			}
		}
		if im.JustReleased(b.action) {
			v.tracker.Ended()
		}
	}
	if _, _, moved := im.Cursor(); moved && (im.IsActive(input.ActionDig) || im.IsActive(input.ActionFill)) {
		if p, ok := v.pointer(); ok {
			v.tracker.Moved(p)
		}
	}
}

// pointer maps the cursor from window coordinates onto the terrain plane.
func (v *viewer) pointer() (mgl32.Vec2, bool) {
	x, y, _ := v.input.Cursor()
	ww, wh := v.window.GetSize()
	if ww == 0 || wh == 0 {
		return mgl32.Vec2{}, false
	}
	sx := float64(v.cam.Width) / float64(ww)
	sy := float64(v.cam.Height) / float64(wh)
	p, err := v.cam.ScreenToWorld(x*sx, y*sy)
	if err != nil {
		return mgl32.Vec2{}, false
	}
	return p, true
}
