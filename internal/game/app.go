package game

import (
	"log"
	"time"

	"voxgen/internal/input"
	"voxgen/internal/meshing"
	"voxgen/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is reported
const slowFrame = 50 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	session      *Session
	pool         *meshing.WorkerPool

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window) (*App, error) {
	im := input.NewInputManager()
	im.Attach(window)

	session, err := NewSession(window)
	if err != nil {
		return nil, err
	}

	a := &App{
		window:       window,
		inputManager: im,
		session:      session,
		pool:         session.Pool,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.session.Resize(width, height)
	})
	return a, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()

	if err := a.session.Update(dt, a.inputManager); err != nil {
		log.Printf("skipping frame: %v", err)
	} else {
		a.session.Render(dt)
		a.window.SwapBuffers()
	}

	if d := time.Since(startTick); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(a.session.Paused)
}

// Close ends the session. Safe to call more than once.
func (a *App) Close() {
	if a.session != nil {
		a.session.Cleanup()
		a.session = nil
	}
}

// Shutdown stops chunk generation. Unlike Close it touches no GL state and may
// be called from any goroutine, e.g. a signal handler.
func (a *App) Shutdown() {
	a.pool.Shutdown()
}
