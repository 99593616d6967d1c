package main

import (
	"flag"
	"log"
	"runtime"

	"voxgen/internal/config"
	"voxgen/internal/game"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	renderDistance := flag.Int("render-distance", config.DefaultRenderDistance, "streaming radius in chunks")
	generator := flag.String("generator", config.GetGenerator(), "terrain generator: flat or noise")
	seed := flag.Int64("seed", config.GetSeed(), "seed for the noise generator")
	genWorkers := flag.Int("gen-workers", config.GetGenerationWorkers(), "chunks generated concurrently")
	meshWorkers := flag.Int("mesh-workers", config.GetMeshWorkers(), "goroutines meshing one chunk")
	wireframe := flag.Bool("wireframe", false, "start in wireframe mode")
	atlas := flag.String("atlas", "", "block atlas PNG; empty uses the built-in atlas")
	fpsLimit := flag.Int("fps", 0, "frame cap, 0 for unlimited")
	speed := flag.Float64("speed", config.DefaultFlySpeed, "fly speed in blocks per second")
	flag.Parse()

	config.SetRenderDistance(*renderDistance)
	config.SetGenerator(*generator)
	config.SetSeed(*seed)
	config.SetGenerationWorkers(*genWorkers)
	config.SetMeshWorkers(*meshWorkers)
	config.SetWireframe(*wireframe)
	config.SetAtlasPath(*atlas)
	config.SetFPSLimit(*fpsLimit)
	config.SetFlySpeed(float32(*speed))

	if err := glfw.Init(); err != nil {
		log.Fatalln("glfw init:", err)
	}

	window, err := setupWindow()
	if err != nil {
		glfw.Terminate()
		log.Fatalln("create window:", err)
	}
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		log.Fatalln("gl init:", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	app, err := game.NewApp(window)
	if err != nil {
		glfw.Terminate()
		log.Fatalln(err)
	}
	closer.Bind(app.Shutdown)

	app.Run()

	app.Close()
	glfw.Terminate()
	closer.Close()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(900, 600, "voxgen", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	return window, nil
}
