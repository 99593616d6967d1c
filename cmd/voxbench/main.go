package main

import (
	"flag"
	"fmt"
	"log"

	"voxgen/internal/bench"
	"voxgen/internal/config"
	"voxgen/internal/world"

	"github.com/xlab/closer"
)

func main() {
	renderDistance := flag.Int("render-distance", config.DefaultRenderDistance, "streaming radius in chunks")
	generator := flag.String("generator", config.GetGenerator(), "terrain generator: flat or noise")
	seed := flag.Int64("seed", config.GetSeed(), "seed for the noise generator")
	genWorkers := flag.Int("gen-workers", config.GetGenerationWorkers(), "chunks generated concurrently")
	meshWorkers := flag.Int("mesh-workers", config.GetMeshWorkers(), "goroutines meshing one chunk")
	steps := flag.Int("steps", 64, "camera updates to run")
	pathName := flag.String("path", "straight", "camera path: straight or circle")
	stepBlocks := flag.Float64("step", 8, "blocks moved per update")
	flag.Parse()

	config.SetRenderDistance(*renderDistance)
	config.SetGenerator(*generator)
	config.SetSeed(*seed)
	config.SetGenerationWorkers(*genWorkers)
	config.SetMeshWorkers(*meshWorkers)

	closer.Bind(func() {
		log.Println("voxbench: interrupted")
	})

	gen, err := world.NewGenerator(config.GetGenerator(), config.GetSeed())
	if err != nil {
		closer.Fatalln(err)
	}
	path, err := bench.NewPath(*pathName, float32(*stepBlocks))
	if err != nil {
		closer.Fatalln(err)
	}

	res, err := bench.Run(bench.Config{
		Generator:      gen,
		RenderDistance: config.GetRenderDistance(),
		Steps:          *steps,
		Path:           path,
		GenWorkers:     config.GetGenerationWorkers(),
		MeshWorkers:    config.GetMeshWorkers(),
	})
	if err != nil {
		closer.Fatalln(err)
	}

	title := fmt.Sprintf("%s terrain, render distance %d, %s path", config.GetGenerator(), config.GetRenderDistance(), *pathName)
	fmt.Println(bench.Report(title, res))
	closer.Close()
}
