package meshing

import (
	"context"
	"sync"

	"voxgen/internal/world"
)

// GenerateJob requests generation of one chunk.
type GenerateJob struct {
	Pos world.ChunkPos
	// Result channel - will be sent the result when done
	ResultChan chan<- GenerateResult
}

// GenerateResult contains the output of a generation job.
type GenerateResult struct {
	Pos  world.ChunkPos
	Grid *world.Grid
	Mesh *ChunkMesh
}

// WorkerPool manages goroutines for chunk generation
type WorkerPool struct {
	jobQueue    chan GenerateJob
	workers     int
	meshWorkers int
	gen         world.TerrainGenerator
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	once        sync.Once
}

// NewWorkerPool creates a generation pool. workers chunks are generated
// concurrently and each one fans its cells out over meshWorkers goroutines.
func NewWorkerPool(workers, queueSize int, gen world.TerrainGenerator, meshWorkers int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue:    make(chan GenerateJob, queueSize),
		workers:     max(workers, 1),
		meshWorkers: meshWorkers,
		gen:         gen,
		ctx:         ctx,
		cancel:      cancel,
	}

	for i := 0; i < pool.workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// SubmitJob queues a job without blocking.
// Returns false if the queue is full or the pool is shut down.
func (p *WorkerPool) SubmitJob(job GenerateJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking blocks until the job is queued.
// Returns false if the pool was shut down first.
func (p *WorkerPool) SubmitJobBlocking(job GenerateJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Done is closed once Shutdown has been called.
func (p *WorkerPool) Done() <-chan struct{} {
	return p.ctx.Done()
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			grid, mesh := Generate(job.Pos, p.gen, p.meshWorkers)

			select {
			case job.ResultChan <- GenerateResult{Pos: job.Pos, Grid: grid, Mesh: mesh}:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Jobs still queued
// are dropped. It is safe to call more than once and from any goroutine.
func (p *WorkerPool) Shutdown() {
	p.once.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}

// QueueLength returns the current number of queued jobs.
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}
