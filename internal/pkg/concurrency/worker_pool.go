package concurrency

import (
	"context"
	"errors"
	"hashAnalysisBackend/internal/core/domain"
	"runtime"
	"sync"
	"time"
)

var ErrPoolStopped = errors.New("worker pool stopped")

type WorkerPool struct {
	workers    []*Worker
	tasks      chan Task
	numWorkers int
	metrics    *PoolMetrics
	wg         sync.WaitGroup
	mu         sync.Mutex
	started    bool
	stopOnce   sync.Once
	stop       chan struct{}
}

type Worker struct {
	id        int
	tasks     chan Task
	metrics   *WorkerMetrics
	isWorking bool
	mu        sync.RWMutex
}

// Task is a unit of CPU-bound work. The worker sends exactly one Result on Reply,
// which the submitter must buffer so workers never block on delivery.
type Task struct {
	ID       string
	JobID    string
	Index    int
	Function func() (interface{}, error)
	Reply    chan<- Result
}

type Result struct {
	TaskID   string
	JobID    string
	Index    int
	Value    interface{}
	Error    error
	Duration time.Duration
	WorkerID int
}

type PoolMetrics struct {
	ActiveWorkers  int
	CompletedTasks int64
	FailedTasks    int64
	TotalDuration  time.Duration
	AverageLatency time.Duration
	mu             sync.RWMutex
}

type WorkerMetrics struct {
	TasksCompleted int64
	TasksFailed    int64
	TotalDuration  time.Duration
	LastActive     time.Time
	mu             sync.RWMutex
}

// NewWorkerPool creates a pool with numWorkers workers and a task queue of queueSize.
// Non-positive numWorkers defaults to the number of CPUs.
func NewWorkerPool(numWorkers int, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if queueSize < 0 {
		queueSize = 0
	}

	pool := &WorkerPool{
		workers:    make([]*Worker, numWorkers),
		tasks:      make(chan Task, queueSize),
		numWorkers: numWorkers,
		metrics:    &PoolMetrics{},
		stop:       make(chan struct{}),
	}

	for i := 0; i < numWorkers; i++ {
		pool.workers[i] = &Worker{
			id:    i,
			tasks: pool.tasks,
			metrics: &WorkerMetrics{
				LastActive: time.Now(),
			},
		}
	}

	return pool
}

// Start launches the workers. The pool stops when ctx is done or Stop is called.
func (p *WorkerPool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	for _, worker := range p.workers {
		p.wg.Add(1)
		go worker.start(p.stop, &p.wg)
	}

	go func() {
		select {
		case <-ctx.Done():
			p.signalStop()
		case <-p.stop:
		}
	}()
	go p.collectMetrics()
}

// Submit queues a task, blocking while the queue is full.
func (p *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case <-p.stop:
		return ErrPoolStopped
	default:
	}

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stop:
		return ErrPoolStopped
	}
}

// Done is closed once the pool has been told to stop. Tasks still queued at that
// point never produce a Result.
func (p *WorkerPool) Done() <-chan struct{} {
	return p.stop
}

// Stop signals workers to finish and waits for them.
func (p *WorkerPool) Stop() {
	p.signalStop()
	p.wg.Wait()
}

func (p *WorkerPool) signalStop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

func (p *WorkerPool) Size() int {
	return p.numWorkers
}

func (p *WorkerPool) GetMetrics() domain.ResourceMetrics {
	p.updatePoolMetrics()

	p.metrics.mu.RLock()
	defer p.metrics.mu.RUnlock()

	return domain.ResourceMetrics{
		ActiveThreads:  p.metrics.ActiveWorkers,
		CompletedTasks: p.metrics.CompletedTasks,
		TasksPerSec:    p.calculateTasksPerSecond(),
		Workers:        p.numWorkers,
		LastUpdated:    time.Now(),
	}
}

func (w *Worker) start(stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-stop:
			return
		case task := <-w.tasks:
			w.setWorking(true)

			startTime := time.Now()
			value, err := w.executeTask(task)
			duration := time.Since(startTime)

			w.updateMetrics(err == nil, duration)

			w.setWorking(false)

			if task.Reply != nil {
				task.Reply <- Result{
					TaskID:   task.ID,
					JobID:    task.JobID,
					Index:    task.Index,
					Value:    value,
					Error:    err,
					Duration: duration,
					WorkerID: w.id,
				}
			}
		}
	}
}

func (w *Worker) executeTask(task Task) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return task.Function()
}

// PanicError carries a panic raised inside a task function.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return "task panicked"
}

func (w *Worker) setWorking(working bool) {
	w.mu.Lock()
	w.isWorking = working
	w.mu.Unlock()
}

func (w *Worker) updateMetrics(success bool, duration time.Duration) {
	w.metrics.mu.Lock()
	defer w.metrics.mu.Unlock()

	if success {
		w.metrics.TasksCompleted++
	} else {
		w.metrics.TasksFailed++
	}
	w.metrics.TotalDuration += duration
	w.metrics.LastActive = time.Now()
}

func (p *WorkerPool) collectMetrics() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.updatePoolMetrics()
		}
	}
}

func (p *WorkerPool) updatePoolMetrics() {
	activeWorkers := 0
	var totalCompleted, totalFailed int64
	var totalDuration time.Duration

	for _, worker := range p.workers {
		worker.metrics.mu.RLock()
		totalCompleted += worker.metrics.TasksCompleted
		totalFailed += worker.metrics.TasksFailed
		totalDuration += worker.metrics.TotalDuration
		worker.metrics.mu.RUnlock()

		worker.mu.RLock()
		if worker.isWorking {
			activeWorkers++
		}
		worker.mu.RUnlock()
	}

	p.metrics.mu.Lock()
	p.metrics.ActiveWorkers = activeWorkers
	p.metrics.CompletedTasks = totalCompleted
	p.metrics.FailedTasks = totalFailed
	p.metrics.TotalDuration = totalDuration
	if totalCompleted > 0 {
		p.metrics.AverageLatency = totalDuration / time.Duration(totalCompleted)
	}
	p.metrics.mu.Unlock()
}

// calculateTasksPerSecond expects p.metrics.mu to be held for reading.
func (p *WorkerPool) calculateTasksPerSecond() int64 {
	if p.metrics.TotalDuration == 0 {
		return 0
	}

	return int64(float64(p.metrics.CompletedTasks) / p.metrics.TotalDuration.Seconds())
}
