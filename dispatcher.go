package marina

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPool fans domain events out to a fixed set of workers. Events
// that cannot be queued are dropped; processing them is never on a
// request's critical path.
type WorkerPool struct {
	pool       chan chan WorkRequest
	jobQueue   chan WorkRequest
	maxWorkers int
	workers    []Worker
	rental     *BoatRental
	stop       chan bool
	logger     *zap.Logger
}

func NewWorkerPool(maxWorkers, jobQueueSize int, rental *BoatRental, logger *zap.Logger) *WorkerPool {
	return &WorkerPool{
		pool:       make(chan chan WorkRequest, maxWorkers),
		jobQueue:   make(chan WorkRequest, jobQueueSize),
		maxWorkers: maxWorkers,
		rental:     rental,
		stop:       make(chan bool),
		logger:     logger,
	}
}

func (wp *WorkerPool) Start() {
	for i := 0; i < wp.maxWorkers; i++ {
		worker := NewWorker(i+1, wp.pool, wp.rental)
		worker.Start()
		wp.workers = append(wp.workers, worker)
	}

	go wp.dispatch()
}

func (wp *WorkerPool) Submit(ctx context.Context, event *DomainEvent) {
	select {
	case wp.jobQueue <- WorkRequest{Event: event, Ctx: ctx}:
	default:
		wp.logger.Warn("job queue full, event dropped",
			zap.String("event_type", string(event.Type)))
	}
}

func (wp *WorkerPool) dispatch() {
	for {
		select {
		case job := <-wp.jobQueue:
			select {
			case jobChannel := <-wp.pool:
				jobChannel <- job
			case <-job.Ctx.Done():
				wp.logger.Warn("job context canceled while waiting for available worker",
					zap.Error(job.Ctx.Err()),
					zap.String("event_type", string(job.Event.Type)))
			case <-wp.stop:
				return
			}
		case <-wp.stop:
			return
		}
	}
}

func (wp *WorkerPool) Stop() {
	close(wp.stop)
	for _, worker := range wp.workers {
		worker.Stop()
	}
}
