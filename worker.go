package marina

import (
	"context"

	"go.uber.org/zap"
)

type Worker struct {
	ID         int
	WorkerPool chan chan WorkRequest
	JobChannel chan WorkRequest
	quit       chan bool
	rental     *BoatRental
}

type WorkRequest struct {
	Event *DomainEvent
	Ctx   context.Context
}

func NewWorker(id int, workerPool chan chan WorkRequest, rental *BoatRental) Worker {
	return Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan WorkRequest),
		quit:       make(chan bool),
		rental:     rental,
	}
}

func (w Worker) Start() {
	go func() {
		for {
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				err := w.rental.processEvent(job.Ctx, job.Event)
				if err != nil {
					w.rental.logger.Error("error processing event",
						zap.Error(err),
						zap.String("event_type", string(job.Event.Type)))
				} else {
					w.rental.logger.Debug("event processed",
						zap.String("event_type", string(job.Event.Type)))
				}

			case <-w.quit:
				return
			}
		}
	}()
}

func (w Worker) Stop() {
	close(w.quit)
}
