package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/rabbitmq/queue"
)

//go:generate mockgen -source=pool.go -destination=../mocks/worker/mock.go -package=mocks

type deliveryConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DeliveryJob, strategy retry.Strategy) error
}

type jobHandler interface {
	HandleJob(ctx context.Context, job queue.DeliveryJob)
}

// Pool drains the delivery queue with a fixed number of worker goroutines.
// Each job is processed to completion by exactly one worker; channel fan-out
// inside a job is sequential.
type Pool struct {
	queue   deliveryConsumer
	handler jobHandler
}

func NewPool(q deliveryConsumer, h jobHandler) *Pool {
	return &Pool{
		queue:   q,
		handler: h,
	}
}

// Run consumes jobs until the context is cancelled, then waits for in-flight
// workers to finish.
func (p *Pool) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	jobChan := make(chan queue.DeliveryJob, workerCount*10)

	go func() {
		if err := p.queue.Consume(ctx, jobChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume jobs")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case job, ok := <-jobChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					p.handler.HandleJob(ctx, job)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("worker pool stopped")
}
