package worker

import (
	"context"
	"fmt"
	"sync"

	"pixline/internal/application/usecase/abstraction"
	"pixline/internal/domain/repository/broker"
	"pixline/pkg/logger"
)

// Worker consumes accepted image ids from the job stream and runs the
// pipeline for each. Concurrency bounds how many pipeline runs execute at
// once; runs of different images have no ordering between them.
type Worker struct {
	receiver    broker.Receiver
	processor   abstraction.Processor
	concurrency int
	wg          sync.WaitGroup
}

func New(receiver broker.Receiver, processor abstraction.Processor, concurrency int) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Worker{
		receiver:    receiver,
		processor:   processor,
		concurrency: concurrency,
	}
}

// Start launches the consumer goroutines and returns immediately. Messages
// are acked after the run returns either way: a stage failure is already
// persisted on the record and a redelivery would be a no-op.
func (w *Worker) Start(ctx context.Context, consumerName string) error {
	messages, err := w.receiver.Messages(ctx, consumerName)
	if err != nil {
		return fmt.Errorf("subscribe to job stream: %w", err)
	}

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.consume(ctx, messages)
	}

	return nil
}

// Stop blocks until in-flight runs finish. Call after cancelling the
// context handed to Start.
func (w *Worker) Stop() {
	w.wg.Wait()
}

func (w *Worker) consume(ctx context.Context, messages <-chan broker.Message) {
	defer w.wg.Done()

	for msg := range messages {
		id := msg.Body()

		if err := w.processor.Run(ctx, id); err != nil {
			logger.Error("pipeline run did not reach a terminal state", "id", id, "err", err)
		}

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack job message", "id", id, "err", err)
		}
	}
}
