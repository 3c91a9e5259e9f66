package engines

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

const pollInterval = 1 * time.Second

// Delivery is one message taken from a durable queue. Nak asks the broker to
// redeliver it.
type Delivery interface {
	Payload() []byte
	Ack() error
	Nak() error
}

type Source interface {
	// Next returns nil, nil when nothing arrived within timeout.
	Next(timeout time.Duration) (Delivery, error)
}

// Consume hands every delivery from source to worker until ctx is done or the
// source fails.
func Consume(ctx context.Context, source Source, worker Worker, logger logrus.FieldLogger) error {
	for ctx.Err() == nil {
		delivery, err := source.Next(pollInterval)
		if err != nil {
			return err
		}
		if delivery == nil {
			continue
		}

		Handle(delivery, worker, logger)
	}

	return nil
}

// Handle processes one delivery. Processed and malformed messages are acked,
// anything else is nacked so the broker redelivers it.
func Handle(delivery Delivery, worker Worker, logger logrus.FieldLogger) {
	err := worker.Process(delivery.Payload())

	switch {
	case err == nil:
		if err := delivery.Ack(); err != nil {
			logger.Errorf("Failed to ack message: %v", err)
		}
	case errors.Is(err, ErrMalformedPayload):
		logger.Warnf("Dropping message: %v", err)
		if err := delivery.Ack(); err != nil {
			logger.Errorf("Failed to ack message: %v", err)
		}
	default:
		logger.Errorf("Worker error, requesting redelivery: %v", err)
		if err := delivery.Nak(); err != nil {
			logger.Errorf("Failed to nak message: %v", err)
		}
	}
}
