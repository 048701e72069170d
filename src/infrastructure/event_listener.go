package infrastructure

import (
	"context"
	"fmt"
	"shop-backoffice/src/infrastructure/log"
	"shop-backoffice/src/infrastructure/rabbitmq"
	"sync"
	"time"
)

type EventListener struct {
	rabbitMQService *rabbitmq.RabbitMQServiceImpl
	logger          log.Logger
	handlers        map[string]EventHandler
}

type EventHandler interface {
	Handle(ctx context.Context, msgBody []byte)
}

func NewEventListener(rabbit *rabbitmq.RabbitMQServiceImpl, logger log.Logger) *EventListener {
	return &EventListener{
		rabbitMQService: rabbit,
		logger:          logger,
		handlers:        make(map[string]EventHandler),
	}
}

// RegisterHandler registers an event handler for a specific queue. The queue
// name doubles as the routing key.
func (el *EventListener) RegisterHandler(queue string, handler EventHandler) {
	el.handlers[queue] = handler
}

// StartListening starts one consumer goroutine per registered queue and
// blocks until all of them exit.
func (el *EventListener) StartListening(ctx context.Context) error {
	var wg sync.WaitGroup

	for queue, handler := range el.handlers {
		wg.Add(1)
		go func(q string, h EventHandler) {
			defer wg.Done()
			el.listenToQueue(ctx, q, h)
		}(queue, handler)
	}

	wg.Wait()
	return nil
}

// listenToQueue consumes a single queue, reconnecting with exponential
// backoff when the consume call or the delivery channel fails.
func (el *EventListener) listenToQueue(ctx context.Context, queueName string, handler EventHandler) {
	maxRetries := 5
	retryDelay := time.Second * 2

	el.logger.Info(ctx, "Starting to listen for events on queue: "+queueName)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		msgs, err := el.rabbitMQService.Consume(queueName)
		if err != nil {
			el.logger.Exception(ctx, fmt.Sprintf("Failed to start consuming queue: %s (attempt %d/%d)", queueName, attempt, maxRetries), err)

			if attempt == maxRetries {
				el.logger.Exception(ctx, "Max retries reached for queue: "+queueName+", giving up", err)
				return
			}

			time.Sleep(retryDelay)
			retryDelay *= 2
			continue
		}

		el.logger.Info(ctx, "Successfully started consuming queue: "+queueName)

	consume:
		for {
			select {
			case <-ctx.Done():
				el.logger.Info(ctx, "Stopping event listener for queue: "+queueName)
				return
			case msg, ok := <-msgs:
				if !ok {
					el.logger.Warn(ctx, "Message channel closed for queue: "+queueName+", attempting to reconnect...")
					break consume
				}
				go func() {
					handler.Handle(ctx, msg.Body)
					msg.Ack(false)
				}()
			}
		}
	}
}
