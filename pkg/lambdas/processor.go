package lambdas

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// OrderProcessor is called by the consumer for every order it decodes
type OrderProcessor interface {
	Process(ctx context.Context, order Order) error
}

// OrderProcessorFunc adapts a function to the OrderProcessor interface
type OrderProcessorFunc func(ctx context.Context, order Order) error

// Process implements OrderProcessor
func (f OrderProcessorFunc) Process(ctx context.Context, order Order) error {
	return f(ctx, order)
}

// LoggingProcessor only logs the orders it receives
type LoggingProcessor struct {
	Logger log.FieldLogger
}

// Process implements OrderProcessor
func (p LoggingProcessor) Process(ctx context.Context, order Order) error {
	logger := p.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	logger.WithFields(log.Fields{
		"orderId": order.OrderID,
		"items":   len(order.Items),
	}).Debug("Order received")

	return nil
}
