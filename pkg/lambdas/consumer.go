package lambdas

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/josenarvaezp/sqsfifo/internal/config"
	log "github.com/sirupsen/logrus"
)

// FailurePolicy decides what the consumer does with a record it cannot process
type FailurePolicy string

const (
	// PolicyLegacy logs and skips bad bodies but fails the invocation when a
	// record has no grouping attribute
	PolicyLegacy FailurePolicy = "legacy"
	// PolicySkip logs and skips every failing record
	PolicySkip FailurePolicy = "skip"
	// PolicyReport logs every failing record and returns it as a batch item failure
	PolicyReport FailurePolicy = "report"
)

// ParseFailurePolicy validates a policy name
func ParseFailurePolicy(name string) (FailurePolicy, error) {
	switch policy := FailurePolicy(name); policy {
	case PolicyLegacy, PolicySkip, PolicyReport:
		return policy, nil
	case "":
		return PolicyLegacy, nil
	default:
		return "", fmt.Errorf("unknown consumer failure policy %q", name)
	}
}

// ConsumerAPI is an interface defining the functions available to the consumer
type ConsumerAPI interface {
	HandleRequest(ctx context.Context, event events.SQSEvent) (Response, error)
}

// Consumer processes the records delivered by the queue subscription
type Consumer struct {
	Processor OrderProcessor
	Policy    FailurePolicy
	Logger    log.FieldLogger
}

// NewConsumer initializes a consumer from the handler configuration
func NewConsumer(conf *config.HandlerConfig) (*Consumer, error) {
	policy, err := ParseFailurePolicy(conf.FailurePolicy)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		Processor: LoggingProcessor{},
		Policy:    policy,
		Logger:    log.StandardLogger(),
	}, nil
}

// HandleRequest processes the records of the batch in order. It reports
// success even when single records fail, unless the policy says otherwise.
func (c *Consumer) HandleRequest(ctx context.Context, event events.SQSEvent) (Response, error) {
	logger := requestLogger(ctx, c.Logger)

	var failures []events.SQSBatchItemFailure
	for _, record := range event.Records {
		recordLogger := logger.WithField("messageId", record.MessageId)

		err := c.processRecord(ctx, recordLogger, record)
		if err == nil {
			continue
		}

		if c.Policy == PolicyLegacy && errors.Is(err, ErrMissingGroupID) {
			return Response{}, fmt.Errorf("message %s: %w", record.MessageId, err)
		}

		recordLogger.WithError(err).Error("Error processing message")
		if c.Policy == PolicyReport {
			failures = append(failures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	response := newResponse(200, consumerSuccessMessage)
	response.BatchItemFailures = failures

	return response, nil
}

func (c *Consumer) processRecord(ctx context.Context, logger log.FieldLogger, record events.SQSMessage) error {
	groupID, err := messageGroupID(record)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"body":           record.Body,
		"messageGroupId": groupID,
	}).Info("Processing message")

	order, err := decodeOrder(record.Body)
	if err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	if c.Processor == nil {
		return nil
	}

	return c.Processor.Process(ctx, order)
}

// messageGroupID reads the grouping id from the message attributes
func messageGroupID(record events.SQSMessage) (string, error) {
	attribute, ok := record.MessageAttributes[GroupIDAttribute]
	if !ok || attribute.StringValue == nil {
		return "", ErrMissingGroupID
	}

	return *attribute.StringValue, nil
}

// requestLogger adds the lambda request data to the logger when available
func requestLogger(ctx context.Context, logger log.FieldLogger) log.FieldLogger {
	if logger == nil {
		logger = log.StandardLogger()
	}

	fields := log.Fields{}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields["requestId"] = lc.AwsRequestID
		fields["functionArn"] = lc.InvokedFunctionArn
	}

	return logger.WithFields(fields)
}
