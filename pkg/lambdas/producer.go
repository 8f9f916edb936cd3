package lambdas

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/internal/queues"
	log "github.com/sirupsen/logrus"
)

// ProducerAPI is an interface defining the functions available to the producer
type ProducerAPI interface {
	SendParams(input ProducerInput) *sqs.SendMessageInput
	Send(ctx context.Context, params *sqs.SendMessageInput) (*string, error)
	HandleRequest(ctx context.Context, input ProducerInput) (Response, error)
}

// Producer sends messages to a single queue fixed at deployment time
type Producer struct {
	// clients
	QueuesAPI queues.QueuesAPI
	// metadata
	QueueURL       string
	DefaultBody    string
	DefaultGroupID string
	Logger         log.FieldLogger
}

// NewProducer initializes a new producer with its required clients
func NewProducer(ctx context.Context, conf *config.HandlerConfig, cfg *aws.Config) (*Producer, error) {
	queueURL, err := ResolveQueueURL(ctx, conf, sts.NewFromConfig(*cfg))
	if err != nil {
		return nil, err
	}

	return &Producer{
		QueuesAPI:      sqs.NewFromConfig(*cfg),
		QueueURL:       queueURL,
		DefaultBody:    conf.DefaultBody,
		DefaultGroupID: conf.DefaultGroupID,
		Logger:         log.StandardLogger(),
	}, nil
}

// SendParams builds the send request for the given input, falling back
// to the default body and group for empty values
func (p *Producer) SendParams(input ProducerInput) *sqs.SendMessageInput {
	messageBody := string(input.MessageBody)
	if messageBody == "" {
		messageBody = valueOr(p.DefaultBody, config.DefaultMessageBody)
	}

	messageGroupID := string(input.MessageGroupID)
	if messageGroupID == "" {
		messageGroupID = valueOr(p.DefaultGroupID, config.DefaultMessageGroupID)
	}

	return &sqs.SendMessageInput{
		MessageBody:    aws.String(messageBody),
		QueueUrl:       aws.String(p.QueueURL),
		MessageGroupId: aws.String(messageGroupID),
	}
}

// Send sends a single message and returns its id
func (p *Producer) Send(ctx context.Context, params *sqs.SendMessageInput) (*string, error) {
	output, err := p.QueuesAPI.SendMessage(ctx, params)
	if err != nil {
		return nil, err
	}

	return output.MessageId, nil
}

// HandleRequest sends one message to the queue. Send failures are reported
// in the response, the returned error is always nil.
func (p *Producer) HandleRequest(ctx context.Context, input ProducerInput) (Response, error) {
	logger := requestLogger(ctx, p.Logger)

	params := p.SendParams(input)
	messageID, err := p.Send(ctx, params)
	if err != nil {
		logger.WithError(err).Error("Error sending message to SQS")
		return newResponse(500, producerFailureMessage), nil
	}

	logger.WithField("messageId", aws.ToString(messageID)).Info("Message sent to SQS")

	return newResponse(200, producerSuccessMessage), nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
