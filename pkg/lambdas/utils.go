package lambdas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/internal/identity"
)

const (
	// GroupIDAttribute is the message attribute carrying the grouping id
	GroupIDAttribute = "MessageGroupId"

	consumerSuccessMessage = "Messages processed successfully"
	producerSuccessMessage = "Message sent successfully"
	producerFailureMessage = "Failed to send message"
)

var (
	// ErrMissingGroupID is returned when a record has no MessageGroupId attribute
	ErrMissingGroupID = errors.New("message has no MessageGroupId attribute")
	// ErrMissingQueueURL is returned when neither a queue url nor a queue name is configured
	ErrMissingQueueURL = errors.New("queue url or queue name must be configured")
)

// GetQueueURL returns the queue URL based on its name. Local queues live in
// the localstack account on localHost, which defaults to the localstack
// container name.
func GetQueueURL(queueName string, region string, accountID string, local bool, localHost string) string {
	var queueURL string

	if local {
		if localHost == "" {
			localHost = config.INTERNAL_LOCALSTACK_HOST_NAME
		}
		queueURL = fmt.Sprintf(
			"http://%s:%d/000000000000/%s",
			localHost,
			config.LOCALSTACK_PORT,
			queueName,
		)
	} else {
		queueURL = fmt.Sprintf(
			"https://sqs.%s.amazonaws.com/%s/%s",
			region,
			accountID,
			queueName,
		)
	}

	return queueURL
}

// ResolveQueueURL returns the configured queue url or builds it from the
// queue name. The account id is looked up when not configured.
func ResolveQueueURL(ctx context.Context, conf *config.HandlerConfig, identityAPI identity.IdentityAPI) (string, error) {
	if conf.QueueURL != "" {
		return conf.QueueURL, nil
	}

	if conf.QueueName == "" {
		return "", ErrMissingQueueURL
	}

	accountID := conf.AccountID
	if accountID == "" && !conf.Local {
		var err error
		accountID, err = identity.AccountID(ctx, identityAPI)
		if err != nil {
			return "", fmt.Errorf("resolving account id: %w", err)
		}
	}

	return GetQueueURL(conf.QueueName, conf.Region, accountID, conf.Local, conf.LocalHost), nil
}

// newResponse builds a response whose body is the JSON encoding of message
func newResponse(statusCode int, message string) Response {
	body, _ := json.Marshal(message)

	return Response{
		StatusCode: statusCode,
		Body:       string(body),
	}
}
