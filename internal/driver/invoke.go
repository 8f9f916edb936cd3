package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdaTypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/google/uuid"
	"github.com/josenarvaezp/sqsfifo/pkg/lambdas"
)

// Send sends a message straight to the configured queue using the same
// parameters the producer lambda would use. Queues without content based
// deduplication get a random deduplication id.
func (d *Driver) Send(ctx context.Context, input lambdas.ProducerInput) (*string, error) {
	queueURL, err := d.queueURL(ctx)
	if err != nil {
		return nil, err
	}

	producer := &lambdas.Producer{
		QueuesAPI:      d.QueuesAPI,
		QueueURL:       queueURL,
		DefaultGroupID: d.Config.DefaultGroupID,
	}

	params := producer.SendParams(input)
	if !d.Config.ContentDedupe {
		params.MessageDeduplicationId = aws.String(uuid.New().String())
	}

	return producer.Send(ctx, params)
}

// InvokeProducer invokes the deployed producer lambda and waits for its response
func (d *Driver) InvokeProducer(ctx context.Context, functionName string, input lambdas.ProducerInput) (*lambdas.Response, error) {
	if functionName == "" {
		functionName = d.Config.ProducerFunction
	}
	if functionName == "" {
		return nil, errors.New("producer function name must be set")
	}

	requestPayload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	result, err := d.FaasAPI.Invoke(
		ctx,
		&lambda.InvokeInput{
			FunctionName:   aws.String(functionName),
			Payload:        requestPayload,
			InvocationType: lambdaTypes.InvocationTypeRequestResponse,
		},
	)
	if err != nil {
		return nil, err
	}

	// the invocation itself failed, payload holds the error
	if result.FunctionError != nil {
		return nil, fmt.Errorf("producer %s failed with %s: %s", functionName, *result.FunctionError, string(result.Payload))
	}

	var response lambdas.Response
	if err := json.Unmarshal(result.Payload, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
