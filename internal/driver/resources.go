package driver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const (
	fifoSuffix = ".fifo"
	// receives after which the queue moves a message to its dead-letter queue
	maxReceiveCount = "3"
)

// QueueInfo identifies a created queue
type QueueInfo struct {
	URL    string
	ARN    string
	DLQURL string
}

// CreateFIFOQueue creates the FIFO queue the producer sends to and the consumer
// is subscribed to. With withDLQ a FIFO dead-letter queue is created first and
// linked through the queue redrive policy.
func (d *Driver) CreateFIFOQueue(ctx context.Context, name string, withDLQ bool) (*QueueInfo, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("queue name must not be empty")
	}
	queueName := fifoQueueName(name)

	attributes := map[string]string{
		string(types.QueueAttributeNameFifoQueue): "true",
	}
	if d.Config.ContentDedupe {
		attributes[string(types.QueueAttributeNameContentBasedDeduplication)] = "true"
	}

	info := &QueueInfo{}
	if withDLQ {
		dlqName := fifoQueueName(strings.TrimSuffix(queueName, fifoSuffix) + "-dlq")
		dlqOutput, err := d.QueuesAPI.CreateQueue(ctx, &sqs.CreateQueueInput{
			QueueName: &dlqName,
			Attributes: map[string]string{
				string(types.QueueAttributeNameFifoQueue): "true",
			},
		})
		if err != nil {
			return nil, err
		}

		dlqARN, err := d.queueARN(ctx, dlqOutput.QueueUrl)
		if err != nil {
			return nil, err
		}

		policy := map[string]string{
			"deadLetterTargetArn": dlqARN,
			"maxReceiveCount":     maxReceiveCount,
		}
		policyJson, err := json.Marshal(policy)
		if err != nil {
			return nil, err
		}

		attributes[string(types.QueueAttributeNameRedrivePolicy)] = string(policyJson)
		info.DLQURL = *dlqOutput.QueueUrl
	}

	output, err := d.QueuesAPI.CreateQueue(ctx, &sqs.CreateQueueInput{
		QueueName:  &queueName,
		Attributes: attributes,
	})
	if err != nil {
		return nil, err
	}
	info.URL = *output.QueueUrl

	info.ARN, err = d.queueARN(ctx, output.QueueUrl)
	if err != nil {
		return nil, err
	}

	return info, nil
}

// queueARN reads the arn attribute of a queue
func (d *Driver) queueARN(ctx context.Context, queueURL *string) (string, error) {
	attributes, err := d.QueuesAPI.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       queueURL,
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameQueueArn},
	})
	if err != nil {
		return "", err
	}

	return attributes.Attributes[string(types.QueueAttributeNameQueueArn)], nil
}

// fifoQueueName appends the suffix FIFO queue names require
func fifoQueueName(name string) string {
	if strings.HasSuffix(name, fifoSuffix) {
		return name
	}

	return name + fifoSuffix
}
