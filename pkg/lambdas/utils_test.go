package lambdas_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/mocks"
	"github.com/josenarvaezp/sqsfifo/pkg/lambdas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetQueueURL(t *testing.T) {
	assert.Equal(
		t,
		"https://sqs.eu-west-2.amazonaws.com/000000000000/orders.fifo",
		lambdas.GetQueueURL("orders.fifo", "eu-west-2", "000000000000", false, ""),
	)
	assert.Equal(
		t,
		"http://localstack:4566/000000000000/orders.fifo",
		lambdas.GetQueueURL("orders.fifo", "eu-west-2", "", true, ""),
	)
	assert.Equal(
		t,
		"http://localhost:4566/000000000000/orders.fifo",
		lambdas.GetQueueURL("orders.fifo", "eu-west-2", "", true, "localhost"),
	)
}

func Test_ResolveQueueURL_LocalHost(t *testing.T) {
	conf := &config.HandlerConfig{
		QueueName: "orders.fifo",
		Region:    "eu-west-2",
		Local:     true,
		LocalHost: "sqs-local",
	}

	stsMock := new(mocks.IdentityAPI)

	queueURL, err := lambdas.ResolveQueueURL(context.Background(), conf, stsMock)
	require.Nil(t, err)
	assert.Equal(t, "http://sqs-local:4566/000000000000/orders.fifo", queueURL)
	stsMock.AssertNotCalled(t, "GetCallerIdentity")
}

func Test_ResolveQueueURL_Configured(t *testing.T) {
	conf := &config.HandlerConfig{
		QueueURL:  testQueueURL,
		QueueName: "ignored.fifo",
	}

	queueURL, err := lambdas.ResolveQueueURL(context.Background(), conf, nil)
	require.Nil(t, err)
	assert.Equal(t, testQueueURL, queueURL)
}

func Test_ResolveQueueURL_FromName(t *testing.T) {
	ctx := context.Background()
	conf := &config.HandlerConfig{
		QueueName: "orders.fifo",
		Region:    "eu-west-2",
	}

	stsMock := new(mocks.IdentityAPI)
	stsMock.On("GetCallerIdentity", ctx, &sts.GetCallerIdentityInput{}).Return(&sts.GetCallerIdentityOutput{
		Account: aws.String("000000000000"),
	}, nil).Once()

	queueURL, err := lambdas.ResolveQueueURL(ctx, conf, stsMock)
	require.Nil(t, err)
	assert.Equal(t, testQueueURL, queueURL)
	stsMock.AssertExpectations(t)
}

func Test_ResolveQueueURL_ConfiguredAccount(t *testing.T) {
	conf := &config.HandlerConfig{
		QueueName: "orders.fifo",
		Region:    "eu-west-2",
		AccountID: "000000000000",
	}

	stsMock := new(mocks.IdentityAPI)

	queueURL, err := lambdas.ResolveQueueURL(context.Background(), conf, stsMock)
	require.Nil(t, err)
	assert.Equal(t, testQueueURL, queueURL)
	stsMock.AssertNotCalled(t, "GetCallerIdentity")
}

func Test_ResolveQueueURL_UnhappyPath(t *testing.T) {
	ctx := context.Background()

	_, err := lambdas.ResolveQueueURL(ctx, &config.HandlerConfig{}, nil)
	assert.ErrorIs(t, err, lambdas.ErrMissingQueueURL)

	stsMock := new(mocks.IdentityAPI)
	stsMock.On("GetCallerIdentity", ctx, &sts.GetCallerIdentityInput{}).Return(nil, errors.New("mock error"))

	_, err = lambdas.ResolveQueueURL(ctx, &config.HandlerConfig{QueueName: "orders.fifo"}, stsMock)
	assert.EqualError(t, err, "resolving account id: mock error")
}
