package lambdas_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/mocks"
	"github.com/josenarvaezp/sqsfifo/pkg/lambdas"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_ConfigureLogger_NoLogGroup(t *testing.T) {
	logger := log.New()
	logsMock := new(mocks.LogsAPI)

	err := lambdas.ConfigureLogger(context.Background(), logger, &config.HandlerConfig{LogLevel: "debug"}, logsMock)
	require.Nil(t, err)

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, logger.Formatter)
	assert.Empty(t, logger.Hooks)
	logsMock.AssertNotCalled(t, "CreateLogStream", mock.Anything, mock.Anything)
}

func Test_ConfigureLogger_LogGroup(t *testing.T) {
	ctx := context.Background()
	logger := log.New()

	logsMock := new(mocks.LogsAPI)
	logsMock.On("CreateLogStream", ctx, mock.MatchedBy(func(input *cloudwatchlogs.CreateLogStreamInput) bool {
		return *input.LogGroupName == "orders-audit" && *input.LogStreamName != ""
	})).Return(&cloudwatchlogs.CreateLogStreamOutput{}, nil).Once()

	conf := &config.HandlerConfig{
		LogLevel: "warn",
		LogGroup: "orders-audit",
	}

	err := lambdas.ConfigureLogger(ctx, logger, conf, logsMock)
	require.Nil(t, err)

	assert.Equal(t, log.WarnLevel, logger.GetLevel())
	assert.Len(t, logger.Hooks[log.ErrorLevel], 1)
	logsMock.AssertExpectations(t)
}

func Test_ConfigureLogger_NilClient(t *testing.T) {
	ctx := context.Background()

	// stdout only, no client needed
	logger := log.New()
	err := lambdas.ConfigureLogger(ctx, logger, &config.HandlerConfig{LogLevel: "error"}, nil)
	require.Nil(t, err)
	assert.Equal(t, log.ErrorLevel, logger.GetLevel())

	// level and format are still applied when the hook cannot be added
	logger = log.New()
	err = lambdas.ConfigureLogger(ctx, logger, &config.HandlerConfig{LogLevel: "debug", LogGroup: "orders-audit"}, nil)
	assert.ErrorIs(t, err, lambdas.ErrMissingLogsClient)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, logger.Formatter)
	assert.Empty(t, logger.Hooks)
}
