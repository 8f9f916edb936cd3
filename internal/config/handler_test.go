package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func Test_LoadHandlerConfig_Defaults(t *testing.T) {
	conf, err := loadHandlerConfig(envFrom(map[string]string{
		"QUEUE_URL":  "https://sqs.eu-west-2.amazonaws.com/000000000000/orders.fifo",
		"AWS_REGION": "eu-west-2",
	}))
	require.Nil(t, err)

	assert.Equal(t, &HandlerConfig{
		QueueURL:       "https://sqs.eu-west-2.amazonaws.com/000000000000/orders.fifo",
		Region:         "eu-west-2",
		DefaultGroupID: "defaultGroup",
		DefaultBody:    "This is a test message",
		LocalHost:      "localstack",
		LogLevel:       "info",
		FailurePolicy:  "legacy",
	}, conf)
}

func Test_LoadHandlerConfig_AllValues(t *testing.T) {
	conf, err := loadHandlerConfig(envFrom(map[string]string{
		"QUEUE_NAME":              " orders.fifo ",
		"ACCOUNT_ID":              "000000000000",
		"AWS_REGION":              "eu-west-2",
		"MESSAGE_GROUP_ID":        "orders",
		"DEFAULT_MESSAGE_BODY":    "ping",
		"LOCAL":                   "true",
		"LOCALSTACK_HOST":         "localhost",
		"LOG_LEVEL":               "debug",
		"LOG_GROUP":               "orders-audit",
		"CONSUMER_FAILURE_POLICY": "REPORT",
	}))
	require.Nil(t, err)

	assert.Equal(t, "orders.fifo", conf.QueueName)
	assert.Equal(t, "000000000000", conf.AccountID)
	assert.Equal(t, "orders", conf.DefaultGroupID)
	assert.Equal(t, "ping", conf.DefaultBody)
	assert.True(t, conf.Local)
	assert.Equal(t, "localhost", conf.LocalHost)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "orders-audit", conf.LogGroup)
	assert.Equal(t, "report", conf.FailurePolicy)
}

func Test_LoadHandlerConfig_InvalidLocal(t *testing.T) {
	_, err := loadHandlerConfig(envFrom(map[string]string{
		"LOCAL": "maybe",
	}))
	assert.NotNil(t, err)
}
