package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DefaultMessageGroupID = "defaultGroup"
	DefaultMessageBody    = "This is a test message"
	DefaultFailurePolicy  = "legacy"
)

// HandlerConfig holds the deployment time values shared by the lambda handlers.
// It is read once per cold start.
type HandlerConfig struct {
	QueueURL       string
	QueueName      string
	AccountID      string
	Region         string
	DefaultGroupID string
	DefaultBody    string
	Local          bool
	LocalHost      string
	LogLevel       string
	LogGroup       string
	FailurePolicy  string
}

// LoadHandlerConfig reads the handler configuration from the environment
func LoadHandlerConfig() (*HandlerConfig, error) {
	return loadHandlerConfig(os.Getenv)
}

func loadHandlerConfig(getenv func(string) string) (*HandlerConfig, error) {
	conf := &HandlerConfig{
		QueueURL:       strings.TrimSpace(getenv("QUEUE_URL")),
		QueueName:      strings.TrimSpace(getenv("QUEUE_NAME")),
		AccountID:      strings.TrimSpace(getenv("ACCOUNT_ID")),
		Region:         getenv("AWS_REGION"),
		DefaultGroupID: valueOrDefault(getenv("MESSAGE_GROUP_ID"), DefaultMessageGroupID),
		DefaultBody:    valueOrDefault(getenv("DEFAULT_MESSAGE_BODY"), DefaultMessageBody),
		LocalHost:      valueOrDefault(getenv("LOCALSTACK_HOST"), INTERNAL_LOCALSTACK_HOST_NAME),
		LogLevel:       valueOrDefault(getenv("LOG_LEVEL"), "info"),
		LogGroup:       strings.TrimSpace(getenv("LOG_GROUP")),
		FailurePolicy:  strings.ToLower(valueOrDefault(getenv("CONSUMER_FAILURE_POLICY"), DefaultFailurePolicy)),
	}

	if local := getenv("LOCAL"); local != "" {
		isLocal, err := strconv.ParseBool(local)
		if err != nil {
			return nil, err
		}
		conf.Local = isLocal
	}

	return conf, nil
}

func valueOrDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}

	return fallback
}
