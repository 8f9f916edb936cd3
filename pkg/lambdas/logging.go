package lambdas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/internal/logs"
	log "github.com/sirupsen/logrus"
)

// ErrMissingLogsClient is returned when a log group is configured without a cloudwatch logs client
var ErrMissingLogsClient = errors.New("log group configured without a cloudwatch logs client")

// ConfigureLogger sets the level and format of the handler logger and,
// when a log group is configured, mirrors its entries into cloudwatch
func ConfigureLogger(ctx context.Context, logger *log.Logger, conf *config.HandlerConfig, logsAPI logs.LogsAPI) error {
	logger.SetLevel(logs.ParseLevel(conf.LogLevel))
	logger.SetFormatter(&log.JSONFormatter{})

	if conf.LogGroup == "" {
		return nil
	}
	if logsAPI == nil {
		return ErrMissingLogsClient
	}

	hook, err := logs.NewCloudWatchHook(ctx, logsAPI, conf.LogGroup, logStreamName(time.Now()))
	if err != nil {
		return err
	}
	logger.AddHook(hook)

	return nil
}

// logStreamName returns a stream name unique to the current execution environment
func logStreamName(now time.Time) string {
	return fmt.Sprintf("%s/%s", now.UTC().Format("2006/01/02"), uuid.New().String())
}
