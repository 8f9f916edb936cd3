package logs

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	cloudWatchTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	log "github.com/sirupsen/logrus"
)

// CloudWatchHook is a logrus hook that mirrors every entry into a
// cloudwatch log stream
type CloudWatchHook struct {
	LogsAPI       LogsAPI
	LogGroupName  string
	LogStreamName string
	Formatter     log.Formatter

	mu                sync.Mutex
	nextSequenceToken *string
}

// NewCloudWatchHook creates the log stream in the given group and returns
// a hook writing to it. The group itself must already exist.
func NewCloudWatchHook(ctx context.Context, api LogsAPI, group, stream string) (*CloudWatchHook, error) {
	_, err := api.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  aws.String(group),
		LogStreamName: aws.String(stream),
	})
	if err != nil && !streamAlreadyExists(err) {
		return nil, err
	}

	return &CloudWatchHook{
		LogsAPI:       api,
		LogGroupName:  group,
		LogStreamName: stream,
		Formatter:     &log.JSONFormatter{},
	}, nil
}

// Levels implements log.Hook
func (h *CloudWatchHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire implements log.Hook
func (h *CloudWatchHook) Fire(entry *log.Entry) error {
	line, err := h.Formatter.Format(entry)
	if err != nil {
		return err
	}

	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}

	message := strings.TrimRight(string(line), "\n")
	timestamp := entry.Time.UnixNano() / 1000000

	h.mu.Lock()
	defer h.mu.Unlock()

	input := &cloudwatchlogs.PutLogEventsInput{
		LogEvents: []cloudWatchTypes.InputLogEvent{
			{
				Message:   &message,
				Timestamp: &timestamp,
			},
		},
		LogGroupName:  aws.String(h.LogGroupName),
		LogStreamName: aws.String(h.LogStreamName),
	}

	// add next sequence token
	if h.nextSequenceToken != nil {
		input.SequenceToken = h.nextSequenceToken
	}

	output, err := h.LogsAPI.PutLogEvents(ctx, input)
	if err != nil {
		return err
	}
	h.nextSequenceToken = output.NextSequenceToken

	return nil
}

func streamAlreadyExists(err error) bool {
	var exists *cloudWatchTypes.ResourceAlreadyExistsException
	return errors.As(err, &exists)
}
