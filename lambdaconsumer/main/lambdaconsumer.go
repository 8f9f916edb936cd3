package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/internal/logs"
	"github.com/josenarvaezp/sqsfifo/pkg/lambdas"
	log "github.com/sirupsen/logrus"
)

var c *lambdas.Consumer
var initErr error

func init() {
	ctx := context.Background()

	conf, err := config.LoadHandlerConfig()
	if err != nil {
		log.WithError(err).Error("Error reading consumer config")
		initErr = err
		return
	}

	// cloudwatch client only needed to mirror entries into a log group
	var logsAPI logs.LogsAPI
	if conf.LogGroup != "" {
		cfg, err := config.NewAWSConfig(conf.Local, conf.LocalHost, conf.Region)
		if err != nil {
			log.WithError(err).Error("Error loading aws config")
			initErr = err
			return
		}
		logsAPI = cloudwatchlogs.NewFromConfig(*cfg)
	}

	if err := lambdas.ConfigureLogger(ctx, log.StandardLogger(), conf, logsAPI); err != nil {
		// keep going with stdout logging only
		log.WithError(err).WithField("Log group", conf.LogGroup).Error("Error creating cloudwatch log stream")
	}

	c, initErr = lambdas.NewConsumer(conf)
	if initErr != nil {
		log.WithError(initErr).Error("Error initializing consumer")
	}
}

func HandleRequest(ctx context.Context, event events.SQSEvent) (lambdas.Response, error) {
	if initErr != nil {
		return lambdas.Response{}, initErr
	}

	response, err := c.HandleRequest(ctx, event)
	if err != nil {
		log.WithError(err).Error("Error processing batch")
		return response, err
	}

	return response, nil
}

func main() {
	lambda.Start(HandleRequest)
}
