package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/pkg/lambdas"
	log "github.com/sirupsen/logrus"
)

var p *lambdas.Producer
var initErr error

func init() {
	ctx := context.Background()

	conf, err := config.LoadHandlerConfig()
	if err != nil {
		log.WithError(err).Error("Error reading producer config")
		initErr = err
		return
	}

	cfg, err := config.NewAWSConfig(conf.Local, conf.LocalHost, conf.Region)
	if err != nil {
		log.WithError(err).Error("Error loading aws config")
		initErr = err
		return
	}

	if err := lambdas.ConfigureLogger(ctx, log.StandardLogger(), conf, cloudwatchlogs.NewFromConfig(*cfg)); err != nil {
		// keep going with stdout logging only
		log.WithError(err).WithField("Log group", conf.LogGroup).Error("Error creating cloudwatch log stream")
	}

	p, initErr = lambdas.NewProducer(ctx, conf, cfg)
	if initErr != nil {
		log.WithError(initErr).Error("Error initializing producer")
	}
}

func HandleRequest(ctx context.Context, request lambdas.ProducerInput) (lambdas.Response, error) {
	if initErr != nil {
		return lambdas.Response{}, initErr
	}

	return p.HandleRequest(ctx, request)
}

func main() {
	lambda.Start(HandleRequest)
}
