package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const (
	// localstack host seen from the host machine
	LOCALSTACK_HOST_NAME = "localhost"
	// localstack host seen from containers in the localstack network
	INTERNAL_LOCALSTACK_HOST_NAME = "localstack"
	LOCALSTACK_PORT               = 4566
)

// InitCfg loads the default aws config for the given region
func InitCfg(region string) (*aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitLocalCfg returns an aws config pointing every client to localstack
func InitLocalCfg(hostname string, port int, region string) (*aws.Config, error) {
	localstackEndpointResolver := aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:           fmt.Sprintf("http://%s:%d", hostname, port),
			SigningRegion: region,
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(region),
		config.WithEndpointResolver(localstackEndpointResolver),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("dummyKey", "dummyKey", ""),
		),
	)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewAWSConfig returns the localstack config when local is set and the
// default config otherwise
func NewAWSConfig(local bool, hostname string, region string) (*aws.Config, error) {
	if local {
		return InitLocalCfg(hostname, LOCALSTACK_PORT, region)
	}

	return InitCfg(region)
}
