package driver

import (
	"context"

	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/internal/faas"
	"github.com/josenarvaezp/sqsfifo/internal/identity"
	"github.com/josenarvaezp/sqsfifo/internal/queues"
	"github.com/josenarvaezp/sqsfifo/pkg/lambdas"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// DriverInterface defines the methods available for the Driver
type DriverInterface interface {
	// setup
	CreateFIFOQueue(ctx context.Context, name string, withDLQ bool) (*QueueInfo, error)

	// run
	Send(ctx context.Context, input lambdas.ProducerInput) (*string, error)
	InvokeProducer(ctx context.Context, functionName string, input lambdas.ProducerInput) (*lambdas.Response, error)
}

// Driver is a struct that implements the Driver interface
type Driver struct {
	// clients
	FaasAPI     faas.FaasAPI
	QueuesAPI   queues.QueuesAPI
	IdentityAPI identity.IdentityAPI
	// user config
	Config config.Config
}

// NewDriver creates a new Driver struct
func NewDriver(conf *config.Config) (*Driver, error) {
	var cfg *aws.Config
	var err error

	// init driver with its config
	driver := &Driver{
		Config: *conf,
	}

	if driver.Config.Local {
		// point clients to localstack
		cfg, err = config.InitLocalCfg(
			config.LOCALSTACK_HOST_NAME,
			config.LOCALSTACK_PORT,
			driver.Config.Region,
		)
		if err != nil {
			return nil, err
		}
	} else {
		// Load the configuration using the aws config file
		cfg, err = config.InitCfg(driver.Config.Region)
		if err != nil {
			return nil, err
		}
	}

	// create and add clients to driver
	driver.FaasAPI = lambda.NewFromConfig(*cfg)
	driver.QueuesAPI = sqs.NewFromConfig(*cfg)
	driver.IdentityAPI = sts.NewFromConfig(*cfg)

	return driver, nil
}

// queueURL returns the configured queue url or builds it from the queue name
func (d *Driver) queueURL(ctx context.Context) (string, error) {
	handlerConf := &config.HandlerConfig{
		QueueURL:  d.Config.QueueURL,
		AccountID: d.Config.AccountID,
		Region:    d.Config.Region,
		Local:     d.Config.Local,
		LocalHost: config.LOCALSTACK_HOST_NAME,
	}
	if d.Config.QueueName != "" {
		handlerConf.QueueName = fifoQueueName(d.Config.QueueName)
	}

	return lambdas.ResolveQueueURL(ctx, handlerConf, d.IdentityAPI)
}
