package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/josenarvaezp/sqsfifo/internal/config"
	"github.com/josenarvaezp/sqsfifo/internal/driver"
	"github.com/josenarvaezp/sqsfifo/internal/logs"
	"github.com/josenarvaezp/sqsfifo/pkg/lambdas"
)

// CLI for driver
var (
	// Used for CLI flags
	configPath   string
	queueName    string
	withDLQ      bool
	body         string
	groupID      string
	functionName string
)

var jobDriver *driver.Driver

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "sqsfifo.yaml", "path to the cli config file")

	setupCmd.Flags().StringVar(&queueName, "name", "", "name of the FIFO queue to create")
	setupCmd.Flags().BoolVar(&withDLQ, "with-dlq", false, "create a dead-letter queue and attach it as redrive target")
	setupCmd.MarkFlagRequired("name")

	sendCmd.Flags().StringVar(&body, "body", "", "message body")
	sendCmd.Flags().StringVar(&groupID, "group", "", "message group id")

	invokeCmd.Flags().StringVar(&functionName, "function", "", "name or arn of the producer lambda")
	invokeCmd.Flags().StringVar(&body, "body", "", "message body")
	invokeCmd.Flags().StringVar(&groupID, "group", "", "message group id")

	rootCmd.AddCommand(setupCmd, sendCmd, invokeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initDriver reads the cli configuration and creates the driver
func initDriver(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		logrus.WithError(err).Error("Error reading .env file")
		return err
	}

	conf, err := config.ReadLocalConfigFile(configPath)
	if err != nil {
		logrus.WithField("File name", configPath).WithError(err).Error("Error reading config file")
		return err
	}

	// set logger
	logrus.SetLevel(logs.ConfigLogLevelToLevel(conf.LogLevel))

	jobDriver, err = driver.NewDriver(conf)
	if err != nil {
		logrus.WithError(err).Error("Error initializing driver")
		return err
	}

	return nil
}

var rootCmd = &cobra.Command{
	Use:               "sqsfifo",
	Short:             "sqsfifo manages the FIFO queue used by the order producer and consumer lambdas",
	Long:              `sqsfifo manages the FIFO queue used by the order producer and consumer lambdas`,
	PersistentPreRunE: initDriver,
	SilenceUsage:      true,
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the FIFO queue",
	Long:  `Create the FIFO queue, optionally with a dead-letter queue as redrive target`,
	RunE: func(cmd *cobra.Command, args []string) error {
		driverLogger := logrus.WithFields(logrus.Fields{
			"Queue name": queueName,
		})

		info, err := jobDriver.CreateFIFOQueue(context.Background(), queueName, withDLQ)
		if err != nil {
			driverLogger.WithError(err).Error("Error creating queue")
			return err
		}

		fmt.Println("Queue URL: ", info.URL)
		fmt.Println("Queue ARN: ", info.ARN)
		if info.DLQURL != "" {
			fmt.Println("Dead-letter queue URL: ", info.DLQURL)
		}

		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a message to the FIFO queue",
	Long:  `Send a message to the FIFO queue with the same defaults the producer lambda uses`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := lambdas.ProducerInput{
			MessageBody:    lambdas.InputValue(body),
			MessageGroupID: lambdas.InputValue(groupID),
		}

		messageID, err := jobDriver.Send(context.Background(), input)
		if err != nil {
			logrus.WithError(err).Error("Error sending message")
			return err
		}

		fmt.Println("Message sent with ID: ", aws.ToString(messageID))
		return nil
	},
}

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Invoke the producer lambda",
	Long:  `Invoke the deployed producer lambda and print its response`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := lambdas.ProducerInput{
			MessageBody:    lambdas.InputValue(body),
			MessageGroupID: lambdas.InputValue(groupID),
		}

		response, err := jobDriver.InvokeProducer(context.Background(), functionName, input)
		if err != nil {
			logrus.WithField("Function", functionName).WithError(err).Error("Error invoking producer")
			return err
		}

		fmt.Printf("Status code: %d\nBody: %s\n", response.StatusCode, response.Body)
		if response.StatusCode != 200 {
			return fmt.Errorf("producer returned status %d", response.StatusCode)
		}

		return nil
	},
}
