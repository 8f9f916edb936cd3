package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config represents the configuration file used by the cli
type Config struct {
	Region           string `yaml:"region"`
	AccountID        string `yaml:"accountID"`
	Local            bool   `yaml:"local"`
	LogLevel         int    `yaml:"logLevel"`
	QueueName        string `yaml:"queueName"`
	QueueURL         string `yaml:"queueURL"`
	DefaultGroupID   string `yaml:"defaultGroupID"`
	ContentDedupe    bool   `yaml:"contentDedupe"`
	ProducerFunction string `yaml:"producerFunction"`
}

// ReadLocalConfigFile reads the config file from the local file system.
// The path can be absolute or relative. Values missing from the file are
// taken from the environment.
func ReadLocalConfigFile(path string) (*Config, error) {
	var conf Config

	confFile, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err = yaml.Unmarshal(confFile, &conf); err != nil {
		return nil, err
	}

	if conf.Region == "" {
		conf.Region = os.Getenv("AWS_REGION")
	}
	if conf.QueueURL == "" {
		conf.QueueURL = os.Getenv("QUEUE_URL")
	}
	if conf.DefaultGroupID == "" {
		conf.DefaultGroupID = valueOrDefault(os.Getenv("MESSAGE_GROUP_ID"), DefaultMessageGroupID)
	}

	return &conf, nil
}

// LoadDotEnv loads the given env files into the process environment,
// existing variables win. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	for _, filename := range filenames {
		if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(filename); err != nil {
			return err
		}
	}

	return nil
}
