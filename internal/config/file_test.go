package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadLocalConfigFile_HappyPath(t *testing.T) {
	t.Setenv("QUEUE_URL", "")
	t.Setenv("MESSAGE_GROUP_ID", "")

	path := filepath.Join(t.TempDir(), "sqsfifo.yaml")
	content := `region: eu-west-2
accountID: "000000000000"
local: true
logLevel: 4
queueName: orders
contentDedupe: true
producerFunction: order-producer
`
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))

	conf, err := ReadLocalConfigFile(path)
	require.Nil(t, err)

	assert.Equal(t, &Config{
		Region:           "eu-west-2",
		AccountID:        "000000000000",
		Local:            true,
		LogLevel:         4,
		QueueName:        "orders",
		DefaultGroupID:   "defaultGroup",
		ContentDedupe:    true,
		ProducerFunction: "order-producer",
	}, conf)
}

func Test_ReadLocalConfigFile_MissingFile(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("QUEUE_URL", "https://sqs.eu-west-1.amazonaws.com/000000000000/orders.fifo")
	t.Setenv("MESSAGE_GROUP_ID", "orders")

	conf, err := ReadLocalConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Nil(t, err)

	assert.Equal(t, "eu-west-1", conf.Region)
	assert.Equal(t, "https://sqs.eu-west-1.amazonaws.com/000000000000/orders.fifo", conf.QueueURL)
	assert.Equal(t, "orders", conf.DefaultGroupID)
}

func Test_ReadLocalConfigFile_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqsfifo.yaml")
	require.Nil(t, os.WriteFile(path, []byte("region: [eu-west-2"), 0644))

	_, err := ReadLocalConfigFile(path)
	assert.NotNil(t, err)
}

func Test_LoadDotEnv(t *testing.T) {
	key := "SQSFIFO_DOTENV_TEST"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.Nil(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0644))

	err := LoadDotEnv(filepath.Join(dir, "missing.env"), path)
	require.Nil(t, err)
	assert.Equal(t, "from-file", os.Getenv(key))
}
