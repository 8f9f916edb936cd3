package logs

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_ParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, log.InfoLevel, ParseLevel(""))
	assert.Equal(t, log.InfoLevel, ParseLevel("verbose"))
}

func Test_ConfigLogLevelToLevel(t *testing.T) {
	assert.Equal(t, log.InfoLevel, ConfigLogLevelToLevel(1))
	assert.Equal(t, log.ErrorLevel, ConfigLogLevelToLevel(2))
	assert.Equal(t, log.WarnLevel, ConfigLogLevelToLevel(3))
	assert.Equal(t, log.DebugLevel, ConfigLogLevelToLevel(4))
	assert.Equal(t, log.ErrorLevel, ConfigLogLevelToLevel(0))
}
