package logs

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// ConfigLogLevelToLevel maps the numeric level used in the cli config file
func ConfigLogLevelToLevel(level int) log.Level {
	switch level {
	case 1:
		return log.InfoLevel
	case 2:
		return log.ErrorLevel
	case 3:
		return log.WarnLevel
	case 4:
		return log.DebugLevel
	default:
		return log.ErrorLevel
	}
}

// ParseLevel maps a level name such as "debug" or "WARN" to a logrus level.
// Empty or unknown names fall back to info.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return log.InfoLevel
	}

	return level
}
