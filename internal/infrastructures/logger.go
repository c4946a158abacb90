package infrastructures

import (
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	return logger
}

// ComponentLogger returns an entry tagged with the originating component name.
func ComponentLogger(component string) *logrus.Entry {
	return logger.WithField("component", component)
}
