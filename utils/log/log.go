package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// init keeps Log usable from tests and scripts whose entry point is not main.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	env := os.Getenv("BITFEST_ENV")
	if env == "prod" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(logrus.Fields{
		"service":        "api",
		"is_development": env != "prod",
	})
}
