package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the plain-text logger used for process lifecycle
// lines and CLI diagnostics.
func NewLogrusLogger(env string, output io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	switch env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(io.MultiWriter(output, file))
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
