package notifier

import (
	"context"
	"docai-portal/internal/app/contracts"

	"github.com/sirupsen/logrus"
)

type logrusNotifier struct {
	logger *logrus.Logger
}

// NewLogrusNotifier prints notifications on the terminal.
func NewLogrusNotifier(logger *logrus.Logger) contracts.Notifier {
	return &logrusNotifier{logger: logger}
}

func (n *logrusNotifier) Error(ctx context.Context, message string) {
	n.logger.Error(message)
}

func (n *logrusNotifier) Success(ctx context.Context, message string) {
	n.logger.Info(message)
}
