package notifier

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/dto/responses"
	"sync"
)

// Recorder keeps notifications in memory. Useful in tests and as a
// single-user feed.
type Recorder struct {
	mu            sync.Mutex
	notifications []responses.Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Error(ctx context.Context, message string) {
	r.add(contracts.NotificationLevelError, message)
}

func (r *Recorder) Success(ctx context.Context, message string) {
	r.add(contracts.NotificationLevelSuccess, message)
}

func (r *Recorder) add(level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, responses.Notification{Level: level, Message: message})
}

// Messages returns what was recorded so far without clearing it.
func (r *Recorder) Messages() []responses.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]responses.Notification(nil), r.notifications...)
}

func (r *Recorder) Drain(ctx context.Context) ([]responses.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drained := r.notifications
	r.notifications = nil
	if drained == nil {
		drained = []responses.Notification{}
	}
	return drained, nil
}
