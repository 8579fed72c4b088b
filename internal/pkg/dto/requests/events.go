package requests

import "time"

// PortalEvent is published to the portal event queue.
type PortalEvent struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	UserID     string            `json:"userId"`
	Role       string            `json:"role"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}
