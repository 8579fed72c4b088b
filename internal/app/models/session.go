package models

import "time"

// Session is the (token, user) pair of a logged-in identity.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type SessionEventKind string

const (
	SessionEventLogin          SessionEventKind = "login"
	SessionEventRegister       SessionEventKind = "register"
	SessionEventLogout         SessionEventKind = "logout"
	SessionEventExpired        SessionEventKind = "expired"
	SessionEventProfileUpdated SessionEventKind = "profile_updated"
)

type SessionEvent struct {
	ID              string           `json:"id" bson:"_id"`
	PortalSessionID string           `json:"portalSessionId,omitempty" bson:"portalSessionId,omitempty"`
	UserID          string           `json:"userId" bson:"userId"`
	Role            Role             `json:"role" bson:"role"`
	Kind            SessionEventKind `json:"kind" bson:"kind"`
	At              time.Time        `json:"at" bson:"at"`
}
