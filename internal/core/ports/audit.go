package ports

import (
	"context"
	"time"
)

// Audit actions recorded by the services.
const (
	AuditRegister    = "user.register"
	AuditLoginOK     = "user.login"
	AuditLoginFailed = "user.login_failed"
	AuditLogout      = "user.logout"
	AuditRoomTypeNew = "room_type.created"
	AuditRoomCreated = "room.created"
	AuditRoomUpdated = "room.updated"
	AuditRoomDeleted = "room.deleted"
)

// AuditEvent is a single security-relevant action taken by an actor.
type AuditEvent struct {
	Actor     string
	Action    string
	Subject   string
	Timestamp time.Time
}

// AuditTrail accepts events for asynchronous recording. Enqueue must not
// block the request path beyond bounded buffering.
type AuditTrail interface {
	Enqueue(event AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event AuditEvent) error
}
