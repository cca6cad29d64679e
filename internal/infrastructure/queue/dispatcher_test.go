package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostaly/rooms-api/internal/core/ports"
)

type recordingAuditRepo struct {
	mu     sync.Mutex
	events []ports.AuditEvent
}

func (r *recordingAuditRepo) Insert(_ context.Context, event ports.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAuditRepo) snapshot() []ports.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_PersistsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := &recordingAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.AuditEvent{Actor: "alice", Action: ports.AuditLoginOK})
	d.Enqueue(ports.AuditEvent{Actor: "bob", Action: ports.AuditRegister})

	waitFor(t, func() bool { return len(repo.snapshot()) == 2 })
}

// Events for the same actor land on the same worker, so their relative order
// survives the asynchronous hand-off.
func TestDispatcher_PerActorOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := &recordingAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())
	d.Start(ctx)

	actions := []string{
		ports.AuditRegister,
		ports.AuditLoginFailed,
		ports.AuditLoginOK,
		ports.AuditLogout,
	}
	for _, a := range actions {
		d.Enqueue(ports.AuditEvent{Actor: "alice", Action: a})
	}

	waitFor(t, func() bool { return len(repo.snapshot()) == len(actions) })

	got := repo.snapshot()
	for i, a := range actions {
		if got[i].Action != a {
			t.Fatalf("event %d: expected %s, got %s", i, a, got[i].Action)
		}
	}
}
