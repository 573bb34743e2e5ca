package store

import (
	"errors"
	"log"
)

// ErrAuthRequired is returned when the session gate blocks a mutating action.
// No local mutation and no remote write happen in that case.
var ErrAuthRequired = errors.New("authentication required")

// SyncOutcome reports how the remote phase of a mutation ended. A nil Err
// means the write was accepted by the backend; it says nothing about ordering
// relative to other in-flight writes.
type SyncOutcome struct {
	Op     string
	Entity string
	ID     string
	Err    error
}

// Mutation pairs the optimistically applied value with the remote phase.
// The Sync channel yields at most one outcome and is closed afterwards; in
// demo mode it is closed immediately without an outcome.
type Mutation[T any] struct {
	Applied T
	Sync    <-chan SyncOutcome
}

// SyncPolicy decides what happens when a remote write fails. The store never
// rolls back the local phase; a policy may log, count, or queue retries, but
// the in-memory state stays the source of truth.
type SyncPolicy interface {
	HandleFailure(out SyncOutcome)
}

// LogSyncPolicy logs remote failures and does nothing else. This preserves
// the local-wins contract: state diverges silently until the next full load.
type LogSyncPolicy struct{}

func (LogSyncPolicy) HandleFailure(out SyncOutcome) {
	log.Printf("sync: %s %s %s failed: %v", out.Op, out.Entity, out.ID, out.Err)
}

func closedSync() <-chan SyncOutcome {
	ch := make(chan SyncOutcome)
	close(ch)
	return ch
}
