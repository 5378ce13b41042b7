// Package ratelimit implements the advisory sliding-window throttle for the
// public contact form. It counts accepted submissions inside a fixed time
// window and keeps the record in a small durable store so the count survives
// restarts. The throttle is advisory: a corrupt or unreadable record never
// blocks a submission.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// MaxMessages is the number of accepted submissions allowed per window.
	MaxMessages = 3
	// TimeWindow is the width of the sliding window.
	TimeWindow = 5 * time.Minute
)

// Record holds the accepted-submission instants as millisecond epoch
// timestamps, oldest first.
type Record struct {
	Timestamps []int64 `json:"timestamps"`
}

// Prune returns a copy of r keeping only timestamps still inside the window
// ending at now. It never mutates r.
func Prune(r Record, now time.Time, window time.Duration) Record {
	nowMs := now.UnixMilli()
	windowMs := window.Milliseconds()
	kept := make([]int64, 0, len(r.Timestamps))
	for _, ts := range r.Timestamps {
		if nowMs-ts < windowMs {
			kept = append(kept, ts)
		}
	}
	return Record{Timestamps: kept}
}

// Limiter evaluates and records contact form submissions against the window.
// Calls on a single Limiter are serialized; two Limiters sharing a store path
// can still race, which is accepted for an advisory control.
type Limiter struct {
	store  Store
	now    func() time.Time
	max    int
	window time.Duration

	mu sync.Mutex
}

// NewLimiter creates a Limiter over the given store with the default
// MaxMessages / TimeWindow configuration.
func NewLimiter(store Store) *Limiter {
	return &Limiter{
		store:  store,
		now:    time.Now,
		max:    MaxMessages,
		window: TimeWindow,
	}
}

// Allow reports whether another submission fits in the current window.
// The pruned record is written back so stale entries do not accumulate.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	pruned := Prune(l.read(), l.now(), l.window)
	l.write(pruned)
	return len(pruned.Timestamps) < l.max
}

// RecordSubmission appends the current instant to the record. It is called
// only after a submission has been successfully persisted.
func (l *Limiter) RecordSubmission() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	pruned := Prune(l.read(), now, l.window)
	pruned.Timestamps = append(pruned.Timestamps, now.UnixMilli())
	l.write(pruned)
}

// read loads the record, falling back to an empty record on any error.
func (l *Limiter) read() Record {
	r, err := l.store.Read()
	if err != nil {
		return Record{}
	}
	return r
}

// write persists the record. Write failures are swallowed: the throttle must
// never block a user because its own bookkeeping failed.
func (l *Limiter) write(r Record) {
	_ = l.store.Write(r)
}
