// Package contactform coordinates a contact form submission attempt:
// rate-limit check, validation, persistence, and best-effort notification,
// exposing a single visible status at every point.
package contactform

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/ingcor/backend/internal/form"
	"github.com/ingcor/backend/internal/model"
)

// State identifies where an attempt is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRateLimited
	StatePersisting
	StateNotifying
	StateSucceeded
	StateFailed
)

// FailureReason classifies a Failed status so callers can map it without
// parsing the user-facing message.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	ReasonThrottled
	ReasonValidation
	ReasonPersistence
)

// Status is the one message-bearing state visible to the caller. A new
// attempt or user interaction overwrites it.
type Status struct {
	State   State         `json:"-"`
	Reason  FailureReason `json:"-"`
	Message string        `json:"message"`
}

// User-facing status messages (the site is Spanish-language).
const (
	msgThrottled  = "Has enviado demasiados mensajes. Por favor espera unos minutos antes de intentar de nuevo."
	msgPersistErr = "Hubo un error al enviar el mensaje. Por favor intenta de nuevo."
	msgSuccess    = "¡Mensaje enviado! Nos pondremos en contacto contigo pronto."
)

// RateLimiter gates submission attempts. Only RecordSubmission consumes quota.
type RateLimiter interface {
	Allow() bool
	RecordSubmission()
}

// Persister stores an accepted message. Implementations populate msg.ID and
// timestamps.
type Persister interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
}

// Notifier delivers an out-of-band notification for a stored message. Its
// outcome never affects the submission result.
type Notifier interface {
	Notify(ctx context.Context, msg *model.ContactMessage) error
}

// Orchestrator owns the form state and the submission state machine for one
// form instance. The loading flag is the sole re-entrancy guard: a Submit
// while another is in flight is ignored.
type Orchestrator struct {
	limiter   RateLimiter
	persister Persister
	notifier  Notifier

	mu      sync.Mutex
	loading bool
	state   State
	status  Status
	form    form.Form
}

// New creates an Orchestrator in the Idle state.
func New(limiter RateLimiter, persister Persister, notifier Notifier) *Orchestrator {
	return &Orchestrator{
		limiter:   limiter,
		persister: persister,
		notifier:  notifier,
		state:     StateIdle,
	}
}

// SetField sanitizes and stores one field value, and returns the stored
// value. Any terminal status from a prior attempt is cleared: interacting
// with the form returns it to Idle.
func (o *Orchestrator) SetField(field, value string) string {
	clean := form.Sanitize(field, value)

	o.mu.Lock()
	defer o.mu.Unlock()
	switch field {
	case "name":
		o.form.Name = clean
	case "email":
		o.form.Email = clean
	case "phone":
		o.form.Phone = clean
	case "message":
		o.form.Message = clean
	}
	if o.state == StateSucceeded || o.state == StateFailed {
		o.state = StateIdle
		o.status = Status{}
	}
	return clean
}

// Form returns a snapshot of the current form state.
func (o *Orchestrator) Form() form.Form {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form
}

// Status returns the current visible status.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Loading reports whether a submission is in flight.
func (o *Orchestrator) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// Submit runs one submission attempt and returns the terminal status.
// The rate-limit quota is only consumed after successful persistence, so
// invalid or throttled attempts never count against the sender.
func (o *Orchestrator) Submit(ctx context.Context) Status {
	o.mu.Lock()
	if o.loading {
		// Re-entrant submit while an attempt is in flight: ignore.
		s := o.status
		o.mu.Unlock()
		return s
	}
	o.loading = true
	o.state = StateValidating
	o.status = Status{}
	f := o.form
	o.mu.Unlock()

	if !o.limiter.Allow() {
		o.setState(StateRateLimited)
		return o.finish(StateFailed, ReasonThrottled, msgThrottled)
	}

	if err := form.Validate(f); err != nil {
		return o.finish(StateFailed, ReasonValidation, form.Message(err))
	}

	msg := buildMessage(f)

	o.setState(StatePersisting)
	if err := o.persister.Create(ctx, msg); err != nil {
		slog.Error("contact message persistence failed", "error", err)
		return o.finish(StateFailed, ReasonPersistence, msgPersistErr)
	}

	o.limiter.RecordSubmission()

	o.setState(StateNotifying)
	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		if err := o.notifier.Notify(notifyCtx, msg); err != nil {
			slog.Warn("contact notification failed", "error", err)
		}
	}()

	o.mu.Lock()
	o.form = form.Form{}
	o.mu.Unlock()
	return o.finish(StateSucceeded, ReasonNone, msgSuccess)
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) finish(s State, reason FailureReason, message string) Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = s
	o.status = Status{State: s, Reason: reason, Message: message}
	o.loading = false
	return o.status
}

// buildMessage trims every field and normalizes an empty phone to nil.
func buildMessage(f form.Form) *model.ContactMessage {
	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
	if phone := strings.TrimSpace(f.Phone); phone != "" {
		msg.Phone = &phone
	}
	return msg
}
