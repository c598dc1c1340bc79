package contact

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/portfolio-site/internal/types"
)

// DefaultDelay is the simulated delivery latency of DelaySender
const DefaultDelay = 1500 * time.Millisecond

// Sender delivers a validated contact form
type Sender interface {
	Send(ctx context.Context, form types.ContactForm) error
}

// DelaySender stands in for a real delivery channel: it waits Delay and reports success.
type DelaySender struct {
	Delay time.Duration
}

// Send waits for the configured delay or until ctx is done.
func (d DelaySender) Send(ctx context.Context, _ types.ContactForm) error {
	timer := time.NewTimer(d.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receipt acknowledges a successful submission
type Receipt struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Submitter validates and delivers contact forms
type Submitter struct {
	sender    Sender
	validator *validator.Validate
	timeout   time.Duration
}

// Option configures a Submitter
type Option func(*Submitter)

// WithTimeout bounds each delivery. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Submitter) {
		s.timeout = d
	}
}

// NewSubmitter creates a submitter delivering through sender
func NewSubmitter(sender Sender, opts ...Option) *Submitter {
	s := &Submitter{
		sender:    sender,
		validator: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates form and hands it to the sender. On success the form is
// reset to empty values; on any failure it is left untouched so the visitor
// keeps what they typed. Cancelling ctx aborts delivery.
func (s *Submitter) Submit(ctx context.Context, form *types.ContactForm) (Receipt, error) {
	if err := s.Validate(*form); err != nil {
		return Receipt{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.sender.Send(ctx, *form); err != nil {
		log.Printf("[contact] Submission failed: %v", err)
		return Receipt{}, &SubmissionError{Cause: err}
	}

	form.Reset()
	return Receipt{ID: uuid.New(), SubmittedAt: time.Now().UTC()}, nil
}

// Validate checks the required fields. It returns the first failing field.
func (s *Submitter) Validate(form types.ContactForm) error {
	err := s.validator.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ValidationError{Field: ve.Field(), Tag: ve.Tag()}
	}
	return &ValidationError{Field: "form", Tag: "invalid"}
}
