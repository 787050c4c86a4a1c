package schema

import (
	"bytes"
	"io"
	"log/slog"
	"time"
)

// Outcome labels the result of a validation call.
type Outcome string

const (
	OutcomeValid      Outcome = "valid"
	OutcomeInvalid    Outcome = "invalid"
	OutcomeParseError Outcome = "parse_error"
)

// Observer is notified after every validation call.
type Observer func(outcome Outcome, elapsed time.Duration)

// Validator binds a schema to optional logging and observation.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	root     *Object
	logger   *slog.Logger
	observer Observer
}

// Option defines a functional option for configuring the Validator.
type Option func(*Validator)

// WithLogger sets a structured logger. Failures are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithObserver registers a callback invoked after every validation.
func WithObserver(obs Observer) Option {
	return func(v *Validator) {
		v.observer = obs
	}
}

// NewValidator creates a Validator for root.
func NewValidator(root *Object, opts ...Option) *Validator {
	v := &Validator{root: root}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return v
}

// Schema returns the root object.
func (v *Validator) Schema() *Object {
	return v.root
}

// Validate checks an already decoded data tree.
func (v *Validator) Validate(data map[string]any) error {
	start := time.Now()
	err := Validate(data, v.root)
	v.finish(start, err, OutcomeInvalid)
	return err
}

// ValidateJSON decodes text and checks it.
func (v *Validator) ValidateJSON(text []byte) error {
	start := time.Now()
	data, err := Decode(bytes.NewReader(text))
	if err != nil {
		v.finish(start, err, OutcomeParseError)
		return err
	}
	err = Validate(data, v.root)
	v.finish(start, err, OutcomeInvalid)
	return err
}

func (v *Validator) finish(start time.Time, err error, failure Outcome) {
	outcome := OutcomeValid
	if err != nil {
		outcome = failure
		v.logger.Debug("validation failed", "outcome", outcome, "err", err)
	}
	if v.observer != nil {
		v.observer(outcome, time.Since(start))
	}
}
