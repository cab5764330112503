package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/dobcheck/pkg/logger"
	"github.com/dmitrymomot/dobcheck/pkg/user"
	"github.com/dmitrymomot/dobcheck/pkg/validator"
)

// Fetcher retrieves the user collection named by a resource identifier.
type Fetcher interface {
	Fetch(ctx context.Context, resource string) (user.Collection, error)
}

// SuccessReporter receives the full collection once a run validates every record.
type SuccessReporter interface {
	ReportSuccess(users user.Collection) error
}

// StateObserver is called after every run state transition.
type StateObserver func(from, to State)

// Pipeline fetches, validates and reports user collections.
// It keeps no state between runs.
type Pipeline struct {
	fetcher   Fetcher
	reporter  SuccessReporter
	validate  func(dateOfBirth string) error
	observers []StateObserver
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithReporter sets where successful collections are reported.
func WithReporter(r SuccessReporter) Option {
	return func(p *Pipeline) {
		p.reporter = r
	}
}

// WithDateValidator replaces the per-record date check. Failures that are not
// validator.ValidationErrors are propagated unchanged and end up unexpected.
func WithDateValidator(fn func(dateOfBirth string) error) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.validate = fn
		}
	}
}

// WithStateObserver registers an observer for run state transitions.
func WithStateObserver(obs StateObserver) Option {
	return func(p *Pipeline) {
		if obs != nil {
			p.observers = append(p.observers, obs)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

func New(fetcher Fetcher, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:  fetcher,
		validate: validator.ValidateDateOfBirth,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessUsers runs the pipeline once against resource. On success it reports
// and returns the collection unchanged. On failure it returns nil and a *Error;
// nothing is reported and nothing is retried.
func (p *Pipeline) ProcessUsers(ctx context.Context, resource string) (user.Collection, error) {
	start := time.Now()
	r := &run{current: StateStart, observers: p.stateObservers(ctx)}

	users, err := p.process(ctx, r, resource)
	if err != nil {
		classified := Classify(err)
		if terr := r.to(StateFailed); terr != nil {
			p.logger.ErrorContext(ctx, "run state", logger.Error(terr))
		}
		p.logger.ErrorContext(ctx, "users processing failed",
			logger.Resource(resource),
			logger.Kind(string(classified.Kind)),
			slog.String("message", classified.Message),
			slog.String("cause", classified.Cause),
			logger.Duration(time.Since(start)),
		)
		return nil, classified
	}

	if err := r.to(StateSucceeded); err != nil {
		return nil, Classify(err)
	}
	p.logger.InfoContext(ctx, "users processed",
		logger.Resource(resource),
		logger.Count(len(users)),
		logger.Duration(time.Since(start)),
	)
	return users, nil
}

func (p *Pipeline) process(ctx context.Context, r *run, resource string) (user.Collection, error) {
	if err := r.to(StateFetching); err != nil {
		return nil, err
	}
	users, err := p.fetch(ctx, resource)
	if err != nil {
		return nil, err
	}

	if err := r.to(StateValidating); err != nil {
		return nil, err
	}
	if err := p.validateAll(ctx, users); err != nil {
		return nil, err
	}

	if p.reporter != nil {
		if err := p.reporter.ReportSuccess(users); err != nil {
			return nil, fmt.Errorf("report users: %w", err)
		}
	}
	return users, nil
}

// fetch reduces any failure to its classification: read errors keep message
// and cause, everything else becomes unexpected.
func (p *Pipeline) fetch(ctx context.Context, resource string) (user.Collection, error) {
	users, err := p.fetcher.Fetch(ctx, resource)
	if err != nil {
		return nil, Classify(err)
	}
	p.logger.InfoContext(ctx, "users fetched",
		logger.Component("fetcher"),
		logger.Resource(resource),
		logger.Count(len(users)),
	)
	return users, nil
}

// validateAll checks records in order and stops at the first failure.
func (p *Pipeline) validateAll(ctx context.Context, users user.Collection) error {
	for i, u := range users {
		err := p.validate(u.DateOfBirth)
		if err == nil {
			continue
		}

		errs := validator.ExtractValidationErrors(err)
		if errs == nil {
			return err
		}

		p.logger.WarnContext(ctx, "invalid record",
			logger.Component("validator"),
			logger.RecordIndex(i),
			logger.UserName(u.Name),
			logger.Error(err),
		)
		return &Error{
			Kind:    KindValidation,
			Message: fmt.Sprintf("Validation error for user %s: %s", u.Name, errs.Message()),
		}
	}
	return nil
}

func (p *Pipeline) stateObservers(ctx context.Context) []StateObserver {
	obs := make([]StateObserver, 0, len(p.observers)+1)
	obs = append(obs, func(from, to State) {
		p.logger.DebugContext(ctx, "run state changed",
			slog.String("from", string(from)),
			logger.State(string(to)),
		)
	})
	return append(obs, p.observers...)
}
