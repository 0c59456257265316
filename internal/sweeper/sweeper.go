// Package sweeper re-enqueues submissions whose claims were flagged for
// retry after an upstream outage. Flagged submissions sit in a pending set
// until their retry delay elapses, then a cron sweep publishes them back
// onto the validation request topic.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

const (
	defaultRetryDelay = 5 * time.Minute
	defaultSchedule   = "@every 1m"
)

// Publisher re-enqueues a submission for validation.
type Publisher interface {
	PublishRetry(ctx context.Context, id domain.SubmissionID) error
}

// Sweeper holds retry-flagged submissions until they are due.
type Sweeper struct {
	publisher Publisher
	delay     time.Duration
	schedule  string
	logger    *slog.Logger
	now       func() time.Time

	cron *cron.Cron

	mu      sync.Mutex
	pending map[domain.SubmissionID]time.Time
}

type Option func(*Sweeper)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sweeper) { s.logger = logger }
}

func WithRetryDelay(delay time.Duration) Option {
	return func(s *Sweeper) { s.delay = delay }
}

func WithSchedule(schedule string) Option {
	return func(s *Sweeper) { s.schedule = schedule }
}

func WithNow(now func() time.Time) Option {
	return func(s *Sweeper) { s.now = now }
}

func New(publisher Publisher, opts ...Option) (*Sweeper, error) {
	if publisher == nil {
		return nil, fmt.Errorf("publisher is required")
	}
	s := &Sweeper{
		publisher: publisher,
		delay:     defaultRetryDelay,
		schedule:  defaultSchedule,
		logger:    slog.Default(),
		now:       time.Now,
		pending:   make(map[domain.SubmissionID]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Schedule marks a submission for re-validation after the retry delay.
// Scheduling an already-pending submission resets its timer.
func (s *Sweeper) Schedule(id domain.SubmissionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[id] = s.now().Add(s.delay)
}

// Pending reports how many submissions are awaiting re-validation.
func (s *Sweeper) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Start begins the periodic sweep. It stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("registering sweep schedule %q: %w", s.schedule, err)
	}
	s.cron = c
	c.Start()

	go func() {
		<-ctx.Done()
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()
	return nil
}

// Sweep publishes every due submission. Submissions whose publish fails
// stay pending and are retried on the next sweep.
func (s *Sweeper) Sweep(ctx context.Context) {
	due := s.takeDue()
	for _, id := range due {
		if err := s.publisher.PublishRetry(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "retry publish failed, keeping pending",
				"submission_id", id, "error", err)
			s.Schedule(id)
			continue
		}
		s.logger.InfoContext(ctx, "submission re-enqueued for validation",
			"submission_id", id)
	}
}

func (s *Sweeper) takeDue() []domain.SubmissionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var due []domain.SubmissionID
	for id, readyAt := range s.pending {
		if !readyAt.After(now) {
			due = append(due, id)
			delete(s.pending, id)
		}
	}
	return due
}
