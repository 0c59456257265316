package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/submission"
	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

// Validator runs the validation pass for a single submission.
type Validator interface {
	ValidateSubmission(ctx context.Context, id domain.SubmissionID) (*submission.Outcome, error)
}

// RetryScheduler re-enqueues a submission after the retry delay has elapsed.
type RetryScheduler interface {
	Schedule(id domain.SubmissionID)
}

// DeadLetterer parks events that can never be processed.
type DeadLetterer interface {
	PublishDeadLetter(ctx context.Context, submissionID string, payload []byte, reason string) error
}

// Locker guards against two consumers validating the same submission at once.
type Locker interface {
	Acquire(ctx context.Context, id domain.SubmissionID, ttl time.Duration) (bool, error)
	Release(ctx context.Context, id domain.SubmissionID) error
}

const defaultLockTTL = 10 * time.Minute

// Consumer reads validation requests from Kafka and drives the validator.
type Consumer struct {
	client     *kgo.Client
	validator  Validator
	retries    RetryScheduler
	deadletter DeadLetterer
	lock       Locker
	lockTTL    time.Duration
	logger     *slog.Logger
}

type ConsumerOption func(*Consumer)

func WithConsumerLogger(logger *slog.Logger) ConsumerOption {
	return func(c *Consumer) { c.logger = logger }
}

func WithLock(lock Locker) ConsumerOption {
	return func(c *Consumer) { c.lock = lock }
}

func WithLockTTL(ttl time.Duration) ConsumerOption {
	return func(c *Consumer) { c.lockTTL = ttl }
}

func NewConsumer(client *kgo.Client, validator Validator, retries RetryScheduler, deadletter DeadLetterer, opts ...ConsumerOption) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("kafka client is required")
	}
	if validator == nil {
		return nil, fmt.Errorf("validator is required")
	}
	if retries == nil {
		return nil, fmt.Errorf("retry scheduler is required")
	}
	if deadletter == nil {
		return nil, fmt.Errorf("dead letter publisher is required")
	}
	c := &Consumer{
		client:     client,
		validator:  validator,
		retries:    retries,
		deadletter: deadletter,
		lockTTL:    defaultLockTTL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Run polls until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.ErrorContext(ctx, "fetch error",
				"topic", topic, "partition", partition, "error", err)
		})
		fetches.EachRecord(func(record *kgo.Record) {
			c.handle(ctx, record)
		})
	}
}

func (c *Consumer) handle(ctx context.Context, record *kgo.Record) {
	var req ValidationRequest
	if err := json.Unmarshal(record.Value, &req); err != nil {
		c.park(ctx, "", record.Value, fmt.Sprintf("malformed event: %v", err))
		return
	}
	id, err := domain.ParseSubmissionID(req.SubmissionID)
	if err != nil {
		c.park(ctx, req.SubmissionID, record.Value, fmt.Sprintf("invalid submission id: %v", err))
		return
	}

	if c.lock != nil {
		acquired, err := c.lock.Acquire(ctx, id, c.lockTTL)
		if err != nil {
			c.logger.WarnContext(ctx, "lock acquisition failed, retrying later",
				"submission_id", id, "error", err)
			c.retries.Schedule(id)
			return
		}
		if !acquired {
			c.logger.InfoContext(ctx, "submission already being validated, skipping",
				"submission_id", id)
			return
		}
		defer func() {
			if err := c.lock.Release(ctx, id); err != nil {
				c.logger.WarnContext(ctx, "lock release failed",
					"submission_id", id, "error", err)
			}
		}()
	}

	outcome, err := c.validator.ValidateSubmission(ctx, id)
	switch {
	case err == nil:
		if outcome.RetryNeeded {
			c.retries.Schedule(id)
		}
	case errors.Is(err, sentinel.ErrInvalidState), errors.Is(err, sentinel.ErrNotFound):
		c.park(ctx, req.SubmissionID, record.Value, err.Error())
	case sentinel.IsTransient(err):
		c.logger.WarnContext(ctx, "transient validation failure, retrying later",
			"submission_id", id, "error", err)
		c.retries.Schedule(id)
	default:
		c.park(ctx, req.SubmissionID, record.Value, err.Error())
	}
}

func (c *Consumer) park(ctx context.Context, submissionID string, payload []byte, reason string) {
	c.logger.ErrorContext(ctx, "dead-lettering validation request",
		"submission_id", submissionID, "reason", reason)
	if err := c.deadletter.PublishDeadLetter(ctx, submissionID, payload, reason); err != nil {
		c.logger.ErrorContext(ctx, "dead letter publish failed",
			"submission_id", submissionID, "error", err)
	}
}
