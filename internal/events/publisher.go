package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// ValidationRequest is the payload carried on the request and retry topics.
type ValidationRequest struct {
	SubmissionID string    `json:"submissionId"`
	RequestedAt  time.Time `json:"requestedAt"`
}

// DeadLetter wraps an event that could not be processed.
type DeadLetter struct {
	SubmissionID string    `json:"submissionId,omitempty"`
	Payload      string    `json:"payload"`
	Reason       string    `json:"reason"`
	FailedAt     time.Time `json:"failedAt"`
}

// Publisher produces validation pipeline events to Kafka.
type Publisher struct {
	client *kgo.Client
	now    func() time.Time
}

func NewPublisher(client *kgo.Client) (*Publisher, error) {
	if client == nil {
		return nil, fmt.Errorf("kafka client is required")
	}
	return &Publisher{client: client, now: time.Now}, nil
}

// PublishValidationRequest enqueues a submission for validation.
func (p *Publisher) PublishValidationRequest(ctx context.Context, id domain.SubmissionID) error {
	return p.produce(ctx, TopicValidationRequests, id.String(), ValidationRequest{
		SubmissionID: id.String(),
		RequestedAt:  p.now().UTC(),
	})
}

// PublishRetry re-enqueues a submission whose claims were flagged for retry.
func (p *Publisher) PublishRetry(ctx context.Context, id domain.SubmissionID) error {
	return p.produce(ctx, TopicValidationRetries, id.String(), ValidationRequest{
		SubmissionID: id.String(),
		RequestedAt:  p.now().UTC(),
	})
}

// PublishDeadLetter parks an unprocessable event for manual inspection.
func (p *Publisher) PublishDeadLetter(ctx context.Context, submissionID string, payload []byte, reason string) error {
	return p.produce(ctx, TopicDeadLetter, submissionID, DeadLetter{
		SubmissionID: submissionID,
		Payload:      string(payload),
		Reason:       reason,
		FailedAt:     p.now().UTC(),
	})
}

func (p *Publisher) produce(ctx context.Context, topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling %s event: %w", topic, err)
	}
	record := &kgo.Record{Topic: topic, Key: []byte(key), Value: value}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("producing to %s: %w", topic, err)
	}
	return nil
}
