package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

type capturingStore struct {
	events []Event
}

func (c *capturingStore) Append(_ context.Context, event Event) error {
	c.events = append(c.events, event)
	return nil
}

func (c *capturingStore) ListBySubmission(context.Context, domain.SubmissionID) ([]Event, error) {
	return c.events, nil
}

func TestPublisherStampsMissingTimestamp(t *testing.T) {
	store := &capturingStore{}
	pub := NewPublisher(store)

	before := time.Now()
	err := pub.Emit(context.Background(), Event{
		Action:       ActionValidationStarted,
		SubmissionID: domain.NewSubmissionID(),
	})
	require.NoError(t, err)

	require.Len(t, store.events, 1)
	got := store.events[0].Timestamp
	assert.False(t, got.IsZero())
	assert.False(t, got.Before(before))
}

func TestPublisherKeepsExplicitTimestamp(t *testing.T) {
	store := &capturingStore{}
	pub := NewPublisher(store)

	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	err := pub.Emit(context.Background(), Event{
		Action:       ActionClaimValidated,
		SubmissionID: domain.NewSubmissionID(),
		ClaimID:      domain.NewClaimID(),
		Timestamp:    stamp,
	})
	require.NoError(t, err)

	require.Len(t, store.events, 1)
	assert.Equal(t, stamp, store.events[0].Timestamp)
}
