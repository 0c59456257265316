package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/audit"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

type InMemoryStoreSuite struct {
	suite.Suite

	store *InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
}

// ====================================================================
// Append / ListBySubmission
// ====================================================================

func (s *InMemoryStoreSuite) TestAppendAndList() {
	ctx := context.Background()
	subA := domain.NewSubmissionID()
	subB := domain.NewSubmissionID()

	s.Run("events are returned in append order", func() {
		first := audit.Event{
			Action:       audit.ActionValidationStarted,
			SubmissionID: subA,
			Timestamp:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		}
		second := audit.Event{
			Action:       audit.ActionClaimValidated,
			SubmissionID: subA,
			ClaimID:      domain.NewClaimID(),
			Detail:       "status=VALID",
			Timestamp:    time.Date(2025, 6, 1, 9, 0, 1, 0, time.UTC),
		}
		s.Require().NoError(s.store.Append(ctx, first))
		s.Require().NoError(s.store.Append(ctx, second))

		events, err := s.store.ListBySubmission(ctx, subA)
		s.Require().NoError(err)
		s.Require().Len(events, 2)
		s.Equal(audit.ActionValidationStarted, events[0].Action)
		s.Equal(audit.ActionClaimValidated, events[1].Action)
		s.Equal("status=VALID", events[1].Detail)
	})

	s.Run("submissions are isolated from each other", func() {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			Action:       audit.ActionValidationCompleted,
			SubmissionID: subB,
		}))

		events, err := s.store.ListBySubmission(ctx, subB)
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal(audit.ActionValidationCompleted, events[0].Action)
	})

	s.Run("unknown submission returns no events", func() {
		events, err := s.store.ListBySubmission(ctx, domain.NewSubmissionID())
		s.Require().NoError(err)
		s.Empty(events)
	})

	s.Run("list returns a copy", func() {
		events, err := s.store.ListBySubmission(ctx, subA)
		s.Require().NoError(err)
		s.Require().NotEmpty(events)
		events[0].Action = "mutated"

		again, err := s.store.ListBySubmission(ctx, subA)
		s.Require().NoError(err)
		s.Equal(audit.ActionValidationStarted, again[0].Action)
	})
}

func (s *InMemoryStoreSuite) TestClear() {
	ctx := context.Background()
	sub := domain.NewSubmissionID()
	s.Require().NoError(s.store.Append(ctx, audit.Event{Action: audit.ActionValidationStarted, SubmissionID: sub}))

	s.store.Clear()

	events, err := s.store.ListBySubmission(ctx, sub)
	s.Require().NoError(err)
	s.Empty(events)
}
