//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/audit"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/testutil/containers"
)

const schema = `
CREATE TABLE IF NOT EXISTS validation_audit (
    id            UUID PRIMARY KEY,
    action        TEXT NOT NULL,
    submission_id UUID NOT NULL,
    claim_id      UUID,
    detail        TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type PostgresStoreSuite struct {
	suite.Suite

	pg    *containers.PostgresContainer
	store *Store
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	_, err := s.pg.DB.Exec(schema)
	s.Require().NoError(err)
	s.store = New(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.pg.DB.Exec("TRUNCATE validation_audit")
	s.Require().NoError(err)
}

// ====================================================================
// Append / ListBySubmission
// ====================================================================

func (s *PostgresStoreSuite) TestAppendAndList() {
	ctx := context.Background()
	sub := domain.NewSubmissionID()
	claim := domain.NewClaimID()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Action:       audit.ActionValidationStarted,
		SubmissionID: sub,
		Timestamp:    base,
	}))
	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Action:       audit.ActionClaimValidated,
		SubmissionID: sub,
		ClaimID:      claim,
		Detail:       "status=VALID",
		Timestamp:    base.Add(time.Second),
	}))

	events, err := s.store.ListBySubmission(ctx, sub)
	s.Require().NoError(err)
	s.Require().Len(events, 2)

	s.Equal(audit.ActionValidationStarted, events[0].Action)
	s.Equal(sub, events[0].SubmissionID)
	s.True(events[0].ClaimID.IsNil())
	s.True(events[0].Timestamp.Equal(base))

	s.Equal(audit.ActionClaimValidated, events[1].Action)
	s.Equal(claim, events[1].ClaimID)
	s.Equal("status=VALID", events[1].Detail)
}

func (s *PostgresStoreSuite) TestListOrdersByTimestamp() {
	ctx := context.Background()
	sub := domain.NewSubmissionID()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// Insert out of order; the query must sort by created_at.
	for _, offset := range []time.Duration{2 * time.Second, 0, time.Second} {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			Action:       audit.ActionClaimValidated,
			SubmissionID: sub,
			ClaimID:      domain.NewClaimID(),
			Timestamp:    base.Add(offset),
		}))
	}

	events, err := s.store.ListBySubmission(ctx, sub)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	for i := 1; i < len(events); i++ {
		s.False(events[i].Timestamp.Before(events[i-1].Timestamp))
	}
}

func (s *PostgresStoreSuite) TestListIsolatesSubmissions() {
	ctx := context.Background()
	subA := domain.NewSubmissionID()
	subB := domain.NewSubmissionID()

	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Action:       audit.ActionValidationStarted,
		SubmissionID: subA,
		Timestamp:    time.Now().UTC(),
	}))

	events, err := s.store.ListBySubmission(ctx, subB)
	s.Require().NoError(err)
	s.Empty(events)
}
