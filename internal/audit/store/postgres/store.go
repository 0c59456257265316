// Package postgres persists audit events to the validation_audit table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/audit"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append writes one audit event. The claim_id column is nullable since
// submission-level events carry no claim.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	var claimID any
	if !event.ClaimID.IsNil() {
		claimID = event.ClaimID.String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO validation_audit (id, action, submission_id, claim_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New().String(),
		event.Action,
		event.SubmissionID.String(),
		claimID,
		event.Detail,
		event.Timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListBySubmission returns events for one submission, oldest first.
func (s *Store) ListBySubmission(ctx context.Context, submissionID domain.SubmissionID) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT action, submission_id, claim_id, detail, created_at
		FROM validation_audit
		WHERE submission_id = $1
		ORDER BY created_at ASC`,
		submissionID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			event     audit.Event
			subID     string
			claimID   sql.NullString
			createdAt time.Time
		)
		if err := rows.Scan(&event.Action, &subID, &claimID, &event.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		parsedSub, err := domain.ParseSubmissionID(subID)
		if err != nil {
			return nil, fmt.Errorf("parse submission id %q: %w", subID, err)
		}
		event.SubmissionID = parsedSub
		if claimID.Valid {
			parsedClaim, err := domain.ParseClaimID(claimID.String)
			if err != nil {
				return nil, fmt.Errorf("parse claim id %q: %w", claimID.String, err)
			}
			event.ClaimID = parsedClaim
		}
		event.Timestamp = createdAt
		events = append(events, event)
	}
	return events, rows.Err()
}
