package domain

import "github.com/google/uuid"

// SubmissionID identifies one bulk submission in the claims store.
type SubmissionID uuid.UUID

func (i SubmissionID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }
func (i SubmissionID) String() string { return uuid.UUID(i).String() }

// ParseSubmissionID parses the canonical UUID form of a submission ID.
func ParseSubmissionID(s string) (SubmissionID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return SubmissionID(uuid.Nil), err
	}
	return SubmissionID(u), nil
}

// ClaimID identifies one claim line within a submission.
type ClaimID uuid.UUID

func (i ClaimID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }
func (i ClaimID) String() string { return uuid.UUID(i).String() }

// ParseClaimID parses the canonical UUID form of a claim ID.
func ParseClaimID(s string) (ClaimID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ClaimID(uuid.Nil), err
	}
	return ClaimID(u), nil
}

// NewSubmissionID returns a fresh random submission ID.
func NewSubmissionID() SubmissionID { return SubmissionID(uuid.New()) }

// NewClaimID returns a fresh random claim ID.
func NewClaimID() ClaimID { return ClaimID(uuid.New()) }
