package validation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// =============================================================================
// Validation Context Test Suite
// =============================================================================
// The context is the only shared mutable state of a validation run, so the
// interesting properties are per-claim isolation and concurrency safety.

type ContextSuite struct {
	suite.Suite
	vctx *Context
}

func TestContextSuite(t *testing.T) {
	suite.Run(t, new(ContextSuite))
}

func (s *ContextSuite) SetupTest() {
	s.vctx = NewContext()
}

func (s *ContextSuite) TestReports() {
	a := domain.NewClaimID()
	b := domain.NewClaimID()

	s.Run("errors stay on their own claim", func() {
		s.vctx.AddError(a, models.ErrDuplicateClaimInSubmission)

		s.True(s.vctx.HasErrors(a))
		s.False(s.vctx.HasErrors(b))
	})

	s.Run("warnings do not count as errors", func() {
		s.vctx.AddWarning(b, domain.SourceFeeScheme, models.FeeSchemeWarning("check figures"))

		s.False(s.vctx.HasErrors(b))
		s.Len(s.vctx.Report(b).Messages(), 1)
	})

	s.Run("sourced errors carry their source", func() {
		c := domain.NewClaimID()
		s.vctx.AddSourcedError(c, domain.SourceFeeScheme, models.ErrFeeCalculationValidationFailed)

		msgs := s.vctx.Report(c).Messages()
		s.Require().Len(msgs, 1)
		s.Equal(domain.SourceFeeScheme, msgs[0].Source)
		s.Equal(domain.MessageTypeError, msgs[0].Type)
	})
}

func (s *ContextSuite) TestRetryFlags() {
	a := domain.NewClaimID()
	b := domain.NewClaimID()

	s.False(s.vctx.IsFlaggedForRetry(a))
	s.vctx.FlagForRetry(a)
	s.vctx.FlagForRetry(a) // flagging twice counts once
	s.True(s.vctx.IsFlaggedForRetry(a))
	s.False(s.vctx.IsFlaggedForRetry(b))
	s.Equal(1, s.vctx.RetryCount())
}

func (s *ContextSuite) TestSubmissionErrors() {
	s.False(s.vctx.HasSubmissionErrors())

	s.vctx.AddSubmissionError(models.ErrNilSubmissionContainsClaims)
	s.vctx.AddSubmissionError(models.ErrAreaOfLawNotAuthorised)

	s.True(s.vctx.HasSubmissionErrors())
	errs := s.vctx.SubmissionErrors()
	s.Require().Len(errs, 2)
	s.Equal(models.ErrNilSubmissionContainsClaims.Code, errs[0].Code)
	s.Equal(models.ErrAreaOfLawNotAuthorised.Code, errs[1].Code)
	s.Equal(domain.MessageTypeError, errs[0].Type)
}

func (s *ContextSuite) TestFeeCalculations() {
	a := domain.NewClaimID()
	s.Nil(s.vctx.FeeCalculation(a))

	calc := &domain.FeeCalculation{TotalAmount: 123.45}
	s.vctx.SetFeeCalculation(a, calc)
	s.Equal(calc, s.vctx.FeeCalculation(a))
}

func (s *ContextSuite) TestConcurrentClaims() {
	const claims = 50

	ids := make([]domain.ClaimID, claims)
	for i := range ids {
		ids[i] = domain.NewClaimID()
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id domain.ClaimID) {
			defer wg.Done()
			s.vctx.AddError(id, models.ErrDuplicateClaimInSubmission)
			s.vctx.FlagForRetry(id)
		}(id)
	}
	wg.Wait()

	s.Equal(claims, s.vctx.RetryCount())
	for _, id := range ids {
		s.True(s.vctx.HasErrors(id))
	}
}
