package feecalc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports/mocks"
	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

// =============================================================================
// Fee Calculation Check Test Suite
// =============================================================================

type FeeCalcSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	feeScheme *mocks.MockFeeSchemeService
	validator *Validator
}

func TestFeeCalcSuite(t *testing.T) {
	suite.Run(t, new(FeeCalcSuite))
}

func (s *FeeCalcSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.feeScheme = mocks.NewMockFeeSchemeService(s.ctrl)

	var err error
	s.validator, err = New(s.feeScheme)
	s.Require().NoError(err)
}

func (s *FeeCalcSuite) claim() *domain.Claim {
	return &domain.Claim{ID: domain.NewClaimID(), FeeCode: "CIV01"}
}

func (s *FeeCalcSuite) TestNew() {
	_, err := New(nil)
	s.Error(err)
	s.Contains(err.Error(), "fee scheme service is required")
}

func (s *FeeCalcSuite) TestValidate() {
	ctx := context.Background()

	s.Run("successful calculation lands on the patch", func() {
		calc := &domain.FeeCalculation{TotalAmount: 456.78}
		s.feeScheme.EXPECT().CalculateFee(gomock.Any(), gomock.Any()).
			Return(&domain.FeeCalculationResult{Calculation: calc}, nil)

		claim := s.claim()
		vctx := validation.NewContext()
		s.validator.Validate(ctx, claim, vctx, domain.AreaCivil)

		s.False(vctx.HasErrors(claim.ID))
		s.Equal(calc, vctx.FeeCalculation(claim.ID))
	})

	s.Run("rejected request is a fee scheme error, not a retry", func() {
		s.feeScheme.EXPECT().CalculateFee(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("bad figures: %w", sentinel.ErrBadRequest))

		claim := s.claim()
		vctx := validation.NewContext()
		s.validator.Validate(ctx, claim, vctx, domain.AreaCivil)

		s.False(vctx.IsFlaggedForRetry(claim.ID))
		msgs := vctx.Report(claim.ID).Messages()
		s.Require().Len(msgs, 1)
		s.Equal(models.ErrFeeCalculationValidationFailed.Code, msgs[0].Code)
		s.Equal(domain.SourceFeeScheme, msgs[0].Source)
	})

	s.Run("transient failure flags for retry", func() {
		s.feeScheme.EXPECT().CalculateFee(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		claim := s.claim()
		vctx := validation.NewContext()
		s.validator.Validate(ctx, claim, vctx, domain.AreaCivil)

		s.True(vctx.IsFlaggedForRetry(claim.ID))
		s.False(vctx.HasErrors(claim.ID))
	})

	s.Run("empty response flags for retry", func() {
		s.feeScheme.EXPECT().CalculateFee(gomock.Any(), gomock.Any()).
			Return(&domain.FeeCalculationResult{}, nil)

		claim := s.claim()
		vctx := validation.NewContext()
		s.validator.Validate(ctx, claim, vctx, domain.AreaCivil)

		s.True(vctx.IsFlaggedForRetry(claim.ID))
	})

	s.Run("fee scheme messages map to errors and warnings", func() {
		s.feeScheme.EXPECT().CalculateFee(gomock.Any(), gomock.Any()).
			Return(&domain.FeeCalculationResult{
				Messages: []domain.FeeCalculationMessage{
					{Type: domain.MessageTypeError, Text: "costs exceed scheme maximum"},
					{Type: domain.MessageTypeWarning, Text: "figures close to threshold"},
				},
			}, nil)

		claim := s.claim()
		vctx := validation.NewContext()
		s.validator.Validate(ctx, claim, vctx, domain.AreaCivil)

		msgs := vctx.Report(claim.ID).Messages()
		s.Require().Len(msgs, 2)
		s.Equal(domain.MessageTypeError, msgs[0].Type)
		s.Equal(domain.MessageTypeWarning, msgs[1].Type)
		s.Equal(domain.SourceFeeScheme, msgs[0].Source)
		s.True(vctx.HasErrors(claim.ID))
	})

	s.Run("claims already flagged for retry are not priced", func() {
		claim := s.claim()
		vctx := validation.NewContext()
		vctx.FlagForRetry(claim.ID)

		// No CalculateFee expectation: calling it would fail the test.
		s.validator.Validate(ctx, claim, vctx, domain.AreaCivil)
	})
}
