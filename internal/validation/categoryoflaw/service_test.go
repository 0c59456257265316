package categoryoflaw

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/ports/mocks"
)

// =============================================================================
// Category Of Law Check Test Suite
// =============================================================================
// Justification for unit tests: the memoization and retry-versus-error
// classification here are timing and call-count sensitive, which E2E tests
// cannot pin down.

type CategoryOfLawSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	feeScheme *mocks.MockFeeSchemeService
	provider  *mocks.MockProviderService
	sub       *domain.Submission
}

func TestCategoryOfLawSuite(t *testing.T) {
	suite.Run(t, new(CategoryOfLawSuite))
}

func (s *CategoryOfLawSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.feeScheme = mocks.NewMockFeeSchemeService(s.ctrl)
	s.provider = mocks.NewMockProviderService(s.ctrl)
	s.sub = &domain.Submission{
		ID:         domain.NewSubmissionID(),
		OfficeCode: "OFF1",
		AreaOfLaw:  domain.AreaCivil,
	}
}

func (s *CategoryOfLawSuite) newValidator() *Validator {
	v, err := New(s.sub, s.feeScheme, s.provider)
	s.Require().NoError(err)
	return v
}

func (s *CategoryOfLawSuite) claim(feeCode string) *domain.Claim {
	return &domain.Claim{ID: domain.NewClaimID(), FeeCode: feeCode, CaseStartDate: "2025-01-10"}
}

func famLines() []domain.ScheduleLine {
	return []domain.ScheduleLine{{CategoryOfLaw: "FAM", AreaOfLaw: domain.AreaCivil}}
}

func (s *CategoryOfLawSuite) TestNew() {
	s.Run("nil submission returns error", func() {
		_, err := New(nil, s.feeScheme, s.provider)
		s.Error(err)
	})

	s.Run("nil fee scheme returns error", func() {
		_, err := New(s.sub, nil, s.provider)
		s.Error(err)
	})

	s.Run("nil provider returns error", func() {
		_, err := New(s.sub, s.feeScheme, nil)
		s.Error(err)
	})
}

func (s *CategoryOfLawSuite) TestValidate() {
	ctx := context.Background()

	s.Run("authorised category passes", func() {
		s.feeScheme.EXPECT().GetFeeDetails(gomock.Any(), "CIV01").
			Return(&domain.FeeDetails{FeeCode: "CIV01", CategoryOfLawCode: "FAM"}, nil)
		s.provider.EXPECT().GetProviderFirmSchedules(gomock.Any(), "OFF1", domain.AreaCivil, gomock.Any()).
			Return(famLines(), nil)

		claim := s.claim("CIV01")
		vctx := validation.NewContext()
		s.newValidator().Validate(ctx, claim, vctx, domain.AreaCivil)

		s.False(vctx.HasErrors(claim.ID))
		s.False(vctx.IsFlaggedForRetry(claim.ID))
	})

	s.Run("unauthorised category is an error", func() {
		s.feeScheme.EXPECT().GetFeeDetails(gomock.Any(), "IMM01").
			Return(&domain.FeeDetails{FeeCode: "IMM01", CategoryOfLawCode: "IMM"}, nil)
		s.provider.EXPECT().GetProviderFirmSchedules(gomock.Any(), "OFF1", domain.AreaCivil, gomock.Any()).
			Return(famLines(), nil)

		claim := s.claim("IMM01")
		vctx := validation.NewContext()
		s.newValidator().Validate(ctx, claim, vctx, domain.AreaCivil)

		msgs := vctx.Report(claim.ID).Messages()
		s.Require().Len(msgs, 1)
		s.Equal(models.ErrCategoryOfLawNotAuthorised.Code, msgs[0].Code)
	})

	s.Run("fee code without a category is an error", func() {
		s.feeScheme.EXPECT().GetFeeDetails(gomock.Any(), "NOC01").
			Return(&domain.FeeDetails{FeeCode: "NOC01"}, nil)

		claim := s.claim("NOC01")
		vctx := validation.NewContext()
		s.newValidator().Validate(ctx, claim, vctx, domain.AreaCivil)

		msgs := vctx.Report(claim.ID).Messages()
		s.Require().Len(msgs, 1)
		s.Equal(models.ErrFeeCodeHasNoCategoryOfLaw.Code, msgs[0].Code)
	})

	s.Run("fee scheme failure flags for retry", func() {
		s.feeScheme.EXPECT().GetFeeDetails(gomock.Any(), "CIV01").
			Return(nil, errors.New("fee scheme down"))

		claim := s.claim("CIV01")
		vctx := validation.NewContext()
		s.newValidator().Validate(ctx, claim, vctx, domain.AreaCivil)

		s.True(vctx.IsFlaggedForRetry(claim.ID))
		s.False(vctx.HasErrors(claim.ID))
	})

	s.Run("provider failure flags for retry", func() {
		s.feeScheme.EXPECT().GetFeeDetails(gomock.Any(), "CIV01").
			Return(&domain.FeeDetails{FeeCode: "CIV01", CategoryOfLawCode: "FAM"}, nil)
		s.provider.EXPECT().GetProviderFirmSchedules(gomock.Any(), "OFF1", domain.AreaCivil, gomock.Any()).
			Return(nil, errors.New("registry down"))

		claim := s.claim("CIV01")
		vctx := validation.NewContext()
		s.newValidator().Validate(ctx, claim, vctx, domain.AreaCivil)

		s.True(vctx.IsFlaggedForRetry(claim.ID))
	})

	s.Run("blank fee code is left to the mandatory check", func() {
		claim := s.claim("")
		vctx := validation.NewContext()
		s.newValidator().Validate(ctx, claim, vctx, domain.AreaCivil)

		s.False(vctx.HasErrors(claim.ID))
	})
}

func (s *CategoryOfLawSuite) TestMemoization() {
	ctx := context.Background()

	s.Run("fee code lookup happens once per batch", func() {
		s.feeScheme.EXPECT().GetFeeDetails(gomock.Any(), "CIV01").
			Return(&domain.FeeDetails{FeeCode: "CIV01", CategoryOfLawCode: "FAM"}, nil).
			Times(1)
		s.provider.EXPECT().GetProviderFirmSchedules(gomock.Any(), "OFF1", domain.AreaCivil, gomock.Any()).
			Return(famLines(), nil).
			Times(1)

		v := s.newValidator()
		vctx := validation.NewContext()
		for range 3 {
			claim := s.claim("CIV01")
			v.Validate(ctx, claim, vctx, domain.AreaCivil)
			s.False(vctx.HasErrors(claim.ID))
		}
	})

	s.Run("distinct effective dates query the schedule separately", func() {
		s.feeScheme.EXPECT().GetFeeDetails(gomock.Any(), "CIV01").
			Return(&domain.FeeDetails{FeeCode: "CIV01", CategoryOfLawCode: "FAM"}, nil).
			Times(1)
		s.provider.EXPECT().GetProviderFirmSchedules(gomock.Any(), "OFF1", domain.AreaCivil, gomock.Any()).
			Return(famLines(), nil).
			Times(2)

		v := s.newValidator()
		vctx := validation.NewContext()

		a := s.claim("CIV01")
		b := s.claim("CIV01")
		b.CaseStartDate = "2025-02-10"

		v.Validate(ctx, a, vctx, domain.AreaCivil)
		v.Validate(ctx, b, vctx, domain.AreaCivil)
	})

	s.Run("failed lookups are memoized too", func() {
		s.feeScheme.EXPECT().GetFeeDetails(gomock.Any(), "CIV01").
			Return(nil, errors.New("fee scheme down")).
			Times(1)

		v := s.newValidator()
		vctx := validation.NewContext()

		a := s.claim("CIV01")
		b := s.claim("CIV01")
		v.Validate(ctx, a, vctx, domain.AreaCivil)
		v.Validate(ctx, b, vctx, domain.AreaCivil)

		s.True(vctx.IsFlaggedForRetry(a.ID))
		s.True(vctx.IsFlaggedForRetry(b.ID))
	})
}
