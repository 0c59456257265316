package fields

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// =============================================================================
// Date Range Check Test Suite
// =============================================================================

type DateRangeSuite struct {
	suite.Suite
	check *DateRanges
	now   time.Time
}

func TestDateRangeSuite(t *testing.T) {
	suite.Run(t, new(DateRangeSuite))
}

func (s *DateRangeSuite) SetupTest() {
	check, err := NewDateRanges(config.Default())
	s.Require().NoError(err)

	s.now = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	s.check = check.WithNow(func() time.Time { return s.now })
}

func (s *DateRangeSuite) validate(claim *domain.Claim, area domain.AreaOfLaw) []domain.ValidationMessage {
	vctx := validation.NewContext()
	s.check.Validate(context.Background(), claim, vctx, area)
	return vctx.Report(claim.ID).Messages()
}

func (s *DateRangeSuite) TestCaseStartDate() {
	s.Run("in range passes", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), CaseStartDate: "2024-05-01"}, domain.AreaCivil)
		s.Empty(msgs)
	})

	s.Run("exactly the earliest date passes", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), CaseStartDate: "2013-04-01"}, domain.AreaCivil)
		s.Empty(msgs)
	})

	s.Run("before the earliest date fails", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), CaseStartDate: "2013-03-31"}, domain.AreaCivil)
		s.Require().Len(msgs, 1)
		s.Equal("INVALID_DATE_OUT_OF_RANGE", msgs[0].Code)
	})

	s.Run("future date fails", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), CaseStartDate: "2025-06-02"}, domain.AreaCivil)
		s.Require().Len(msgs, 1)
		s.Equal("INVALID_DATE_OUT_OF_RANGE", msgs[0].Code)
	})

	s.Run("unparsable value is a format error", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), CaseStartDate: "01/05/2024"}, domain.AreaCivil)
		s.Require().Len(msgs, 1)
		s.Equal("INVALID_DATE_FORMAT", msgs[0].Code)
	})

	s.Run("blank is skipped", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID()}, domain.AreaCivil)
		s.Empty(msgs)
	})
}

func (s *DateRangeSuite) TestCaseConcludedDate() {
	s.Run("civil uses the general earliest date", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), CaseConcludedDate: "2014-01-01"}, domain.AreaCivil)
		s.Empty(msgs)
	})

	s.Run("crime lower tightens the earliest date", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), CaseConcludedDate: "2014-01-01"}, domain.AreaCrimeLower)
		s.Require().Len(msgs, 1)
		s.Equal("INVALID_DATE_OUT_OF_RANGE", msgs[0].Code)
	})

	s.Run("crime lower earliest boundary passes", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), CaseConcludedDate: "2016-04-01"}, domain.AreaCrimeLower)
		s.Empty(msgs)
	})
}

func (s *DateRangeSuite) TestRepresentationOrderDate() {
	s.Run("checked for crime lower", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), RepresentationOrderDate: "2016-03-31"}, domain.AreaCrimeLower)
		s.Require().Len(msgs, 1)
		s.Equal("INVALID_DATE_OUT_OF_RANGE", msgs[0].Code)
	})

	s.Run("ignored for other areas", func() {
		msgs := s.validate(&domain.Claim{ID: domain.NewClaimID(), RepresentationOrderDate: "2016-03-31"}, domain.AreaCivil)
		s.Empty(msgs)
	})
}

func (s *DateRangeSuite) TestMessageContent() {
	verr := models.DateRangeError("caseStartDate", "2013-03-31",
		time.Date(2013, time.April, 1, 0, 0, 0, 0, time.UTC))
	s.Contains(verr.TechnicalMessage, "2013-04-01")
	s.Contains(verr.DisplayMessage, "caseStartDate")
}
