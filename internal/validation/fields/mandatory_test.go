package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
)

// =============================================================================
// Mandatory Fields Check Test Suite
// =============================================================================

type MandatorySuite struct {
	suite.Suite
	check *MandatoryFields
}

func TestMandatorySuite(t *testing.T) {
	suite.Run(t, new(MandatorySuite))
}

func (s *MandatorySuite) SetupTest() {
	check, err := NewMandatoryFields(config.Default())
	s.Require().NoError(err)
	s.check = check
}

// completeCivilClaim fills every field Civil requires.
func completeCivilClaim() *domain.Claim {
	return &domain.Claim{
		ID:                 domain.NewClaimID(),
		ScheduleReference:  "0AB123/2025",
		UniqueFileNumber:   "010425/123",
		UniqueClientNumber: "UCN-1",
		ClientSurname:      "Smith",
		FeeCode:            "CIV01",
		CaseStartDate:      "2025-01-10",
		CaseConcludedDate:  "2025-03-10",
		StageReachedCode:   "AA",
		MatterTypeCode:     "FAMA:FAMB",
		OutcomeCode:        "CA",
	}
}

func (s *MandatorySuite) TestValidate() {
	ctx := context.Background()

	s.Run("complete claim passes", func() {
		claim := completeCivilClaim()
		vctx := validation.NewContext()
		s.check.Validate(ctx, claim, vctx, domain.AreaCivil)
		s.False(vctx.HasErrors(claim.ID))
	})

	s.Run("each missing field gets its own error", func() {
		claim := completeCivilClaim()
		claim.FeeCode = ""
		claim.ClientSurname = ""

		vctx := validation.NewContext()
		s.check.Validate(ctx, claim, vctx, domain.AreaCivil)

		s.Len(vctx.Report(claim.ID).Messages(), 2)
	})

	s.Run("whitespace-only counts as blank", func() {
		claim := completeCivilClaim()
		claim.FeeCode = "   "

		vctx := validation.NewContext()
		s.check.Validate(ctx, claim, vctx, domain.AreaCivil)

		s.True(vctx.HasErrors(claim.ID))
	})

	s.Run("legal help disbursement-only skips excluded fields", func() {
		claim := completeCivilClaim()
		claim.FeeCalculationType = domain.FeeTypeDisbursementOnly
		claim.StageReachedCode = ""
		claim.OutcomeCode = ""
		claim.MatterTypeCode = ""

		vctx := validation.NewContext()
		s.check.Validate(ctx, claim, vctx, domain.AreaLegalHelp)

		s.False(vctx.HasErrors(claim.ID))
	})

	s.Run("disbursement-only exemption is legal help only", func() {
		claim := completeCivilClaim()
		claim.FeeCalculationType = domain.FeeTypeDisbursementOnly
		claim.StageReachedCode = ""

		vctx := validation.NewContext()
		s.check.Validate(ctx, claim, vctx, domain.AreaCivil)

		s.True(vctx.HasErrors(claim.ID))
	})

	s.Run("non-excluded fields stay mandatory for exempt claims", func() {
		claim := completeCivilClaim()
		claim.FeeCalculationType = domain.FeeTypeDisbursementOnly
		claim.FeeCode = ""

		vctx := validation.NewContext()
		s.check.Validate(ctx, claim, vctx, domain.AreaLegalHelp)

		s.True(vctx.HasErrors(claim.ID))
	})
}

func (s *MandatorySuite) TestNew() {
	s.Run("unregistered field name is rejected", func() {
		rules := config.Default()
		rules.RequiredFields[domain.AreaCivil] = []string{"noSuchField"}
		_, err := NewMandatoryFields(rules)
		s.Error(err)
		s.Contains(err.Error(), "noSuchField")
	})
}
