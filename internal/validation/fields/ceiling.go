package fields

import (
	"context"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// VATCeiling checks the disbursements VAT amount against the area-specific
// maximum.
type VATCeiling struct {
	max map[domain.AreaOfLaw]float64
}

func NewVATCeiling(rules *config.Rules) *VATCeiling {
	return &VATCeiling{max: rules.DisbursementsVATMax}
}

func (v *VATCeiling) Priority() int { return PriorityVATCeiling }

func (v *VATCeiling) Validate(_ context.Context, claim *domain.Claim, vctx *validation.Context, area domain.AreaOfLaw) {
	if claim.DisbursementsVATAmount == nil {
		return
	}
	max, ok := v.max[area]
	if !ok {
		return
	}
	if *claim.DisbursementsVATAmount > max {
		vctx.AddError(claim.ID, models.DisbursementsVATCeilingError(*claim.DisbursementsVATAmount, max, area))
	}
}
