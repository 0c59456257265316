package fields

import (
	"context"
	"fmt"
	"strings"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// MandatoryFields checks the area-specific required-field list. A required
// field that is missing or blank records a field-specific error, except on
// a disbursement-only Legal Help claim when the field is on the
// disbursement exclusion list.
type MandatoryFields struct {
	required map[domain.AreaOfLaw][]string
	excluded map[string]struct{}
}

func NewMandatoryFields(rules *config.Rules) (*MandatoryFields, error) {
	for area, names := range rules.RequiredFields {
		for _, name := range names {
			if _, ok := accessors[name]; !ok {
				return nil, fmt.Errorf("required field %q for %s is not a registered claim field", name, area)
			}
		}
	}

	excluded := make(map[string]struct{}, len(rules.DisbursementExcludedFields))
	for _, name := range rules.DisbursementExcludedFields {
		excluded[name] = struct{}{}
	}

	return &MandatoryFields{
		required: rules.RequiredFields,
		excluded: excluded,
	}, nil
}

func (m *MandatoryFields) Priority() int { return PriorityMandatory }

func (m *MandatoryFields) Validate(_ context.Context, claim *domain.Claim, vctx *validation.Context, area domain.AreaOfLaw) {
	exempt := area == domain.AreaLegalHelp && claim.IsDisbursementOnly()

	for _, field := range m.required[area] {
		if exempt {
			if _, ok := m.excluded[field]; ok {
				continue
			}
		}
		value, _ := FieldValue(claim, field)
		if strings.TrimSpace(value) == "" {
			vctx.AddError(claim.ID, models.MandatoryFieldError(field, area))
		}
	}
}
