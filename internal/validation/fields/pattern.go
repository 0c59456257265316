package fields

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// Patterns checks coded fields against their area-specific regular
// expressions. A blank value, or a field with no pattern for the claim's
// area, is always valid.
type Patterns struct {
	compiled map[string]map[domain.AreaOfLaw]*regexp.Regexp
	raw      map[string]map[domain.AreaOfLaw]string
}

func NewPatterns(rules *config.Rules) (*Patterns, error) {
	compiled := make(map[string]map[domain.AreaOfLaw]*regexp.Regexp, len(rules.Patterns))
	for field, areas := range rules.Patterns {
		if _, ok := accessors[field]; !ok {
			return nil, fmt.Errorf("pattern field %q is not a registered claim field", field)
		}
		compiled[field] = make(map[domain.AreaOfLaw]*regexp.Regexp, len(areas))
		for area, pattern := range areas {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("pattern for %s/%s: %w", field, area, err)
			}
			compiled[field][area] = re
		}
	}
	return &Patterns{compiled: compiled, raw: rules.Patterns}, nil
}

func (p *Patterns) Priority() int { return PriorityPattern }

func (p *Patterns) Validate(_ context.Context, claim *domain.Claim, vctx *validation.Context, area domain.AreaOfLaw) {
	for field, areas := range p.compiled {
		re, ok := areas[area]
		if !ok {
			continue
		}
		value, _ := FieldValue(claim, field)
		if value == "" {
			continue
		}
		if !re.MatchString(value) {
			vctx.AddError(claim.ID, models.PatternError(field, area, p.raw[field][area], value))
		}
	}
}
