package fields

import (
	"context"
	"fmt"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/models"
)

// dateBound is one date field's lower bound, optionally tightened per area.
type dateBound struct {
	field        string
	earliest     time.Time
	areaEarliest map[domain.AreaOfLaw]time.Time
	areas        map[domain.AreaOfLaw]struct{} // nil means all areas
}

// DateRanges checks that each bounded date field parses as yyyy-MM-dd and
// falls between its earliest-allowed date and today. An unparsable value is
// a format error; a parseable one outside the window is a range error.
type DateRanges struct {
	bounds []dateBound
	now    func() time.Time
}

func NewDateRanges(rules *config.Rules) (*DateRanges, error) {
	earliest, err := time.Parse(domain.ClaimDateLayout, rules.EarliestCaseStartDate)
	if err != nil {
		return nil, fmt.Errorf("earliest case start date: %w", err)
	}
	repOrderEarliest, err := time.Parse(domain.ClaimDateLayout, rules.EarliestRepresentationOrderDate)
	if err != nil {
		return nil, fmt.Errorf("earliest representation order date: %w", err)
	}

	return &DateRanges{
		bounds: []dateBound{
			{
				field:    "caseStartDate",
				earliest: earliest,
			},
			{
				// Crime Lower concluded dates follow the representation
				// order scheme, which started later.
				field:    "caseConcludedDate",
				earliest: earliest,
				areaEarliest: map[domain.AreaOfLaw]time.Time{
					domain.AreaCrimeLower: repOrderEarliest,
				},
			},
			{
				field:    "representationOrderDate",
				earliest: repOrderEarliest,
				areas:    map[domain.AreaOfLaw]struct{}{domain.AreaCrimeLower: {}},
			},
		},
		now: time.Now,
	}, nil
}

// WithNow overrides the clock. Test hook.
func (d *DateRanges) WithNow(now func() time.Time) *DateRanges {
	d.now = now
	return d
}

func (d *DateRanges) Priority() int { return PriorityDateRange }

func (d *DateRanges) Validate(_ context.Context, claim *domain.Claim, vctx *validation.Context, area domain.AreaOfLaw) {
	now := d.now()

	for _, bound := range d.bounds {
		if bound.areas != nil {
			if _, ok := bound.areas[area]; !ok {
				continue
			}
		}

		value, _ := FieldValue(claim, bound.field)
		if value == "" {
			continue
		}

		parsed, err := time.Parse(domain.ClaimDateLayout, value)
		if err != nil {
			vctx.AddError(claim.ID, models.DateFormatError(bound.field, value))
			continue
		}

		earliest := bound.earliest
		if override, ok := bound.areaEarliest[area]; ok {
			earliest = override
		}

		if parsed.Before(earliest) || parsed.After(now) {
			vctx.AddError(claim.ID, models.DateRangeError(bound.field, value, earliest))
		}
	}
}
