// Package fields holds the stateless per-field claim checks: mandatory
// fields, date ranges, pattern matches, the disbursement start-date rule,
// and the disbursements VAT ceiling.
package fields

import (
	"fmt"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
)

// Check priorities. Lower runs first; the order decides only where a
// check's messages land in the report.
const (
	PriorityMandatory        = 10
	PriorityUFNDate          = 15
	PriorityDateRange        = 20
	PriorityPattern          = 30
	PriorityDisbursementDate = 40
	PriorityVATCeiling       = 50
)

// accessors maps configured field names onto claim fields. An explicit
// registry replaces reflection over getters: configuration stays external,
// lookup stays compile-checked.
var accessors = map[string]func(*domain.Claim) string{
	"officeCode":              func(c *domain.Claim) string { return c.OfficeCode },
	"scheduleReference":       func(c *domain.Claim) string { return c.ScheduleReference },
	"caseReferenceNumber":     func(c *domain.Claim) string { return c.CaseReferenceNumber },
	"uniqueFileNumber":        func(c *domain.Claim) string { return c.UniqueFileNumber },
	"uniqueClientNumber":      func(c *domain.Claim) string { return c.UniqueClientNumber },
	"clientForename":          func(c *domain.Claim) string { return c.ClientForename },
	"clientSurname":           func(c *domain.Claim) string { return c.ClientSurname },
	"clientDateOfBirth":       func(c *domain.Claim) string { return c.ClientDateOfBirth },
	"feeCode":                 func(c *domain.Claim) string { return c.FeeCode },
	"caseStartDate":           func(c *domain.Claim) string { return c.CaseStartDate },
	"caseConcludedDate":       func(c *domain.Claim) string { return c.CaseConcludedDate },
	"representationOrderDate": func(c *domain.Claim) string { return c.RepresentationOrderDate },
	"stageReachedCode":        func(c *domain.Claim) string { return c.StageReachedCode },
	"matterTypeCode":          func(c *domain.Claim) string { return c.MatterTypeCode },
	"outcomeCode":             func(c *domain.Claim) string { return c.OutcomeCode },
	"submissionPeriod":        func(c *domain.Claim) string { return c.SubmissionPeriod },
}

// FieldValue resolves a registered field name against a claim.
func FieldValue(claim *domain.Claim, field string) (string, bool) {
	accessor, ok := accessors[field]
	if !ok {
		return "", false
	}
	return accessor(claim), true
}

// All builds the full field-check list from the rule configuration.
func All(rules *config.Rules) ([]validation.ClaimCheck, error) {
	mandatory, err := NewMandatoryFields(rules)
	if err != nil {
		return nil, fmt.Errorf("mandatory field check: %w", err)
	}
	dateRange, err := NewDateRanges(rules)
	if err != nil {
		return nil, fmt.Errorf("date range check: %w", err)
	}
	patterns, err := NewPatterns(rules)
	if err != nil {
		return nil, fmt.Errorf("pattern check: %w", err)
	}

	return []validation.ClaimCheck{
		mandatory,
		NewUFNDate(),
		dateRange,
		patterns,
		NewDisbursementStartDate(),
		NewVATCeiling(rules),
	}, nil
}
