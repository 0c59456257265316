// Package config carries the externally configurable validation rules:
// required fields per area of law, the disbursement exclusion list, date
// bounds, pattern tables, and the disbursements VAT ceilings. Compiled-in
// defaults can be overridden from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// Rules is the full rule configuration for the validation engine.
type Rules struct {
	// RequiredFields lists mandatory claim fields per area of law, by the
	// field names registered in the accessor registry.
	RequiredFields map[domain.AreaOfLaw][]string `yaml:"required_fields"`

	// DisbursementExcludedFields are never mandatory on a Legal Help claim
	// whose fee calculation type is disbursement-only.
	DisbursementExcludedFields []string `yaml:"disbursement_excluded_fields"`

	// EarliestCaseStartDate is the lower bound for case start and case
	// concluded dates (yyyy-MM-dd).
	EarliestCaseStartDate string `yaml:"earliest_case_start_date"`

	// EarliestRepresentationOrderDate is the lower bound applied to Crime
	// Lower representation order dates (yyyy-MM-dd).
	EarliestRepresentationOrderDate string `yaml:"earliest_representation_order_date"`

	// DisbursementsVATMax caps the disbursements VAT amount per area.
	DisbursementsVATMax map[domain.AreaOfLaw]float64 `yaml:"disbursements_vat_max"`

	// Patterns maps field name -> area of law -> regular expression. A
	// missing area entry means the field is not applicable for that area
	// and any value is accepted.
	Patterns map[string]map[domain.AreaOfLaw]string `yaml:"patterns"`
}

// Default returns the compiled-in rule set.
func Default() *Rules {
	return &Rules{
		RequiredFields: map[domain.AreaOfLaw][]string{
			domain.AreaCivil: {
				"scheduleReference", "uniqueFileNumber", "uniqueClientNumber",
				"clientSurname", "feeCode", "caseStartDate", "caseConcludedDate",
				"stageReachedCode", "matterTypeCode", "outcomeCode",
			},
			domain.AreaCrimeLower: {
				"scheduleReference", "uniqueFileNumber", "clientSurname",
				"feeCode", "caseStartDate", "caseConcludedDate",
				"representationOrderDate", "stageReachedCode", "matterTypeCode",
			},
			domain.AreaLegalHelp: {
				"scheduleReference", "uniqueFileNumber", "uniqueClientNumber",
				"clientSurname", "feeCode", "caseStartDate", "caseConcludedDate",
				"matterTypeCode", "outcomeCode", "stageReachedCode",
			},
			domain.AreaMediation: {
				"scheduleReference", "uniqueFileNumber", "uniqueClientNumber",
				"clientSurname", "feeCode", "caseStartDate", "caseConcludedDate",
				"outcomeCode",
			},
		},
		DisbursementExcludedFields: []string{
			"stageReachedCode", "outcomeCode", "matterTypeCode",
		},
		EarliestCaseStartDate:           "2013-04-01",
		EarliestRepresentationOrderDate: "2016-04-01",
		DisbursementsVATMax: map[domain.AreaOfLaw]float64{
			domain.AreaCivil:      99999.99,
			domain.AreaCrimeLower: 999999.99,
			domain.AreaLegalHelp:  99999.99,
			domain.AreaMediation:  999999999.99,
		},
		Patterns: map[string]map[domain.AreaOfLaw]string{
			"stageReachedCode": {
				domain.AreaCivil:      `^[A-Z]{2}$`,
				domain.AreaCrimeLower: `^[A-Z0-9]{2}$`,
				domain.AreaLegalHelp:  `^[A-Z]{2}$`,
			},
			"matterTypeCode": {
				domain.AreaCivil:     `^[A-Z]{4}(:[A-Z]{4})?$`,
				domain.AreaLegalHelp: `^[A-Z]{4}:[A-Z]{4}$`,
			},
			"outcomeCode": {
				domain.AreaCivil:      `^[A-Z]{2}$`,
				domain.AreaLegalHelp:  `^[A-Z]{2}$`,
				domain.AreaMediation:  `^[A-Z]{1,2}$`,
			},
			"scheduleReference": {
				domain.AreaCivil:      `^[0-9A-Z]+/[0-9]{4}(/[0-9]{2})?$`,
				domain.AreaCrimeLower: `^[0-9A-Z]+/[0-9]{4}(/[0-9]{2})?$`,
				domain.AreaLegalHelp:  `^[0-9A-Z]+/[0-9]{4}(/[0-9]{2})?$`,
				domain.AreaMediation:  `^[0-9A-Z]+/[0-9]{4}(/[0-9]{2})?$`,
			},
		},
	}
}

// Load reads rule overrides from a YAML file on top of the defaults.
// Only sections present in the file replace their default counterparts.
func Load(path string) (*Rules, error) {
	rules := Default()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var overrides Rules
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if overrides.RequiredFields != nil {
		rules.RequiredFields = overrides.RequiredFields
	}
	if overrides.DisbursementExcludedFields != nil {
		rules.DisbursementExcludedFields = overrides.DisbursementExcludedFields
	}
	if overrides.EarliestCaseStartDate != "" {
		rules.EarliestCaseStartDate = overrides.EarliestCaseStartDate
	}
	if overrides.EarliestRepresentationOrderDate != "" {
		rules.EarliestRepresentationOrderDate = overrides.EarliestRepresentationOrderDate
	}
	if overrides.DisbursementsVATMax != nil {
		rules.DisbursementsVATMax = overrides.DisbursementsVATMax
	}
	if overrides.Patterns != nil {
		rules.Patterns = overrides.Patterns
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Validate checks the rule set is internally consistent.
func (r *Rules) Validate() error {
	if _, err := time.Parse(domain.ClaimDateLayout, r.EarliestCaseStartDate); err != nil {
		return fmt.Errorf("earliest_case_start_date: %w", err)
	}
	if _, err := time.Parse(domain.ClaimDateLayout, r.EarliestRepresentationOrderDate); err != nil {
		return fmt.Errorf("earliest_representation_order_date: %w", err)
	}
	for area := range r.RequiredFields {
		if !area.IsValid() {
			return fmt.Errorf("required_fields: unknown area of law %q", area)
		}
	}
	for field, areas := range r.Patterns {
		for area := range areas {
			if !area.IsValid() {
				return fmt.Errorf("patterns.%s: unknown area of law %q", field, area)
			}
		}
	}
	return nil
}
