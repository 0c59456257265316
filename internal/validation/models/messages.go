// Package models holds the validation error catalog and the per-claim
// report structure shared by every validator.
package models

import (
	"fmt"
	"time"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
)

// ValidationError is a tagged business-validation outcome: a stable machine
// code, a technical message for logs, and a display message for caseworkers.
// Values are immutable; most are static catalog entries below.
type ValidationError struct {
	Code             string
	TechnicalMessage string
	DisplayMessage   string
}

// Static catalog entries. Codes are stable identifiers consumed downstream,
// so they never change once released.
var (
	ErrInvalidDateInUniqueFileNumber = ValidationError{
		Code:             "INVALID_DATE_IN_UNIQUE_FILE_NUMBER",
		TechnicalMessage: "unique file number does not begin with a valid ddMMyy date",
		DisplayMessage:   "The date in the Unique File Number is not a valid date",
	}

	ErrDuplicateClaimInSubmission = ValidationError{
		Code:             "INVALID_CLAIM_HAS_DUPLICATE_IN_SUBMISSION",
		TechnicalMessage: "claim duplicates another claim in the same submission",
		DisplayMessage:   "This claim is a duplicate of another claim in this submission",
	}

	ErrDuplicateClaimInAnotherSubmission = ValidationError{
		Code:             "INVALID_CLAIM_HAS_DUPLICATE_IN_ANOTHER_SUBMISSION",
		TechnicalMessage: "claim duplicates a claim from a previously submitted bulk submission",
		DisplayMessage:   "This claim is a duplicate of a claim in another submission",
	}

	ErrFeeCodeHasNoCategoryOfLaw = ValidationError{
		Code:             "INVALID_FEE_CODE_HAS_NO_CATEGORY_OF_LAW",
		TechnicalMessage: "fee scheme returned no category of law for the claim's fee code",
		DisplayMessage:   "The Fee Code on this claim has no associated Category of Law",
	}

	ErrCategoryOfLawNotAuthorised = ValidationError{
		Code:             "INVALID_CATEGORY_OF_LAW_NOT_AUTHORISED_FOR_PROVIDER",
		TechnicalMessage: "resolved category of law is not on the provider's contract schedule for the effective date",
		DisplayMessage:   "The provider is not authorised to claim under this Category of Law",
	}

	ErrAreaOfLawNotAuthorised = ValidationError{
		Code:             "INVALID_AREA_OF_LAW_NOT_AUTHORISED_FOR_PROVIDER",
		TechnicalMessage: "provider has no contracted categories of law for the submission's area of law",
		DisplayMessage:   "The provider is not authorised to submit claims for this Area of Law",
	}

	ErrNilSubmissionContainsClaims = ValidationError{
		Code:             "INVALID_NIL_SUBMISSION_CONTAINS_CLAIMS",
		TechnicalMessage: "submission is marked nil but contains claims",
		DisplayMessage:   "A nil submission must not contain any claims",
	}

	ErrSubmissionHasNoClaims = ValidationError{
		Code:             "INVALID_SUBMISSION_HAS_NO_CLAIMS",
		TechnicalMessage: "submission is not marked nil but contains no claims",
		DisplayMessage:   "A submission must contain at least one claim",
	}

	ErrFeeCalculationValidationFailed = ValidationError{
		Code:             "INVALID_FEE_CALCULATION_VALIDATION_FAILED",
		TechnicalMessage: "fee scheme rejected the fee calculation request as malformed",
		DisplayMessage:   "Fee calculation validation failed for this claim",
	}
)

// MandatoryFieldError reports a required field that is missing or blank.
func MandatoryFieldError(field string, area domain.AreaOfLaw) ValidationError {
	return ValidationError{
		Code:             "INVALID_MANDATORY_FIELD_MISSING",
		TechnicalMessage: fmt.Sprintf("mandatory field %s is missing or blank for area of law %s", field, area),
		DisplayMessage:   fmt.Sprintf("%s must be provided", field),
	}
}

// DateFormatError reports a date field that does not parse as yyyy-MM-dd.
func DateFormatError(field, value string) ValidationError {
	return ValidationError{
		Code:             "INVALID_DATE_FORMAT",
		TechnicalMessage: fmt.Sprintf("field %s value %q is not a valid yyyy-MM-dd date", field, value),
		DisplayMessage:   fmt.Sprintf("%s must be a valid date in yyyy-MM-dd format", field),
	}
}

// DateRangeError reports a parseable date outside its allowed window.
func DateRangeError(field, value string, earliest time.Time) ValidationError {
	return ValidationError{
		Code:             "INVALID_DATE_OUT_OF_RANGE",
		TechnicalMessage: fmt.Sprintf("field %s value %s is before %s or after today", field, value, earliest.Format(domain.ClaimDateLayout)),
		DisplayMessage:   fmt.Sprintf("%s must be between %s and today", field, earliest.Format(domain.ClaimDateLayout)),
	}
}

// PatternError reports a field value that fails its area-specific pattern.
func PatternError(field string, area domain.AreaOfLaw, pattern, value string) ValidationError {
	return ValidationError{
		Code:             "INVALID_FIELD_PATTERN",
		TechnicalMessage: fmt.Sprintf("field %s value %q does not match pattern %s for area of law %s", field, value, pattern, area),
		DisplayMessage:   fmt.Sprintf("%s value %q is not valid for %s", field, value, area),
	}
}

// DisbursementStartDateError reports a disbursement claim whose case started
// before the minimum eligible date for its submission period.
func DisbursementStartDateError(minEligible time.Time) ValidationError {
	min := minEligible.Format(domain.ClaimDateLayout)
	return ValidationError{
		Code:             "INVALID_DISBURSEMENT_CASE_START_DATE",
		TechnicalMessage: fmt.Sprintf("case start date is before the minimum eligible date %s for a disbursement claim", min),
		DisplayMessage:   fmt.Sprintf("Case Start Date must be on or after %s for a disbursement claim in this submission period", min),
	}
}

// DisbursementsVATCeilingError reports a disbursements VAT amount above the
// area-specific maximum.
func DisbursementsVATCeilingError(value, max float64, area domain.AreaOfLaw) ValidationError {
	return ValidationError{
		Code:             "INVALID_DISBURSEMENTS_VAT_EXCEEDS_MAX",
		TechnicalMessage: fmt.Sprintf("disbursements VAT amount %.2f exceeds the %s maximum of %.2f", value, area, max),
		DisplayMessage:   fmt.Sprintf("Disbursements VAT amount %.2f exceeds the maximum of %.2f", value, max),
	}
}

// FeeSchemeError wraps an ERROR-typed message returned by the fee scheme.
func FeeSchemeError(text string) ValidationError {
	return ValidationError{
		Code:             "INVALID_FEE_CALCULATION_ERROR",
		TechnicalMessage: text,
		DisplayMessage:   text,
	}
}

// FeeSchemeWarning wraps a WARNING-typed message returned by the fee scheme.
func FeeSchemeWarning(text string) ValidationError {
	return ValidationError{
		Code:             "FEE_CALCULATION_WARNING",
		TechnicalMessage: text,
		DisplayMessage:   text,
	}
}
