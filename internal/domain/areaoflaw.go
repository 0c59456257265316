package domain

import "fmt"

// AreaOfLaw classifies a submission and governs which validation rules,
// patterns, and duplicate strategies apply to its claims.
type AreaOfLaw string

const (
	AreaCivil      AreaOfLaw = "CIVIL"
	AreaCrimeLower AreaOfLaw = "CRIME_LOWER"
	AreaLegalHelp  AreaOfLaw = "LEGAL_HELP"
	AreaMediation  AreaOfLaw = "MEDIATION"
)

// IsValid checks if the area of law is one of the supported enum values.
func (a AreaOfLaw) IsValid() bool {
	switch a {
	case AreaCivil, AreaCrimeLower, AreaLegalHelp, AreaMediation:
		return true
	}
	return false
}

// String returns the string representation.
func (a AreaOfLaw) String() string { return string(a) }

// ParseAreaOfLaw creates an AreaOfLaw from a string, validating it.
func ParseAreaOfLaw(s string) (AreaOfLaw, error) {
	a := AreaOfLaw(s)
	if !a.IsValid() {
		return "", fmt.Errorf("unknown area of law %q", s)
	}
	return a, nil
}
