package domain

// ScheduleLine is one contract line from the provider registry: a category
// of law the provider office is authorized to claim under, for a coverage
// window.
type ScheduleLine struct {
	ScheduleReference string
	CategoryOfLaw     string
	AreaOfLaw         AreaOfLaw
}

// CategoriesOfLaw extracts the distinct category codes from schedule lines.
func CategoriesOfLaw(lines []ScheduleLine) []string {
	seen := make(map[string]struct{}, len(lines))
	var out []string
	for _, l := range lines {
		if l.CategoryOfLaw == "" {
			continue
		}
		if _, ok := seen[l.CategoryOfLaw]; ok {
			continue
		}
		seen[l.CategoryOfLaw] = struct{}{}
		out = append(out, l.CategoryOfLaw)
	}
	return out
}
