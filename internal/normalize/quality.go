package normalize

import (
	"strings"

	"voice-listing-go/internal/types"
)

var gradeSynonyms = map[string]types.Grade{
	"premium":        types.GradePremium,
	"export":         types.GradePremium,
	"export quality": types.GradePremium,
	"best":           types.GradePremium,
	"a+":             types.GradePremium,
	"grade a+":       types.GradePremium,
	"a":              types.GradeA,
	"grade a":        types.GradeA,
	"a grade":        types.GradeA,
	"a-grade":        types.GradeA,
	"first":          types.GradeA,
	"first quality":  types.GradeA,
	"good":           types.GradeA,
	"b":              types.GradeB,
	"grade b":        types.GradeB,
	"b grade":        types.GradeB,
	"b-grade":        types.GradeB,
	"second":         types.GradeB,
	"medium":         types.GradeB,
	"average":        types.GradeB,
	"standard":       types.GradeStandard,
	"normal":         types.GradeStandard,
	"regular":        types.GradeStandard,
	"fair":           types.GradeStandard,
	"faq":            types.GradeStandard,
	"mixed":          types.GradeMixed,
	"mix":            types.GradeMixed,
	"assorted":       types.GradeMixed,
}

// Grade maps a quality phrase onto the grade enumeration.
func Grade(raw string) (types.Grade, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	for _, g := range types.Grades() {
		if strings.EqualFold(string(g), s) {
			return g, true
		}
	}
	g, ok := gradeSynonyms[s]
	return g, ok
}
