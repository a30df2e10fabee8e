package assessment

// The scorers below are pure and total: any answer set, however incomplete,
// produces a result. A missing answer counts as 0, which also means
// mean-by-group scores are biased downward until every question in a group
// is answered. The divisor is always the fixed group size. Completion gating
// happens upstream, in the session controller.

// SchemaScore is the raw answer for one YSQ question, tagged with its schema.
// Schemas repeat when several questions share one (q14/q15, q4/q16, ...).
type SchemaScore struct {
	Schema Schema `json:"schema"`
	Score  int    `json:"score"`
}

// YSQScores is the sum-and-filter output: one entry per tagged question in
// catalog order, plus the instrument-wide total.
type YSQScores struct {
	Total   int           `json:"totalScore"`
	Schemas []SchemaScore `json:"scores"`
}

// ModeScore is the fixed-divisor mean for one SMI mode.
type ModeScore struct {
	Mode  Mode    `json:"mode"`
	Score float64 `json:"score"`
}

// PatternScore is the fixed-divisor mean for one OI pattern.
type PatternScore struct {
	Pattern Pattern `json:"category"`
	Score   float64 `json:"score"`
}

// CaregiverScores lists, per category, the questions a subject rated at or
// above the qualifying threshold. Every category key is always present.
type CaregiverScores map[ParentingCategory][]Question

// YPIScores holds both subjects' structures, computed independently.
type YPIScores struct {
	Caregiver1 CaregiverScores `json:"caregiver1"`
	Caregiver2 CaregiverScores `json:"caregiver2"`
}

// QualifyingAnswer is the threshold above which a YPI answer counts toward
// its question's category.
const QualifyingAnswer = 4

// ScoreYSQ sums all answers into a total and emits the raw answer per tagged
// question, in catalog order.
func ScoreYSQ(t Test, a AnswerSet) YSQScores {
	out := YSQScores{Schemas: make([]SchemaScore, 0, len(t.Questions))}
	for _, q := range t.Questions {
		v := a[q.ID] // missing -> 0
		out.Total += v
		if q.Schema != "" {
			out.Schemas = append(out.Schemas, SchemaScore{Schema: q.Schema, Score: v})
		}
	}
	return out
}

// ScoreSMI computes one mean per mode group, dividing by the fixed group size.
func ScoreSMI(a AnswerSet) []ModeScore {
	out := make([]ModeScore, 0, len(ModeGroups))
	for _, g := range ModeGroups {
		sum := 0
		for _, qid := range g.QuestionIDs {
			sum += a[qid]
		}
		out = append(out, ModeScore{Mode: g.Mode, Score: float64(sum) / float64(len(g.QuestionIDs))})
	}
	return out
}

// ScoreOI computes one mean per pattern group, dividing by the fixed group size.
func ScoreOI(a AnswerSet) []PatternScore {
	out := make([]PatternScore, 0, len(PatternGroups))
	for _, g := range PatternGroups {
		sum := 0
		for _, qid := range g.QuestionIDs {
			sum += a[qid]
		}
		out = append(out, PatternScore{Pattern: g.Pattern, Score: float64(sum) / float64(len(g.QuestionIDs))})
	}
	return out
}

// ScoreYPI builds, for each caregiver independently, the per-category list of
// questions answered >= QualifyingAnswer. Unanswered questions cannot
// qualify; unmapped questions (ypi-q18) are skipped. Both structures carry
// every category, empty lists included.
func ScoreYPI(t Test, a AnswerSet) YPIScores {
	out := YPIScores{
		Caregiver1: newCaregiverScores(),
		Caregiver2: newCaregiverScores(),
	}
	for _, q := range t.Questions {
		cat, mapped := ParentingQuestionCategory[q.ID]
		if !mapped {
			continue
		}
		if a[AnswerKey(q.ID, Caregiver1)] >= QualifyingAnswer {
			out.Caregiver1[cat] = append(out.Caregiver1[cat], q)
		}
		if a[AnswerKey(q.ID, Caregiver2)] >= QualifyingAnswer {
			out.Caregiver2[cat] = append(out.Caregiver2[cat], q)
		}
	}
	return out
}

func newCaregiverScores() CaregiverScores {
	s := make(CaregiverScores, len(ParentingCategories))
	for _, c := range ParentingCategories {
		s[c] = []Question{}
	}
	return s
}
