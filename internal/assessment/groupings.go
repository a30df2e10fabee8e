package assessment

import "fmt"

// ParentingQuestionCategory maps YPI question ids to their category.
// Questions absent from this map (ypi-q18) never contribute to threshold
// counts. Every question id here must exist in the YPI catalog; Validate
// enforces that at startup.
var ParentingQuestionCategory = map[string]ParentingCategory{
	"ypi-q2": RejectionCriticism, "ypi-q5": RejectionCriticism, "ypi-q14": RejectionCriticism, "ypi-q20": RejectionCriticism, "ypi-q24": RejectionCriticism,
	"ypi-q6": EmotionalDeprivationDistance, "ypi-q8": EmotionalDeprivationDistance, "ypi-q12": EmotionalDeprivationDistance, "ypi-q22": EmotionalDeprivationDistance,
	"ypi-q3": OvercontrolEnmeshment, "ypi-q16": OvercontrolEnmeshment, "ypi-q21": OvercontrolEnmeshment,
	"ypi-q10": ExcessiveDemands, "ypi-q13": ExcessiveDemands, "ypi-q17": ExcessiveDemands,
	"ypi-q11": LackOfLimits,
	"ypi-q1":  PositiveParenting, "ypi-q4": PositiveParenting, "ypi-q7": PositiveParenting, "ypi-q9": PositiveParenting, "ypi-q15": PositiveParenting, "ypi-q19": PositiveParenting, "ypi-q23": PositiveParenting,
}

// ModeGroup is the fixed set of SMI questions averaged into one mode score.
type ModeGroup struct {
	Mode        Mode
	QuestionIDs []string
}

// PatternGroup is the fixed set of OI questions averaged into one pattern score.
type PatternGroup struct {
	Pattern     Pattern
	QuestionIDs []string
}

// ModeGroups and PatternGroups are ordered slices, not maps: mean-by-group
// output must list every category exactly once in catalog order, and ranking
// ties are broken by this order.
var ModeGroups = []ModeGroup{
	{VulnerableChild, []string{"smi-q1", "smi-q8", "smi-q14", "smi-q20"}},
	{AngryChild, []string{"smi-q5", "smi-q16"}},
	{ImpulsiveUndisciplinedChild, []string{"smi-q9", "smi-q13"}},
	{DetachedProtector, []string{"smi-q2", "smi-q15", "smi-q21"}},
	{CompliantSurrenderer, []string{"smi-q4", "smi-q11", "smi-q22"}},
	{Overcompensator, []string{"smi-q7", "smi-q12", "smi-q18"}},
	{PunitiveParent, []string{"smi-q6", "smi-q10", "smi-q19"}},
	{DemandingParent, []string{"smi-q3", "smi-q17"}},
	{HealthyAdult, []string{"smi-q23", "smi-q24"}},
}

var PatternGroups = []PatternGroup{
	{Perfectionism, []string{"oi-q1", "oi-q6", "oi-q12", "oi-q18", "oi-q24"}},
	{SelfAggrandizement, []string{"oi-q2", "oi-q7", "oi-q13", "oi-q19", "oi-q25"}},
	{ControlVigilance, []string{"oi-q8", "oi-q14", "oi-q20", "oi-q26", "oi-q30"}},
	{RebellionDefiance, []string{"oi-q3", "oi-q9", "oi-q15", "oi-q21", "oi-q27"}},
	{AggressionBlame, []string{"oi-q4", "oi-q10", "oi-q16", "oi-q22", "oi-q28"}},
	{DetachedSelfReliance, []string{"oi-q5", "oi-q11", "oi-q17", "oi-q23", "oi-q29"}},
}

// Validate checks catalog/grouping consistency. A failure here is a
// programming error in the static data, not a runtime condition: main calls
// this once at startup and refuses to serve if it fails.
//
// Invariants:
//   - every question id referenced by a grouping exists in its catalog
//   - every SMI and OI catalog question belongs to exactly one group
//   - every YSQ question carries a schema tag (it is its own group)
//   - question ids are unique within each instrument
func Validate() error {
	byType := map[TestType]map[string]bool{}
	for _, t := range Tests {
		ids := map[string]bool{}
		for _, q := range t.Questions {
			if ids[q.ID] {
				return fmt.Errorf("%s: duplicate question id %q", t.Type, q.ID)
			}
			ids[q.ID] = true
			if t.Type == TestYSQ && q.Schema == "" {
				return fmt.Errorf("YSQ: question %q has no schema tag", q.ID)
			}
		}
		byType[t.Type] = ids
	}

	for qid := range ParentingQuestionCategory {
		if !byType[TestYPI][qid] {
			return fmt.Errorf("YPI: grouping references unknown question %q", qid)
		}
	}

	smiSeen := map[string]bool{}
	for _, g := range ModeGroups {
		for _, qid := range g.QuestionIDs {
			if !byType[TestSMI][qid] {
				return fmt.Errorf("SMI: group %q references unknown question %q", g.Mode, qid)
			}
			if smiSeen[qid] {
				return fmt.Errorf("SMI: question %q appears in more than one group", qid)
			}
			smiSeen[qid] = true
		}
	}
	if len(smiSeen) != len(byType[TestSMI]) {
		return fmt.Errorf("SMI: %d of %d questions are grouped", len(smiSeen), len(byType[TestSMI]))
	}

	oiSeen := map[string]bool{}
	for _, g := range PatternGroups {
		for _, qid := range g.QuestionIDs {
			if !byType[TestOI][qid] {
				return fmt.Errorf("OI: group %q references unknown question %q", g.Pattern, qid)
			}
			if oiSeen[qid] {
				return fmt.Errorf("OI: question %q appears in more than one group", qid)
			}
			oiSeen[qid] = true
		}
	}
	if len(oiSeen) != len(byType[TestOI]) {
		return fmt.Errorf("OI: %d of %d questions are grouped", len(oiSeen), len(byType[TestOI]))
	}

	return nil
}
