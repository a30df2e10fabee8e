package assessment_test

import (
	"reflect"
	"testing"

	"github.com/burundanga/burundanga-api/internal/assessment"
)

func fullAnswers(t *testing.T, tt assessment.TestType, v int) (assessment.Test, assessment.AnswerSet) {
	t.Helper()
	test, ok := assessment.TestByType(tt)
	if !ok {
		t.Fatalf("missing instrument %s", tt)
	}
	a := assessment.AnswerSet{}
	for _, q := range test.Questions {
		if tt == assessment.TestYPI {
			a[assessment.AnswerKey(q.ID, assessment.Caregiver1)] = v
			a[assessment.AnswerKey(q.ID, assessment.Caregiver2)] = v
		} else {
			a[q.ID] = v
		}
	}
	return test, a
}

func TestScoreYSQUniformAnswers(t *testing.T) {
	test, a := fullAnswers(t, assessment.TestYSQ, 3)
	got := assessment.ScoreYSQ(test, a)
	if got.Total != 3*len(test.Questions) {
		t.Fatalf("total = %d, want %d", got.Total, 3*len(test.Questions))
	}
	if len(got.Schemas) != len(test.Questions) {
		t.Fatalf("per-question entries = %d, want %d", len(got.Schemas), len(test.Questions))
	}
	// Entries come out in catalog order with the question's schema tag.
	for i, sc := range got.Schemas {
		if sc.Schema != test.Questions[i].Schema || sc.Score != 3 {
			t.Fatalf("entry %d = %+v", i, sc)
		}
	}
}

func TestScoreYSQMissingCountsAsZero(t *testing.T) {
	test, _ := fullAnswers(t, assessment.TestYSQ, 1)
	a := assessment.AnswerSet{"ysq-q1": 6, "ysq-q5": 4}
	got := assessment.ScoreYSQ(test, a)
	if got.Total != 10 {
		t.Fatalf("total = %d, want 10", got.Total)
	}
	if got.Schemas[1].Score != 0 {
		t.Fatalf("unanswered question scored %d, want 0", got.Schemas[1].Score)
	}
}

func TestScoreSMIUniformSix(t *testing.T) {
	_, a := fullAnswers(t, assessment.TestSMI, 6)
	got := assessment.ScoreSMI(a)
	if len(got) != len(assessment.ModeGroups) {
		t.Fatalf("mode count = %d, want %d", len(got), len(assessment.ModeGroups))
	}
	for i, m := range got {
		if m.Mode != assessment.ModeGroups[i].Mode {
			t.Fatalf("mode %d = %s, want %s (catalog order)", i, m.Mode, assessment.ModeGroups[i].Mode)
		}
		if m.Score != 6.0 {
			t.Fatalf("%s mean = %v, want 6.0", m.Mode, m.Score)
		}
	}
}

// The divisor is the fixed group size: partial answers bias group means
// toward zero rather than averaging over the answered subset.
func TestScoreSMIFixedDivisor(t *testing.T) {
	a := assessment.AnswerSet{"smi-q5": 6} // Angry Child group is {q5, q16}
	got := assessment.ScoreSMI(a)
	for _, m := range got {
		if m.Mode == assessment.AngryChild {
			if m.Score != 3.0 {
				t.Fatalf("Angry Child mean = %v, want 3.0", m.Score)
			}
			return
		}
	}
	t.Fatalf("Angry Child missing from output")
}

func TestScoreOIUniformSix(t *testing.T) {
	_, a := fullAnswers(t, assessment.TestOI, 6)
	got := assessment.ScoreOI(a)
	if len(got) != len(assessment.PatternGroups) {
		t.Fatalf("pattern count = %d, want %d", len(got), len(assessment.PatternGroups))
	}
	for _, p := range got {
		if p.Score != 6.0 {
			t.Fatalf("%s mean = %v, want 6.0", p.Pattern, p.Score)
		}
	}
}

func TestScoreYPICaregiversIndependent(t *testing.T) {
	test, _ := fullAnswers(t, assessment.TestYPI, 1)
	a := assessment.AnswerSet{
		assessment.AnswerKey("ypi-q2", assessment.Caregiver1): 4, // qualifies
		assessment.AnswerKey("ypi-q2", assessment.Caregiver2): 3, // below threshold
	}
	got := assessment.ScoreYPI(test, a)
	c1 := got.Caregiver1[assessment.RejectionCriticism]
	if len(c1) != 1 || c1[0].ID != "ypi-q2" {
		t.Fatalf("caregiver1 rejection list = %+v", c1)
	}
	if len(got.Caregiver2[assessment.RejectionCriticism]) != 0 {
		t.Fatalf("caregiver2 picked up a non-qualifying answer")
	}
}

func TestScoreYPIAllCategoriesPresent(t *testing.T) {
	test, _ := fullAnswers(t, assessment.TestYPI, 1)
	got := assessment.ScoreYPI(test, assessment.AnswerSet{})
	for _, side := range []assessment.CaregiverScores{got.Caregiver1, got.Caregiver2} {
		if len(side) != len(assessment.ParentingCategories) {
			t.Fatalf("structure has %d categories, want %d", len(side), len(assessment.ParentingCategories))
		}
		for _, cat := range assessment.ParentingCategories {
			qs, ok := side[cat]
			if !ok || qs == nil {
				t.Fatalf("category %s missing or nil", cat)
			}
		}
	}
}

func TestScoreYPIUnmappedQuestionIgnored(t *testing.T) {
	test, a := fullAnswers(t, assessment.TestYPI, 6)
	got := assessment.ScoreYPI(test, a)
	total := 0
	for _, qs := range got.Caregiver1 {
		total += len(qs)
	}
	// 23 of 24 questions are mapped; ypi-q18 never appears.
	if total != 23 {
		t.Fatalf("qualified questions = %d, want 23", total)
	}
	for _, qs := range got.Caregiver1 {
		for _, q := range qs {
			if q.ID == "ypi-q18" {
				t.Fatalf("ypi-q18 leaked into a category")
			}
		}
	}
}

func TestScoreYSQMixedAnswers(t *testing.T) {
	test, a := fullAnswers(t, assessment.TestYSQ, 1)
	for i, q := range test.Questions {
		if i < 5 {
			a[q.ID] = 6
		}
	}
	got := assessment.ScoreYSQ(test, a)
	if got.Total != 5*6+15*1 {
		t.Fatalf("total = %d, want 45", got.Total)
	}
	high := 0
	for _, sc := range got.Schemas {
		if sc.Score == 6 {
			high++
		}
	}
	if high != 5 {
		t.Fatalf("high-scoring entries = %d, want 5", high)
	}
}

func TestScoringIsPure(t *testing.T) {
	test, a := fullAnswers(t, assessment.TestYSQ, 5)
	first := assessment.ScoreYSQ(test, a)
	second := assessment.ScoreYSQ(test, a)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated scoring differed:\n%+v\n%+v", first, second)
	}
}
