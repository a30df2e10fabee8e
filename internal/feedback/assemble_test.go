package feedback_test

import (
	"testing"

	"github.com/burundanga/burundanga-api/internal/assessment"
	"github.com/burundanga/burundanga-api/internal/feedback"
)

func TestAssembleYSQNoSignificantSchemas(t *testing.T) {
	scores := assessment.YSQScores{
		Total: 9,
		Schemas: []assessment.SchemaScore{
			{Schema: assessment.Failure, Score: 3},
			{Schema: assessment.SelfSacrifice, Score: 3},
			{Schema: assessment.MistrustAbuse, Score: 3},
		},
	}
	if _, ok := feedback.AssembleYSQ(scores); ok {
		t.Fatalf("expected no request when every answer is below 4")
	}
}

func TestAssembleYSQTopThreeDescending(t *testing.T) {
	scores := assessment.YSQScores{
		Schemas: []assessment.SchemaScore{
			{Schema: assessment.AbandonmentInstability, Score: 4},
			{Schema: assessment.MistrustAbuse, Score: 6},
			{Schema: assessment.Failure, Score: 2},
			{Schema: assessment.SelfSacrifice, Score: 5},
			{Schema: assessment.EmotionalDeprivation, Score: 4},
		},
	}
	req, ok := feedback.AssembleYSQ(scores)
	if !ok {
		t.Fatalf("expected a request")
	}
	if len(req.TopSchemas) != 3 {
		t.Fatalf("top list length = %d, want 3", len(req.TopSchemas))
	}
	want := []assessment.Schema{assessment.MistrustAbuse, assessment.SelfSacrifice, assessment.AbandonmentInstability}
	for i, sc := range req.TopSchemas {
		if sc.Schema != want[i] {
			t.Fatalf("rank %d = %s, want %s", i, sc.Schema, want[i])
		}
	}
}

// Equal scores keep their input (catalog) order.
func TestAssembleYSQStableTies(t *testing.T) {
	scores := assessment.YSQScores{
		Schemas: []assessment.SchemaScore{
			{Schema: assessment.AbandonmentInstability, Score: 5},
			{Schema: assessment.MistrustAbuse, Score: 5},
			{Schema: assessment.SocialIsolationAlienation, Score: 5},
			{Schema: assessment.DefectivenessShame, Score: 5},
		},
	}
	req, _ := feedback.AssembleYSQ(scores)
	want := []assessment.Schema{assessment.AbandonmentInstability, assessment.MistrustAbuse, assessment.SocialIsolationAlienation}
	for i, sc := range req.TopSchemas {
		if sc.Schema != want[i] {
			t.Fatalf("rank %d = %s, want %s", i, sc.Schema, want[i])
		}
	}
}

func smiScores(healthy float64, modes map[assessment.Mode]float64) []assessment.ModeScore {
	out := make([]assessment.ModeScore, 0, len(assessment.ModeGroups))
	for _, g := range assessment.ModeGroups {
		v := modes[g.Mode]
		if g.Mode == assessment.HealthyAdult {
			v = healthy
		}
		out = append(out, assessment.ModeScore{Mode: g.Mode, Score: v})
	}
	return out
}

func TestAssembleSMIHealthyAdultAlwaysAttached(t *testing.T) {
	req, ok := feedback.AssembleSMI(smiScores(2.5, map[assessment.Mode]float64{
		assessment.VulnerableChild: 4.5,
		assessment.AngryChild:      5.0,
	}))
	if !ok {
		t.Fatalf("expected a request")
	}
	if req.HealthyAdult.Mode != assessment.HealthyAdult || req.HealthyAdult.Score != 2.5 {
		t.Fatalf("healthy adult = %+v", req.HealthyAdult)
	}
	for _, m := range req.TopModes {
		if m.Mode == assessment.HealthyAdult {
			t.Fatalf("Healthy Adult must not be ranked with maladaptive modes")
		}
	}
	if req.TopModes[0].Mode != assessment.AngryChild {
		t.Fatalf("top mode = %s, want AngryChild", req.TopModes[0].Mode)
	}
}

// A strong Healthy Adult alone still warrants feedback, even with no
// significant maladaptive mode.
func TestAssembleSMIHealthyOnly(t *testing.T) {
	req, ok := feedback.AssembleSMI(smiScores(5.5, nil))
	if !ok {
		t.Fatalf("expected a request on high Healthy Adult alone")
	}
	if len(req.TopModes) != 0 {
		t.Fatalf("top modes = %+v, want empty", req.TopModes)
	}
}

func TestAssembleSMINothingSignificant(t *testing.T) {
	if _, ok := feedback.AssembleSMI(smiScores(3.0, map[assessment.Mode]float64{
		assessment.VulnerableChild: 3.9,
	})); ok {
		t.Fatalf("expected no request when all means are below 4.0")
	}
}

func TestAssembleOIThresholdAndCap(t *testing.T) {
	scores := []assessment.PatternScore{
		{Pattern: assessment.Perfectionism, Score: 4.2},
		{Pattern: assessment.SelfAggrandizement, Score: 3.9},
		{Pattern: assessment.ControlVigilance, Score: 6.0},
		{Pattern: assessment.RebellionDefiance, Score: 4.0},
		{Pattern: assessment.AggressionBlame, Score: 5.0},
	}
	req, ok := feedback.AssembleOI(scores)
	if !ok {
		t.Fatalf("expected a request")
	}
	want := []assessment.Pattern{assessment.ControlVigilance, assessment.AggressionBlame, assessment.Perfectionism}
	if len(req.TopPatterns) != len(want) {
		t.Fatalf("top list length = %d, want %d", len(req.TopPatterns), len(want))
	}
	for i, p := range req.TopPatterns {
		if p.Pattern != want[i] {
			t.Fatalf("rank %d = %s, want %s", i, p.Pattern, want[i])
		}
	}
}

func TestAssembleYPIAlwaysRequests(t *testing.T) {
	var scores assessment.YPIScores
	req := feedback.AssembleYPI(scores, "Mom", "Dad")
	if req.Caregiver1Name != "Mom" || req.Caregiver2Name != "Dad" {
		t.Fatalf("caregiver names not carried: %+v", req)
	}
}
