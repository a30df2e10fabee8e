package feedback

import (
	"sort"

	"github.com/burundanga/burundanga-api/internal/assessment"
)

// Significance thresholds per instrument. A category below threshold is
// never sent to the generator.
const (
	significantRaw  = 4   // YSQ: raw per-question answer
	significantMean = 4.0 // SMI/OI: fixed-divisor group mean
	topN            = 3
)

// YSQRequest is the payload for a schema-quiz feedback call: the top ranked
// significant schemas, descending by raw score, catalog order on ties.
type YSQRequest struct {
	TopSchemas []assessment.SchemaScore `json:"topSchemas"`
}

// SMIRequest carries the top maladaptive modes plus the Healthy Adult score,
// which is attached unconditionally because it is a protective construct
// rather than a maladaptive one.
type SMIRequest struct {
	TopModes     []assessment.ModeScore `json:"topModes"`
	HealthyAdult assessment.ModeScore   `json:"healthyAdult"`
}

// OIRequest carries the top significant overcompensation patterns.
type OIRequest struct {
	TopPatterns []assessment.PatternScore `json:"topPatterns"`
}

// YPIRequest carries both caregivers' full category structures; filtering
// already happened inside the scorer via the qualifying-answer rule.
type YPIRequest struct {
	Scores         assessment.YPIScores `json:"scores"`
	Caregiver1Name string               `json:"caregiver1Name"`
	Caregiver2Name string               `json:"caregiver2Name"`
}

// AssembleYSQ filters and ranks schema scores. ok=false means nothing was
// significant and no feedback should be requested; that is a normal outcome,
// the numeric scores stand on their own.
func AssembleYSQ(s assessment.YSQScores) (YSQRequest, bool) {
	var sig []assessment.SchemaScore
	for _, sc := range s.Schemas {
		if sc.Score >= significantRaw {
			sig = append(sig, sc)
		}
	}
	if len(sig) == 0 {
		return YSQRequest{}, false
	}
	sort.SliceStable(sig, func(i, j int) bool { return sig[i].Score > sig[j].Score })
	if len(sig) > topN {
		sig = sig[:topN]
	}
	return YSQRequest{TopSchemas: sig}, true
}

// AssembleSMI selects the top maladaptive modes at or above the mean
// threshold, Healthy Adult excluded from ranking but always carried. When no
// maladaptive mode qualifies and Healthy Adult is below threshold too, no
// request is made.
func AssembleSMI(scores []assessment.ModeScore) (SMIRequest, bool) {
	var sig []assessment.ModeScore
	var healthy assessment.ModeScore
	for _, m := range scores {
		if m.Mode == assessment.HealthyAdult {
			healthy = m
			continue
		}
		if m.Score >= significantMean {
			sig = append(sig, m)
		}
	}
	if len(sig) == 0 && healthy.Score < significantMean {
		return SMIRequest{}, false
	}
	sort.SliceStable(sig, func(i, j int) bool { return sig[i].Score > sig[j].Score })
	if len(sig) > topN {
		sig = sig[:topN]
	}
	return SMIRequest{TopModes: sig, HealthyAdult: healthy}, true
}

// AssembleOI selects the top significant patterns, stable on ties.
func AssembleOI(scores []assessment.PatternScore) (OIRequest, bool) {
	var sig []assessment.PatternScore
	for _, p := range scores {
		if p.Score >= significantMean {
			sig = append(sig, p)
		}
	}
	if len(sig) == 0 {
		return OIRequest{}, false
	}
	sort.SliceStable(sig, func(i, j int) bool { return sig[i].Score > sig[j].Score })
	if len(sig) > topN {
		sig = sig[:topN]
	}
	return OIRequest{TopPatterns: sig}, true
}

// AssembleYPI shapes the parenting request. There is no thresholding at this
// stage, so a request is always made.
func AssembleYPI(scores assessment.YPIScores, caregiver1, caregiver2 string) YPIRequest {
	return YPIRequest{
		Scores:         scores,
		Caregiver1Name: caregiver1,
		Caregiver2Name: caregiver2,
	}
}
