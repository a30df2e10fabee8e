package session

import (
	"github.com/burundanga/burundanga-api/internal/assessment"
	"github.com/burundanga/burundanga-api/internal/feedback"
)

// Result is the per-instrument outcome: numeric scores plus optional
// generated feedback. One variant per instrument kind; a nil Feedback means
// no feedback was requested (nothing significant), which is a normal state.
type Result interface {
	Kind() assessment.TestType
}

type YSQResult struct {
	Type     assessment.TestType   `json:"type"`
	Scores   assessment.YSQScores  `json:"scores"`
	Feedback *feedback.YSQFeedback `json:"feedback"`
}

type YPIResult struct {
	Type     assessment.TestType         `json:"type"`
	Scores   assessment.YPIScores        `json:"scores"`
	Feedback *feedback.ParentingFeedback `json:"feedback"`
}

type SMIResult struct {
	Type     assessment.TestType    `json:"type"`
	Scores   []assessment.ModeScore `json:"scores"`
	Feedback *feedback.SMIFeedback  `json:"feedback"`
}

type OIResult struct {
	Type     assessment.TestType       `json:"type"`
	Scores   []assessment.PatternScore `json:"scores"`
	Feedback *feedback.OIFeedback      `json:"feedback"`
}

func (r YSQResult) Kind() assessment.TestType { return r.Type }
func (r YPIResult) Kind() assessment.TestType { return r.Type }
func (r SMIResult) Kind() assessment.TestType { return r.Type }
func (r OIResult) Kind() assessment.TestType  { return r.Type }
