package feedback

import (
	"context"
	"errors"
	"fmt"
)

// ErrService is wrapped around any transport or parse failure at the
// generator boundary. Callers surface it as a single generic error; there is
// no retry and no partial fallback.
var ErrService = errors.New("feedback service error")

// YSQFeedback is the structured response for the schema quiz.
type YSQFeedback struct {
	TopSchemas []SchemaFeedback `json:"topSchemas"`
	Disclaimer string           `json:"disclaimer"`
}

type SchemaFeedback struct {
	SchemaName       string   `json:"schemaName"`
	Score            float64  `json:"score"`
	Explanation      string   `json:"explanation"`
	ReflectionPoints []string `json:"reflectionPoints"`
}

// ParentingFeedback covers both caregivers plus a comparison of the two
// styles.
type ParentingFeedback struct {
	Caregiver1 CaregiverFeedback `json:"caregiver1Feedback"`
	Caregiver2 CaregiverFeedback `json:"caregiver2Feedback"`
	Comparison string            `json:"comparison"`
	Disclaimer string            `json:"disclaimer"`
}

type CaregiverFeedback struct {
	Name             string   `json:"name"`
	TopCategory      string   `json:"topCategory"`
	Explanation      string   `json:"explanation"`
	ReflectionPoints []string `json:"reflectionPoints"`
}

// SMIFeedback adds Healthy Adult commentary and a note on how the
// identified modes interact.
type SMIFeedback struct {
	TopModes     []ModeFeedback       `json:"topModes"`
	HealthyAdult HealthyAdultFeedback `json:"healthyAdult"`
	Interaction  string               `json:"interaction"`
	Disclaimer   string               `json:"disclaimer"`
}

type ModeFeedback struct {
	ModeName         string   `json:"modeName"`
	Score            float64  `json:"score"`
	Explanation      string   `json:"explanation"`
	ReflectionPoints []string `json:"reflectionPoints"`
}

type HealthyAdultFeedback struct {
	Score      float64 `json:"score"`
	Commentary string  `json:"commentary"`
}

// OIFeedback is the structured response for the overcompensation inventory.
type OIFeedback struct {
	TopPatterns []PatternFeedback `json:"topPatterns"`
	Disclaimer  string            `json:"disclaimer"`
}

type PatternFeedback struct {
	PatternName      string   `json:"patternName"`
	Score            float64  `json:"score"`
	Explanation      string   `json:"explanation"`
	ReflectionPoints []string `json:"reflectionPoints"`
}

// Generator produces natural-language feedback from an assembled request.
// Implementations may call an LLM or return canned results (for tests).
// A nil feedback pointer never comes from a Generator: the assembler decides
// "no feedback" before any call is made.
type Generator interface {
	YSQ(ctx context.Context, req YSQRequest) (*YSQFeedback, error)
	Parenting(ctx context.Context, req YPIRequest) (*ParentingFeedback, error)
	SMI(ctx context.Context, req SMIRequest) (*SMIFeedback, error)
	OI(ctx context.Context, req OIRequest) (*OIFeedback, error)
}

// Disabled is the Generator used when no API key is configured. Every call
// fails with ErrService, which the session layer turns into its generic
// user-facing error.
type Disabled struct{}

func (Disabled) YSQ(context.Context, YSQRequest) (*YSQFeedback, error) {
	return nil, fmt.Errorf("%w: generator not configured", ErrService)
}

func (Disabled) Parenting(context.Context, YPIRequest) (*ParentingFeedback, error) {
	return nil, fmt.Errorf("%w: generator not configured", ErrService)
}

func (Disabled) SMI(context.Context, SMIRequest) (*SMIFeedback, error) {
	return nil, fmt.Errorf("%w: generator not configured", ErrService)
}

func (Disabled) OI(context.Context, OIRequest) (*OIFeedback, error) {
	return nil, fmt.Errorf("%w: generator not configured", ErrService)
}
