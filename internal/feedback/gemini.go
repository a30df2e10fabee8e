package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiGenerator produces feedback with the Gemini API, constrained to the
// response shapes above via JSON response schemas.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// Compile-time check: *GeminiGenerator satisfies Generator.
var _ Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator dials the Gemini API. model defaults to
// "gemini-2.5-flash" when empty.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) YSQ(ctx context.Context, req YSQRequest) (*YSQFeedback, error) {
	prompt := fmt.Sprintf("Analyze the following schema scores: %s. Provide an explanation and 2-3 reflection points for each.", mustJSON(req.TopSchemas))
	system := "You are a helpful assistant trained in Schema Therapy principles. Your role is to provide supportive and insightful feedback based on quiz results. You are not a therapist. Always provide a disclaimer that this is not a diagnosis. Focus on the top 3 schemas provided. For each schema, provide a brief, gentle explanation of how it might manifest in daily life and 2-3 concise, actionable reflection points as a list."

	var out YSQFeedback
	if err := g.generate(ctx, system, prompt, ysqSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GeminiGenerator) Parenting(ctx context.Context, req YPIRequest) (*ParentingFeedback, error) {
	prompt := fmt.Sprintf("Analyze these parenting inventory results for two caregivers, %s and %s. Results: %s. Identify the top category for each, explain it, provide reflection points, and compare the two caregivers.",
		req.Caregiver1Name, req.Caregiver2Name, mustJSON(req.Scores))
	system := "You are an assistant with knowledge of parenting styles and their potential impact on development, based on Schema Therapy. You are not a therapist. Analyze the provided data, which shows categories where a user rated a caregiver 4 or higher. For each caregiver, identify the category with the most high scores as their 'topCategory'. Provide a gentle explanation and 2-3 reflection points. Then, provide a brief 'comparison' of the two parenting styles. Always include a disclaimer."

	var out ParentingFeedback
	if err := g.generate(ctx, system, prompt, parentingSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GeminiGenerator) SMI(ctx context.Context, req SMIRequest) (*SMIFeedback, error) {
	prompt := fmt.Sprintf("Analyze these schema mode scores. Top maladaptive modes: %s. Healthy Adult score: %s. Provide explanations, reflection points, commentary on the Healthy Adult score, and how the modes might interact.",
		mustJSON(req.TopModes), mustJSON(req.HealthyAdult))
	system := "You are an assistant trained in Schema Therapy concepts, specifically Schema Modes. Your task is to provide feedback on a user's Schema Mode Inventory results. For each of the top 3 maladaptive modes, provide a gentle explanation and 2-3 reflection points. Provide specific commentary on the Healthy Adult score, noting its strength or areas for growth. Provide a paragraph on how the identified modes might interact. Always include a disclaimer that this is not a diagnosis."

	var out SMIFeedback
	if err := g.generate(ctx, system, prompt, smiSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GeminiGenerator) OI(ctx context.Context, req OIRequest) (*OIFeedback, error) {
	prompt := fmt.Sprintf("Analyze these overcompensation inventory scores: %s. Provide an explanation and 2-3 reflection points for each significant pattern.", mustJSON(req.TopPatterns))
	system := "You are an assistant trained in Schema Therapy concepts, focusing on overcompensatory coping styles. Your role is to provide supportive feedback on a user's inventory results. You are not a therapist. For each of the top 3 patterns provided, provide a brief, gentle explanation of the pattern and what underlying schema it might be defending against. Then, provide 2-3 concise, actionable reflection points. Always include a disclaimer that this is not a diagnosis."

	var out OIFeedback
	if err := g.generate(ctx, system, prompt, oiSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// generate runs one structured-output call and decodes into dst. Every
// failure mode collapses into ErrService: the caller treats the boundary as
// a single opaque collaborator.
func (g *GeminiGenerator) generate(ctx context.Context, system, prompt string, schema *genai.Schema, dst any) error {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrService, err)
	}
	text := stripFences(resp.Text())
	if text == "" {
		return fmt.Errorf("%w: empty response", ErrService)
	}
	if err := json.Unmarshal([]byte(text), dst); err != nil {
		return fmt.Errorf("%w: invalid response JSON: %v", ErrService, err)
	}
	return nil
}

// stripFences removes markdown code fences some models wrap around JSON
// despite the response MIME type.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// --- response schemas, mirroring the feedback structs ---

func reflectionList() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
}

var ysqSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"topSchemas": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"schemaName":       {Type: genai.TypeString},
					"score":            {Type: genai.TypeNumber},
					"explanation":      {Type: genai.TypeString},
					"reflectionPoints": reflectionList(),
				},
			},
		},
		"disclaimer": {Type: genai.TypeString},
	},
}

func caregiverSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":             {Type: genai.TypeString},
			"topCategory":      {Type: genai.TypeString},
			"explanation":      {Type: genai.TypeString},
			"reflectionPoints": reflectionList(),
		},
	}
}

var parentingSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"caregiver1Feedback": caregiverSchema(),
		"caregiver2Feedback": caregiverSchema(),
		"comparison":         {Type: genai.TypeString},
		"disclaimer":         {Type: genai.TypeString},
	},
}

var smiSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"topModes": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"modeName":         {Type: genai.TypeString},
					"score":            {Type: genai.TypeNumber},
					"explanation":      {Type: genai.TypeString},
					"reflectionPoints": reflectionList(),
				},
			},
		},
		"healthyAdult": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":      {Type: genai.TypeNumber},
				"commentary": {Type: genai.TypeString},
			},
		},
		"interaction": {Type: genai.TypeString},
		"disclaimer":  {Type: genai.TypeString},
	},
}

var oiSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"topPatterns": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"patternName":      {Type: genai.TypeString},
					"score":            {Type: genai.TypeNumber},
					"explanation":      {Type: genai.TypeString},
					"reflectionPoints": reflectionList(),
				},
			},
		},
		"disclaimer": {Type: genai.TypeString},
	},
}
