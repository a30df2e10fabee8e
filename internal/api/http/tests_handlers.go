package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/burundanga/burundanga-api/internal/assessment"
)

type testSummary struct {
	ID            int                 `json:"id"`
	Type          assessment.TestType `json:"type"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	QuestionCount int                 `json:"question_count"`
}

// ListTestsHandler returns the instrument catalog without question bodies.
func ListTestsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]testSummary, 0, len(assessment.Tests))
		for _, t := range assessment.Tests {
			out = append(out, testSummary{
				ID:            t.ID,
				Type:          t.Type,
				Title:         t.Title,
				Description:   t.Description,
				QuestionCount: len(t.Questions),
			})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GetTestHandler returns one instrument with its questions and answer scale.
func GetTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "testID"))
		if err != nil {
			http.Error(w, "bad test id", 400)
			return
		}
		t, ok := assessment.TestByID(id)
		if !ok {
			http.Error(w, "test not found", 404)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"test":        t,
			"scale":       assessment.LikertScales[t.Type],
			"definitions": definitionsFor(t.Type),
		})
	}
}

// definitionsFor returns the interpretive text for the instrument's
// categories, keyed by display name.
func definitionsFor(tt assessment.TestType) map[string]string {
	out := map[string]string{}
	switch tt {
	case assessment.TestYSQ:
		for k, v := range assessment.SchemaDefinitions {
			out[string(k)] = v
		}
	case assessment.TestYPI:
		for k, v := range assessment.ParentingCategoryDefinitions {
			out[string(k)] = v
		}
	case assessment.TestSMI:
		for k, v := range assessment.ModeDefinitions {
			out[string(k)] = v
		}
	case assessment.TestOI:
		for k, v := range assessment.PatternDefinitions {
			out[string(k)] = v
		}
	}
	return out
}
