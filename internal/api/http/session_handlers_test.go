package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/burundanga/burundanga-api/internal/api/http"
	"github.com/burundanga/burundanga-api/internal/assessment"
	"github.com/burundanga/burundanga-api/internal/feedback"
	"github.com/burundanga/burundanga-api/internal/session"
)

type cannedGenerator struct{ fail bool }

func (g cannedGenerator) YSQ(context.Context, feedback.YSQRequest) (*feedback.YSQFeedback, error) {
	if g.fail {
		return nil, fmt.Errorf("%w: down", feedback.ErrService)
	}
	return &feedback.YSQFeedback{Disclaimer: "d"}, nil
}
func (g cannedGenerator) Parenting(context.Context, feedback.YPIRequest) (*feedback.ParentingFeedback, error) {
	if g.fail {
		return nil, fmt.Errorf("%w: down", feedback.ErrService)
	}
	return &feedback.ParentingFeedback{}, nil
}
func (g cannedGenerator) SMI(context.Context, feedback.SMIRequest) (*feedback.SMIFeedback, error) {
	if g.fail {
		return nil, fmt.Errorf("%w: down", feedback.ErrService)
	}
	return &feedback.SMIFeedback{}, nil
}
func (g cannedGenerator) OI(context.Context, feedback.OIRequest) (*feedback.OIFeedback, error) {
	if g.fail {
		return nil, fmt.Errorf("%w: down", feedback.ErrService)
	}
	return &feedback.OIFeedback{}, nil
}

func sessionRouter(gen feedback.Generator) (*chi.Mux, *session.Manager) {
	mgr := session.NewManager(gen)
	r := chi.NewRouter()
	r.Get("/tests", api.ListTestsHandler())
	r.Get("/tests/{testID}", api.GetTestHandler())
	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", api.CreateSessionHandler(mgr))
		sr.Get("/{sessionID}", api.GetSessionHandler(mgr))
		sr.Post("/{sessionID}/start", api.StartTestHandler(mgr))
		sr.Put("/{sessionID}/answers", api.SaveAnswerHandler(mgr))
		sr.Post("/{sessionID}/review", api.ReviewHandler(mgr))
		sr.Post("/{sessionID}/edit", api.EditHandler(mgr))
		sr.Post("/{sessionID}/submit", api.SubmitHandler(mgr, nil))
		sr.Post("/{sessionID}/reset", api.ResetHandler(mgr))
	})
	return r, mgr
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("{}")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// snapshotView avoids the Result interface when decoding responses.
type snapshotView struct {
	ID     string          `json:"id"`
	State  session.State   `json:"state"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) snapshotView {
	t.Helper()
	var snap snapshotView
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v (body %q)", err, rec.Body.String())
	}
	return snap
}

func TestListAndGetTests(t *testing.T) {
	r, _ := sessionRouter(cannedGenerator{})

	rec := do(t, r, "GET", "/tests", "")
	if rec.Code != 200 {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []struct {
		ID            int `json:"id"`
		QuestionCount int `json:"question_count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("catalog lists %d instruments", len(list))
	}

	if rec := do(t, r, "GET", "/tests/1", ""); rec.Code != 200 {
		t.Fatalf("get status = %d", rec.Code)
	}
	if rec := do(t, r, "GET", "/tests/42", ""); rec.Code != 404 {
		t.Fatalf("missing test status = %d", rec.Code)
	}
	if rec := do(t, r, "GET", "/tests/abc", ""); rec.Code != 400 {
		t.Fatalf("bad id status = %d", rec.Code)
	}
}

func TestWizardOverHTTP(t *testing.T) {
	r, _ := sessionRouter(cannedGenerator{})

	rec := do(t, r, "POST", "/sessions", "")
	if rec.Code != 201 {
		t.Fatalf("create status = %d", rec.Code)
	}
	id := decodeSnapshot(t, rec).ID

	rec = do(t, r, "POST", "/sessions/"+id+"/start", `{"test_id":1}`)
	if rec.Code != 200 {
		t.Fatalf("start status = %d: %s", rec.Code, rec.Body.String())
	}

	ysq, _ := assessment.TestByType(assessment.TestYSQ)
	for _, q := range ysq.Questions {
		rec = do(t, r, "PUT", "/sessions/"+id+"/answers",
			fmt.Sprintf(`{"question_id":%q,"value":5}`, q.ID))
		if rec.Code != 200 {
			t.Fatalf("answer %s status = %d: %s", q.ID, rec.Code, rec.Body.String())
		}
	}

	if rec = do(t, r, "POST", "/sessions/"+id+"/review", ""); rec.Code != 200 {
		t.Fatalf("review status = %d", rec.Code)
	}
	rec = do(t, r, "POST", "/sessions/"+id+"/submit", "")
	if rec.Code != 200 {
		t.Fatalf("submit status = %d: %s", rec.Code, rec.Body.String())
	}
	snap := decodeSnapshot(t, rec)
	if snap.State != session.StateResults {
		t.Fatalf("state = %s", snap.State)
	}

	if rec = do(t, r, "POST", "/sessions/"+id+"/reset", ""); rec.Code != 200 {
		t.Fatalf("reset status = %d", rec.Code)
	}
	if snap := decodeSnapshot(t, rec); snap.State != session.StateWelcome {
		t.Fatalf("state after reset = %s", snap.State)
	}
}

func TestErrorMappingOverHTTP(t *testing.T) {
	r, _ := sessionRouter(cannedGenerator{})

	if rec := do(t, r, "GET", "/sessions/unknown", ""); rec.Code != 404 {
		t.Fatalf("unknown session status = %d", rec.Code)
	}

	rec := do(t, r, "POST", "/sessions", "")
	id := decodeSnapshot(t, rec).ID

	// Review before starting: wrong state.
	if rec := do(t, r, "POST", "/sessions/"+id+"/review", ""); rec.Code != 409 {
		t.Fatalf("review from welcome status = %d", rec.Code)
	}

	do(t, r, "POST", "/sessions/"+id+"/start", `{"test_id":1}`)

	// Out-of-range answer.
	rec = do(t, r, "PUT", "/sessions/"+id+"/answers", `{"question_id":"ysq-q1","value":9}`)
	if rec.Code != 422 {
		t.Fatalf("bad answer status = %d", rec.Code)
	}

	// Incomplete submit.
	do(t, r, "POST", "/sessions/"+id+"/review", "")
	if rec := do(t, r, "POST", "/sessions/"+id+"/submit", ""); rec.Code != 422 {
		t.Fatalf("incomplete submit status = %d", rec.Code)
	}
}

func TestGeneratorOutageOverHTTP(t *testing.T) {
	r, _ := sessionRouter(cannedGenerator{fail: true})

	rec := do(t, r, "POST", "/sessions", "")
	id := decodeSnapshot(t, rec).ID
	do(t, r, "POST", "/sessions/"+id+"/start", `{"test_id":1}`)

	ysq, _ := assessment.TestByType(assessment.TestYSQ)
	for _, q := range ysq.Questions {
		do(t, r, "PUT", "/sessions/"+id+"/answers",
			fmt.Sprintf(`{"question_id":%q,"value":6}`, q.ID))
	}
	do(t, r, "POST", "/sessions/"+id+"/review", "")

	rec = do(t, r, "POST", "/sessions/"+id+"/submit", "")
	if rec.Code != 502 {
		t.Fatalf("outage submit status = %d", rec.Code)
	}
	snap := decodeSnapshot(t, rec)
	if snap.State != session.StateError || snap.Error == "" {
		t.Fatalf("snapshot after outage = %+v", snap)
	}
}
