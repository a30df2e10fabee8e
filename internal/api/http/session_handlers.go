package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/burundanga/burundanga-api/internal/audit"
	"github.com/burundanga/burundanga-api/internal/session"
)

// sessionStatus maps domain errors to HTTP status codes. Unknown errors are
// treated as client mistakes: the session layer does not touch I/O except
// through the feedback generator, which Submit reports separately.
func sessionStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return 404
	case errors.Is(err, session.ErrBadState), errors.Is(err, session.ErrLocked):
		return 409
	case errors.Is(err, session.ErrIncomplete), errors.Is(err, session.ErrBadAnswer):
		return 422
	default:
		return 400
	}
}

func writeSnapshot(w http.ResponseWriter, snap session.Snapshot, err error) {
	if err != nil {
		http.Error(w, err.Error(), sessionStatus(err))
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

func CreateSessionHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := mgr.Create()
		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(snap)
	}
}

func GetSessionHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := mgr.Get(chi.URLParam(r, "sessionID"))
		writeSnapshot(w, snap, err)
	}
}

func StartTestHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TestID int `json:"test_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		snap, err := mgr.Start(chi.URLParam(r, "sessionID"), req.TestID)
		writeSnapshot(w, snap, err)
	}
}

// SaveAnswerHandler records one answer. The parenting inventory additionally
// carries a caregiver tag ("c1" or "c2"); the other instruments reject it.
func SaveAnswerHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QuestionID string `json:"question_id"`
			Caregiver  string `json:"caregiver,omitempty"`
			Value      int    `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.QuestionID == "" {
			http.Error(w, "question_id required", 400)
			return
		}
		snap, err := mgr.Answer(chi.URLParam(r, "sessionID"), req.QuestionID, req.Caregiver, req.Value)
		writeSnapshot(w, snap, err)
	}
}

func SetCaregiversHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Caregiver1 string `json:"caregiver1_name"`
			Caregiver2 string `json:"caregiver2_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		snap, err := mgr.SetCaregiverNames(chi.URLParam(r, "sessionID"), req.Caregiver1, req.Caregiver2)
		writeSnapshot(w, snap, err)
	}
}

func ReviewHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := mgr.Review(chi.URLParam(r, "sessionID"))
		writeSnapshot(w, snap, err)
	}
}

func EditHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := mgr.Edit(chi.URLParam(r, "sessionID"))
		writeSnapshot(w, snap, err)
	}
}

func ResetHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := mgr.Reset(chi.URLParam(r, "sessionID"))
		writeSnapshot(w, snap, err)
	}
}

// SubmitHandler runs the scoring and feedback pipeline. On generator failure
// the session lands in the error state; the snapshot carries the message, so
// the client still gets a 200 body describing where it ended up.
func SubmitHandler(mgr *session.Manager, events *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		snap, err := mgr.Submit(r.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrBadState) ||
				errors.Is(err, session.ErrIncomplete) {
				http.Error(w, err.Error(), sessionStatus(err))
				return
			}
			// Generator failure: the snapshot already reflects the error
			// state. 502 tells the client the upstream service failed.
			w.WriteHeader(502)
			_ = json.NewEncoder(w).Encode(snap)
			return
		}
		if events != nil && snap.State == session.StateResults {
			// Kind only; scores never leave the session.
			_ = events.Append(r.Context(), audit.TypeAssessmentCompleted, id,
				map[string]any{"test_type": snap.TestType})
		}
		_ = json.NewEncoder(w).Encode(snap)
	}
}
