package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/burundanga/burundanga-api/internal/assessment"
	"github.com/burundanga/burundanga-api/internal/feedback"
)

// State is the wizard position of one assessment session.
type State string

const (
	StateWelcome State = "welcome"
	StateTesting State = "testing"
	StateReview  State = "review"
	StateLoading State = "loading"
	StateResults State = "results"
	StateError   State = "error"
)

var (
	ErrNotFound   = errors.New("session not found")
	ErrBadState   = errors.New("operation not allowed in current state")
	ErrLocked     = errors.New("session is awaiting feedback")
	ErrIncomplete = errors.New("not all questions answered")
	ErrBadAnswer  = errors.New("answer out of range")
)

// session is one user's wizard. Sessions are fully isolated; each owns its
// answer set and results, guarded by its own mutex.
type session struct {
	mu sync.Mutex

	id    string
	state State
	test  assessment.Test // valid when state != welcome

	answers    assessment.AnswerSet
	caregiver1 string
	caregiver2 string

	result     Result
	allResults map[assessment.TestType]Result
	errMsg     string

	// seq invalidates an in-flight submit when the session is reset while
	// loading (navigation cancels the pending feedback call).
	seq uint64
}

// Snapshot is the externally visible session view.
type Snapshot struct {
	ID             string                           `json:"id"`
	State          State                            `json:"state"`
	TestID         int                              `json:"test_id,omitempty"`
	TestType       assessment.TestType              `json:"test_type,omitempty"`
	Answers        assessment.AnswerSet             `json:"answers"`
	Caregiver1Name string                           `json:"caregiver1_name,omitempty"`
	Caregiver2Name string                           `json:"caregiver2_name,omitempty"`
	Result         Result                           `json:"result,omitempty"`
	AllResults     map[assessment.TestType]Result   `json:"all_results,omitempty"`
	Error          string                           `json:"error,omitempty"`
}

// Manager owns the in-memory session registry and drives the scoring and
// feedback pipeline on submit. Results live only inside their session and
// are discarded on reset.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	gen      feedback.Generator
}

func NewManager(gen feedback.Generator) *Manager {
	return &Manager{sessions: map[string]*session{}, gen: gen}
}

// Create opens a new session at the welcome state.
func (m *Manager) Create() Snapshot {
	s := &session{
		id:         uuid.NewString(),
		state:      StateWelcome,
		answers:    assessment.AnswerSet{},
		caregiver1: "Mother",
		caregiver2: "Father",
		allResults: map[assessment.TestType]Result{},
	}
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s.snapshot()
}

func (m *Manager) Get(id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Start begins an instrument from the welcome state.
func (m *Manager) Start(id string, testID int) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	t, ok := assessment.TestByID(testID)
	if !ok {
		return Snapshot{}, fmt.Errorf("unknown test id %d", testID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Starting from results keeps the accumulated per-instrument results;
	// only a reset discards them.
	if s.state != StateWelcome && s.state != StateResults {
		return Snapshot{}, ErrBadState
	}
	s.test = t
	s.answers = assessment.AnswerSet{}
	s.result = nil
	s.state = StateTesting
	return s.snapshotLocked(), nil
}

// Answer records one answer. Allowed only while testing: the session refuses
// mutations while a feedback call is pending.
func (m *Manager) Answer(id, questionID string, caregiver string, value int) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	if !assessment.ValidAnswer(value) {
		return Snapshot{}, ErrBadAnswer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateTesting:
	case StateLoading:
		return Snapshot{}, ErrLocked
	default:
		return Snapshot{}, ErrBadState
	}

	key := questionID
	if s.test.Type == assessment.TestYPI {
		c, err := assessment.ParseCaregiver(caregiver)
		if err != nil {
			return Snapshot{}, err
		}
		key = assessment.AnswerKey(questionID, c)
	} else if caregiver != "" {
		return Snapshot{}, fmt.Errorf("caregiver tag only applies to the parenting inventory")
	}
	if !questionInTest(s.test, questionID) {
		return Snapshot{}, fmt.Errorf("question %q is not part of %s", questionID, s.test.Type)
	}
	s.answers[key] = value
	return s.snapshotLocked(), nil
}

// SetCaregiverNames sets the free-text subject labels carried into the
// parenting feedback request.
func (m *Manager) SetCaregiverNames(id, c1, c2 string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateTesting {
		return Snapshot{}, ErrBadState
	}
	if c1 != "" {
		s.caregiver1 = c1
	}
	if c2 != "" {
		s.caregiver2 = c2
	}
	return s.snapshotLocked(), nil
}

// Review moves testing -> review.
func (m *Manager) Review(id string) (Snapshot, error) {
	return m.transition(id, StateTesting, StateReview)
}

// Edit moves review -> testing.
func (m *Manager) Edit(id string) (Snapshot, error) {
	return m.transition(id, StateReview, StateTesting)
}

// Reset returns the session to welcome from any state, discarding answers
// and results. An in-flight submit, if any, is abandoned when it completes.
func (m *Manager) Reset(id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.state = StateWelcome
	s.test = assessment.Test{}
	s.answers = assessment.AnswerSet{}
	s.result = nil
	s.allResults = map[assessment.TestType]Result{}
	s.errMsg = ""
	s.caregiver1, s.caregiver2 = "Mother", "Father"
	return s.snapshotLocked(), nil
}

// Submit gates on completeness, scores the answer snapshot, assembles the
// feedback request, and calls the generator. The session sits in loading for
// the duration; a generator failure lands in the error state with a
// human-readable message.
func (m *Manager) Submit(ctx context.Context, id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	if s.state != StateReview {
		s.mu.Unlock()
		return Snapshot{}, ErrBadState
	}
	if !assessment.Complete(s.test, s.answers) {
		s.mu.Unlock()
		return Snapshot{}, ErrIncomplete
	}
	s.state = StateLoading
	s.errMsg = ""
	s.seq++
	seq := s.seq
	test := s.test
	answers := s.answers.Clone()
	c1, c2 := s.caregiver1, s.caregiver2
	s.mu.Unlock()

	// The only suspension point: scoring and assembly are pure, the
	// generator call is not. The session lock is not held across it.
	result, genErr := m.run(ctx, test, answers, c1, c2)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != seq || s.state != StateLoading {
		// Session was reset while loading; drop the outcome.
		return s.snapshotLocked(), nil
	}
	if genErr != nil {
		s.state = StateError
		s.errMsg = "We could not generate feedback for your results. Please try again."
		return s.snapshotLocked(), genErr
	}
	s.result = result
	s.allResults[result.Kind()] = result
	s.state = StateResults
	return s.snapshotLocked(), nil
}

// run executes the scoring pipeline for one instrument. "No significant
// findings" short-circuits before the generator and is not an error; the
// result simply carries nil feedback.
func (m *Manager) run(ctx context.Context, t assessment.Test, a assessment.AnswerSet, c1, c2 string) (Result, error) {
	switch t.Type {
	case assessment.TestYSQ:
		scores := assessment.ScoreYSQ(t, a)
		res := YSQResult{Type: t.Type, Scores: scores}
		if req, ok := feedback.AssembleYSQ(scores); ok {
			fb, err := m.gen.YSQ(ctx, req)
			if err != nil {
				return nil, err
			}
			res.Feedback = fb
		}
		return res, nil

	case assessment.TestYPI:
		scores := assessment.ScoreYPI(t, a)
		req := feedback.AssembleYPI(scores, c1, c2)
		fb, err := m.gen.Parenting(ctx, req)
		if err != nil {
			return nil, err
		}
		return YPIResult{Type: t.Type, Scores: scores, Feedback: fb}, nil

	case assessment.TestSMI:
		scores := assessment.ScoreSMI(a)
		res := SMIResult{Type: t.Type, Scores: scores}
		if req, ok := feedback.AssembleSMI(scores); ok {
			fb, err := m.gen.SMI(ctx, req)
			if err != nil {
				return nil, err
			}
			res.Feedback = fb
		}
		return res, nil

	case assessment.TestOI:
		scores := assessment.ScoreOI(a)
		res := OIResult{Type: t.Type, Scores: scores}
		if req, ok := feedback.AssembleOI(scores); ok {
			fb, err := m.gen.OI(ctx, req)
			if err != nil {
				return nil, err
			}
			res.Feedback = fb
		}
		return res, nil
	}
	return nil, fmt.Errorf("unknown instrument %q", t.Type)
}

func (m *Manager) transition(id string, from, to State) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != from {
		return Snapshot{}, ErrBadState
	}
	s.state = to
	return s.snapshotLocked(), nil
}

func (m *Manager) lookup(id string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (s *session) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:      s.id,
		State:   s.state,
		Answers: s.answers.Clone(),
		Result:  s.result,
		Error:   s.errMsg,
	}
	if s.test.ID != 0 {
		snap.TestID = s.test.ID
		snap.TestType = s.test.Type
	}
	if s.test.Type == assessment.TestYPI {
		snap.Caregiver1Name = s.caregiver1
		snap.Caregiver2Name = s.caregiver2
	}
	if len(s.allResults) > 0 {
		all := make(map[assessment.TestType]Result, len(s.allResults))
		for k, v := range s.allResults {
			all[k] = v
		}
		snap.AllResults = all
	}
	return snap
}

func questionInTest(t assessment.Test, qid string) bool {
	for _, q := range t.Questions {
		if q.ID == qid {
			return true
		}
	}
	return false
}
