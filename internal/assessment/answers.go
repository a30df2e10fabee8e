package assessment

import "fmt"

// Caregiver tags the two rating subjects of the YPI.
type Caregiver string

const (
	Caregiver1 Caregiver = "c1"
	Caregiver2 Caregiver = "c2"
)

// Caregivers lists both subjects in fixed order.
var Caregivers = []Caregiver{Caregiver1, Caregiver2}

// AnswerSet maps answer keys to values on the 1-6 scale. Keys are plain
// question ids for single-subject instruments, and "<qid>_<caregiver>" for
// the YPI. A snapshot of an AnswerSet is what the scorer consumes; scorers
// never mutate it.
type AnswerSet map[string]int

// AnswerKey builds the composite key for a YPI answer.
func AnswerKey(questionID string, c Caregiver) string {
	return questionID + "_" + string(c)
}

// ValidAnswer reports whether v is on the answer scale.
func ValidAnswer(v int) bool { return v >= MinAnswer && v <= MaxAnswer }

// Complete reports whether every required key for the instrument is present.
// The YPI requires both caregiver keys per question; the other instruments
// require one key per question. Scoring itself never requires completeness;
// submission gating does.
func Complete(t Test, a AnswerSet) bool {
	return len(Missing(t, a)) == 0
}

// Missing returns the answer keys still required before submission, in
// catalog order.
func Missing(t Test, a AnswerSet) []string {
	var missing []string
	for _, q := range t.Questions {
		if t.Type == TestYPI {
			for _, c := range Caregivers {
				if _, ok := a[AnswerKey(q.ID, c)]; !ok {
					missing = append(missing, AnswerKey(q.ID, c))
				}
			}
			continue
		}
		if _, ok := a[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Clone returns an independent copy, used to snapshot answers before a
// scoring pass.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func (c Caregiver) valid() bool { return c == Caregiver1 || c == Caregiver2 }

// ParseCaregiver validates a caregiver tag from an API payload.
func ParseCaregiver(s string) (Caregiver, error) {
	c := Caregiver(s)
	if !c.valid() {
		return "", fmt.Errorf("unknown caregiver tag %q", s)
	}
	return c, nil
}
