package exam

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-exams/internal/events"
	"github.com/mind-engage/mindengage-exams/internal/grading"
)

// Store owns the question bank, the active attempt and the exam history.
//
// Every operation is fail-soft: unknown ids and a missing active attempt turn
// into no-ops reported through the boolean return, never into errors. Values
// handed out are deep copies, so callers can't reach store state.
type Store struct {
	mu        sync.RWMutex
	questions []Question
	current   *Attempt
	history   []Attempt

	now     func() time.Time
	newID   func() string
	shuffle Shuffler
	grader  grading.Grader
	events  *events.Log
}

type Option func(*Store)

func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

func WithIDFunc(fn func() string) Option { return func(s *Store) { s.newID = fn } }

// WithRand seeds the shuffle used when an exam asks for shuffled questions.
func WithRand(r *rand.Rand) Option { return func(s *Store) { s.shuffle = RandShuffler(r) } }

func WithGrader(g grading.Grader) Option { return func(s *Store) { s.grader = g } }

// WithEvents publishes every state change to l. Events are appended while
// the store is locked, so the log order is the order of the changes.
// Subscribers run under that lock and must not call back into the Store.
func WithEvents(l *events.Log) Option { return func(s *Store) { s.events = l } }

// WithQuestions preloads the bank. Ids are kept as given.
func WithQuestions(qs []Question) Option {
	return func(s *Store) { s.questions = cloneQuestions(qs) }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		now:     time.Now,
		newID:   uuid.NewString,
		shuffle: RandShuffler(rand.New(rand.NewSource(time.Now().UnixNano()))),
		grader:  grading.NewDefaultGrader(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.questions == nil {
		s.questions = []Question{}
	}
	return s
}

// AddQuestion stores in under a fresh id. Content is not validated.
func (s *Store) AddQuestion(in QuestionInput) Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := in.withID(s.newID())
	s.questions = append(s.questions, q)
	glog.V(2).Infof("added question %s (%s, %s)", q.ID, q.Type, q.Category)
	s.publish(events.QuestionAdded, q.ID, nil)
	return q.clone()
}

// UpdateQuestion applies p to the question with id. It reports false, and
// changes nothing, when no such question exists.
func (s *Store) UpdateQuestion(id string, p QuestionPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i, q := range s.questions {
		if q.ID == id {
			s.questions[i] = p.apply(q)
			found = true
		}
	}
	if !found {
		glog.V(1).Infof("update of unknown question %s ignored", id)
		return false
	}
	glog.V(2).Infof("updated question %s", id)
	s.publish(events.QuestionUpdated, id, nil)
	return true
}

// RemoveQuestion deletes the question with id. Attempts that already hold
// a snapshot of it are unaffected.
func (s *Store) RemoveQuestion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.questions[:0:0]
	for _, q := range s.questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(s.questions) {
		glog.V(1).Infof("removal of unknown question %s ignored", id)
		return false
	}
	s.questions = kept
	glog.V(2).Infof("removed question %s", id)
	s.publish(events.QuestionRemoved, id, nil)
	return true
}

// StartExam assembles a new active attempt from the bank. An attempt that
// is still active is dropped without being archived.
func (s *Store) StartExam(cfg ExamConfig) Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Attempt{
		ID:        s.newID(),
		Config:    cfg,
		Questions: Assemble(s.questions, cfg, s.shuffle),
		Answers:   map[string]string{},
		StartedAt: s.now(),
	}
	if s.current != nil {
		glog.Warningf("attempt %s discarded by new exam %s", s.current.ID, a.ID)
		s.publish(events.AttemptDiscarded, s.current.ID, map[string]string{"replaced_by": a.ID})
	}
	s.current = &a
	glog.V(2).Infof("started exam %s %q: %d/%d questions (category=%s)",
		a.ID, cfg.Title, len(a.Questions), cfg.NumberOfQuestions, cfg.Category)
	s.publish(events.ExamStarted, a.ID, map[string]string{"questions": strconv.Itoa(len(a.Questions))})
	return a.clone()
}

// SubmitAnswer records answer for questionID on the active attempt,
// overwriting any earlier answer. It reports false when no exam is active.
// Ids outside the attempt are stored but never scored.
func (s *Store) SubmitAnswer(questionID, answer string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		glog.V(1).Infof("answer for %s ignored: no active exam", questionID)
		return false
	}
	s.current.Answers[questionID] = answer
	glog.V(2).Infof("attempt %s: answer for %s recorded", s.current.ID, questionID)
	s.publish(events.AnswerSubmitted, s.current.ID, map[string]string{"question_id": questionID})
	return true
}

// FinishExam scores the active attempt, appends it to the history and
// clears it. It returns (nil, false) when no exam is active.
func (s *Store) FinishExam() (*Result, bool) {
	return s.finish("")
}

// FinishAttempt is FinishExam restricted to the attempt with id; it is a
// no-op when that attempt is no longer the active one.
func (s *Store) FinishAttempt(id string) (*Result, bool) {
	if id == "" {
		return nil, false
	}
	return s.finish(id)
}

func (s *Store) finish(id string) (*Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || (id != "" && s.current.ID != id) {
		return nil, false
	}
	done, res := Score(*s.current, s.grader, s.now())
	s.history = append(s.history, done)
	s.current = nil

	glog.V(2).Infof("finished exam %s: score=%d pct=%.1f passed=%t in %ds",
		done.ID, res.Score, res.Percentage, res.Passed, res.TimeTakenSec)
	s.publish(events.ExamFinished, done.ID, map[string]string{
		"score":  strconv.Itoa(res.Score),
		"passed": strconv.FormatBool(res.Passed),
	})
	return &res, true
}

// Categories lists CategoryAll followed by the bank's distinct categories.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CategoriesOf(s.questions)
}

// Questions returns a copy of the bank in insertion order.
func (s *Store) Questions() []Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneQuestions(s.questions)
}

// Question looks up a single bank entry.
func (s *Store) Question(id string) (Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.questions {
		if q.ID == id {
			return q.clone(), true
		}
	}
	return Question{}, false
}

// CurrentExam returns a copy of the active attempt, if any.
func (s *Store) CurrentExam() (Attempt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Attempt{}, false
	}
	return s.current.clone(), true
}

// History returns copies of finished attempts in completion order.
func (s *Store) History() []Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Attempt, len(s.history))
	for i, a := range s.history {
		out[i] = a.clone()
	}
	return out
}

// publish must be called with s.mu held.
func (s *Store) publish(typ, key string, data map[string]string) {
	if s.events == nil {
		return
	}
	s.events.Append(events.Event{Type: typ, Key: key, Data: data})
}
