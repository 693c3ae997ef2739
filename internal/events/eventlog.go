package events

import (
	"sync"
	"time"
)

// Event types emitted by the exam store.
const (
	QuestionAdded    = "QuestionAdded"
	QuestionUpdated  = "QuestionUpdated"
	QuestionRemoved  = "QuestionRemoved"
	ExamStarted      = "ExamStarted"
	AttemptDiscarded = "AttemptDiscarded"
	AnswerSubmitted  = "AnswerSubmitted"
	ExamFinished     = "ExamFinished"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string // natural key: question or attempt id
	Data      map[string]string
	CreatedAt time.Time
}

// Log is an append-only, in-memory event log with a bounded backlog.
// Subscribers are called synchronously, in offset order, after the append.
type Log struct {
	mu      sync.Mutex
	next    int64
	backlog int
	events  []Event
	subs    map[int]func(Event)
	subSeq  int
	now     func() time.Time
}

type Option func(*Log)

// WithBacklog caps how many events Since can replay. n <= 0 keeps nothing.
func WithBacklog(n int) Option { return func(l *Log) { l.backlog = n } }

func WithClock(now func() time.Time) Option { return func(l *Log) { l.now = now } }

func NewLog(opts ...Option) *Log {
	l := &Log{
		next:    1,
		backlog: 256,
		subs:    map[int]func(Event){},
		now:     time.Now,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Append stamps e with the next offset and creation time, retains it and
// notifies subscribers. The stamped event is returned.
func (l *Log) Append(e Event) Event {
	l.mu.Lock()
	e.Offset = l.next
	l.next++
	e.CreatedAt = l.now()
	if l.backlog > 0 {
		l.events = append(l.events, e)
		if over := len(l.events) - l.backlog; over > 0 {
			l.events = append(l.events[:0:0], l.events[over:]...)
		}
	}
	subs := make([]func(Event), 0, len(l.subs))
	for i := 0; i < l.subSeq; i++ {
		if fn, ok := l.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
	return e
}

// Since returns retained events with Offset > offset.
func (l *Log) Since(offset int64) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, 0, len(l.events))
	for _, e := range l.events {
		if e.Offset > offset {
			out = append(out, e)
		}
	}
	return out
}

// Subscribe registers fn for future events. The returned func unsubscribes.
func (l *Log) Subscribe(fn func(Event)) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.subSeq
	l.subSeq++
	l.subs[id] = fn
	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}
