// Package proctor finishes an exam attempt once its time runs out.
package proctor

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/mind-engage/mindengage-exams/internal/exam"
)

// Finisher finishes a specific attempt if it is still the active one.
type Finisher interface {
	FinishAttempt(id string) (*exam.Result, bool)
}

// FinishFunc receives the result of an attempt finished on timeout.
type FinishFunc func(attemptID string, res exam.Result)

// Proctor watches at most one attempt at a time.
type Proctor struct {
	store Finisher
	now   func() time.Time

	mu       sync.Mutex
	cancel   context.CancelFunc
	watching string
	onFinish []FinishFunc
	wg       sync.WaitGroup
}

type Option func(*Proctor)

func WithClock(now func() time.Time) Option { return func(p *Proctor) { p.now = now } }

func New(store Finisher, opts ...Option) *Proctor {
	p := &Proctor{store: store, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// OnFinish registers fn for attempts this proctor finishes.
func (p *Proctor) OnFinish(fn FinishFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFinish = append(p.onFinish, fn)
}

// Watch arms a timer for a's deadline, replacing any earlier watch. When it
// fires, a is finished unless it was already finished or replaced. Cancelling
// ctx disarms the timer. Attempts without a positive duration are untimed and
// only drop the earlier watch.
func (p *Proctor) Watch(ctx context.Context, a exam.Attempt) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if a.Config.DurationMinutes <= 0 {
		p.watching = ""
		p.mu.Unlock()
		glog.V(1).Infof("proctor: attempt %s is untimed", a.ID)
		return
	}
	wctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.watching = a.ID
	p.mu.Unlock()

	wait := a.Remaining(p.now())
	glog.V(2).Infof("proctor: attempt %s due in %s", a.ID, wait)

	p.wg.Add(1)
	go func() {
		defer cancel()
		res, ok := p.expire(wctx, a.ID, wait)
		p.wg.Done()
		if !ok {
			return
		}

		p.mu.Lock()
		fns := append([]FinishFunc(nil), p.onFinish...)
		p.mu.Unlock()
		for _, fn := range fns {
			fn(a.ID, *res)
		}
	}()
}

// expire waits out the timer and finishes the attempt. Callbacks run after
// it returns, outside the wait group, so they may call Stop.
func (p *Proctor) expire(ctx context.Context, id string, wait time.Duration) (*exam.Result, bool) {
	t := time.NewTimer(wait)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return nil, false
	case <-t.C:
	}

	res, ok := p.store.FinishAttempt(id)
	if !ok {
		glog.V(1).Infof("proctor: attempt %s no longer active at deadline", id)
		return nil, false
	}
	glog.Infof("proctor: attempt %s finished on timeout (score=%d)", id, res.Score)

	p.mu.Lock()
	if p.watching == id {
		p.watching = ""
	}
	p.mu.Unlock()
	return res, true
}

// Watching returns the id of the attempt currently armed, if any.
func (p *Proctor) Watching() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.watching
}

// Stop disarms the current watch and waits for a pending finish to complete.
// It does not wait for OnFinish callbacks, which may call Stop themselves.
func (p *Proctor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.watching = ""
	p.mu.Unlock()
	p.wg.Wait()
}
