// Package presenter holds the submission lifecycle shared by every interactive
// surface: Idle, then Submitting, then Success or Failed, ready for new input.
package presenter

import (
	"context"
	"strings"
	"sync"

	"github.com/GregMSThompson/factcheck/internal/errs"
	"github.com/GregMSThompson/factcheck/internal/models"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type factChecker interface {
	FactCheck(ctx context.Context, claim string) (models.FactCheckResult, error)
}

// Snapshot is a copy of the presenter state; callers may keep it.
type Snapshot struct {
	State  State
	Result *models.FactCheckResult
	Error  string
}

// CanSubmit reports whether the submit action is enabled for draft.
func (s Snapshot) CanSubmit(draft string) bool {
	return s.State != StateSubmitting && strings.TrimSpace(draft) != ""
}

// Presenter owns the single current-result/current-error slot.
type Presenter struct {
	checker factChecker

	mu     sync.Mutex
	state  State
	result *models.FactCheckResult
	errMsg string
}

func New(checker factChecker) *Presenter {
	return &Presenter{checker: checker}
}

// Begin moves to Submitting and clears the previous outcome. It returns false,
// changing nothing, for a blank claim or while a submission is in flight.
func (p *Presenter) Begin(claim string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateSubmitting || strings.TrimSpace(claim) == "" {
		return false
	}
	p.state = StateSubmitting
	p.result = nil
	p.errMsg = ""
	return true
}

// Complete resolves the in-flight submission. Calls outside Submitting are ignored.
func (p *Presenter) Complete(result models.FactCheckResult, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateSubmitting {
		return
	}
	if err != nil {
		p.state = StateFailed
		p.result = nil
		p.errMsg = errs.Describe(err)
		return
	}
	p.state = StateSuccess
	p.result = &result
}

// Check calls the query client without touching presenter state. Surfaces that
// run the call asynchronously pair it with Begin and Complete.
func (p *Presenter) Check(ctx context.Context, claim string) (models.FactCheckResult, error) {
	return p.checker.FactCheck(ctx, claim)
}

// Submit runs one full submission synchronously. It returns false when the
// submission was rejected without calling the query client.
func (p *Presenter) Submit(ctx context.Context, claim string) bool {
	if !p.Begin(claim) {
		return false
	}
	result, err := p.Check(ctx, claim)
	p.Complete(result, err)
	return true
}

func (p *Presenter) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{State: p.state, Error: p.errMsg}
	if p.result != nil {
		res := *p.result
		res.Sources = append([]models.Citation(nil), p.result.Sources...)
		snap.Result = &res
	}
	return snap
}
