package presenter

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/factcheck/internal/errs"
	"github.com/GregMSThompson/factcheck/internal/models"
)

type stubChecker struct {
	calls   atomic.Int32
	result  models.FactCheckResult
	err     error
	release chan struct{}
	started chan struct{}
}

func (s *stubChecker) FactCheck(ctx context.Context, claim string) (models.FactCheckResult, error) {
	s.calls.Add(1)
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.result, s.err
}

func sampleResult() models.FactCheckResult {
	return models.FactCheckResult{
		Rating:        models.RatingFalse,
		Summary:       "S",
		Justification: "J",
		Sources:       []models.Citation{{URI: "https://a.example", Title: "A"}},
	}
}

func TestSubmitSuccess(t *testing.T) {
	checker := &stubChecker{result: sampleResult()}
	p := New(checker)

	require.True(t, p.Submit(context.Background(), "claim"))

	snap := p.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, models.RatingFalse, snap.Result.Rating)
	assert.Empty(t, snap.Error)
	assert.True(t, snap.CanSubmit("next claim"))
}

func TestSubmitFailureStoresMessage(t *testing.T) {
	checker := &stubChecker{err: errs.NewProviderError(errors.New("timeout"))}
	p := New(checker)

	require.True(t, p.Submit(context.Background(), "claim"))

	snap := p.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Nil(t, snap.Result)
	assert.Equal(t, "provider call failure: timeout", snap.Error)
}

func TestSubmitFailureWithForeignErrorUsesUnknownMessage(t *testing.T) {
	p := New(&stubChecker{err: errors.New("raw")})

	p.Submit(context.Background(), "claim")

	assert.Equal(t, errs.MessageUnknown, p.Snapshot().Error)
}

func TestSubmitRejectsBlankClaim(t *testing.T) {
	checker := &stubChecker{}
	p := New(checker)

	assert.False(t, p.Submit(context.Background(), " \t\n"))
	assert.Equal(t, int32(0), checker.calls.Load())
	assert.Equal(t, StateIdle, p.Snapshot().State)
}

func TestSubmitWhileSubmittingIsNoop(t *testing.T) {
	checker := &stubChecker{
		result:  sampleResult(),
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	p := New(checker)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Submit(context.Background(), "first")
	}()

	select {
	case <-checker.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never reached the checker")
	}

	assert.Equal(t, StateSubmitting, p.Snapshot().State)
	assert.False(t, p.Submit(context.Background(), "second"))
	assert.False(t, p.Snapshot().CanSubmit("second"))

	close(checker.release)
	wg.Wait()

	assert.Equal(t, int32(1), checker.calls.Load())
	assert.Equal(t, StateSuccess, p.Snapshot().State)
}

func TestBeginClearsPreviousOutcome(t *testing.T) {
	p := New(&stubChecker{err: errs.NewConfigurationError()})
	p.Submit(context.Background(), "claim")
	require.Equal(t, StateFailed, p.Snapshot().State)

	require.True(t, p.Begin("again"))

	snap := p.Snapshot()
	assert.Equal(t, StateSubmitting, snap.State)
	assert.Empty(t, snap.Error)
	assert.Nil(t, snap.Result)
}

func TestCompleteOutsideSubmittingIsIgnored(t *testing.T) {
	p := New(&stubChecker{})

	p.Complete(sampleResult(), nil)

	assert.Equal(t, StateIdle, p.Snapshot().State)
	assert.Nil(t, p.Snapshot().Result)
}

func TestSnapshotIsACopy(t *testing.T) {
	p := New(&stubChecker{result: sampleResult()})
	p.Submit(context.Background(), "claim")

	snap := p.Snapshot()
	snap.Result.Sources[0].Title = "mutated"

	assert.Equal(t, "A", p.Snapshot().Result.Sources[0].Title)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "unknown", State(42).String())
}
