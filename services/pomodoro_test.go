package services

import (
	"testing"
	"time"

	"github.com/pathwise-app/pathwise_client/shared"
)

func newTestPomodoro(t *testing.T, tick time.Duration) (*PomodoroService, *memProgressStore) {
	t.Helper()

	engine, store, _ := newTestEngine(t)
	svc := &PomodoroService{
		gamificationSvc: engine,
		tick:            tick,
	}
	return svc, store
}

func TestFocusSessionCompletes(t *testing.T) {
	svc, store := newTestPomodoro(t, time.Millisecond)

	var ticks []int
	result, err := svc.Run(3, func(remaining int) {
		ticks = append(ticks, remaining)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !result.Completed || result.Minutes != 3 {
		t.Fatalf("completed=%v minutes=%d", result.Completed, result.Minutes)
	}
	if len(ticks) != 3 || ticks[0] != 2 || ticks[2] != 0 {
		t.Fatalf("ticks=%v", ticks)
	}

	if store.record == nil || store.record.TotalStudyMinutes != 3 {
		t.Fatalf("study minutes not credited: %+v", store.record)
	}
	if result.Activity == nil || result.Activity.CurrentStreak != 1 {
		t.Fatalf("activity=%+v", result.Activity)
	}
}

func TestStoppedSessionCreditsNothing(t *testing.T) {
	svc, store := newTestPomodoro(t, time.Hour)

	done := make(chan *FocusResult, 1)
	go func() {
		result, err := svc.Run(60, nil)
		if err != nil {
			t.Errorf("Run: %v", err)
		}
		done <- result
	}()

	waitForRunning(t, svc)
	svc.Stop()

	result := <-done
	if result.Completed {
		t.Fatal("stopped session reported complete")
	}
	if store.record != nil && store.record.TotalStudyMinutes != 0 {
		t.Fatalf("stopped session credited %d minutes", store.record.TotalStudyMinutes)
	}
}

func TestSecondSessionRejectedWhileRunning(t *testing.T) {
	svc, _ := newTestPomodoro(t, time.Hour)

	done := make(chan struct{})
	go func() {
		svc.Run(60, nil)
		close(done)
	}()

	waitForRunning(t, svc)
	if _, err := svc.Run(5, nil); !shared.HasCode(err, shared.ErrCodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	svc.Stop()
	<-done
}

func TestInvalidSessionLength(t *testing.T) {
	svc, _ := newTestPomodoro(t, time.Millisecond)

	if _, err := svc.Run(0, nil); !shared.HasCode(err, shared.ErrCodeBadRequest) {
		t.Fatalf("expected bad_request, got %v", err)
	}
	if _, err := svc.Run(-10, nil); !shared.HasCode(err, shared.ErrCodeBadRequest) {
		t.Fatalf("expected bad_request, got %v", err)
	}
}

func waitForRunning(t *testing.T, svc *PomodoroService) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		running := svc.running
		svc.mu.Unlock()
		if running {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("session never started")
}
