package services

import (
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pathwise-app/pathwise_client/shared"
)

// PomodoroService runs focus-session countdowns on a single repeating
// interval. A session that runs to the end credits its minutes to the
// progression record and counts as today's activity; a cancelled session
// credits nothing.
type PomodoroService struct {
	context.DefaultService

	gamificationSvc *GamificationService

	// tick is how long one countdown minute lasts. Tests shrink it.
	tick time.Duration

	mu      sync.Mutex
	cancel  chan struct{}
	running bool
}

const POMODORO_SVC = "pomodoro_svc"

func (svc *PomodoroService) Id() string {
	return POMODORO_SVC
}

func (svc *PomodoroService) Configure(ctx *context.Context) error {
	svc.tick = time.Minute
	return svc.DefaultService.Configure(ctx)
}

func (svc *PomodoroService) Start() error {
	svc.gamificationSvc = svc.Service(GAMIFICATION_SVC).(*GamificationService)
	return nil
}

type FocusResult struct {
	Minutes   int             `json:"minutes"`
	Completed bool            `json:"completed"`
	Activity  *ActivityResult `json:"activity,omitempty"`
}

// Run blocks until the countdown finishes or Stop is called. Only one
// session can run at a time.
func (svc *PomodoroService) Run(minutes int, onTick func(remaining int)) (*FocusResult, error) {
	if minutes <= 0 {
		return nil, shared.NewBadRequestError(nil, "Session length must be positive")
	}

	svc.mu.Lock()
	if svc.running {
		svc.mu.Unlock()
		return nil, shared.NewConflictError(nil, "A focus session is already running")
	}
	svc.running = true
	svc.cancel = make(chan struct{})
	cancel := svc.cancel
	svc.mu.Unlock()

	defer func() {
		svc.mu.Lock()
		svc.running = false
		svc.mu.Unlock()
	}()

	ticker := time.NewTicker(svc.tick)
	defer ticker.Stop()

	remaining := minutes
	for remaining > 0 {
		select {
		case <-ticker.C:
			remaining--
			if onTick != nil {
				onTick(remaining)
			}
		case <-cancel:
			return &FocusResult{Minutes: minutes - remaining, Completed: false}, nil
		}
	}

	result := &FocusResult{Minutes: minutes, Completed: true}

	if err := svc.gamificationSvc.AddStudyMinutes(minutes); err != nil {
		log.WithError(err).Warn("Failed to credit study minutes")
	}

	activity, err := svc.gamificationSvc.RecordActivity()
	if err != nil {
		log.WithError(err).Warn("Failed to record activity")
	} else {
		result.Activity = activity
	}

	return result, nil
}

// Stop cancels the running session, if any.
func (svc *PomodoroService) Stop() {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.running && svc.cancel != nil {
		close(svc.cancel)
		svc.cancel = nil
		svc.running = false
	}
}
