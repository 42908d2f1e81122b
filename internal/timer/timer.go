package timer

import (
	"sync"
	"time"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
)

type Mode string

const (
	ModePomodoro   Mode = "pomodoro"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

// A long break replaces the short one after every 4th completed
// pomodoro.
const sessionsPerLongBreak = 4

type Durations struct {
	Pomodoro   int
	ShortBreak int
	LongBreak  int
}

func DefaultDurations() Durations {
	return Durations{Pomodoro: 1500, ShortBreak: 300, LongBreak: 900}
}

// CompleteFunc is invoked when a pomodoro interval runs to zero,
// before the mode advances. The wiring points this at the session
// logger.
type CompleteFunc func(durationSeconds int, subjectID *uint, lectureNumber *int)

type State struct {
	Mode      Mode `json:"mode"`
	Remaining int  `json:"remaining"`
	Running   bool `json:"running"`
	Sessions  int  `json:"sessions"`
}

// Controller owns all timer state explicitly; there is exactly one
// instance per process and nothing survives a restart.
type Controller struct {
	mu         sync.Mutex
	durations  Durations
	onComplete CompleteFunc
	log        *logger.Logger

	mode      Mode
	remaining int
	running   bool
	sessions  int

	subjectID     *uint
	lectureNumber *int

	interval time.Duration
	stop     chan struct{}
}

func New(durations Durations, baseLog *logger.Logger, onComplete CompleteFunc) *Controller {
	if durations.Pomodoro <= 0 {
		durations = DefaultDurations()
	}
	return &Controller{
		durations:  durations,
		onComplete: onComplete,
		log:        baseLog.With("component", "TimerController"),
		mode:       ModePomodoro,
		remaining:  durations.Pomodoro,
		interval:   time.Second,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Mode:      c.mode,
		Remaining: c.remaining,
		Running:   c.running,
		Sessions:  c.sessions,
	}
}

// SetFocus associates subsequent completed pomodoros with a subject
// and lecture number. Either reference may be nil.
func (c *Controller) SetFocus(subjectID *uint, lectureNumber *int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subjectID = subjectID
	c.lectureNumber = lectureNumber
}

// Start begins the countdown. No-op when already running.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	if c.interval > 0 {
		c.stop = make(chan struct{})
		go c.run(c.stop)
	}
	c.log.Debug("Timer started", "mode", string(c.mode), "remaining", c.remaining)
}

// Stop halts the countdown, keeping the remaining time.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Reset stops the timer and refills the current mode's full duration.
// Mode and session count are untouched.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.remaining = c.durationFor(c.mode)
}

// Skip advances to the next mode without crediting a session.
func (c *Controller) Skip() {
	c.SwitchMode(true)
}

// SwitchMode stops the timer and advances the mode. Completing a
// pomodoro (forceAdvance=false) credits a session; a manual skip
// (forceAdvance=true) does not. Every 4th session leads into the long
// break; any break leads back to a pomodoro.
func (c *Controller) SwitchMode(forceAdvance bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()

	switch c.mode {
	case ModePomodoro:
		if !forceAdvance {
			c.sessions++
		}
		if c.sessions%sessionsPerLongBreak == 0 {
			c.mode = ModeLongBreak
		} else {
			c.mode = ModeShortBreak
		}
	default:
		c.mode = ModePomodoro
	}
	c.remaining = c.durationFor(c.mode)
	c.log.Debug("Timer mode switched", "mode", string(c.mode), "sessions", c.sessions)
}

// Tick advances the countdown by one second. When the interval
// reaches zero it fires the completion side effect (for pomodoros)
// and then auto-advances the mode.
func (c *Controller) Tick() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.remaining--
	if c.remaining > 0 {
		c.mu.Unlock()
		return
	}

	finished := c.mode
	duration := c.durationFor(finished)
	subjectID := c.subjectID
	lectureNumber := c.lectureNumber
	onComplete := c.onComplete
	c.stopLocked()
	c.mu.Unlock()

	if finished == ModePomodoro && onComplete != nil {
		onComplete(duration, subjectID, lectureNumber)
	}
	c.SwitchMode(false)
}

func (c *Controller) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.Tick()
			c.mu.Lock()
			running := c.running
			c.mu.Unlock()
			if !running {
				return
			}
		}
	}
}

func (c *Controller) stopLocked() {
	c.running = false
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Controller) durationFor(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return c.durations.ShortBreak
	case ModeLongBreak:
		return c.durations.LongBreak
	default:
		return c.durations.Pomodoro
	}
}
