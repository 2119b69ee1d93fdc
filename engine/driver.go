package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/status"
)

// ErrNoSurface is returned by Start when there is nothing to draw on
var ErrNoSurface = errors.New("no render surface available")

// DriverState is the lifecycle state of the tick driver
type DriverState uint8

const (
	DriverIdle DriverState = iota
	DriverRunning
	DriverStopped
)

func (s DriverState) String() string {
	switch s {
	case DriverIdle:
		return "idle"
	case DriverRunning:
		return "running"
	case DriverStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StopReason tells the owner why play ended
type StopReason uint8

const (
	StopRequested StopReason = iota // pause, quit or restart
	StopGameOver                    // lives ran out and the grace delay passed
)

// Renderer draws the session once per frame; it must not mutate it
// Ready reports whether a drawing surface exists
type Renderer interface {
	Ready() bool
	Render(s *Session)
}

// SessionFactory builds the session for a new play
type SessionFactory func() (*Session, error)

// Driver turns frame timestamps into fixed simulation ticks
// It owns the session between Start and Stop; all methods run on the frame goroutine
type Driver struct {
	sched    Scheduler
	renderer Renderer
	factory  SessionFactory

	tick      time.Duration
	maxTicks  int
	graceWait time.Duration

	state   DriverState
	session *Session
	handle  FrameHandle

	// Timing accumulators, zeroed on Stop
	seeded bool
	last   time.Time
	carry  time.Duration

	overSeen bool
	overAt   time.Time

	// OnState observes every transition, OnStop fires once per play
	OnState func(DriverState)
	OnStop  func(reason StopReason)

	statTicks   *atomic.Int64
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
}

// NewDriver creates an idle driver using the loop settings in cfg
func NewDriver(cfg *config.Config, sched Scheduler, renderer Renderer, factory SessionFactory, reg *status.Registry) *Driver {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Driver{
		sched:       sched,
		renderer:    renderer,
		factory:     factory,
		tick:        cfg.FixedTick(),
		maxTicks:    cfg.Loop.MaxTicksPerFrame,
		graceWait:   cfg.GraceDelay(),
		statTicks:   reg.Ints.Get("engine.ticks"),
		statFrames:  reg.Ints.Get("engine.frames"),
		statDropped: reg.Ints.Get("engine.dropped_ticks"),
	}
}

// State returns the current lifecycle state
func (d *Driver) State() DriverState { return d.state }

// Session returns the running session, or nil when idle
func (d *Driver) Session() *Session { return d.session }

func (d *Driver) setState(s DriverState) {
	d.state = s
	if d.OnState != nil {
		d.OnState(s)
	}
}

// Start allocates a fresh session and requests the first frame
// Starting a running driver is a no-op
func (d *Driver) Start() error {
	if d.state == DriverRunning {
		return nil
	}
	if d.renderer == nil || !d.renderer.Ready() {
		return ErrNoSurface
	}
	s, err := d.factory()
	if err != nil {
		return errors.Wrap(err, "start session")
	}

	d.session = s
	d.resetTiming()
	d.setState(DriverRunning)
	d.handle = d.sched.RequestFrame(d.frame)
	log.Printf("[Driver] started: motion=%s difficulty=%d level=%d", s.Motion().Name(), s.Difficulty(), s.Run().Level)
	return nil
}

// Stop cancels the pending frame, drops the session and returns to idle
func (d *Driver) Stop() {
	d.stop(StopRequested)
}

func (d *Driver) stop(reason StopReason) {
	if d.state != DriverRunning {
		return
	}
	if d.handle != 0 {
		d.sched.CancelFrame(d.handle)
		d.handle = 0
	}
	d.resetTiming()

	// OnStop may still read the final session
	d.setState(DriverStopped)
	if d.OnStop != nil {
		d.OnStop(reason)
	}
	d.session = nil
	d.setState(DriverIdle)
	log.Printf("[Driver] stopped: reason=%d", reason)
}

func (d *Driver) resetTiming() {
	d.seeded = false
	d.last = time.Time{}
	d.carry = 0
	d.overSeen = false
	d.overAt = time.Time{}
}

// frame runs pending ticks, renders once and schedules the next frame
func (d *Driver) frame(now time.Time) {
	d.handle = 0
	if d.state != DriverRunning {
		return
	}
	d.statFrames.Add(1)

	d.Advance(now)
	d.renderer.Render(d.session)

	if d.session.Over() {
		if !d.overSeen {
			d.overSeen = true
			d.overAt = now
		} else if now.Sub(d.overAt) >= d.graceWait {
			d.stop(StopGameOver)
			return
		}
	}
	d.handle = d.sched.RequestFrame(d.frame)
}

// Advance folds a frame timestamp into the carry and runs the due ticks
// The first call only seeds the timestamp; ticks beyond the per-frame cap are dropped
// Returns the number of ticks run
func (d *Driver) Advance(now time.Time) int {
	if d.session == nil {
		return 0
	}
	if !d.seeded {
		d.seeded = true
		d.last = now
		return 0
	}
	if dt := now.Sub(d.last); dt > 0 {
		d.carry += dt
	}
	d.last = now

	ticks := 0
	for d.carry >= d.tick && ticks < d.maxTicks {
		d.session.Step()
		d.carry -= d.tick
		ticks++
	}
	if d.carry >= d.tick {
		dropped := d.carry / d.tick
		d.statDropped.Add(int64(dropped))
		d.carry -= dropped * d.tick
	}
	d.statTicks.Add(int64(ticks))
	return ticks
}
