package framework

import (
	"context"
	"log"
	"time"

	"github.com/golang/glog"
)

// Loop drives controllers at a fixed cadence, independent of any
// event sources feeding them. Controllers run in registration order
// once per cycle; a slow event stream never stalls the loop and a
// fast one never speeds it up.
type Loop struct {
	Interval time.Duration

	controllers []Controller
	runners     []Runnable
}

// LoopAdder provides specific logic to add components to loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

type loopCycle struct {
	ctx  context.Context
	time time.Time
}

func (c *loopCycle) Context() context.Context { return c.ctx }
func (c *loopCycle) Time() time.Time          { return c.time }

// NewLoop creates a Loop.
func NewLoop() *Loop {
	return &Loop{Interval: 100 * time.Millisecond}
}

// At sets the cycle rate in Hz.
func (l *Loop) At(hz float64) *Loop {
	l.Interval = time.Duration(float64(time.Second) / hz)
	return l
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers to the loop.
func (l *Loop) AddController(ctls ...Controller) *Loop {
	l.controllers = append(l.controllers, ctls...)
	for _, ctl := range ctls {
		if runner, ok := ctl.(Runnable); ok {
			l.runners = append(l.runners, runner)
		}
	}
	return l
}

// AddRunnable adds Runnable implementions.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runners = append(l.runners, runnables...)
	return l
}

// Run implements Runnable. It spawns registered runners and cycles
// the controllers until the context is canceled. The only blocking
// point is the interval timer, which cancellation preempts.
func (l *Loop) Run(ctx context.Context) error {
	runner := NewRunnerWith(ctx)
	runner.Go(l.runners...)
	defer runner.Wait()

	interval := l.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.runCycle(ctx, now)
		}
	}
}

// RunOrFail is intended to be used in main to simply run the loop.
func (l *Loop) RunOrFail() {
	if err := l.Run(context.TODO()); err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
}

func (l *Loop) runCycle(ctx context.Context, now time.Time) {
	cycle := &loopCycle{ctx: ctx, time: now}
	for _, ctl := range l.controllers {
		if err := ctl.Control(cycle); err != nil {
			glog.Errorf("controller error: %v", err)
		}
	}
}
