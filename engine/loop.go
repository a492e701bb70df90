package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/templewalk/event"
	"github.com/lixenwraith/templewalk/input"
	"github.com/lixenwraith/templewalk/locomotion"
)

// Loop is the single goroutine that mutates scene state
type Loop struct {
	ctx *Context

	events  *atomic.Int64
	ticks   *atomic.Int64
	resizes *atomic.Int64
	frames  *atomic.Int64
}

func NewLoop(c *Context) *Loop {
	return &Loop{
		ctx:     c,
		events:  c.Stats.Counters.Get("loop.events"),
		ticks:   c.Stats.Counters.Get("locomotion.ticks"),
		resizes: c.Stats.Counters.Get("viewport.resizes"),
		frames:  c.Stats.Counters.Get("compose.frames"),
	}
}

// Run drains the event queue and renders on the frame interval until quit or cancellation
func (l *Loop) Run(ctx context.Context) error {
	c := l.ctx
	scheduler := locomotion.NewScheduler(c.Time, c.Config.Locomotion.TickInterval.Duration, func() {
		event.EmitTick(c.Queue)
	})
	scheduler.Start()
	defer scheduler.Stop()

	frame := time.NewTicker(c.Config.FrameInterval.Duration)
	defer frame.Stop()
	defer l.recordStats()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.Queue.Notify():
			for _, ev := range c.Queue.Consume() {
				if !l.Dispatch(ev) {
					return nil
				}
			}
		case <-frame.C:
			c.Composer.Compose()
		}
	}
}

// recordStats snapshots final values and logs the summary on any exit path
func (l *Loop) recordStats() {
	c := l.ctx
	l.frames.Store(int64(c.Composer.Frames()))
	if c.Rig != nil {
		c.Stats.Gauges.Get("rig.distance").Set(c.Rig.Position().Len())
	}
	log.Printf("engine: stopped, %s", c.Stats.Summary())
}

// Dispatch applies one event, returns false when the loop should stop
// Unknown events and malformed payloads are ignored
func (l *Loop) Dispatch(ev event.Event) bool {
	c := l.ctx
	l.events.Add(1)
	switch ev.Type {
	case event.EventKeyDown:
		p, ok := ev.Payload.(*event.KeyPayload)
		if !ok {
			return true
		}
		return l.handleIntent(c.Keys.Resolve(p))

	case event.EventPointer:
		p, ok := ev.Payload.(*event.PointerPayload)
		if !ok {
			return true
		}
		if c.Session.HandlePointer(p.Primary) {
			return true
		}
		if c.Orbit != nil {
			c.Orbit.HandlePointer(p.X, p.Y, p.Primary, p.Wheel)
		}

	case event.EventResize:
		if p, ok := ev.Payload.(*event.ResizePayload); ok && c.Viewport.Resize(p.Width, p.Height) {
			l.resizes.Add(1)
		}

	case event.EventTick:
		l.ticks.Add(1)
		c.Glider.Tick()

	case event.EventModelLoaded:
		p, ok := ev.Payload.(*event.ModelLoadedPayload)
		if !ok {
			return true
		}
		if p.Err != nil {
			log.Printf("engine: continuing without model: %v", p.Err)
			return true
		}
		c.InsertModel(p.Node)

	case event.EventQuit:
		return false
	}
	return true
}

func (l *Loop) handleIntent(in input.Intent) bool {
	c := l.ctx
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentStep:
		c.Tracker.Step(in.Direction)
	case input.IntentToggleSession:
		if err := c.Session.Toggle(); err != nil {
			log.Printf("engine: toggle session: %v", err)
		}
	}
	return true
}
