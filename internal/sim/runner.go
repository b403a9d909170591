// Package sim drives a train along its route one tick at a time.
package sim

import (
	"context"
	"time"

	"github.com/railtoy/track"
	"github.com/railtoy/track/internal/metrics"
)

// Frame is a snapshot of the train after a step.
type Frame struct {
	Tick     int
	Elapsed  time.Duration // simulated time since the run started
	Distance float64
	Speed    float64
	Position track.Point
	Heading  float64
	Cars     []track.CarPlacement
}

type Result struct {
	Ticks   int
	Elapsed time.Duration
	Arrived bool
	Final   track.State
}

// Runner advances a train state from a tick source. The zero value is not
// usable; Tick and MaxTicks must be positive.
type Runner struct {
	Motion  track.MotionModel
	Consist track.Consist
	Tick    time.Duration
	// MaxTicks bounds the number of steps of a run.
	MaxTicks int
	// ReportEvery is how many steps pass between calls to OnFrame. The
	// final step is always reported. Zero reports only the final step.
	ReportEvery int
	OnFrame     func(Frame)
}

// Run steps the simulation as fast as possible with a fixed time step of
// r.Tick. It returns when the train arrives at the end of its route, after
// r.MaxTicks steps, or with ctx's error once ctx is done.
func (r *Runner) Run(ctx context.Context, s track.State) (Result, error) {
	res := Result{Final: s}
	metrics.RouteLength.Set(s.Route.TotalLength())
	for res.Ticks < r.MaxTicks {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if r.step(&res, r.Tick) {
			break
		}
	}
	return res, nil
}

// RunRealtime is like Run, but steps on a wall-clock ticker, using the time
// that actually passed between ticks as the step size.
func (r *Runner) RunRealtime(ctx context.Context, s track.State) (Result, error) {
	res := Result{Final: s}
	metrics.RouteLength.Set(s.Route.TotalLength())
	ticker := time.NewTicker(r.Tick)
	defer ticker.Stop()
	last := time.Now()
	for res.Ticks < r.MaxTicks {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if r.step(&res, dt) {
				return res, nil
			}
		}
	}
	return res, nil
}

// step advances res.Final by dt and reports whether the train has arrived.
func (r *Runner) step(res *Result, dt time.Duration) bool {
	s := track.Advance(res.Final, dt.Seconds(), r.Motion)
	res.Final = s
	res.Ticks++
	res.Elapsed += dt
	res.Arrived = s.AtEnd() && s.Route.TotalLength() > 0
	metrics.Observe(s.Distance, s.Speed, dt.Seconds())

	last := res.Arrived || res.Ticks == r.MaxTicks
	if r.OnFrame != nil && (last || (r.ReportEvery > 0 && res.Ticks%r.ReportEvery == 0)) {
		r.OnFrame(r.frame(res))
	}
	return res.Arrived
}

func (r *Runner) frame(res *Result) Frame {
	s := res.Final
	return Frame{
		Tick:     res.Ticks,
		Elapsed:  res.Elapsed,
		Distance: s.Distance,
		Speed:    s.Speed,
		Position: s.Position(),
		Heading:  s.Heading(),
		Cars:     r.Consist.Place(s.Route, s.Distance),
	}
}
