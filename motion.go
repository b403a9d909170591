package track

import "github.com/charmbracelet/harmonica"

// MotionModel moves a train's speed toward a target speed.
//
// Step is given the current speed, the current rate of change of the speed,
// the target speed and the time step in seconds, and returns the new speed
// and rate of change. Speeds are in route units per second.
type MotionModel interface {
	Step(speed, accel, target, dt float64) (newSpeed, newAccel float64)
}

// DefaultMotion accelerates and brakes at 100 units/s².
var DefaultMotion = LinearMotion{Accel: 100, Decel: 100}

// LinearMotion changes speed at a constant rate until the target is reached.
// It never overshoots.
type LinearMotion struct {
	Accel float64 // units/s² when speeding up
	Decel float64 // units/s² when slowing down
}

func (m LinearMotion) Step(speed, _, target, dt float64) (float64, float64) {
	next := speed
	switch {
	case speed < target:
		next = min(speed+m.Accel*dt, target)
	case speed > target:
		next = max(speed-m.Decel*dt, target)
	}
	return next, (next - speed) / dt
}

// SpringMotion lets the speed follow the target like a damped spring. A
// damping ratio of 1 approaches the target as fast as possible without
// oscillating; smaller ratios overshoot.
type SpringMotion struct {
	Frequency float64 // angular frequency
	Damping   float64 // damping ratio
}

func (m SpringMotion) Step(speed, accel, target, dt float64) (float64, float64) {
	s := harmonica.NewSpring(dt, m.Frequency, m.Damping)
	next, rate := s.Update(speed, accel, target)
	if next < 0 {
		return 0, 0
	}
	return next, rate
}
