package track

const (
	// MaxSpeed is the speed reached at full throttle, in units/s.
	MaxSpeed = 200.0
	// SignalSpeed is the speed a stopped train departs with when the signal
	// is given.
	SignalSpeed = 20.0
)

// State is the state of a train on its route. It is a plain value: the
// functions operating on it return an updated copy.
type State struct {
	Route    Route
	Distance float64 // traveled along Route, in [0, Route.TotalLength()]
	Speed    float64 // units/s, never negative
	Accel    float64 // rate of change of Speed during the last step
	Target   float64 // speed the motion model steers toward
}

// NewState returns a stopped train at the start of r.
func NewState(r Route) State {
	return State{Route: r}
}

// Advance moves the train forward by dt seconds. The motion model first
// updates the speed, then the distance grows by speed·dt. A train that
// reaches the end of its route stops there.
//
// Advance doesn't modify s; non-positive time steps return it unchanged.
func Advance(s State, dt float64, m MotionModel) State {
	if !(dt > 0) {
		return s
	}
	if m == nil {
		m = DefaultMotion
	}
	s.Speed, s.Accel = m.Step(s.Speed, s.Accel, s.Target, dt)
	if s.Speed < 0 {
		s.Speed, s.Accel = 0, 0
	}
	s.Distance = max(0, s.Distance+s.Speed*dt)
	if total := s.Route.TotalLength(); s.Distance >= total {
		s.Distance = total
		s.Speed, s.Accel = 0, 0
	}
	return s
}

// SetThrottle sets the target speed to the given fraction of [MaxSpeed]. The
// fraction is clamped to [0, 1].
func SetThrottle(s State, fraction float64) State {
	s.Target = max(0, min(fraction, 1)) * MaxSpeed
	return s
}

// Throttle returns the target speed as a fraction of [MaxSpeed].
func (s State) Throttle() float64 {
	return s.Target / MaxSpeed
}

// Signal starts the train: both the speed and the target become
// [SignalSpeed].
func Signal(s State) State {
	s.Speed = SignalSpeed
	s.Target = SignalSpeed
	s.Accel = 0
	return s
}

// Reset puts the train back at the start of its route, stopped and with the
// throttle closed.
func Reset(s State) State {
	return State{Route: s.Route}
}

// SwitchRoute moves the train onto r. Switching is only possible while the
// train is stopped at either end of its current route; otherwise
// [ErrTrainMoving] is returned together with the unchanged state. The train
// starts at the beginning of r; the target speed is kept.
func SwitchRoute(s State, r Route) (State, error) {
	if s.Speed != 0 || !(s.AtStart() || s.AtEnd()) {
		Logger().Debug("route switch refused", "distance", s.Distance, "speed", s.Speed)
		return s, ErrTrainMoving
	}
	return State{Route: r, Target: s.Target}, nil
}

// Moving reports whether the train has speed. The signal light shows green
// while it does.
func (s State) Moving() bool { return s.Speed > 0 }

func (s State) AtStart() bool { return s.Distance == 0 }

func (s State) AtEnd() bool { return s.Distance == s.Route.TotalLength() }

// Position returns the location of the front of the train.
func (s State) Position() Point { return s.Route.PointAtDistance(s.Distance) }

// Heading returns the direction of travel at the front of the train.
func (s State) Heading() float64 { return s.Route.TangentAngle(s.Distance) }
