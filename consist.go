package track

import "math"

// Consist describes the cars of a train. Car 0 is at the front.
type Consist struct {
	Cars      int
	CarLength float64
	Gap       float64
}

// DefaultConsist is three 40-unit cars, 5 units apart.
var DefaultConsist = Consist{Cars: 3, CarLength: 40, Gap: 5}

// CarPlacement is where the center of a car is and which way it faces.
type CarPlacement struct {
	Index    int
	Distance float64
	Center   Point
	Angle    float64
}

// Length returns the length of the whole train, front to back.
func (c Consist) Length() float64 {
	if c.Cars <= 0 {
		return 0
	}
	return float64(c.Cars)*c.CarLength + float64(c.Cars-1)*c.Gap
}

// Place positions every car on r given the distance of the front of the
// train. Cars that would stand before the start of the route are held at
// the start.
func (c Consist) Place(r Route, head float64) []CarPlacement {
	if c.Cars <= 0 {
		return nil
	}
	out := make([]CarPlacement, c.Cars)
	for i := range out {
		d := max(0, head-(float64(i)*(c.CarLength+c.Gap)+c.CarLength/2))
		out[i] = CarPlacement{
			Index:    i,
			Distance: d,
			Center:   r.PointAtDistance(d),
			Angle:    r.TangentAngle(d),
		}
	}
	return out
}

const (
	gaugeStart = -135 * math.Pi / 180
	gaugeEnd   = 135 * math.Pi / 180
)

// NeedleAngle maps speed onto the sweep of a speedometer dial that runs from
// −135° (stopped) to +135° (maxSpeed), returning radians. Speeds outside
// [0, maxSpeed] are clamped.
func NeedleAngle(speed, maxSpeed float64) float64 {
	if !(maxSpeed > 0) {
		return gaugeStart
	}
	f := max(0, min(speed/maxSpeed, 1))
	return gaugeStart + f*(gaugeEnd-gaugeStart)
}
