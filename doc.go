// Package track moves a toy train along routes made of straight lines and
// cubic Béziers.
//
// # Routes
//
// A [Route] is an ordered chain of [Segment] values. Line segments know their
// exact length; cubic segments are measured by sampling the curve at
// [ArclenSamples] equally spaced parameters and summing the chords between
// them. The approximation is deterministic, so the same control points always
// give the same route.
//
// [Route.PointAtDistance] converts a distance traveled into a position, and
// [Route.TangentAngle] estimates the direction of travel there with a central
// difference of ±[TangentEpsilon]. Both clamp distances to the route.
//
// Routes are built by [NewRoute], which validates its input, or by
// [BuildRoute], which lays out one of the two tracks of a [Layout]. Invalid
// input is reported with an [*InvalidRouteError] that matches
// [ErrInvalidRoute].
//
// # Networks
//
// A [Network] names nodes and joins them with labeled edges, each owning a
// route. [Network.Path] chains edges into a single route.
//
// # Trains
//
// A train is a [State] value. [Advance] steps it forward in time using a
// [MotionModel]; it is meant to be called once per tick by whatever drives
// the simulation. [SetThrottle], [Signal], [Reset] and [SwitchRoute] are the
// controls. [Consist.Place] positions the individual cars and [NeedleAngle]
// drives a speedometer.
//
// # Coordinates
//
// Coordinates follow canvas conventions: x grows to the right and y grows
// downward, so positive angles turn clockwise.
package track
