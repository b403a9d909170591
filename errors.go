package track

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoute is matched by every [InvalidRouteError].
	ErrInvalidRoute = errors.New("invalid route")

	// ErrTrainMoving is returned when a route switch is requested while the
	// train is between the ends of its route or still has speed.
	ErrTrainMoving = errors.New("train is moving")

	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicateNode = errors.New("duplicate node")
	ErrUnknownEdge   = errors.New("unknown edge")
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// InvalidRouteError describes why a route could not be built.
type InvalidRouteError struct {
	// Segment is the index of the offending segment, or -1 if the problem
	// concerns the route as a whole.
	Segment int
	Reason  string
}

func (err *InvalidRouteError) Error() string {
	if err.Segment < 0 {
		return fmt.Sprintf("invalid route: %s", err.Reason)
	}
	return fmt.Sprintf("invalid route: segment %d: %s", err.Segment, err.Reason)
}

func (err *InvalidRouteError) Unwrap() error {
	return ErrInvalidRoute
}

func invalidRoute(seg int, format string, args ...any) error {
	return &InvalidRouteError{Segment: seg, Reason: fmt.Sprintf(format, args...)}
}
