package navigation

import "errors"

var (
	// ErrEmptyPointSet is returned by BuildGraph when the input has no points.
	ErrEmptyPointSet = errors.New("point set is empty")
	// ErrUnknownLocation is returned when a requested source or destination
	// name is not part of the graph. Distinct from an unreachable
	// destination, which is a normal result.
	ErrUnknownLocation = errors.New("location not in graph")
	// ErrInvalidRouteCount is returned when a caller asks for fewer than one
	// alternative route.
	ErrInvalidRouteCount = errors.New("route count must be at least 1")
)
