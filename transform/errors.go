package transform

import "errors"

var (
	// ErrUnsupportedValue indicates that TransformValue received a value that
	// is not one of the four recognized tuple kinds (Point2, Vector2, Point3,
	// Vector3).
	ErrUnsupportedValue = errors.New("transform: value is not a 2- or 3-component point or vector")
)
