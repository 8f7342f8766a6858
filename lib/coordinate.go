package lib

import (
	"github.com/cockroachdb/errors"
)

// Coordinate is a 2D location or, when HasZ is set, a 3D position. X is the
// primary ordinate (longitude or x) and Y the secondary (latitude or y).
type Coordinate struct {
	X    float64
	Y    float64
	Z    float64
	HasZ bool
}

func Coord2D(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

func Coord3D(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z, HasZ: true}
}

// buildCoordinate keeps X and Y, keeps the third ordinate as Z only when the
// layout has Z, and always drops the measure.
func buildCoordinate(ordinates []float64, layout ordinateLayout) (Coordinate, error) {
	if len(ordinates) != layout.stride() {
		return Coordinate{}, errors.Newf(
			"expected %d ordinates but got %d", layout.stride(), len(ordinates))
	}
	if layout.dimension() == DimensionThreeD {
		return Coord3D(ordinates[0], ordinates[1], ordinates[2]), nil
	}
	return Coord2D(ordinates[0], ordinates[1]), nil
}
