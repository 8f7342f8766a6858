package lib

import "strings"

// Dimension is the dimensionality of a geometry after any measure ordinate
// has been dropped.
type Dimension int

const (
	DimensionTwoD Dimension = iota
	DimensionThreeD
)

func (d Dimension) String() string {
	switch d {
	case DimensionTwoD:
		return "2D"
	case DimensionThreeD:
		return "3D"
	default:
		return "?D"
	}
}

// ordinateLayout is what the Z / M modifier after a geometry keyword says
// about every coordinate tuple of that geometry.
type ordinateLayout struct {
	hasZ bool
	hasM bool
}

func (l ordinateLayout) dimension() Dimension {
	if l.hasZ {
		return DimensionThreeD
	}
	return DimensionTwoD
}

// stride is the number of ordinates each coordinate tuple must carry.
func (l ordinateLayout) stride() int {
	n := 2
	if l.hasZ {
		n++
	}
	if l.hasM {
		n++
	}
	return n
}

func (l ordinateLayout) String() string {
	switch {
	case l.hasZ && l.hasM:
		return "ZM"
	case l.hasZ:
		return "Z"
	case l.hasM:
		return "M"
	default:
		return "no modifier"
	}
}

// modifierLayout maps a modifier word to the ordinates it adds. MZ is not
// standard but is accepted as a spelling of ZM.
func modifierLayout(word string) (ordinateLayout, bool) {
	switch strings.ToUpper(word) {
	case "Z":
		return ordinateLayout{hasZ: true}, true
	case "M":
		return ordinateLayout{hasM: true}, true
	case "ZM", "MZ":
		return ordinateLayout{hasZ: true, hasM: true}, true
	default:
		return ordinateLayout{}, false
	}
}
