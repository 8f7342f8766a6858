package lib

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
)

// ToOrb materializes a parsed geometry as a planar orb geometry. orb is 2D
// only, so altitudes are dropped. An empty point has no orb form.
func ToOrb(g Geometry) (orb.Geometry, error) {
	switch typed := g.(type) {
	case Point:
		if typed.Empty {
			return nil, errors.New("empty point has no planar representation")
		}
		return orbPoint(typed.Coord), nil
	case LineString:
		return orb.LineString(orbPoints(typed.Coords)), nil
	case Polygon:
		return orbPolygon(typed.Rings), nil
	case Triangle:
		return orbPolygon(typed.Rings), nil
	case MultiPoint:
		return orb.MultiPoint(orbPoints(typed.Points)), nil
	case MultiLineString:
		mls := make(orb.MultiLineString, 0, len(typed.Lines))
		for _, line := range typed.Lines {
			mls = append(mls, orb.LineString(orbPoints(line)))
		}
		return mls, nil
	case MultiPolygon:
		mp := make(orb.MultiPolygon, 0, len(typed.Polygons))
		for _, rings := range typed.Polygons {
			mp = append(mp, orbPolygon(rings))
		}
		return mp, nil
	case GeometryCollection:
		collection := make(orb.Collection, 0, len(typed.Members))
		for i, member := range typed.Members {
			og, err := ToOrb(member)
			if err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i)
			}
			collection = append(collection, og)
		}
		return collection, nil
	default:
		return nil, errors.AssertionFailedf("cannot materialize %T", g)
	}
}

func orbPoint(c Coordinate) orb.Point {
	return orb.Point{c.X, c.Y}
}

func orbPoints(coords []Coordinate) []orb.Point {
	points := make([]orb.Point, 0, len(coords))
	for _, c := range coords {
		points = append(points, orbPoint(c))
	}
	return points
}

func orbPolygon(rings []Ring) orb.Polygon {
	polygon := make(orb.Polygon, 0, len(rings))
	for _, ring := range rings {
		polygon = append(polygon, orb.Ring(orbPoints(ring)))
	}
	return polygon
}
