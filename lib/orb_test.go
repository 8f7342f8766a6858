package lib

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func toOrb(t *testing.T, wkt string) orb.Geometry {
	out, err := ToOrb(parseOne(t, wkt))
	require.NoError(t, err)
	return out
}

func TestToOrbPointDropsAltitude(t *testing.T) {
	require.Equal(t, orb.Point{14.5, 50}, toOrb(t, "POINT Z (14.5 50 13)"))
}

func TestToOrbEmptyPoint(t *testing.T) {
	_, err := ToOrb(parseOne(t, "POINT EMPTY"))
	require.EqualError(t, err, "empty point has no planar representation")
}

func TestToOrbLineString(t *testing.T) {
	require.Equal(t,
		orb.LineString{{33, -75}, {37, -80}, {33, -85}},
		toOrb(t, "LINESTRING ((33 -75, 37 -80, 33 -85))"))
}

func TestToOrbPolygon(t *testing.T) {
	require.Equal(t,
		orb.Polygon{
			{{40, -70}, {45, -80}, {40, -90}},
			{{42, -75}, {44, -78}, {42, -73}},
		},
		toOrb(t, "POLYGON Z ((40 -70 10, 45 -80 10, 40 -90 10), (42 -75 10, 44 -78 10, 42 -73 10))"))

	require.Equal(t,
		orb.Polygon{{{40, -70}, {45, -80}, {40, -90}}},
		toOrb(t, "TRIANGLE ((40 -70, 45 -80, 40 -90))"))
}

func TestToOrbMulti(t *testing.T) {
	require.Equal(t,
		orb.MultiPoint{{17, 49.3}, {-17, 49}},
		toOrb(t, "MULTIPOINT ((17 49.3),(-17 49))"))

	require.Equal(t,
		orb.MultiLineString{{{38, -70}, {42, -75}}, {{43, -65}, {47, -70}}},
		toOrb(t, "MULTILINESTRING ((38 -70, 42 -75),(43 -65, 47 -70))"))

	require.Equal(t,
		orb.MultiPolygon{{{{50, -60}, {55, -70}, {50, -80}}}, {{{30, -60}, {35, -70}, {30, -80}}}},
		toOrb(t, "MULTIPOLYGON (((50 -60, 55 -70, 50 -80)),((30 -60, 35 -70, 30 -80)))"))
}

func TestToOrbCollection(t *testing.T) {
	out := toOrb(t, "GEOMETRYCOLLECTION(POINT(4 6),LINESTRING(4 6,7 10))")
	require.Equal(t, orb.Collection{orb.Point{4, 6}, orb.LineString{{4, 6}, {7, 10}}}, out)
	require.Equal(t, orb.Bound{Min: orb.Point{4, 6}, Max: orb.Point{7, 10}}, out.Bound())
}

func TestToOrbCollectionWithEmptyPoint(t *testing.T) {
	_, err := ToOrb(parseOne(t, "GEOMETRYCOLLECTION (POINT (1 2), POINT EMPTY)"))
	require.EqualError(t, err, "collection member 1: empty point has no planar representation")
}
