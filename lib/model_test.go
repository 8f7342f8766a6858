package lib

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, name string, wkt string) Document {
	doc, err := ParseDocument(name, wkt, Options{})
	require.NoError(t, err)
	return doc
}

func TestSummaryBuilder(t *testing.T) {
	b := NewSummaryBuilder()

	err := b.handleDocument(parseDoc(t, "points", "POINT (1 2); POINT Z (3 4 5); POINT EMPTY"))
	require.NoError(t, err)
	require.Equal(t, 1, b.summary.Documents)
	require.Equal(t, 3, b.summary.Geometries)
	require.Equal(t, 3, b.summary.Counts[GeometryTypePoint])
	require.Equal(t, 2, b.summary.Dimensions[DimensionTwoD])
	require.Equal(t, 1, b.summary.Dimensions[DimensionThreeD])
	require.Equal(t, 2, b.summary.Coordinates)
	require.True(t, b.summary.HasBound)
	require.Equal(t, orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{3, 4}}, b.summary.Bound)

	err = b.handleDocument(parseDoc(t, "polygon", "POLYGON ((-10 -10, 10 -10, 10 10, -10 -10), (1 1, 2 1, 2 2, 1 1))"))
	require.NoError(t, err)
	require.Equal(t, 2, b.summary.Documents)
	require.Equal(t, 4, b.summary.Geometries)
	require.Equal(t, 10, b.summary.Coordinates)
	require.Equal(t, orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{10, 10}}, b.summary.Bound)
}

func TestSummaryCountsCollectionMembers(t *testing.T) {
	summary, err := SummaryFromDocuments([]Document{
		parseDoc(t, "collection", "GEOMETRYCOLLECTION(POINT(4 6),LINESTRING(4 6,7 10),GEOMETRYCOLLECTION EMPTY)"),
	})
	require.NoError(t, err)

	require.Equal(t, 1, summary.Geometries)
	require.Equal(t, map[GeometryType]int{
		GeometryTypeGeometryCollection: 2,
		GeometryTypePoint:              1,
		GeometryTypeLineString:         1,
	}, summary.Counts)
	require.Equal(t, 3, summary.Coordinates)
	require.Equal(t, orb.Bound{Min: orb.Point{4, 6}, Max: orb.Point{7, 10}}, summary.Bound)
}

func TestSummaryMultiPolygonCountsHoles(t *testing.T) {
	summary, err := SummaryFromDocuments([]Document{
		parseDoc(t, "multi", "MULTIPOLYGON Z (((50 -60 10, 55 -70 10, 50 -80 10)),((40 -70 10, 45 -80 10, 40 -90 10), (42 -75 10, 44 -78 10, 42 -73 10)))"),
	})
	require.NoError(t, err)
	require.Equal(t, 9, summary.Coordinates)
	require.Equal(t, 1, summary.Dimensions[DimensionThreeD])
}

func TestSummaryNoCoordinates(t *testing.T) {
	summary, err := SummaryFromDocuments([]Document{
		parseDoc(t, "empty", ""),
		parseDoc(t, "empties", "LINESTRING EMPTY; POINT EMPTY"),
	})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Documents)
	require.Equal(t, 2, summary.Geometries)
	require.Equal(t, 0, summary.Coordinates)
	require.False(t, summary.HasBound)
}
