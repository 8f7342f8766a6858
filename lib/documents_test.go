package lib

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestReadDocumentsFromDir(t *testing.T) {
	docs, err := ReadDocumentsFromDir("../test/basic", Options{})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	require.Equal(t, "collection", docs[0].Name)
	require.Equal(t, "points", docs[1].Name)
	require.Equal(t, "shapes", docs[2].Name)

	require.Len(t, docs[0].Geometries, 1)
	collection, ok := docs[0].Geometries[0].(GeometryCollection)
	require.True(t, ok)
	require.Len(t, collection.Members, 3)

	points := docs[1].Geometries
	require.Len(t, points, 4)
	require.Equal(t, Point{Dim: DimensionThreeD, Coord: Coord3D(14.5, 50, 10)}, points[2])
	require.Equal(t, GeometryTypeMultiPoint, points[3].Type())

	shapes := docs[2].Geometries
	require.Len(t, shapes, 4)
	require.Equal(t, GeometryTypePolygon, shapes[0].Type())
	require.Equal(t, GeometryTypeLineString, shapes[1].Type())
	require.Equal(t, GeometryTypeTriangle, shapes[2].Type())
	require.Equal(t, GeometryTypeMultiLineString, shapes[3].Type())
}

func TestReadDocumentFromFile(t *testing.T) {
	doc, err := ReadDocumentFromFile("../test/basic/points.wkt", Options{})
	require.NoError(t, err)
	require.Equal(t, "points", doc.Name)
	require.Contains(t, doc.WKT, "POINT MZ")
	require.Len(t, doc.Geometries, 4)
}

func TestReadDocumentFromFileParseError(t *testing.T) {
	_, err := ReadDocumentFromFile("../test/broken/bad.wkt", Options{})
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, 2, parseErr.Line())
	require.Equal(t, 21, parseErr.Col())
	require.Contains(t, err.Error(), "parsing bad: syntax error at line 2, col 21")
}

func TestReadDocumentsFromMissingDir(t *testing.T) {
	_, err := ReadDocumentsFromDir("../test/does-not-exist", Options{})
	require.Error(t, err)
}

func TestDocumentNameFromPath(t *testing.T) {
	require.Equal(t, "points", documentNameFromPath("../test/basic/points.wkt"))
	require.Equal(t, "roads", documentNameFromPath("roads.2024.wkt"))
}
