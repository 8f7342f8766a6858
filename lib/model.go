package lib

import (
	"github.com/paulmach/orb"
)

// Summary aggregates what a set of documents contains. Members of
// collections are counted as well as the collections themselves.
type Summary struct {
	Documents   int
	Geometries  int
	Counts      map[GeometryType]int
	Dimensions  map[Dimension]int
	Coordinates int
	Bound       orb.Bound
	HasBound    bool
}

type SummaryBuilder struct {
	summary Summary
}

func NewSummaryBuilder() *SummaryBuilder {
	return &SummaryBuilder{
		summary: Summary{
			Counts:     map[GeometryType]int{},
			Dimensions: map[Dimension]int{},
		},
	}
}

func (b *SummaryBuilder) handleDocument(doc Document) error {
	b.summary.Documents++
	for _, g := range doc.Geometries {
		b.summary.Geometries++
		if err := b.handleGeometry(g); err != nil {
			return err
		}
	}
	return nil
}

func (b *SummaryBuilder) handleGeometry(g Geometry) error {
	b.summary.Counts[g.Type()]++
	b.summary.Dimensions[g.Dimension()]++

	switch typed := g.(type) {
	case GeometryCollection:
		for _, member := range typed.Members {
			if err := b.handleGeometry(member); err != nil {
				return err
			}
		}
		return nil
	case Point:
		if typed.Empty {
			return nil
		}
	}

	b.summary.Coordinates += countCoordinates(g)
	if len(g.Coordinates()) == 0 {
		return nil
	}

	og, err := ToOrb(g)
	if err != nil {
		return err
	}
	b.extendBound(og.Bound())
	return nil
}

func (b *SummaryBuilder) extendBound(bound orb.Bound) {
	if !b.summary.HasBound {
		b.summary.Bound = bound
		b.summary.HasBound = true
		return
	}
	b.summary.Bound = b.summary.Bound.Union(bound)
}

// countCoordinates counts every coordinate including inner rings, which the
// flat Coordinates view leaves out.
func countCoordinates(g Geometry) int {
	switch typed := g.(type) {
	case Polygon:
		return countRings(typed.Rings)
	case Triangle:
		return countRings(typed.Rings)
	case MultiPolygon:
		n := 0
		for _, rings := range typed.Polygons {
			n += countRings(rings)
		}
		return n
	default:
		return len(g.Coordinates())
	}
}

func countRings(rings []Ring) int {
	n := 0
	for _, ring := range rings {
		n += len(ring)
	}
	return n
}

func SummaryFromDocuments(docs []Document) (Summary, error) {
	builder := NewSummaryBuilder()
	for _, doc := range docs {
		if err := builder.handleDocument(doc); err != nil {
			return Summary{}, err
		}
	}
	return builder.summary, nil
}
