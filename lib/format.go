package lib

import (
	"strconv"
	"strings"
)

// FormatTree renders geometries one node per line, children indented by two
// spaces. It is meant for debugging and golden tests, not as WKT output.
func FormatTree(geometries []Geometry) string {
	var b strings.Builder
	for _, g := range geometries {
		writeTree(&b, g, 0)
	}
	return b.String()
}

func writeTree(b *strings.Builder, g Geometry, depth int) {
	indent := strings.Repeat("  ", depth)
	header := indent + g.Type().String() + " " + g.Dimension().String()

	switch typed := g.(type) {
	case Point:
		if typed.Empty {
			b.WriteString(header + " EMPTY\n")
			return
		}
		b.WriteString(header + " " + formatCoordinates([]Coordinate{typed.Coord}) + "\n")
	case LineString:
		b.WriteString(header + " " + formatCoordinates(typed.Coords) + "\n")
	case MultiPoint:
		b.WriteString(header + " " + formatCoordinates(typed.Points) + "\n")
	case Polygon:
		writeRings(b, header, typed.Rings, depth+1)
	case Triangle:
		writeRings(b, header, typed.Rings, depth+1)
	case MultiLineString:
		if len(typed.Lines) == 0 {
			b.WriteString(header + " EMPTY\n")
			return
		}
		b.WriteString(header + "\n")
		for _, line := range typed.Lines {
			b.WriteString(strings.Repeat("  ", depth+1) + "LINE " + formatCoordinates(line) + "\n")
		}
	case MultiPolygon:
		if len(typed.Polygons) == 0 {
			b.WriteString(header + " EMPTY\n")
			return
		}
		b.WriteString(header + "\n")
		for _, rings := range typed.Polygons {
			writeRings(b, strings.Repeat("  ", depth+1)+"POLYGON", rings, depth+2)
		}
	case GeometryCollection:
		if len(typed.Members) == 0 {
			b.WriteString(header + " EMPTY\n")
			return
		}
		b.WriteString(header + "\n")
		for _, member := range typed.Members {
			writeTree(b, member, depth+1)
		}
	}
}

func writeRings(b *strings.Builder, header string, rings []Ring, depth int) {
	if len(rings) == 0 {
		b.WriteString(header + " EMPTY\n")
		return
	}
	b.WriteString(header + "\n")
	for _, ring := range rings {
		b.WriteString(strings.Repeat("  ", depth) + "RING " + formatCoordinates(ring) + "\n")
	}
}

// formatCoordinates writes coordinates in WKT tuple syntax, or EMPTY.
func formatCoordinates(coords []Coordinate) string {
	if len(coords) == 0 {
		return "EMPTY"
	}
	parts := make([]string, 0, len(coords))
	for _, c := range coords {
		parts = append(parts, formatCoordinate(c))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatCoordinate(c Coordinate) string {
	s := formatFloat(c.X) + " " + formatFloat(c.Y)
	if c.HasZ {
		s += " " + formatFloat(c.Z)
	}
	return s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
