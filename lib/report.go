package lib

import (
	"io"
	"sort"
	"strings"
	"text/template"
)

var reportTemplateString = `{{range .Documents}}== {{.Name}} ({{.Count}} geometries)
{{.Tree}}{{end}}
documents:   {{.DocumentCount}}
geometries:  {{.Geometries}}
coordinates: {{.Coordinates}}
{{range .Types}}  {{.Name}}: {{.Count}}
{{end}}{{range .Dimensions}}  {{.Name}}: {{.Count}}
{{end}}{{if .Bound}}bound:       {{.Bound}}
{{end}}`

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateString))

type reportViewModel struct {
	Documents     []documentViewModel
	DocumentCount int
	Geometries    int
	Coordinates   int
	Types         []countViewModel
	Dimensions    []countViewModel
	Bound         string
}

type documentViewModel struct {
	Name  string
	Count int
	Tree  string
}

type countViewModel struct {
	Name  string
	Count int
}

// WriteReport writes every document's geometry tree followed by totals for
// the whole set.
func WriteReport(writer io.Writer, docs []Document) error {
	vm, err := newReportViewModel(docs)
	if err != nil {
		return err
	}
	return reportTemplate.Execute(writer, vm)
}

func newReportViewModel(docs []Document) (reportViewModel, error) {
	summary, err := SummaryFromDocuments(docs)
	if err != nil {
		return reportViewModel{}, err
	}

	vm := reportViewModel{
		Documents:     []documentViewModel{},
		DocumentCount: summary.Documents,
		Geometries:    summary.Geometries,
		Coordinates:   summary.Coordinates,
		Types:         []countViewModel{},
		Dimensions:    []countViewModel{},
	}

	for _, doc := range docs {
		vm.Documents = append(vm.Documents, documentViewModel{
			Name:  doc.Name,
			Count: len(doc.Geometries),
			Tree:  FormatTree(doc.Geometries),
		})
	}

	types := make([]GeometryType, 0, len(summary.Counts))
	for t := range summary.Counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		vm.Types = append(vm.Types, countViewModel{Name: t.String(), Count: summary.Counts[t]})
	}

	dims := make([]Dimension, 0, len(summary.Dimensions))
	for d := range summary.Dimensions {
		dims = append(dims, d)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	for _, d := range dims {
		vm.Dimensions = append(vm.Dimensions, countViewModel{Name: d.String(), Count: summary.Dimensions[d]})
	}

	if summary.HasBound {
		vm.Bound = formatBound(summary)
	}

	return vm, nil
}

func formatBound(summary Summary) string {
	parts := []string{
		formatFloat(summary.Bound.Min[0]),
		formatFloat(summary.Bound.Min[1]),
		formatFloat(summary.Bound.Max[0]),
		formatFloat(summary.Bound.Max[1]),
	}
	return "[" + strings.Join(parts, " ") + "]"
}
