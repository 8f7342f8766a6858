package lib

import (
	"os"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
)

// Document is one WKT text and the geometries parsed from it.
type Document struct {
	Name       string
	WKT        string
	Geometries []Geometry
}

// ParseDocument parses text into a named document.
func ParseDocument(name string, wkt string, opts Options) (Document, error) {
	geometries, err := ParseWithOptions(wkt, opts)
	if err != nil {
		return Document{}, errors.Wrapf(err, "parsing %s", name)
	}
	return Document{
		Name:       name,
		WKT:        wkt,
		Geometries: geometries,
	}, nil
}

// ReadDocumentsFromDir parses every .wkt file in dir, in file name order.
func ReadDocumentsFromDir(dir string, opts Options) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	docs := []Document{}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".wkt") {
			continue
		}
		doc, err := ReadDocumentFromFile(path.Join(dir, entry.Name()), opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func ReadDocumentFromFile(filePath string, opts Options) (Document, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return Document{}, err
	}
	return ParseDocument(documentNameFromPath(filePath), string(bytes), opts)
}

func documentNameFromPath(filePath string) string {
	_, fileName := path.Split(filePath)
	parts := strings.Split(fileName, ".")
	return parts[0]
}
