// Package importer loads diagram documents (shapes plus connectors) from
// JSON or YAML files.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"orthoroute/shape"
)

// Document is an on-disk diagram: the shapes on the canvas and the
// connectors routed between them.
type Document struct {
	Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
	Shapes     []shape.Shape     `json:"shapes" yaml:"shapes"`
	Connectors []shape.Connector `json:"connectors,omitempty" yaml:"connectors,omitempty"`
}

// ShapeMap returns the document's shapes keyed by id.
func (d *Document) ShapeMap() map[string]shape.Shape {
	shapes := make(map[string]shape.Shape, len(d.Shapes))
	for _, s := range d.Shapes {
		shapes[s.ID] = s
	}
	return shapes
}

// Load reads a document from a file, detecting the format from the
// extension: .yaml/.yml parse as YAML, everything else as JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON parses a JSON document.
func ParseJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing JSON document: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseYAML parses a YAML document.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML document: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// validate rejects documents the router cannot work with: shapes without
// ids, duplicate ids, or connectors referencing unknown shapes.
func validate(doc *Document) error {
	seen := make(map[string]bool, len(doc.Shapes))
	for i, s := range doc.Shapes {
		if s.ID == "" {
			return fmt.Errorf("shape %d has no id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate shape id %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, c := range doc.Connectors {
		if c.ID == "" {
			return fmt.Errorf("connector between %v and %v has no id", c.Start, c.End)
		}
		if c.StartShape != "" && !seen[c.StartShape] {
			return fmt.Errorf("connector %q references unknown start shape %q", c.ID, c.StartShape)
		}
		if c.EndShape != "" && !seen[c.EndShape] {
			return fmt.Errorf("connector %q references unknown end shape %q", c.ID, c.EndShape)
		}
	}
	return nil
}
