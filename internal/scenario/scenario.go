// Package scenario loads collision queries from YAML and checks them
// against the geom package.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/collide/internal/geom"
)

//go:embed reference.yaml
var referenceYAML []byte

// ErrInvalid is wrapped by every parse error caused by a malformed query.
var ErrInvalid = errors.New("invalid scenario")

// Scenario is a named list of collision queries.
type Scenario struct {
	Name    string
	Queries []Query
}

// Query asks whether A and B collide.
type Query struct {
	Name   string
	A      geom.Shape
	B      geom.Shape
	Expect bool
}

type document struct {
	Name    string      `yaml:"name"`
	Queries []querySpec `yaml:"queries"`
}

type querySpec struct {
	Name   string    `yaml:"name"`
	A      shapeSpec `yaml:"a"`
	B      shapeSpec `yaml:"b"`
	Expect *bool     `yaml:"expect"`
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Reference returns the embedded reference scenario.
func Reference() Scenario {
	s, err := Parse(referenceYAML)
	if err != nil {
		panic(fmt.Sprintf("scenario: embedded reference: %v", err))
	}
	return s
}

// Parse decodes a scenario document.
func Parse(data []byte) (Scenario, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Scenario{}, fmt.Errorf("scenario: parse: %w", err)
	}

	s := Scenario{Name: doc.Name, Queries: make([]Query, 0, len(doc.Queries))}
	for i, qs := range doc.Queries {
		name := qs.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		q, err := qs.build(name)
		if err != nil {
			return Scenario{}, fmt.Errorf("scenario: query %q: %w", name, err)
		}
		s.Queries = append(s.Queries, q)
	}
	return s, nil
}

func (qs querySpec) build(name string) (Query, error) {
	if qs.Expect == nil {
		return Query{}, fmt.Errorf("%w: missing expect", ErrInvalid)
	}
	a, err := qs.A.shape()
	if err != nil {
		return Query{}, fmt.Errorf("shape a: %w", err)
	}
	b, err := qs.B.shape()
	if err != nil {
		return Query{}, fmt.Errorf("shape b: %w", err)
	}
	return Query{Name: name, A: a, B: b, Expect: *qs.Expect}, nil
}
