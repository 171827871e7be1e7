package pose

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goarm/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// document is the on-disk pose layout:
//
//	vertices:
//	  - [0, 0, 0]
//	  - [0, 10, 0]
//	angles: [1]
type document struct {
	Vertices [][]float64 `yaml:"vertices"`
	Angles   []float64   `yaml:"angles"`
}

// Decode reads a YAML pose from r
func Decode(r io.Reader) (Snapshot, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Snapshot{}, ErrEmptyPose
		}
		return Snapshot{}, fmt.Errorf("failed to decode pose: %w", err)
	}

	s := Snapshot{
		Vertices: make([]geometry.Vector3, len(doc.Vertices)),
		Angles:   doc.Angles,
	}
	for i, v := range doc.Vertices {
		if len(v) != 3 {
			return Snapshot{}, fmt.Errorf("vertex %d: expected 3 coordinates, got %d", i, len(v))
		}
		s.Vertices[i] = geometry.NewVector3(v[0], v[1], v[2])
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// LoadFile reads a YAML pose from path
func LoadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read pose file '%s': %w", path, err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Snapshot{}, fmt.Errorf("pose file '%s': %w", path, err)
	}
	return s, nil
}

// Encode writes s as YAML
func Encode(w io.Writer, s Snapshot) error {
	doc := document{
		Vertices: make([][]float64, len(s.Vertices)),
		Angles:   s.Angles,
	}
	for i, v := range s.Vertices {
		doc.Vertices[i] = []float64{v.X, v.Y, v.Z}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode pose: %w", err)
	}
	return enc.Close()
}
