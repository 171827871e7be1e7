package pose

import (
	"errors"

	"github.com/philipparndt/goarm/pkg/geometry"
)

// ErrEmptyPose is returned when a pose has no vertices
var ErrEmptyPose = errors.New("pose has no vertices")

// Snapshot is the arm pose at one instant. Vertices run from the base to the
// tip; Angles pair index for index with a prefix of Vertices.
//
// Snapshots are treated as immutable. Methods that change the pose return a
// new Snapshot.
type Snapshot struct {
	Vertices []geometry.Vector3
	Angles   []float64
}

// Joint is a vertex paired with its joint angle
type Joint struct {
	Index  int
	Vertex geometry.Vector3
	Angle  float64
}

// Default returns the seed pose the editor starts with
func Default() Snapshot {
	return Snapshot{
		Vertices: []geometry.Vector3{
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(0, 10, 0),
			geometry.NewVector3(0, 20, 0),
			geometry.NewVector3(0, 3, 0),
			geometry.NewVector3(0, 40, 0),
			geometry.NewVector3(0, 50, 0),
		},
		Angles: []float64{1, 1, 1, 1, 1},
	}
}

// EndEffector returns the last vertex
func (s Snapshot) EndEffector() (geometry.Vector3, error) {
	if len(s.Vertices) == 0 {
		return geometry.Vector3{}, ErrEmptyPose
	}
	return s.Vertices[len(s.Vertices)-1], nil
}

// Pairs returns the vertex/angle pairs. Pairing stops at the shorter of the
// two sequences.
func (s Snapshot) Pairs() []Joint {
	n := min(len(s.Vertices), len(s.Angles))
	joints := make([]Joint, n)
	for i := 0; i < n; i++ {
		joints[i] = Joint{Index: i, Vertex: s.Vertices[i], Angle: s.Angles[i]}
	}
	return joints
}

// WithEndEffector returns a copy with the last vertex replaced
func (s Snapshot) WithEndEffector(v geometry.Vector3) (Snapshot, error) {
	if len(s.Vertices) == 0 {
		return Snapshot{}, ErrEmptyPose
	}
	next := s.Clone()
	next.Vertices[len(next.Vertices)-1] = v
	return next, nil
}

// Clone returns a deep copy
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Vertices: append([]geometry.Vector3(nil), s.Vertices...),
		Angles:   append([]float64(nil), s.Angles...),
	}
}

// Bounds returns the box around all vertices
func (s Snapshot) Bounds() geometry.BoundingBox {
	return geometry.BoundingBoxOf(s.Vertices)
}

// Validate checks the snapshot invariants
func (s Snapshot) Validate() error {
	if len(s.Vertices) == 0 {
		return ErrEmptyPose
	}
	return nil
}
