package editor

import (
	"fmt"
	"io"

	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/philipparndt/goarm/pkg/gizmo"
	"github.com/philipparndt/goarm/pkg/log"
	"github.com/philipparndt/goarm/pkg/pointer"
	"github.com/philipparndt/goarm/pkg/pose"
)

// Mode selects what pointer input does in the viewport
type Mode int

const (
	// ModeTranslate routes pointer input to the end-effector gizmo
	ModeTranslate Mode = iota
	// ModeView leaves the pointer to the camera controls
	ModeView
)

func (m Mode) String() string {
	switch m {
	case ModeTranslate:
		return "translate"
	case ModeView:
		return "view"
	default:
		return "unknown"
	}
}

// Options configure an Editor
type Options struct {
	Gizmo  gizmo.Options
	Mode   Mode
	Logger log.Logger
}

// Editor connects a pose store to the translate gizmo for one scene.
// Committed drags become end-effector updates on the store, and store
// changes move the gizmo while it is idle.
//
// Editor methods must run on the host's event loop. Store changes made from
// other goroutines must be handed to that loop before they reach the store.
type Editor struct {
	store  *pose.Store
	bus    *pointer.Bus
	group  *gizmo.Group
	logger log.Logger

	initial     pose.Snapshot
	mode        Mode
	active      io.Closer
	unsubscribe func()
}

// New creates an editor for scene editing the pose held by store
func New(scene pointer.Scene, store *pose.Store, opts Options) (*Editor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	origin, err := store.EndEffector()
	if err != nil {
		return nil, fmt.Errorf("failed to place gizmo: %w", err)
	}

	gopts := opts.Gizmo
	if gopts.Logger == nil {
		gopts.Logger = logger
	}

	bus := pointer.NewBus(pointer.NewTracker(scene))
	e := &Editor{
		store:   store,
		bus:     bus,
		group:   gizmo.NewGroup(bus.Tracker(), origin, gopts),
		logger:  logger.WithField("component", "editor"),
		initial: store.Snapshot(),
		mode:    ModeView,
	}
	e.group.OnCommit(e.commit)
	e.unsubscribe = store.Subscribe(e.sync)
	e.SetMode(opts.Mode)
	return e, nil
}

// Group returns the translate gizmo
func (e *Editor) Group() *gizmo.Group {
	return e.group
}

// Store returns the pose store
func (e *Editor) Store() *pose.Store {
	return e.store
}

// Bus returns the pointer bus hosts may subscribe their own handlers to
func (e *Editor) Bus() *pointer.Bus {
	return e.bus
}

// Mode returns the current mode
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode switches modes. Leaving translate mode abandons any drag in
// progress.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	if e.active != nil {
		e.active.Close()
		e.active = nil
	}
	if m == ModeTranslate {
		e.active = e.group.Activate(e.bus)
	}
	e.logger.Debugf("mode %s -> %s", e.mode, m)
	e.mode = m
}

// Dispatch feeds one pointer event to the editor
func (e *Editor) Dispatch(ev pointer.Event) {
	e.bus.Dispatch(ev)
}

// CameraLocked reports whether camera controls must ignore the pointer
// because the gizmo owns it
func (e *Editor) CameraLocked() bool {
	return e.group.Dragging() != gizmo.AxisNone
}

// Hovering reports whether a press would start a drag
func (e *Editor) Hovering() bool {
	return e.mode == ModeTranslate && e.group.Hovered() != gizmo.AxisNone
}

// Snapshot returns the current pose
func (e *Editor) Snapshot() pose.Snapshot {
	return e.store.Snapshot()
}

// EndEffector returns the gizmo origin, which leads the store during a drag
func (e *Editor) EndEffector() geometry.Vector3 {
	return e.group.Origin()
}

// ResetPose abandons any drag and restores the pose the editor started with
func (e *Editor) ResetPose() error {
	e.group.Abort()
	return e.store.Replace(e.initial)
}

// Close deactivates the gizmo and detaches from the store
func (e *Editor) Close() error {
	if e.active != nil {
		e.active.Close()
		e.active = nil
	}
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	return nil
}

func (e *Editor) commit(v geometry.Vector3) {
	if err := e.store.SetEndEffector(v); err != nil {
		e.logger.Errorf("failed to commit end effector %s: %v", v, err)
		return
	}
	e.logger.Infof("end effector moved to %s", v)
}

func (e *Editor) sync(s pose.Snapshot) {
	ee, err := s.EndEffector()
	if err != nil {
		return
	}
	if !e.group.SetOrigin(ee) {
		e.logger.Debugf("pose changed during drag, gizmo keeps %s", e.group.Origin())
	}
}
