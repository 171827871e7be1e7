package gizmo

import (
	"io"

	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/philipparndt/goarm/pkg/log"
	"github.com/philipparndt/goarm/pkg/pointer"
)

// Defaults match the editor's translate tool
const (
	DefaultScale     = 10.0
	DefaultTolerance = 2.0
)

// Options configure a Group
type Options struct {
	Scale     float64
	Tolerance float64
	// Basis holds the X, Y and Z axis directions. The zero value means the
	// world axes.
	Basis  [3]geometry.Vector3
	Logger log.Logger
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Basis == ([3]geometry.Vector3{}) {
		o.Basis = [3]geometry.Vector3{geometry.UnitX, geometry.UnitY, geometry.UnitZ}
	}
	if o.Logger == nil {
		o.Logger = log.NewNopLogger()
	}
	return o
}

// Group owns three axes around one shared origin. It is the only writer of
// the origin and of the drag session, and it allows at most one axis to be
// dragged at a time.
//
// All methods must be called from the host's event loop.
type Group struct {
	axes    [3]*Axis
	origin  geometry.Vector3
	hovered AxisID
	session *Session
	tracker *pointer.Tracker
	logger  log.Logger

	onCommit func(geometry.Vector3)
	onState  []func(AxisID, State)
	onMove   []func(geometry.Vector3)
}

// NewGroup creates a gizmo at origin reading rays from tracker
func NewGroup(tracker *pointer.Tracker, origin geometry.Vector3, opts Options) *Group {
	opts = opts.withDefaults()
	g := &Group{
		origin:  origin,
		hovered: AxisNone,
		tracker: tracker,
		logger:  opts.Logger.WithField("component", "gizmo"),
	}
	for i := range g.axes {
		g.axes[i] = newAxis(AxisID(i), opts.Basis[i], opts.Scale, opts.Tolerance)
	}
	return g
}

// OnCommit sets the function that receives the final origin of every
// completed drag
func (g *Group) OnCommit(fn func(geometry.Vector3)) {
	g.onCommit = fn
}

// OnStateChange registers fn to run whenever an axis changes state
func (g *Group) OnStateChange(fn func(AxisID, State)) {
	g.onState = append(g.onState, fn)
}

// OnMove registers fn to run whenever a drag moves the origin
func (g *Group) OnMove(fn func(geometry.Vector3)) {
	g.onMove = append(g.onMove, fn)
}

// Origin returns the shared origin
func (g *Group) Origin() geometry.Vector3 {
	return g.origin
}

// Axis returns the axis with the given id, or nil
func (g *Group) Axis(id AxisID) *Axis {
	if !id.Valid() {
		return nil
	}
	return g.axes[id]
}

// Axes returns the axes in priority order
func (g *Group) Axes() [3]*Axis {
	return g.axes
}

// AxisState returns the state of axis id, or Idle for AxisNone
func (g *Group) AxisState(id AxisID) State {
	if !id.Valid() {
		return Idle
	}
	return g.axes[id].state
}

// Hovered returns the hovered axis or AxisNone
func (g *Group) Hovered() AxisID {
	return g.hovered
}

// Dragging returns the axis being dragged or AxisNone
func (g *Group) Dragging() AxisID {
	if g.session == nil {
		return AxisNone
	}
	return g.session.Axis
}

// Session returns the active drag session, or nil
func (g *Group) Session() *Session {
	return g.session
}

// SetOrigin moves the gizmo while no drag is active. It reports whether the
// origin was applied.
func (g *Group) SetOrigin(origin geometry.Vector3) bool {
	if g.session != nil {
		return false
	}
	g.origin = origin
	return true
}

// Activate subscribes the group to bus. Closing the returned handle
// unsubscribes and abandons any drag in progress, restoring the origin it
// started from.
func (g *Group) Activate(bus *pointer.Bus) io.Closer {
	sub := bus.Subscribe(g.Handle)
	return closerFunc(func() error {
		err := sub.Close()
		g.Abort()
		g.updateHover(AxisNone)
		return err
	})
}

// Handle routes one pointer event
func (g *Group) Handle(ev pointer.Event, _ *pointer.Tracker) {
	switch ev.Kind {
	case pointer.Move:
		if g.session != nil {
			g.drag()
		} else {
			g.hoverTest()
		}
	case pointer.Down:
		if g.hovered != AxisNone {
			g.BeginDrag(g.hovered)
		}
	case pointer.Up:
		g.EndDrag()
	case pointer.Leave:
		g.Cancel()
	}
}

// BeginDrag starts dragging axis. It does nothing and returns false when
// another drag is active or the axis is not hovered.
func (g *Group) BeginDrag(id AxisID) bool {
	if !id.Valid() {
		return false
	}
	if g.session != nil {
		g.logger.Debugf("rejecting drag on %s, %s is already dragging", id, g.session.Axis)
		return false
	}
	axis := g.axes[id]
	if axis.state != Hovering {
		g.logger.Debugf("rejecting drag on %s, axis is %s", id, axis.state)
		return false
	}

	g.session = newSession(axis, g.origin)
	axis.state = Dragging
	g.notifyState(id, Dragging)

	// Fix the anchor at the press position when the view allows it.
	if ray, eye, ok := g.view(); ok {
		if p, ok := ConstrainedPoint(ray, g.session.line, eye); ok {
			g.session.anchor = p
			g.session.anchored = true
		}
	}

	g.logger.Debugf("drag begin on %s at %s", id, g.origin)
	return true
}

// EndDrag finishes the active drag and commits the last resolved origin,
// whether or not the pointer is still over the axis. Without an active drag
// it does nothing.
func (g *Group) EndDrag() bool {
	if g.session == nil {
		return false
	}
	final := g.origin
	g.finish()
	g.logger.Debugf("drag end, committing %s", final)
	if g.onCommit != nil {
		g.onCommit(final)
	}
	return true
}

// Cancel handles lost pointer capture. It releases like EndDrag and clears
// hover, since the pointer is no longer over the viewport.
func (g *Group) Cancel() bool {
	committed := g.EndDrag()
	g.updateHover(AxisNone)
	return committed
}

// Abort drops the active drag without committing and restores the origin
// from before the drag
func (g *Group) Abort() bool {
	if g.session == nil {
		return false
	}
	start := g.session.Start
	g.finish()
	g.setOrigin(start)
	g.logger.Debugf("drag aborted, origin restored to %s", start)
	return true
}

func (g *Group) finish() {
	id := g.session.Axis
	g.session = nil
	g.axes[id].state = Idle
	g.hovered = AxisNone
	g.notifyState(id, Idle)
}

// hoverTest finds the first axis the current ray touches, in X, Y, Z order
func (g *Group) hoverTest() {
	ray, ok := g.tracker.Ray()
	if !ok {
		return
	}
	hit := AxisNone
	for _, axis := range g.axes {
		if axis.Intersects(ray, g.origin) {
			hit = axis.ID
			break
		}
	}
	g.updateHover(hit)
}

func (g *Group) updateHover(hit AxisID) {
	for _, axis := range g.axes {
		if axis.setHovering(axis.ID == hit) {
			g.notifyState(axis.ID, axis.state)
		}
	}
	g.hovered = hit
}

func (g *Group) drag() {
	ray, eye, ok := g.view()
	if !ok {
		return
	}
	origin, ok := g.session.Update(ray, eye)
	if !ok {
		return
	}
	g.setOrigin(origin)
}

// view returns the current ray and eye position, or false while the camera
// is unavailable
func (g *Group) view() (geometry.Ray, geometry.Vector3, bool) {
	cam := g.tracker.Scene().ActiveCamera()
	if cam == nil {
		return geometry.Ray{}, geometry.Vector3{}, false
	}
	ray, ok := g.tracker.Ray()
	if !ok {
		return geometry.Ray{}, geometry.Vector3{}, false
	}
	return ray, cam.Position(), true
}

func (g *Group) setOrigin(origin geometry.Vector3) {
	if origin == g.origin {
		return
	}
	g.origin = origin
	for _, fn := range g.onMove {
		fn(origin)
	}
}

func (g *Group) notifyState(id AxisID, s State) {
	for _, fn := range g.onState {
		fn(id, s)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}
