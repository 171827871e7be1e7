package viewer

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goarm/pkg/camera"
	"github.com/philipparndt/goarm/pkg/editor"
	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/philipparndt/goarm/pkg/gizmo"
	"github.com/philipparndt/goarm/pkg/pointer"
)

var (
	gridColor   = color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0x80}
	labelColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gridExtent  = 100.0
	gridSpacing = 10.0
	axesLength  = 100.0
)

var (
	_ desktop.Hoverable = (*EditorView)(nil)
	_ desktop.Mouseable = (*EditorView)(nil)
	_ fyne.Draggable    = (*EditorView)(nil)
	_ fyne.Scrollable   = (*EditorView)(nil)
)

// EditorView draws the arm and the translate gizmo and feeds pointer input
// to an editor. Dragging empty space orbits the camera; dragging a gizmo
// axis moves the end effector.
type EditorView struct {
	widget.BaseWidget

	editor *editor.Editor
	camera *camera.Camera

	showGrid   bool
	showAxes   bool
	showLabels bool
}

// NewEditorView creates the view. cam must be the camera behind the
// editor's scene.
func NewEditorView(ed *editor.Editor, cam *camera.Camera) *EditorView {
	v := &EditorView{
		editor:     ed,
		camera:     cam,
		showGrid:   true,
		showLabels: true,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetShowGrid toggles the ground grid
func (v *EditorView) SetShowGrid(show bool) {
	v.showGrid = show
	v.Refresh()
}

// SetShowAxes toggles the world axes helper
func (v *EditorView) SetShowAxes(show bool) {
	v.showAxes = show
	v.Refresh()
}

// SetShowLabels toggles the joint angle labels
func (v *EditorView) SetShowLabels(show bool) {
	v.showLabels = show
	v.Refresh()
}

// FrameArm points the camera at the whole arm
func (v *EditorView) FrameArm() {
	v.camera.Frame(v.editor.Snapshot().Bounds())
	v.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *EditorView) CreateRenderer() fyne.WidgetRenderer {
	return &editorViewRenderer{view: v}
}

// MouseIn implements desktop.Hoverable
func (v *EditorView) MouseIn(ev *desktop.MouseEvent) {
	v.dispatch(pointer.Move, ev.Position)
}

// MouseMoved implements desktop.Hoverable
func (v *EditorView) MouseMoved(ev *desktop.MouseEvent) {
	v.dispatch(pointer.Move, ev.Position)
}

// MouseOut implements desktop.Hoverable. Losing the pointer releases any
// drag in progress.
func (v *EditorView) MouseOut() {
	v.editor.Dispatch(pointer.Event{Kind: pointer.Leave})
	v.Refresh()
}

// MouseDown implements desktop.Mouseable
func (v *EditorView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || !v.editor.Hovering() {
		return
	}
	v.dispatch(pointer.Down, ev.Position)
}

// MouseUp implements desktop.Mouseable
func (v *EditorView) MouseUp(ev *desktop.MouseEvent) {
	v.dispatch(pointer.Up, ev.Position)
}

// Dragged implements fyne.Draggable. The gizmo keeps the pointer while it
// drags; otherwise the camera orbits.
func (v *EditorView) Dragged(ev *fyne.DragEvent) {
	if v.editor.CameraLocked() {
		v.dispatch(pointer.Move, ev.Position)
		return
	}
	v.camera.Rotate(-float64(ev.Dragged.DY)*0.01, float64(ev.Dragged.DX)*0.01)
	v.Refresh()
}

// DragEnd implements fyne.Draggable
func (v *EditorView) DragEnd() {
	v.editor.Dispatch(pointer.Event{Kind: pointer.Up})
	v.Refresh()
}

// Scrolled zooms unless a drag is active
func (v *EditorView) Scrolled(ev *fyne.ScrollEvent) {
	if v.editor.CameraLocked() {
		return
	}
	v.camera.Zoom(-float64(ev.Scrolled.DY) * 0.001)
	v.Refresh()
}

func (v *EditorView) dispatch(kind pointer.Kind, pos fyne.Position) {
	v.editor.Dispatch(pointer.Event{Kind: kind, X: float64(pos.X), Y: float64(pos.Y)})
	v.Refresh()
}

// editorViewRenderer implements fyne.WidgetRenderer
type editorViewRenderer struct {
	view    *EditorView
	objects []fyne.CanvasObject
}

func (r *editorViewRenderer) Layout(size fyne.Size) {
	r.view.camera.SetViewport(float64(size.Width), float64(size.Height))
	r.Refresh()
}

func (r *editorViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *editorViewRenderer) Refresh() {
	r.objects = make([]fyne.CanvasObject, 0, len(r.objects))
	if !r.view.camera.Ready() {
		return
	}
	v := r.view

	if v.showGrid {
		for x := -gridExtent; x <= gridExtent; x += gridSpacing {
			r.line(geometry.NewVector3(x, 0, -gridExtent), geometry.NewVector3(x, 0, gridExtent), gridColor, 1)
			r.line(geometry.NewVector3(-gridExtent, 0, x), geometry.NewVector3(gridExtent, 0, x), gridColor, 1)
		}
	}
	if v.showAxes {
		for i, dir := range []geometry.Vector3{geometry.UnitX, geometry.UnitY, geometry.UnitZ} {
			r.line(geometry.Vector3{}, dir.Mul(axesLength), editor.AxisColors[i], 1)
		}
	}

	overlay := v.editor.Overlay()
	for _, seg := range overlay.Arm {
		r.line(seg.From, seg.To, seg.Color, 2)
	}
	for _, joint := range overlay.Joints {
		r.point(joint, editor.JointColor, 6)
	}
	for _, line := range overlay.Axes {
		width := float32(2)
		if line.State != gizmo.Idle {
			width = 4
		}
		r.line(line.From, line.To, line.Color, width)
	}
	if v.showLabels {
		for _, label := range overlay.Labels {
			r.text(label.Position, fmt.Sprintf("%.2f", label.Angle))
		}
	}

	canvas.Refresh(v)
}

func (r *editorViewRenderer) line(from, to geometry.Vector3, c color.Color, width float32) {
	x1, y1, d1 := r.view.camera.Project(from)
	x2, y2, d2 := r.view.camera.Project(to)
	if d1 <= 0 || d2 <= 0 {
		return
	}
	line := canvas.NewLine(c)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	r.objects = append(r.objects, line)
}

func (r *editorViewRenderer) point(p geometry.Vector3, c color.Color, size float32) {
	x, y, depth := r.view.camera.Project(p)
	if depth <= 0 {
		return
	}
	marker := canvas.NewCircle(c)
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	r.objects = append(r.objects, marker)
}

func (r *editorViewRenderer) text(p geometry.Vector3, s string) {
	x, y, depth := r.view.camera.Project(p)
	if depth <= 0 {
		return
	}
	label := canvas.NewText(s, labelColor)
	label.TextSize = 11
	label.Move(fyne.NewPos(float32(x)+6, float32(y)-14))
	r.objects = append(r.objects, label)
}

func (r *editorViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *editorViewRenderer) Destroy() {}
