package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goarm/pkg/camera"
	"github.com/philipparndt/goarm/pkg/config"
	"github.com/philipparndt/goarm/pkg/editor"
	"github.com/philipparndt/goarm/pkg/geometry"
	"github.com/philipparndt/goarm/pkg/gizmo"
	"github.com/philipparndt/goarm/pkg/log"
	"github.com/philipparndt/goarm/pkg/pose"
	"github.com/philipparndt/goarm/pkg/viewer"
	"github.com/philipparndt/goarm/pkg/watcher"
)

type App struct {
	window  fyne.Window
	cfg     *config.Config
	logger  log.Logger
	editor  *editor.Editor
	view    *viewer.EditorView
	watcher *watcher.FileWatcher
	info    *PoseInfo
}

type PoseInfo struct {
	endEffectorLabel *widget.Label
	gizmoLabel       *widget.Label
	jointsLabel      *widget.Label
	sourceLabel      *widget.Label
}

func main() {
	configFile := flag.String("config", "", "configuration file (YAML)")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	logger, err := log.NewLogrusLogger(cfg.Log.Level, cfg.Log.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("goarm - Arm Pose Editor")

	appInstance := &App{
		window: w,
		cfg:    cfg,
		logger: logger,
	}

	poseFile := cfg.Pose.File
	if flag.NArg() > 0 {
		poseFile = flag.Arg(0)
	}
	appInstance.loadFile(poseFile)

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.SetOnClosed(appInstance.close)
	w.ShowAndRun()
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	s := pose.Default()
	if filename != "" {
		var err error
		if s, err = pose.LoadFile(filename); err != nil {
			dialog.ShowError(fmt.Errorf("failed to load pose file: %w", err), a.window)
			return
		}
	}

	a.close()
	cam := camera.New(a.cfg.Camera.Position.Vector3(), a.cfg.Camera.Target.Vector3(), a.cfg.Camera.FOV, a.cfg.Camera.Near, a.cfg.Camera.Far)
	ed, err := editor.New(&editor.StaticScene{Camera: cam}, pose.NewStore(s), editor.Options{
		Gizmo: gizmo.Options{
			Scale:     a.cfg.Gizmo.Scale,
			Tolerance: a.cfg.Gizmo.Tolerance,
		},
		Mode:   editor.ModeTranslate,
		Logger: a.logger,
	})
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.editor = ed
	a.view = viewer.NewEditorView(ed, cam)
	a.view.SetShowGrid(a.cfg.Preview.Grid)
	a.view.SetShowAxes(a.cfg.Preview.Axes)

	a.setupMainUI(filename)
	if filename != "" && a.cfg.Pose.Watch {
		a.watch(filename)
	}
}

func (a *App) setupMainUI(source string) {
	if source == "" {
		source = "built-in seed"
	}
	a.info = &PoseInfo{
		endEffectorLabel: widget.NewLabel(""),
		gizmoLabel:       widget.NewLabel(""),
		jointsLabel:      widget.NewLabel(""),
		sourceLabel:      widget.NewLabel("Source: " + source),
	}
	a.info.endEffectorLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.info.sourceLabel.Wrapping = fyne.TextWrapBreak

	// Keep the panel in step with the editor.
	group := a.editor.Group()
	group.OnMove(func(geometry.Vector3) { a.updateInfo() })
	group.OnStateChange(func(gizmo.AxisID, gizmo.State) { a.updateInfo() })
	a.editor.Store().Subscribe(func(pose.Snapshot) { a.updateInfo() })

	gridCheck := widget.NewCheck("Show Grid", a.view.SetShowGrid)
	gridCheck.SetChecked(a.cfg.Preview.Grid)
	axesCheck := widget.NewCheck("Show Axes", a.view.SetShowAxes)
	axesCheck.SetChecked(a.cfg.Preview.Axes)
	labelsCheck := widget.NewCheck("Show Angles", a.view.SetShowLabels)
	labelsCheck.SetChecked(true)

	modeRadio := widget.NewRadioGroup([]string{"Translate", "View"}, func(selected string) {
		if selected == "View" {
			a.editor.SetMode(editor.ModeView)
		} else {
			a.editor.SetMode(editor.ModeTranslate)
		}
		a.view.Refresh()
		a.updateInfo()
	})
	modeRadio.SetSelected("Translate")
	modeRadio.Horizontal = true

	resetButton := widget.NewButton("Reset Pose", func() {
		if err := a.editor.ResetPose(); err != nil {
			dialog.ShowError(err, a.window)
		}
		a.view.Refresh()
	})
	frameButton := widget.NewButton("Frame Arm", a.view.FrameArm)
	openButton := widget.NewButton("Open Pose File", a.showFileDialog)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag a gizmo axis to move the end effector\n" +
			"• Drag empty space to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Pose:"),
		widget.NewSeparator(),
		a.info.sourceLabel,
		a.info.endEffectorLabel,
		a.info.gizmoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Joints:"),
		a.info.jointsLabel,
		widget.NewSeparator(),
		widget.NewLabel("Mode:"),
		modeRadio,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		gridCheck,
		axesCheck,
		labelsCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		frameButton,
		resetButton,
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, a.view)
	a.window.SetContent(content)
	a.updateInfo()
}

func (a *App) updateInfo() {
	if a.info == nil {
		return
	}
	group := a.editor.Group()

	ee := a.editor.EndEffector()
	a.info.endEffectorLabel.SetText(fmt.Sprintf("End effector: (%.3f, %.3f, %.3f)", ee.X, ee.Y, ee.Z))

	status := "idle"
	switch {
	case a.editor.Mode() == editor.ModeView:
		status = "inactive"
	case group.Dragging() != gizmo.AxisNone:
		status = fmt.Sprintf("dragging %s", group.Dragging())
	case group.Hovered() != gizmo.AxisNone:
		status = fmt.Sprintf("hovering %s", group.Hovered())
	}
	a.info.gizmoLabel.SetText("Gizmo: " + status)

	var b strings.Builder
	s := a.editor.Snapshot()
	pairs := s.Pairs()
	for i, v := range s.Vertices {
		if i < len(pairs) {
			fmt.Fprintf(&b, "%d: %s  angle %.2f\n", i, v, pairs[i].Angle)
		} else {
			fmt.Fprintf(&b, "%d: %s\n", i, v)
		}
	}
	a.info.jointsLabel.SetText(strings.TrimRight(b.String(), "\n"))
}

// watch reloads filename on change. Reloads are applied on the fyne event
// loop.
func (a *App) watch(filename string) {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDelay, a.logger)
	if err != nil {
		a.logger.Warnf("failed to set up file watching: %v", err)
		return
	}
	store := a.editor.Store()
	err = fw.Watch(filename, func(changed string) {
		s, err := pose.LoadFile(changed)
		fyne.Do(func() {
			if err != nil {
				a.logger.Warnf("failed to reload pose: %v", err)
				return
			}
			if err := store.Replace(s); err != nil {
				a.logger.Warnf("ignoring reloaded pose: %v", err)
				return
			}
			a.logger.Infof("pose reloaded from %s", changed)
			a.view.Refresh()
		})
	})
	if err != nil {
		fw.Close()
		a.logger.Warnf("failed to watch %s: %v", filename, err)
		return
	}
	fw.Start()
	a.watcher = fw
}

func (a *App) close() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	if a.editor != nil {
		a.editor.Close()
		a.editor = nil
	}
}
