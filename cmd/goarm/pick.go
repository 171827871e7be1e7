package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/goarm/pkg/camera"
	"github.com/philipparndt/goarm/pkg/config"
	"github.com/philipparndt/goarm/pkg/editor"
	"github.com/philipparndt/goarm/pkg/gizmo"
	"github.com/philipparndt/goarm/pkg/log"
	"github.com/philipparndt/goarm/pkg/pose"
	"github.com/spf13/cobra"
)

type viewportOptions struct {
	width  int
	height int
}

func (v *viewportOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&v.width, "width", 0, "viewport width in pixels (default: window width)")
	cmd.Flags().IntVar(&v.height, "height", 0, "viewport height in pixels (default: window height)")
}

func newPickCmd(opts *rootOptions) *cobra.Command {
	var x, y float64
	var vp viewportOptions
	cmd := &cobra.Command{
		Use:   "pick [pose.yaml]",
		Short: "Report which gizmo axis lies under a viewport pixel",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			ed, cam, err := newHeadlessEditor(cfg, logger, vp, args)
			if err != nil {
				return err
			}
			defer ed.Close()

			axis := ed.Pick(x, y)
			out := cmd.OutOrStdout()
			if axis == gizmo.AxisNone {
				fmt.Fprintf(out, "No axis at (%g, %g)\n", x, y)
			} else {
				fmt.Fprintf(out, "Axis %s at (%g, %g)\n", axis, x, y)
			}
			printGizmoPixels(cmd, ed, cam)
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "pointer x in pixels")
	cmd.Flags().Float64Var(&y, "y", 0, "pointer y in pixels")
	vp.register(cmd)
	return cmd
}

// newHeadlessEditor builds an editor on a camera with a fixed viewport
func newHeadlessEditor(cfg *config.Config, logger log.Logger, vp viewportOptions, args []string) (*editor.Editor, *camera.Camera, error) {
	s, _, err := loadPose(cfg.Pose.File, args)
	if err != nil {
		return nil, nil, err
	}
	width, height := vp.width, vp.height
	if width <= 0 {
		width = cfg.Window.Width
	}
	if height <= 0 {
		height = cfg.Window.Height
	}

	cam := camera.New(cfg.Camera.Position.Vector3(), cfg.Camera.Target.Vector3(), cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	cam.SetViewport(float64(width), float64(height))

	ed, err := editor.New(&editor.StaticScene{Camera: cam}, pose.NewStore(s), editor.Options{
		Gizmo: gizmo.Options{
			Scale:     cfg.Gizmo.Scale,
			Tolerance: cfg.Gizmo.Tolerance,
		},
		Mode:   editor.ModeTranslate,
		Logger: logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return ed, cam, nil
}

// printGizmoPixels shows where the gizmo axes appear on screen
func printGizmoPixels(cmd *cobra.Command, ed *editor.Editor, cam *camera.Camera) {
	out := cmd.OutOrStdout()
	ox, oy, _ := cam.Project(ed.EndEffector())
	fmt.Fprintf(out, "Gizmo origin at pixel (%.1f, %.1f)\n", ox, oy)
	for _, axis := range ed.Group().Axes() {
		_, tip := axis.Segment(ed.EndEffector())
		x, y, _ := cam.Project(tip)
		fmt.Fprintf(out, "  %s tip at pixel (%.1f, %.1f)\n", axis.ID, x, y)
	}
}

// parsePixel reads "x,y"
func parsePixel(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pixel %q, expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pixel %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pixel %q: %w", s, err)
	}
	return x, y, nil
}
