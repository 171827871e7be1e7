package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goarm/pkg/pose"
	"github.com/spf13/cobra"
)

func newDragCmd(opts *rootOptions) *cobra.Command {
	var from, to, output string
	var steps int
	var vp viewportOptions
	cmd := &cobra.Command{
		Use:   "drag [pose.yaml]",
		Short: "Replay a gizmo drag and print the committed end effector",
		Long: `Press at --from, move to --to in --steps pointer moves and release.
The gesture runs through the same hit testing and drag resolution as the
editor window.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromX, fromY, err := parsePixel(from)
			if err != nil {
				return err
			}
			toX, toY, err := parsePixel(to)
			if err != nil {
				return err
			}

			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			ed, _, err := newHeadlessEditor(cfg, logger, vp, args)
			if err != nil {
				return err
			}
			defer ed.Close()

			out := cmd.OutOrStdout()
			before, _ := ed.Store().EndEffector()
			axis, ok := ed.Drag(fromX, fromY, toX, toY, steps)
			if !ok {
				fmt.Fprintf(out, "No axis at (%g, %g), nothing dragged\n", fromX, fromY)
				fmt.Fprintf(out, "End effector: %s\n", before)
				return nil
			}

			after, err := ed.Store().EndEffector()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Dragged %s axis\n", axis)
			fmt.Fprintf(out, "End effector: %s -> %s\n", before, after)
			fmt.Fprintf(out, "Displacement: %s\n", after.Sub(before))

			if output != "" {
				if err := writePose(output, ed.Snapshot()); err != nil {
					return err
				}
				fmt.Fprintf(out, "Pose written to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "press position x,y in pixels")
	cmd.Flags().StringVar(&to, "to", "", "release position x,y in pixels")
	cmd.Flags().IntVar(&steps, "steps", 10, "pointer moves between press and release")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the resulting pose to this file")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	vp.register(cmd)
	return cmd
}

func writePose(path string, s pose.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pose.Encode(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
