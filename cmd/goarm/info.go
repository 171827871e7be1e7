package main

import (
	"fmt"

	"github.com/philipparndt/goarm/pkg/pose"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info [pose.yaml]",
		Short: "Display the joints, angles and end effector of a pose",
		Long:  "Show every vertex of the pose with its paired joint angle. Without a file the built-in seed pose is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			s, source, err := loadPose(cfg.Pose.File, args)
			if err != nil {
				return err
			}
			return printInfo(cmd, s, source)
		},
	}
}

func printInfo(cmd *cobra.Command, s pose.Snapshot, source string) error {
	out := cmd.OutOrStdout()
	ee, err := s.EndEffector()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Pose Information")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "Source: %s\n\n", source)

	fmt.Fprintf(out, "Vertices: %d\n", len(s.Vertices))
	fmt.Fprintf(out, "Angles: %d\n\n", len(s.Angles))

	fmt.Fprintln(out, "Joints:")
	pairs := s.Pairs()
	for i, v := range s.Vertices {
		if i < len(pairs) {
			fmt.Fprintf(out, "  %d: %s  angle %.4f\n", i, v, pairs[i].Angle)
		} else {
			fmt.Fprintf(out, "  %d: %s\n", i, v)
		}
	}

	bounds := s.Bounds()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "End effector: %s\n", ee)
	fmt.Fprintf(out, "Reach (bounding diagonal): %.4f\n", bounds.Diagonal())
	return nil
}

// loadPose picks the pose from the argument, the config or the seed
func loadPose(configured string, args []string) (pose.Snapshot, string, error) {
	path := configured
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return pose.Default(), "built-in seed", nil
	}
	s, err := pose.LoadFile(path)
	if err != nil {
		return pose.Snapshot{}, "", err
	}
	return s, path, nil
}
