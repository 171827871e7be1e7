package main

import (
	"github.com/philipparndt/goarm/internal/app"
	"github.com/spf13/cobra"
)

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [pose.yaml]",
		Short: "Open the pose editor window",
		Long: `Open the 3D editor. Drag a gizmo axis to move the end effector, drag empty
space to orbit the camera. A pose file given here is watched and reloaded
when it changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			poseFile := ""
			if len(args) > 0 {
				poseFile = args[0]
			}
			return app.Run(cfg, logger, poseFile)
		},
	}
}
