package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goarm/pkg/config"
	"github.com/philipparndt/goarm/pkg/log"
	"github.com/philipparndt/goarm/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "goarm",
		Short: "Interactive editor for multi-joint arm poses",
		Long: `goarm shows an arm pose in a 3D viewport and lets you move its end effector
by dragging an axis gizmo. The headless commands run the same hit testing
and drag resolution without a window.`,
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "configuration file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newInfoCmd(opts),
		newPickCmd(opts),
		newDragCmd(opts),
		newEditCmd(opts),
	)
	return cmd
}

// load reads the configuration and builds the logger
func (o *rootOptions) load() (*config.Config, log.Logger, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.LoadConfig(o.configFile); err != nil {
			return nil, nil, err
		}
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger, err := log.NewLogrusLogger(cfg.Log.Level, cfg.Log.Dir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
