// Command starnavi browses a directory tree as a rotating galaxy of files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/phanxgames/starnavi"
	"github.com/phanxgames/starnavi/config"
	"github.com/phanxgames/starnavi/fstree"
	"github.com/phanxgames/starnavi/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.1.0"

	configFlag   string
	clusterFlag  string
	logLevelFlag string
	noWatchFlag  bool
	hiddenFlag   bool
	widthFlag    int
	heightFlag   int

	rootCmd = &cobra.Command{
		Use:          "starnavi [dir]",
		Short:        "starnavi - browse a directory tree as a galaxy of files",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), root, cfg)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of starnavi",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("starnavi version %s\n", version)
		},
	}
)

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configFlag
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("cluster") {
		cfg.Galaxy.Cluster = clusterFlag
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevelFlag
	}
	if flags.Changed("no-watch") {
		cfg.Tags.Watch = !noWatchFlag
	}
	if flags.Changed("width") {
		cfg.Window.Width = widthFlag
	}
	if flags.Changed("height") {
		cfg.Window.Height = heightFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, root string, cfg *config.Config) error {
	log, err := logging.New(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.Output,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	mode, err := cfg.ClusterMode()
	if err != nil {
		return err
	}

	handlers, err := fstree.LoadHandlerTable(fstree.DefaultsListPath)
	if err != nil {
		log.Warn("default applications unavailable", zap.Error(err))
	}

	tree, err := fstree.Scan(ctx, root, fstree.ScanOptions{
		Logger:     log,
		Handlers:   handlers,
		SkipHidden: !hiddenFlag,
	})
	if err != nil {
		return err
	}
	log.Info("scanned", zap.String("root", tree.RootPath()), zap.Int("files", tree.NumFiles()))

	font, err := starnavi.NewDefaultTTFMeasurer(starnavi.DefaultFontSize)
	if err != nil {
		return err
	}
	opts := cfg.Options()
	opts.Logger = log
	opts.LabelFont = font
	opts.DisplayRadius = starnavi.WindowDisplayRadius(cfg.Window.Width, cfg.Window.Height)
	history := starnavi.NewHistory(starnavi.NewDirGalaxy(tree.Root(), mode, opts), opts)
	defer history.Close()

	runCfg := starnavi.RunConfig{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		ShowFPS:       cfg.Window.ShowFPS,
		ScreenshotDir: cfg.Window.ScreenshotDir,
		Font:          font,
		Tree:          tree,
		Logger:        log,
	}
	if cfg.Tags.Watch {
		w, err := fstree.Watch(tree, log)
		if err != nil {
			log.Warn("tag watching disabled", zap.Error(err))
		} else {
			defer w.Close()
			runCfg.Watcher = w
		}
	}
	return starnavi.Run(history, runCfg)
}

func init() {
	rootCmd.Flags().StringVar(&configFlag, "config", "", "config file (default $XDG_CONFIG_HOME/starnavi/config.toml)")
	rootCmd.Flags().StringVar(&clusterFlag, "cluster", "", "initial cluster mode: hierarchy, name or tags")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&noWatchFlag, "no-watch", false, "do not watch sidecar tag files")
	rootCmd.Flags().BoolVar(&hiddenFlag, "hidden", false, "include hidden files and directories")
	rootCmd.Flags().IntVar(&widthFlag, "width", 0, "window width in pixels")
	rootCmd.Flags().IntVar(&heightFlag, "height", 0, "window height in pixels")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
