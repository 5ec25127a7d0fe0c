package main

import (
	"context"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/radiocarbon-hq/radiocarbon/pkg/backend"
	"github.com/radiocarbon-hq/radiocarbon/pkg/config"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db/migrate"
	rlog "github.com/radiocarbon-hq/radiocarbon/pkg/log"
	"github.com/radiocarbon-hq/radiocarbon/pkg/store"
	"github.com/radiocarbon-hq/radiocarbon/pkg/token"
	"github.com/spf13/cobra"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""

	configPath string

	rootCmd = &cobra.Command{
		Use:          "radiocarbon",
		Short:        "A team collaboration dashboard for the command line",
		Long:         "Radiocarbon is a local-first team collaboration dashboard for the command line.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return dashboardCmd.RunE(cmd, args)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.AddCommand(
		dashboardCmd,
		memberCmd,
		migrateCmd,
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			Version = info.Main.Version
		} else {
			Version = "unknown (built from source)"
		}
	}
	rootCmd.Version = Version
}

// setup loads the configuration and logger into the command context.
func setup(ctx context.Context) (context.Context, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		if err := config.ParseConfig(cfg, configPath); err != nil {
			return ctx, err
		}
	} else if !cfg.Exist() {
		// Write the default config to disk on first run.
		if err := cfg.WriteConfig(); err != nil {
			return ctx, err
		}
	} else if err := cfg.Parse(); err != nil {
		return ctx, err
	}

	ctx = config.WithContext(ctx, cfg)

	logger, f, err := rlog.NewLogger(cfg)
	if err != nil {
		return ctx, err
	}
	if f != nil {
		cobra.OnFinalize(func() {
			_ = f.Close()
		})
	}

	// Set global logger
	log.SetDefault(logger)

	return log.WithContext(ctx, logger), nil
}

// initBackend opens the database, runs migrations, and loads the state
// container. The returned context carries the backend.
func initBackend(ctx context.Context) (context.Context, *backend.Backend, error) {
	cfg := config.FromContext(ctx)

	dbx, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DataSource)
	if err != nil {
		return ctx, nil, err
	}

	if err := migrate.Migrate(ctx, dbx); err != nil {
		return ctx, nil, err
	}

	tokens, err := token.NewManager(cfg, token.NewFileStorage(cfg.TokenPath()))
	if err != nil {
		return ctx, nil, err
	}

	be := backend.New(ctx, cfg, dbx, store.New(), tokens)
	if err := be.Load(ctx); err != nil {
		return ctx, nil, err
	}

	return backend.WithContext(ctx, be), be, nil
}
