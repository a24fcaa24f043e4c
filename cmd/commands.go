package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yungbote/petpal-backend/internal/app"
	"github.com/yungbote/petpal-backend/internal/data/db"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

// serveOptions holds the flags shared by the root command and serve.
type serveOptions struct {
	port   int
	dbPath string
}

func (o *serveOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.port, "port", 8000, "listen port (overrides PORT)")
	cmd.Flags().StringVar(&o.dbPath, "db-path", "project.db", "SQLite database file (overrides DB_PATH)")
}

func (o *serveOptions) run(cmd *cobra.Command, _ []string) error {
	cfg := app.LoadConfig()
	if cmd.Flags().Changed("port") {
		cfg.Port = o.port
	}
	if cmd.Flags().Changed("db-path") {
		cfg.DB.Path = o.dbPath
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run(ctx)
}

// newRootCmd serves when invoked without a subcommand.
func newRootCmd() *cobra.Command {
	opts := &serveOptions{}
	root := &cobra.Command{
		Use:           "petpal",
		Short:         "Backend for the petpal learning companion",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
		RunE: opts.run,
	}
	opts.addFlags(root)
	root.AddCommand(newServeCmd(), newMigrateCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  opts.run,
	}
	opts.addFlags(cmd)
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			log, err := logger.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			dbs, err := db.NewService(cfg.DB, log)
			if err != nil {
				return err
			}
			defer dbs.Close()
			if err := dbs.AutoMigrateAll(); err != nil {
				return err
			}
			log.Info("Schema is up to date", "driver", cfg.DB.Driver)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "petpal %s (%s)\n", version, commit)
		},
	}
}
