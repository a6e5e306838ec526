package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cropbook/config"
	"cropbook/database"
	"cropbook/pkg/logging"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbPath string
	root := &cobra.Command{
		Use:          "cropbook",
		Short:        "Farmers crop data management",
		SilenceUsage: true,
		// no subcommand starts the server
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), dbPath)
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (overrides DB_PATH)")
	root.AddCommand(newServeCmd(&dbPath), newReportCmd(&dbPath))
	return root
}

// appEnv is opened by each command before it runs and closed after.
type appEnv struct {
	cfg config.AppConfig
	log *zap.Logger
	db  *gorm.DB
}

func openEnv(dbPath string) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Error("open database", zap.String("path", cfg.DBPath), zap.Error(err))
		return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	return &appEnv{cfg: cfg, log: log, db: db}, nil
}

func (e *appEnv) Close() {
	if err := database.Close(e.db); err != nil {
		e.log.Warn("close database", zap.Error(err))
	}
	_ = e.log.Sync()
}
