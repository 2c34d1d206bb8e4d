package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/stockroom-app/inventory/internal/config"
	"github.com/stockroom-app/inventory/internal/models"
	"gorm.io/gorm"
)

// NewRootCommand returns the inventory command with all subcommands.
// Without a subcommand, the server is started.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Inventory management for categories and items",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), version)
		},
	}

	root.AddCommand(newServeCommand(version))
	root.AddCommand(newInitDBCommand())
	root.AddCommand(newVersionCommand(version))

	return root
}

// Execute runs the root command.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// connect loads the configuration and opens the configured database.
func connect() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	dialector, err := cfg.Dialector()
	if err != nil {
		return config.Config{}, nil, err
	}

	db, err := models.Connect(dialector, cfg.Pool())
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("database connection failed: %w", err)
	}

	log.Info().Str("dialector", dialector.Name()).Msg("Database")
	return cfg, db, nil
}
