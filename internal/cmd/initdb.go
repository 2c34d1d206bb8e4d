package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/stockroom-app/inventory/internal/models"
)

func newInitDBCommand() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Drop all data, recreate the schema and insert sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			defer models.Close(db)

			err = models.Reset(db)
			if err != nil {
				return err
			}
			log.Info().Msg("Schema created")

			if !seed {
				return nil
			}

			return models.Seed(cmd.Context(), db)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", true, "insert the sample categories and items")
	return cmd
}
