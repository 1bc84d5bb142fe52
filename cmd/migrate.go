package cmd

import (
	"repair-server/confs"
	"repair-server/db"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Creates or updates the devices, parts, technicians and services tables
together with their unique indexes, then exits.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMigration(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigration() error {
	cfg, err := confs.LoadConfig(cfgFile)
	if err != nil {
		return errors.Wrap(err, "error loading config")
	}

	log.Info("Connecting to database...")
	database, err := db.Connect(cfg.Database, log)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Info("Running database migrations...")
	if err := db.AutoMigrate(database); err != nil {
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}
