// Package cli holds the citizenrate command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
)

// Collaborators the commands reach for; tests swap them.
var (
	loadConfig = config.Load
	connect    = db.Connect
)

// RootCmd builds the command tree. Running it without a subcommand serves the API.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "citizenrate",
		Short:         "CitizenRate civic accountability API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(MigrateCmd())
	rootCmd.AddCommand(SeedCmd())
	rootCmd.AddCommand(CreateAdminCmd())
	return rootCmd
}

func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// open loads the configuration and returns a migrated database.
func open() (*config.Config, *db.GormDB, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	gormDB := connect(conf)
	if err := db.Migrate(gormDB.DB); err != nil {
		return nil, nil, err
	}
	return conf, gormDB, nil
}
