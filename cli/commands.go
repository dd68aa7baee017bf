package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/techagentng/citizenrate/db"
	"github.com/techagentng/citizenrate/mailingservices"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/server"
)

var (
	ok   = color.New(color.FgGreen).SprintFunc()
	warn = color.New(color.FgYellow).SprintFunc()
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	conf, gormDB, err := open()
	if err != nil {
		return err
	}
	mailgunClient := &mailingservices.Mailgun{}
	mailgunClient.Init(conf)

	server.New(conf, gormDB, mailgunClient).Start()
	return nil
}

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := open(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", ok("✓"))
			return nil
		},
	}
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load reference data into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := open()
			if err != nil {
				return err
			}
			result, err := db.Seed(gormDB.DB)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			out := cmd.OutOrStdout()
			if result.Skipped {
				fmt.Fprintf(out, "%s database already has data, nothing seeded\n", warn("!"))
				return nil
			}
			fmt.Fprintf(out, "%s seeded %d districts, %d institutions, %d positions, %d nominees\n",
				ok("✓"), result.Districts, result.Institutions, result.Positions, result.Nominees)
			fmt.Fprintf(out, "  rating categories: %d nominee, %d institution\n",
				result.NomineeCategories, result.InstitutionCategories)
			return nil
		},
	}
}

func CreateAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator, or promote an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			req := &models.RegisterRequest{Name: name, Email: email, Password: password}
			if err := models.ValidateStruct(req); err != nil {
				return err
			}

			conf, gormDB, err := open()
			if err != nil {
				return err
			}
			srv := server.New(conf, gormDB, nil)
			admin, err := srv.AuthService.CreateAdmin(req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s> is an administrator\n", ok("✓"), admin.Name, admin.Email)
			return nil
		},
	}
	cmd.Flags().String("name", "", "administrator name")
	cmd.Flags().String("email", "", "administrator email")
	cmd.Flags().String("password", "", "password for a new account")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
