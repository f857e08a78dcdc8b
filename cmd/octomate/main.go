package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"octomate/internal/app/server"
	"octomate/internal/domain/employee"
	"octomate/internal/domain/export"
	"octomate/internal/platform/config"
	"octomate/internal/platform/storage"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "octomate",
		Short:   "Employee profile manager with role-based access and audit trail",
		Version: version,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.New(config.Load())
			if err != nil {
				return err
			}
			return app.Run()
		},
	}

	var seedForce bool
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo roster into the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			store, err := storage.Open(cfg.DataDir)
			if err != nil {
				return err
			}
			if err := employee.NewService(store).Seed(seedForce); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "roster seeded")
			return nil
		},
	}
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Overwrite an existing roster")

	var exportOut string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the roster as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			store, err := storage.Open(cfg.DataDir)
			if err != nil {
				return err
			}
			roster, err := employee.NewService(store).List(employee.FilterOptions{})
			if err != nil {
				return err
			}
			data, err := export.RosterCSV(roster)
			if err != nil {
				return err
			}
			if exportOut == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(exportOut, data, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write CSV to file instead of stdout")

	root.AddCommand(serveCmd, seedCmd, exportCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
