package main

import (
	"fmt"
	"io"
	"os"

	"github.com/localnerve/marketdb/data"
	"github.com/localnerve/marketdb/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *options, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <dbname> <port> <user>",
		Short: "Create or update the marketplace tables",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, args)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}
			db, err := database.Connect(cfg)
			if err != nil {
				fmt.Fprintf(errOut, "Error - Unable to Connect to Database: %v\n", err)
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}
			fmt.Fprintln(out, "Migration complete.")
			return nil
		},
	}
}

func newSeedCmd(opts *options, out, errOut io.Writer) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed <dbname> <port> <user>",
		Short: "Migrate, then load stores, warehouses, products and staff users",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, args)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}
			raw := data.SeedJSON
			if file != "" {
				if raw, err = os.ReadFile(file); err != nil {
					fmt.Fprintf(errOut, "Error: %v\n", err)
					return err
				}
			}

			db, err := database.Connect(cfg)
			if err != nil {
				fmt.Fprintf(errOut, "Error - Unable to Connect to Database: %v\n", err)
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}
			res, err := database.Seed(db, raw)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}
			fmt.Fprintf(out, "Seeded %d users, %d stores, %d warehouses, %d products.\n",
				res.Users, res.Stores, res.Warehouses, res.Products)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "seed from this JSON file instead of the built-in data")
	return cmd
}
