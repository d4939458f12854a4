// commands.go
//
// An interactive client for the marketplace relational database
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of marketdb.
// marketdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// marketdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with marketdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"fmt"
	"io"

	"github.com/localnerve/marketdb/internal/config"
	"github.com/localnerve/marketdb/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const usageLine = "Usage: marketdb <dbname> <port> <user>"

// options holds the flags shared by every command
type options struct {
	envFile  string
	dbType   string
	host     string
	password string
	output   string
	logFile  string
}

// loadConfig builds the configuration from the env file, the environment,
// the flags and finally the positional arguments, in increasing precedence.
func (o *options) loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db-type") {
		cfg.DBType = o.dbType
	}
	if flags.Changed("host") {
		cfg.DBHost = o.host
	}
	if flags.Changed("password") {
		cfg.DBPassword = o.password
	}
	if flags.Changed("output") {
		cfg.OutputFormat = o.output
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if len(args) == 3 {
		cfg.ApplyArgs(args[0], args[1], args[2])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := logging.New(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "marketdb <dbname> <port> <user>",
		Short: "Interactive client for the marketplace database",
		Long: `marketdb is a terminal client for a retail marketplace database.
Customers browse nearby stores and place orders; managers and admins
update products, request supplies and view store reports.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				fmt.Fprintln(errOut, usageLine)
				return nil
			}
			cfg, err := opts.loadConfig(cmd, args)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}
			defer zap.L().Sync() //nolint:errcheck
			return runClient(cmd.Context(), cfg, in, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", "", "load environment variables from this .env file first")
	pf.StringVar(&opts.dbType, "db-type", "postgres", "database type: postgres, mysql, mariadb, sqlite, sqlite-go, sqlserver")
	pf.StringVar(&opts.host, "host", "localhost", "database host")
	pf.StringVar(&opts.password, "password", "", "database password")
	pf.StringVar(&opts.output, "output", config.OutputTable, "result format: table or plain")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this rotating file instead of stderr")

	rootCmd.AddCommand(newMigrateCmd(opts, out, errOut), newSeedCmd(opts, out, errOut))
	return rootCmd
}
