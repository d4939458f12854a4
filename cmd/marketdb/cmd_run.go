package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/localnerve/marketdb/internal/config"
	"github.com/localnerve/marketdb/internal/database"
	"github.com/localnerve/marketdb/internal/handlers"
	"github.com/localnerve/marketdb/internal/utils"
	"go.uber.org/zap"
)

// runClient connects and runs the menus until the user exits, the input
// ends or the process is interrupted.
func runClient(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprint(out, "Connecting to database...")
	db, err := database.Connect(cfg)
	if err != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(errOut, "Error - Unable to Connect to Database: %v\n", err)
		zap.L().Error("connect failed", zap.String("db_type", cfg.DBType), zap.Error(err))
		return err
	}
	fmt.Fprintln(out, "Done")

	shell := handlers.NewShell(db, in, utils.NewPrinter(out, errOut, cfg.OutputFormat))
	done := make(chan error, 1)
	go func() {
		done <- shell.Run(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		// The shell may be blocked reading a line and is left running. Its
		// next query fails against the closed pool and it may still write to
		// out after the banner; the process exits right after this returns.
		fmt.Fprintln(out)
		zap.L().Info("interrupted")
	}

	fmt.Fprint(out, "Disconnecting from database...")
	if cerr := database.Close(db); cerr != nil {
		zap.L().Warn("close failed", zap.Error(cerr))
	}
	fmt.Fprintln(out, "Done\n\nBye !")

	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
