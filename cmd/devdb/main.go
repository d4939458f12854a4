package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/localnerve/marketdb/data"
	"github.com/localnerve/marketdb/internal/config"
	"github.com/localnerve/marketdb/internal/database"
	"github.com/localnerve/marketdb/internal/devdb"
	"github.com/localnerve/marketdb/internal/logging"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var image string
	flag.StringVar(&image, "image", "", "postgres image (default "+devdb.DefaultImage+")")
	var noSeed bool
	flag.BoolVar(&noSeed, "no-seed", false, "create the tables but load no data")
	flag.Parse()

	usage := `
Start a disposable Postgres for marketdb, create the tables and load the
seed data. The connection settings are printed as .env lines; the container
is removed on interrupt.

Usage:

devdb [-h] [-f ENV_FILE_PATH] [-image IMAGE] [-no-seed]

ENV_FILE_PATH: path to a .env file providing DB_DATABASE, DB_USER, DB_PASSWORD

example
  devdb -f ./dev.env > marketdb.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment variables: %v\n", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v\n", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	pg, err := devdb.StartPostgres(ctx, devdb.Options{
		Image:    image,
		Database: cfg.DBDatabase,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
	})
	if err != nil {
		log.Fatalf("Failed to start postgres: %v\n", err)
	}
	defer func() {
		log.Printf("Terminating postgres container...\n")
		if err := pg.Terminate(context.Background()); err != nil {
			log.Printf("Failed to terminate postgres: %v\n", err)
		}
	}()

	if err := prepare(pg.Config(), !noSeed); err != nil {
		log.Printf("Failed to prepare database: %v\n", err)
		return
	}

	fmt.Print(pg.Env())
	log.Printf("Database ready, press Ctrl+C to stop\n")
	<-ctx.Done()
}

// prepare migrates and optionally seeds the fresh database
func prepare(cfg *config.Config, seed bool) error {
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	if !seed {
		return nil
	}
	res, err := database.Seed(db, data.SeedJSON)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d users, %d stores, %d warehouses, %d products\n", res.Users, res.Stores, res.Warehouses, res.Products)
	return nil
}
