// Package devdb starts a disposable Postgres server in a container.
package devdb

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/localnerve/marketdb/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// DefaultImage is used when no image is given
const DefaultImage = "postgres:16-alpine"

// Options configure the container
type Options struct {
	Image    string
	Database string
	User     string
	Password string
}

// Postgres is a running database container
type Postgres struct {
	Container testcontainers.Container
	Host      string
	Port      string
	opts      Options
}

// StartPostgres starts a container and waits until it accepts connections.
// Empty options get defaults; the password defaults to a random one.
func StartPostgres(ctx context.Context, opts Options) (*Postgres, error) {
	if opts.Image == "" {
		opts.Image = DefaultImage
	}
	if opts.Database == "" {
		opts.Database = "marketdb"
	}
	if opts.User == "" {
		opts.User = "marketdb"
	}
	if opts.Password == "" {
		opts.Password = uuid.NewString()
	}

	tcpPort, err := nat.NewPort("tcp", "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.Image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"POSTGRES_DB":       opts.Database,
				"POSTGRES_USER":     opts.User,
				"POSTGRES_PASSWORD": opts.Password,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(tcpPort),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		if container != nil {
			_ = container.Terminate(ctx)
		}
		return nil, fmt.Errorf("failed to start postgres: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	zap.L().Info("postgres container started",
		zap.String("image", opts.Image),
		zap.String("host", host),
		zap.String("port", mapped.Port()))
	return &Postgres{Container: container, Host: host, Port: mapped.Port(), opts: opts}, nil
}

// Config returns a configuration that connects to the container
func (p *Postgres) Config() *config.Config {
	return &config.Config{
		DBType:            "postgres",
		DBHost:            p.Host,
		DBPort:            p.Port,
		DBDatabase:        p.opts.Database,
		DBUser:            p.opts.User,
		DBPassword:        p.opts.Password,
		DBConnectionLimit: 5,
		DBLogLevel:        "silent",
		OutputFormat:      config.OutputTable,
	}
}

// Env renders the connection settings as .env lines
func (p *Postgres) Env() string {
	return fmt.Sprintf("DB_TYPE=postgres\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		p.Host, p.Port, p.opts.Database, p.opts.User, p.opts.Password)
}

// Terminate stops and removes the container
func (p *Postgres) Terminate(ctx context.Context) error {
	if p == nil || p.Container == nil {
		return nil
	}
	return p.Container.Terminate(ctx)
}
