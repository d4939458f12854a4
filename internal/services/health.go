package services

import (
	"fmt"

	"github.com/localnerve/marketdb/internal/config"
	"github.com/localnerve/marketdb/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Server       string            `json:"server,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy is true when every check passed
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck reports whether the database server is reachable and the pool can ping it
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// File databases have no server to dial
	if cfg.DBType != "sqlite" && cfg.DBType != "sqlite-go" {
		if err := utils.PingDatabase(cfg.DBHost, cfg.DBPort); err != nil {
			result.Status = "unhealthy"
			result.Server = "unreachable"
			result.Details["server_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database server unreachable: %v", err)
			zap.L().Warn("health check failed - server ping", zap.Error(err))
		} else {
			result.Server = "ok"
			result.Details["server_address"] = cfg.DBHost + ":" + cfg.DBPort
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = appendMessage(result.ErrorMessage, fmt.Sprintf("Database connection error: %v", err))
		zap.L().Warn("health check failed - database connection", zap.Error(err))
		return result
	}
	if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = appendMessage(result.ErrorMessage, fmt.Sprintf("Database ping failed: %v", err))
		zap.L().Warn("health check failed - database ping", zap.Error(err))
		return result
	}
	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase

	if result.Healthy() {
		zap.L().Info("health check passed")
	}
	return result
}

func appendMessage(existing, msg string) string {
	if existing == "" {
		return msg
	}
	return existing + "; " + msg
}
