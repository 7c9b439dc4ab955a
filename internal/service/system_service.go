package service

import (
	"database/sql"

	"github.com/gayaldassanayake/portfolio-manager/internal/database"
	"github.com/gayaldassanayake/portfolio-manager/internal/version"
)

// SystemService answers health and version queries.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService with the provided database connection.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// CheckHealth pings the database.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the build version.
func (s *SystemService) CheckVersion() string {
	return version.Version
}
