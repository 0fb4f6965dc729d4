package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/clubrail/content-service/internal/logger"
)

// Config aggregates every tunable the service reads at startup.
type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Site     SiteConfig          `mapstructure:"site"`
}

// ServerConfig holds HTTP listener tuning.
type ServerConfig struct {
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // seconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // seconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // seconds
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

// PostgresConfig holds connection and pool tuning for pgx.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname" validate:"required"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`   // seconds
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`  // seconds
	HealthCheckPeriod int    `mapstructure:"health_check_period"` // seconds
}

// SiteConfig carries site-wide presentation settings. Pagination knobs live
// here and are passed explicitly into services rather than read from ambient
// globals, so mistakes surface at startup instead of deep in a request.
type SiteConfig struct {
	PageSize        int `mapstructure:"page_size" validate:"min=1,max=12"`
	MaxVisiblePages int `mapstructure:"max_visible_pages" validate:"min=7"`
	BoundaryCount   int `mapstructure:"boundary_count" validate:"min=1"`
}

func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Postgres.Port == 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.SSLMode == "" {
		c.Postgres.SSLMode = "disable"
	}
	if c.Postgres.MaxConns == 0 {
		c.Postgres.MaxConns = 10
	}
	if c.Postgres.MinConns == 0 {
		c.Postgres.MinConns = 2
	}
	if c.Postgres.MaxConnLifetime == 0 {
		c.Postgres.MaxConnLifetime = 1800
	}
	if c.Postgres.MaxConnIdleTime == 0 {
		c.Postgres.MaxConnIdleTime = 300
	}
	if c.Postgres.HealthCheckPeriod == 0 {
		c.Postgres.HealthCheckPeriod = 60
	}
	if c.Site.PageSize == 0 {
		c.Site.PageSize = 6
	}
	if c.Site.MaxVisiblePages == 0 {
		c.Site.MaxVisiblePages = 7
	}
	if c.Site.BoundaryCount == 0 {
		c.Site.BoundaryCount = 3
	}
}

// Validate applies defaults and checks invariants that would otherwise fail
// deep inside a request, pagination window constraints included.
func (c *Config) Validate() error {
	c.setDefaults()

	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	if c.Site.MaxVisiblePages < 2*c.Site.BoundaryCount+1 {
		return fmt.Errorf("config validation error: site.max_visible_pages must be >= 2*site.boundary_count+1")
	}
	return nil
}
