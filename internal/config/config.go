package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shindakun/ethicstraining/internal/models"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port            int            `yaml:"port"`
	Host            string         `yaml:"host"`
	Environment     string         `yaml:"environment"` // "development", "production"
	ReadTimeout     time.Duration  `yaml:"read_timeout"`
	WriteTimeout    time.Duration  `yaml:"write_timeout"`
	IdleTimeout     time.Duration  `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration  `yaml:"shutdown_timeout"`
	Security        SecurityConfig `yaml:"security"`
	CORS            CORSConfig     `yaml:"cors"`
}

// SecurityConfig contains security-related settings
type SecurityConfig struct {
	MaxRequestBytes int64                 `yaml:"max_request_bytes"`
	Headers         SecurityHeadersConfig `yaml:"headers"`
}

// SecurityHeadersConfig contains HTTP security header settings
type SecurityHeadersConfig struct {
	XFrameOptions         string `yaml:"x_frame_options"`
	XContentTypeOptions   string `yaml:"x_content_type_options"`
	ReferrerPolicy        string `yaml:"referrer_policy"`
	ContentSecurityPolicy string `yaml:"content_security_policy"`
}

// CORSConfig lists the origins of the admin portal and app dev servers
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AuthConfig holds the single demo identity accepted by the mock login endpoint
type AuthConfig struct {
	Username string         `yaml:"username"`
	Password string         `yaml:"password"`
	MFACode  string         `yaml:"mfa_code"`
	Token    string         `yaml:"token"`
	User     DemoUserConfig `yaml:"user"`
}

// DemoUserConfig is the user record returned on a successful login
type DemoUserConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the demo configuration used when no file is present
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            3001,
			Host:            "0.0.0.0",
			Environment:     "development",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Security: SecurityConfig{
				MaxRequestBytes: 1 << 20,
				Headers: SecurityHeadersConfig{
					XFrameOptions:         "DENY",
					XContentTypeOptions:   "nosniff",
					ReferrerPolicy:        "no-referrer",
					ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
				},
			},
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000", "http://localhost:19006"},
			},
		},
		Auth: AuthConfig{
			Username: "admin",
			Password: "demo123",
			MFACode:  "123456",
			Token:    "demo-jwt-token-epa-ethics-training",
			User: DemoUserConfig{
				ID:    "1",
				Name:  "EPA Administrator",
				Email: "admin@epa.gov",
				Role:  "admin",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from the specified file path on top of Default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the config
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return finish(&cfg)
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist. Any other read or parse error is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	def := Default()
	return finish(&def)
}

func finish(cfg *Config) (*Config, error) {
	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Server.Security.MaxRequestBytes < 0 {
		return fmt.Errorf("server.security.max_request_bytes must not be negative")
	}

	if c.Auth.Username == "" || c.Auth.Password == "" {
		return fmt.Errorf("auth.username and auth.password are required")
	}
	if !models.IsMFACode(c.Auth.MFACode) {
		return fmt.Errorf("auth.mfa_code must be exactly 6 digits")
	}
	if c.Auth.Token == "" {
		return fmt.Errorf("auth.token is required")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}

// GetAddr returns the full server address (host:port)
func (c *Config) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsProduction returns true when running with environment=production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
