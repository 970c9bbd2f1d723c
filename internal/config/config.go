package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"engfolio.dev/internal/catalog"
	"engfolio.dev/internal/models"
)

const (
	Version   = "1.0.0"
	EnvPrefix = "PORTFOLIO_"
)

// Config holds all application configuration and the content snapshot the
// site serves
type Config struct {
	Server  ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
	Site    SiteConfig    `yaml:"site" envPrefix:"SITE_"`
	Contact ContactConfig `yaml:"contact" envPrefix:"CONTACT_"`
	Data    DataConfig    `yaml:"data" envPrefix:"DATA_"`
	MCP     MCPConfig     `yaml:"mcp" envPrefix:"MCP_"`

	Catalog *models.Catalog        `yaml:"-"`
	Skills  *models.SkillReference `yaml:"-"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`   // debug | info | warn | error
	Format string `yaml:"format" env:"FORMAT"` // text | json
}

// SiteConfig holds the copy shown in page chrome
type SiteConfig struct {
	Title    string `yaml:"title" env:"TITLE"`
	Owner    string `yaml:"owner" env:"OWNER"`
	Tagline  string `yaml:"tagline" env:"TAGLINE"`
	GitHub   string `yaml:"github" env:"GITHUB"`
	LinkedIn string `yaml:"linkedin" env:"LINKEDIN"`
}

// ContactConfig holds the form relay settings
type ContactConfig struct {
	Endpoint  string        `yaml:"endpoint" env:"ENDPOINT"`
	AccessKey string        `yaml:"access_key" env:"ACCESS_KEY"`
	FromName  string        `yaml:"from_name" env:"FROM_NAME"`
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// DataConfig points at files that replace the embedded datasets
type DataConfig struct {
	CatalogPath string `yaml:"catalog_path" env:"CATALOG_PATH"`
	SkillsPath  string `yaml:"skills_path" env:"SKILLS_PATH"`
}

// MCPConfig holds the MCP server identity
type MCPConfig struct {
	Name string `yaml:"name" env:"NAME"`
}

// Defaults returns the configuration used when nothing is overridden
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Site: SiteConfig{
			Title:   "Engineering Portfolio",
			Owner:   "Engineering Portfolio",
			Tagline: "Mechanical, electrical and software projects built solo and with teams.",
		},
		Contact: ContactConfig{
			Endpoint: "https://api.web3forms.com/submit",
			FromName: "Engineering Portfolio Contact Form",
			Timeout:  10 * time.Second,
		},
		MCP: MCPConfig{
			Name: "engfolio",
		},
	}
}

// Load reads settings from defaults, the optional YAML file at path, and
// PORTFOLIO_* environment variables, in that order, then loads the content
// snapshot.
func Load(path string) (*Config, error) {
	cfg, err := LoadSettings(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadContent(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadSettings is Load without the content snapshot
func LoadSettings(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadContent loads the project catalog and skill reference, preferring
// configured files over the embedded datasets
func (c *Config) LoadContent() error {
	var err error
	if c.Data.CatalogPath != "" {
		c.Catalog, err = catalog.LoadFile(c.Data.CatalogPath)
	} else {
		c.Catalog, err = catalog.Default()
	}
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if c.Data.SkillsPath != "" {
		c.Skills, err = catalog.LoadSkillsFile(c.Data.SkillsPath)
	} else {
		c.Skills, err = catalog.DefaultSkills()
	}
	if err != nil {
		return fmt.Errorf("load skills: %w", err)
	}
	return nil
}

// Validate checks settings that would otherwise fail at runtime
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Server.Addr) == "" {
		problems = append(problems, "server.addr is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not one of text, json", c.Log.Format))
	}
	if c.Contact.Timeout <= 0 {
		problems = append(problems, "contact.timeout must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
