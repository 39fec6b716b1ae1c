package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Storage StorageConfig `mapstructure:"storage"`
	Ticket  TicketConfig  `mapstructure:"ticket"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development, production
	Debug       bool   `mapstructure:"debug"`
}

// StorageConfig locates the flat-file record stores
type StorageConfig struct {
	// Dir is the directory holding one JSON file per entity kind.
	Dir string `mapstructure:"dir"`
}

// TicketConfig holds booking settings
type TicketConfig struct {
	// UnitPrice is the fixed price every ticket is sold at.
	UnitPrice string `mapstructure:"unit_price"`
}

// AuthConfig holds credential-hashing settings
type AuthConfig struct {
	// BcryptCost of zero selects the bcrypt default.
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Load reads configuration from an optional ingressos.yaml in the
// working directory, overridden by INGRESSOS_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("ingressos")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("INGRESSOS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("bind config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "venda-de-ingressos")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)

	v.SetDefault("storage.dir", "data")

	v.SetDefault("ticket.unit_price", "100")

	v.SetDefault("auth.bcrypt_cost", 0)
}
