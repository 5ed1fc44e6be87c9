package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	DBMaxConns        int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns        int32    `mapstructure:"DB_MIN_CONNS"`
	SigningSecret     string   `mapstructure:"AUTH_SIGNING_SECRET"`
	TokenTTLMinutes   int      `mapstructure:"TOKEN_TTL_MINUTES"`
	UserStoreBackend  string   `mapstructure:"USER_STORE"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS      float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int      `mapstructure:"RATE_LIMIT_BURST"`
	NominatimBaseURL  string   `mapstructure:"NOMINATIM_BASE_URL"`
	SatelliteBaseURL  string   `mapstructure:"SATELLITE_BASE_URL"`
	SatelliteUser     string   `mapstructure:"SATELLITE_USER"`
	SatellitePassword string   `mapstructure:"SATELLITE_PASSWORD"`
	TLSEnabled        bool     `mapstructure:"TLS_ENABLED"`
	TLSCertFile       string   `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile        string   `mapstructure:"TLS_KEY_FILE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("TOKEN_TTL_MINUTES", 30)
	v.SetDefault("USER_STORE", "memory")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("SATELLITE_BASE_URL", "https://scihub.copernicus.eu/dhus")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("AUTH_SIGNING_SECRET")
	v.BindEnv("TOKEN_TTL_MINUTES")
	v.BindEnv("USER_STORE")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("NOMINATIM_BASE_URL")
	v.BindEnv("SATELLITE_BASE_URL")
	v.BindEnv("SATELLITE_USER")
	v.BindEnv("SATELLITE_PASSWORD")
	v.BindEnv("TLS_ENABLED")
	v.BindEnv("TLS_CERT_FILE")
	v.BindEnv("TLS_KEY_FILE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.IsDev() && cfg.SigningSecret == "" {
		log.Println("WARNING: ============================================================")
		log.Println("WARNING: Server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: AUTH_SIGNING_SECRET is unset; a random per-process secret")
		log.Println("WARNING: will be generated. Tokens will not survive a restart.")
		log.Println("WARNING: Set AUTH_SIGNING_SECRET before using this in production.")
		log.Println("WARNING: ============================================================")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TokenTTL returns the configured credential lifetime.
func (c *Config) TokenTTL() int {
	return c.TokenTTLMinutes
}

// Validate checks that the configuration is safe to run. Outside development
// a signing secret must be provided and must be long enough that HS256 tokens
// cannot be brute-forced trivially.
func (c *Config) Validate() error {
	if !c.IsDev() {
		if c.SigningSecret == "" {
			return fmt.Errorf("AUTH_SIGNING_SECRET is required when ENV=%q. "+
				"Refusing to start without a token signing secret", c.Env)
		}
		if len(c.SigningSecret) < 32 {
			return fmt.Errorf("AUTH_SIGNING_SECRET must be at least 32 bytes, got %d", len(c.SigningSecret))
		}
	}

	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("TOKEN_TTL_MINUTES must be positive, got %d", c.TokenTTLMinutes)
	}

	if c.UserStoreBackend != "memory" && c.UserStoreBackend != "postgres" {
		return fmt.Errorf("USER_STORE must be \"memory\" or \"postgres\", got %q", c.UserStoreBackend)
	}

	// TLS validation: when TLS is enabled, cert and key files must be specified.
	if c.TLSEnabled {
		if c.TLSCertFile == "" {
			return fmt.Errorf("TLS_CERT_FILE is required when TLS_ENABLED is true")
		}
		if c.TLSKeyFile == "" {
			return fmt.Errorf("TLS_KEY_FILE is required when TLS_ENABLED is true")
		}
	}

	return nil
}
