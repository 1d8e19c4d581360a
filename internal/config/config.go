package config

import (
	"errors"
	"fmt"
	"math"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	AppPort string `yaml:"app_port" env:"APP_PORT" env-default:"8080"`

	MySQLHost string `yaml:"mysql_host" env:"MYSQL_HOST" env-default:"mysql"`
	MySQLPort string `yaml:"mysql_port" env:"MYSQL_PORT" env-default:"3306"`
	MySQLDB   string `yaml:"mysql_db" env:"MYSQL_DB" env-default:"lostfound"`
	MySQLUser string `yaml:"mysql_user" env:"MYSQL_USER" env-default:"lostfound"`
	// secret: env only
	MySQLPass string `yaml:"-" env:"MYSQL_PASS" env-default:"lostfound"`
	DBLogSQL  bool   `yaml:"db_log_sql" env:"DB_LOG_SQL" env-default:"false"`
	DBMigrate bool   `yaml:"db_migrate" env:"DB_MIGRATE" env-default:"true"`

	// empty disables the idempotency layer and the embedding cache
	RedisAddr    string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"redis:6379"`
	RedisDB      int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
	IdempTTLSecs int    `yaml:"idempotency_ttl_seconds" env:"IDEMPOTENCY_TTL_SECONDS" env-default:"300"`

	JWTSecret string `yaml:"-" env:"JWT_SECRET"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`

	Embedding EmbeddingConfig `yaml:"embedding"`

	MatchThreshold    float64 `yaml:"match_threshold" env:"MATCH_THRESHOLD" env-default:"0.75"`
	NotificationLimit int     `yaml:"notification_recent_limit" env:"NOTIFICATION_RECENT_LIMIT" env-default:"10"`
}

type EmbeddingConfig struct {
	// "hashing" (local, deterministic) or "openai" (any OpenAI-compatible server)
	Backend      string `yaml:"backend" env:"EMBEDDING_BACKEND" env-default:"hashing"`
	BaseURL      string `yaml:"base_url" env:"EMBEDDING_BASE_URL"`
	APIKey       string `yaml:"-" env:"EMBEDDING_API_KEY"`
	Model        string `yaml:"model" env:"EMBEDDING_MODEL" env-default:"all-MiniLM-L6-v2"`
	Dim          int    `yaml:"dim" env:"EMBEDDING_DIM" env-default:"384"`
	TimeoutSecs  int    `yaml:"timeout_seconds" env:"EMBEDDING_TIMEOUT_SECONDS" env-default:"30"`
	CacheTTLSecs int    `yaml:"cache_ttl_seconds" env:"EMBEDDING_CACHE_TTL_SECONDS" env-default:"86400"`
}

// Load reads CONFIG_FILE (yaml) when set, with environment overrides, else the environment only.
func Load() (*Config, error) {
	c := &Config{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cleanenv.ReadConfig(path, c); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return c, nil
	}
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if math.IsNaN(c.MatchThreshold) || c.MatchThreshold < -1 || c.MatchThreshold > 1 {
		return fmt.Errorf("MATCH_THRESHOLD %v outside [-1, 1]", c.MatchThreshold)
	}
	switch c.Embedding.Backend {
	case "hashing":
		if c.Embedding.Dim <= 0 {
			return fmt.Errorf("invalid EMBEDDING_DIM %d", c.Embedding.Dim)
		}
	case "openai":
		if c.Embedding.BaseURL == "" {
			return errors.New("EMBEDDING_BASE_URL is required for the openai backend")
		}
	default:
		return fmt.Errorf("unknown EMBEDDING_BACKEND %q", c.Embedding.Backend)
	}
	return nil
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (e EmbeddingConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSecs) * time.Second
}

func (e EmbeddingConfig) CacheTTL() time.Duration {
	return time.Duration(e.CacheTTLSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// MigrateURL is the golang-migrate form of the same database. The mysql
// driver there query-unescapes user and password, so they are query-escaped.
func (c *Config) MigrateURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s)/%s?multiStatements=true",
		url.QueryEscape(c.MySQLUser), url.QueryEscape(c.MySQLPass), c.mysqlAddr(), c.MySQLDB)
}
