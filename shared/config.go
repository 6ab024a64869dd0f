package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/tailscale/hujson"
	"log"
	"os"
	"time"
)

const (
	configVarName  = "CONFIG"                // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"               // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets.json in development environment
	dotEnvFileName = ".env"                  // Optional; exported before the env overlay runs
)

const (
	defaultSessionMinutes = 30
	defaultWarningMinutes = 5
	defaultRequestTimeout = 20
	defaultSiteScheme     = "https"
	defaultProfileDays    = 3
)

type Config struct {
	Secrets               Secrets       `json:"-"`
	LogFile               string        `json:"log_file" env:"TOOTS_LOG_FILE,overwrite"`
	LogLevel              string        `json:"log_level" env:"TOOTS_LOG_LEVEL,overwrite"`
	ServicePort           uint          `json:"service_port" env:"TOOTS_SERVICE_PORT,overwrite"`
	Host                  string        `json:"host" env:"TOOTS_HOST,overwrite"`
	SiteScheme            string        `json:"site_scheme" env:"TOOTS_SITE_SCHEME,overwrite"`
	DbFile                string        `json:"db_file" env:"TOOTS_DB_FILE,overwrite"`
	CachePageTemplates    bool          `json:"cache_page_templates"`
	AllowPrivateInstances bool          `json:"allow_private_instances" env:"TOOTS_ALLOW_PRIVATE_INSTANCES,overwrite"`
	RequestTimeoutSec     int           `json:"request_timeout_sec" env:"TOOTS_REQUEST_TIMEOUT_SEC,overwrite"`
	BlockedInstancesFile  string        `json:"blocked_instances_file" env:"TOOTS_BLOCKED_INSTANCES_FILE,overwrite"`
	ProfileDir            string        `json:"profile_dir" env:"TOOTS_PROFILE_DIR,overwrite"`
	ProfileKeepDays       int           `json:"profile_keep_days"`
	Session               SessionConfig `json:"session"`
	Bot                   BotConfig     `json:"bot"`
}

// SessionConfig controls the inactivity guard. Values are minutes.
type SessionConfig struct {
	DurationMinutes int `json:"duration_minutes" env:"TOOTS_SESSION_DURATION_MINUTES,overwrite"`
	WarningMinutes  int `json:"warning_minutes" env:"TOOTS_SESSION_WARNING_MINUTES,overwrite"`
}

type BotConfig struct {
	InstanceUrl string `json:"instance_url" env:"BOT_INSTANCE_URL,overwrite"`
}

type Secrets struct {
	MetricsAuth    string `json:"metrics_auth" env:"TOOTS_METRICS_AUTH,overwrite"`
	BotAccessToken string `json:"bot_access_token" env:"BOT_ACCESS_TOKEN,overwrite"`
}

func (cfg *Config) RequestTimeout() time.Duration {
	return time.Duration(cfg.RequestTimeoutSec) * time.Second
}

func (sc *SessionConfig) Duration() time.Duration {
	return time.Duration(sc.DurationMinutes) * time.Minute
}

func (sc *SessionConfig) WarningLead() time.Duration {
	return time.Duration(sc.WarningMinutes) * time.Minute
}

func (bc *BotConfig) Enabled(secrets *Secrets) bool {
	return bc.InstanceUrl != "" && secrets.BotAccessToken != ""
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Missing .env is normal outside development
	_ = godotenv.Load(dotEnvFileName)

	config, err := ReadConfig(cfgPath, secretsPath)
	if err != nil {
		log.Fatal(err)
	}
	return config
}

// ReadConfig parses the config and secrets files, then applies environment overrides.
func ReadConfig(cfgPath, secretsPath string) (*Config, error) {
	var config Config
	if err := deserializeFile(cfgPath, &config); err != nil {
		return nil, err
	}
	if err := deserializeFile(secretsPath, &config.Secrets); err != nil {
		return nil, err
	}
	if err := envconfig.Process(context.Background(), &config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	config.applyDefaults()
	if config.Session.WarningMinutes >= config.Session.DurationMinutes {
		return nil, fmt.Errorf("session warning (%d min) must be shorter than session duration (%d min)",
			config.Session.WarningMinutes, config.Session.DurationMinutes)
	}
	return &config, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Session.DurationMinutes == 0 {
		cfg.Session.DurationMinutes = defaultSessionMinutes
	}
	if cfg.Session.WarningMinutes == 0 {
		cfg.Session.WarningMinutes = defaultWarningMinutes
	}
	if cfg.SiteScheme == "" {
		cfg.SiteScheme = defaultSiteScheme
	}
	if cfg.RequestTimeoutSec == 0 {
		cfg.RequestTimeoutSec = defaultRequestTimeout
	}
	if cfg.ProfileKeepDays == 0 {
		cfg.ProfileKeepDays = defaultProfileDays
	}
}

func deserializeFile[T any](fileName string, obj *T) error {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		return err
	}
	// JSONC => JSON
	cfgJson, err = StandardizeJSON(cfgJson)
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}

// StandardizeJSON turns JSONC (comments, trailing commas) into plain JSON.
func StandardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
