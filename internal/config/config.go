package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "OMP"
	DefaultEnvFile = ".env"
	configName     = "config"
	configType     = "toml"
	configDirName  = ".omp"

	KeyAPIURL            = "api.url"
	KeyAPITimeout        = "api.timeout"
	KeyAPIRatePerSecond  = "api.rate_per_second"
	KeyAPIBurst          = "api.burst"
	KeyProgressBackend   = "progress.backend"
	KeyProgressPath      = "progress.path"
	KeyCredentialBackend = "credentials.backend"
	KeyCredentialDir     = "credentials.dir"
	KeyCheckoutListen    = "checkout.listen"
	KeyCheckoutStripeURL = "checkout.stripe_url"
	KeyCheckoutTimeout   = "checkout.timeout"
	KeyFacebookGraphURL  = "facebook.graph_url"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyDisplayTimezone   = "display.timezone"
)

const (
	ProgressBackendTOML   = "toml"
	ProgressBackendSQLite = "sqlite"

	CredentialBackendChain = "chain"
	CredentialBackendFile  = "file"
	CredentialBackendPass  = "pass"
)

var knownKeys = []string{
	KeyAPIURL,
	KeyAPITimeout,
	KeyAPIRatePerSecond,
	KeyAPIBurst,
	KeyProgressBackend,
	KeyProgressPath,
	KeyCredentialBackend,
	KeyCredentialDir,
	KeyCheckoutListen,
	KeyCheckoutStripeURL,
	KeyCheckoutTimeout,
	KeyFacebookGraphURL,
	KeyLogLevel,
	KeyLogFormat,
	KeyDisplayTimezone,
}

// Options locates the inputs of Load. Empty fields fall back to the user's
// home directory and the working directory .env file.
type Options struct {
	ConfigDir  string
	ConfigFile string
	EnvFile    string
}

type Settings struct {
	ConfigDir string

	APIURL        string
	APITimeout    time.Duration
	RatePerSecond float64
	Burst         int

	ProgressBackend string
	ProgressPath    string

	CredentialBackend string
	CredentialDir     string

	CheckoutListen    string
	CheckoutStripeURL string
	CheckoutTimeout   time.Duration

	FacebookGraphURL string

	LogLevel  string
	LogFormat string

	Location *time.Location
}

// Load resolves settings from defaults, the config file, a .env file and
// OMP_ environment variables, in increasing order of precedence.
func Load(opts Options) (*viper.Viper, Settings, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, Settings{}, fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, configDirName)
	}

	cfg := viper.New()
	setDefaults(cfg, configDir)

	if opts.ConfigFile != "" {
		cfg.SetConfigFile(opts.ConfigFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(configDir)
	}
	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := applyEnvFile(cfg, envFile); err != nil {
		return nil, Settings{}, err
	}

	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	settings, err := settingsFrom(cfg, configDir)
	if err != nil {
		return nil, Settings{}, err
	}

	return cfg, settings, nil
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func defaultProgressFile(backend string) string {
	if backend == ProgressBackendSQLite {
		return "progress.db"
	}
	return "progress.toml"
}

func setDefaults(cfg *viper.Viper, configDir string) {
	cfg.SetDefault(KeyAPIURL, "http://localhost:8000/api")
	cfg.SetDefault(KeyAPITimeout, 30*time.Second)
	cfg.SetDefault(KeyAPIRatePerSecond, 0)
	cfg.SetDefault(KeyAPIBurst, 1)
	cfg.SetDefault(KeyProgressBackend, ProgressBackendTOML)
	cfg.SetDefault(KeyProgressPath, "")
	cfg.SetDefault(KeyCredentialBackend, CredentialBackendChain)
	cfg.SetDefault(KeyCredentialDir, filepath.Join(configDir, "credentials"))
	cfg.SetDefault(KeyCheckoutListen, "127.0.0.1:3000")
	cfg.SetDefault(KeyCheckoutStripeURL, "http://localhost:3000/donations/checkout")
	cfg.SetDefault(KeyCheckoutTimeout, 10*time.Minute)
	cfg.SetDefault(KeyFacebookGraphURL, "https://graph.facebook.com/v18.0")
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeyLogFormat, "json")
	cfg.SetDefault(KeyDisplayTimezone, "Local")
}

// applyEnvFile copies OMP_ entries of a dotenv file into cfg without touching
// the process environment. Real environment variables still win.
func applyEnvFile(cfg *viper.Viper, path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	for _, key := range knownKeys {
		name := EnvName(key)
		value, ok := values[name]
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		cfg.Set(key, value)
	}

	return nil
}

func settingsFrom(cfg *viper.Viper, configDir string) (Settings, error) {
	settings := Settings{
		ConfigDir:         configDir,
		APIURL:            strings.TrimSpace(cfg.GetString(KeyAPIURL)),
		APITimeout:        cfg.GetDuration(KeyAPITimeout),
		RatePerSecond:     cfg.GetFloat64(KeyAPIRatePerSecond),
		Burst:             cfg.GetInt(KeyAPIBurst),
		ProgressBackend:   strings.ToLower(strings.TrimSpace(cfg.GetString(KeyProgressBackend))),
		ProgressPath:      strings.TrimSpace(cfg.GetString(KeyProgressPath)),
		CredentialBackend: strings.ToLower(strings.TrimSpace(cfg.GetString(KeyCredentialBackend))),
		CredentialDir:     strings.TrimSpace(cfg.GetString(KeyCredentialDir)),
		CheckoutListen:    strings.TrimSpace(cfg.GetString(KeyCheckoutListen)),
		CheckoutStripeURL: strings.TrimSpace(cfg.GetString(KeyCheckoutStripeURL)),
		CheckoutTimeout:   cfg.GetDuration(KeyCheckoutTimeout),
		FacebookGraphURL:  strings.TrimSpace(cfg.GetString(KeyFacebookGraphURL)),
		LogLevel:          cfg.GetString(KeyLogLevel),
		LogFormat:         cfg.GetString(KeyLogFormat),
	}

	switch settings.ProgressBackend {
	case ProgressBackendTOML, ProgressBackendSQLite:
	default:
		return Settings{}, fmt.Errorf("%s: unsupported backend %q", KeyProgressBackend, settings.ProgressBackend)
	}
	if settings.ProgressPath == "" {
		settings.ProgressPath = filepath.Join(configDir, defaultProgressFile(settings.ProgressBackend))
		cfg.Set(KeyProgressPath, settings.ProgressPath)
	}

	switch settings.CredentialBackend {
	case CredentialBackendChain, CredentialBackendFile, CredentialBackendPass:
	default:
		return Settings{}, fmt.Errorf("%s: unsupported backend %q", KeyCredentialBackend, settings.CredentialBackend)
	}

	if settings.APITimeout <= 0 {
		return Settings{}, fmt.Errorf("%s must be positive", KeyAPITimeout)
	}
	if settings.CheckoutTimeout <= 0 {
		return Settings{}, fmt.Errorf("%s must be positive", KeyCheckoutTimeout)
	}
	if settings.RatePerSecond < 0 {
		return Settings{}, fmt.Errorf("%s must not be negative", KeyAPIRatePerSecond)
	}

	location, err := time.LoadLocation(strings.TrimSpace(cfg.GetString(KeyDisplayTimezone)))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyDisplayTimezone, err)
	}
	settings.Location = location

	return settings, nil
}
