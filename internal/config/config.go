package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// envPrefix is prepended to every environment variable name
const envPrefix = "RANDSTR_"

// Config holds settings shared by the CLI and the server
type Config struct {
	// ConfigFile is an optional YAML, TOML or JSON file merged below flags and env
	ConfigFile string

	StorageType string
	RedisURL    string
	RedisRunTTL time.Duration

	// JournalMaxRuns caps how many runs either storage backend keeps
	JournalMaxRuns int

	LogLevel slog.Level

	ServerHost string
	ServerPort int
}

// DefaultConfig returns the defaults used when nothing else is configured
func DefaultConfig() Config {
	return Config{
		StorageType:    StorageTypeMemory,
		RedisURL:       "redis://localhost:6379",
		RedisRunTTL:    7 * 24 * time.Hour,
		JournalMaxRuns: 1000,
		LogLevel:       slog.LevelInfo,
		ServerHost:     "",
		ServerPort:     8080,
	}
}

// Key names one configuration value. It maps to a dotted viper path, a
// dashed flag name and a RANDSTR_ environment variable.
type Key []string

// EnvName returns the environment variable for the key, e.g. RANDSTR_REDIS_URL
func (k Key) EnvName() string {
	return envPrefix + strings.ReplaceAll(strings.ToUpper(k.FlagName()), "-", "_")
}

// AccessPath returns the viper path for the key
func (k Key) AccessPath() string {
	return strings.ReplaceAll(strings.Join(k, "."), "-", "_")
}

// FlagName returns the command line flag for the key
func (k Key) FlagName() string {
	return strings.Join(k, "-")
}

// Known configuration keys
var (
	KeyConfigFile     = Key{"config-file"}
	KeyStorageType    = Key{"storage", "type"}
	KeyRedisURL       = Key{"redis", "url"}
	KeyRedisRunTTL    = Key{"redis", "run-ttl"}
	KeyJournalMaxRuns = Key{"journal", "max-runs"}
	KeyLogLevel       = Key{"log", "level"}
	KeyServerHost     = Key{"server", "host"}
	KeyServerPort     = Key{"server", "port"}
)

// Loader resolves a Config from defaults, an optional config file,
// environment variables and bound flags, in increasing priority
type Loader struct {
	v        *viper.Viper
	defaults Config
}

// NewLoader creates a Loader seeded with defaults, with every key bound to its env var
func NewLoader(defaults Config) *Loader {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	l := &Loader{v: v, defaults: defaults}
	for _, s := range l.settings() {
		v.SetDefault(s.key.AccessPath(), s.value)
		_ = v.BindEnv(s.key.AccessPath(), s.key.EnvName())
	}
	return l
}

type setting struct {
	key   Key
	value any
}

func (l *Loader) settings() []setting {
	return []setting{
		{KeyConfigFile, l.defaults.ConfigFile},
		{KeyStorageType, l.defaults.StorageType},
		{KeyRedisURL, l.defaults.RedisURL},
		{KeyRedisRunTTL, l.defaults.RedisRunTTL},
		{KeyJournalMaxRuns, l.defaults.JournalMaxRuns},
		{KeyLogLevel, strings.ToLower(l.defaults.LogLevel.String())},
		{KeyServerHost, l.defaults.ServerHost},
		{KeyServerPort, l.defaults.ServerPort},
	}
}

func (l *Loader) defaultFor(key Key) any {
	for _, s := range l.settings() {
		if s.key.AccessPath() == key.AccessPath() {
			return s.value
		}
	}
	return ""
}

// RegisterFlags adds a flag for each key to flags and binds it
func (l *Loader) RegisterFlags(flags *pflag.FlagSet, keys ...Key) {
	for _, key := range keys {
		name := key.FlagName()
		usage := fmt.Sprintf("%s (env: %s)", usageFor(key), key.EnvName())

		switch value := l.defaultFor(key).(type) {
		case int:
			flags.Int(name, value, usage)
		case time.Duration:
			flags.Duration(name, value, usage)
		default:
			flags.String(name, fmt.Sprint(value), usage)
		}
		_ = l.v.BindPFlag(key.AccessPath(), flags.Lookup(name))
	}
}

func usageFor(key Key) string {
	switch key.AccessPath() {
	case KeyConfigFile.AccessPath():
		return "configuration file (yaml, toml or json)"
	case KeyStorageType.AccessPath():
		return "run journal storage: memory or redis"
	case KeyRedisURL.AccessPath():
		return "Redis URL for the run journal"
	case KeyRedisRunTTL.AccessPath():
		return "how long journalled runs are kept in Redis"
	case KeyJournalMaxRuns.AccessPath():
		return "maximum number of runs kept in the journal; older runs are evicted"
	case KeyLogLevel.AccessPath():
		return "log level: debug, info, warn or error"
	case KeyServerHost.AccessPath():
		return "HTTP listen host"
	case KeyServerPort.AccessPath():
		return "HTTP listen port"
	default:
		return key.FlagName()
	}
}

// Load resolves and validates the configuration
func (l *Loader) Load() (*Config, error) {
	if path := l.v.GetString(KeyConfigFile.AccessPath()); path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		ConfigFile:     l.v.GetString(KeyConfigFile.AccessPath()),
		StorageType:    strings.ToLower(l.v.GetString(KeyStorageType.AccessPath())),
		RedisURL:       l.v.GetString(KeyRedisURL.AccessPath()),
		RedisRunTTL:    l.v.GetDuration(KeyRedisRunTTL.AccessPath()),
		JournalMaxRuns: l.v.GetInt(KeyJournalMaxRuns.AccessPath()),
		ServerHost:     l.v.GetString(KeyServerHost.AccessPath()),
		ServerPort:     l.v.GetInt(KeyServerPort.AccessPath()),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(l.v.GetString(KeyLogLevel.AccessPath()))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	switch cfg.StorageType {
	case StorageTypeMemory, StorageTypeRedis:
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be %q or %q",
			cfg.StorageType, StorageTypeMemory, StorageTypeRedis)
	}

	if cfg.JournalMaxRuns < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", KeyJournalMaxRuns.EnvName(), cfg.JournalMaxRuns)
	}

	if cfg.StorageType == StorageTypeRedis && cfg.RedisURL == "" {
		return nil, fmt.Errorf("%s is required when storage type is redis", KeyRedisURL.EnvName())
	}

	return cfg, nil
}
