package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all daemon configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Node     NodeConfig     `mapstructure:"node"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	KeyStore KeyStoreConfig `mapstructure:"keystore"`
	Bitcoin  BitcoinConfig  `mapstructure:"bitcoin"`
	Unlock   UnlockConfig   `mapstructure:"unlock"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// NodeConfig points at the wallet node RPC bridge.
type NodeConfig struct {
	BridgeURL string        `mapstructure:"bridge_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// BackendConfig selects and configures the remote ledger backend.
type BackendConfig struct {
	Mode         string        `mapstructure:"mode"` // http or postgres
	BaseURL      string        `mapstructure:"base_url"`
	AuthSecret   string        `mapstructure:"auth_secret"` // HS256 session token key
	UserID       string        `mapstructure:"user_id"`     // uid claim for users/{uid} documents
	TokenExpiry  time.Duration `mapstructure:"token_expiry"`
	EmulatorHost string        `mapstructure:"emulator_host"` // non-empty = talk to a local emulator
	Timeout      time.Duration `mapstructure:"timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	RateTTL  time.Duration `mapstructure:"rate_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type KeyStoreConfig struct {
	Path       string `mapstructure:"path"`
	Passphrase string `mapstructure:"passphrase"`
}

type BitcoinConfig struct {
	Network string `mapstructure:"network"` // testnet or mainnet, nothing else
}

// UnlockConfig carries wallet-unlock policy knobs.
type UnlockConfig struct {
	// ClosedMeansUnlocked treats a "closed" unlocker error during the
	// existence probe as an already-unlocked wallet. Unverified node
	// behavior, hence configurable.
	ClosedMeansUnlocked bool `mapstructure:"closed_means_unlocked"`
}

type PaymentConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LWD_ (Lightning Wallet Daemon).
// Nested keys use underscore: LWD_NODE_BRIDGE_URL, LWD_BITCOIN_NETWORK, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("node.bridge_url", "http://localhost:10009")
	v.SetDefault("node.timeout", "30s")
	v.SetDefault("backend.mode", "http")
	v.SetDefault("backend.base_url", "")
	v.SetDefault("backend.auth_secret", "")
	v.SetDefault("backend.user_id", "")
	v.SetDefault("backend.token_expiry", "1h")
	v.SetDefault("backend.emulator_host", "")
	v.SetDefault("backend.timeout", "15s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_backend")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.rate_ttl", "1m")
	v.SetDefault("keystore.path", "secrets.enc")
	v.SetDefault("keystore.passphrase", "")
	v.SetDefault("bitcoin.network", "testnet")
	v.SetDefault("unlock.closed_means_unlocked", true)
	v.SetDefault("payment.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LWD_NODE_BRIDGE_URL -> node.bridge_url
	v.SetEnvPrefix("LWD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
