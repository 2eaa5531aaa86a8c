package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ServiceName    = "warehouse-ledger"
	ServiceVersion = "0.1.0"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr       string
		CORSOrigin string `mapstructure:"cors_origin"`
	} `mapstructure:"http"`

	GRPC struct {
		Addr string
	} `mapstructure:"grpc"`

	Store struct {
		Driver string // memory | mysql
	} `mapstructure:"store"`

	MySQL struct {
		DSN             string
		MaxOpenConns    int           `mapstructure:"max_open_conns"`
		MaxIdleConns    int           `mapstructure:"max_idle_conns"`
		ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
		Migrate         bool
	} `mapstructure:"mysql"`

	Redis struct {
		Addr     string
		Password string
		DB       int
		PoolSize int `mapstructure:"pool_size"`
	} `mapstructure:"redis"`

	Audit struct {
		Capacity int
	} `mapstructure:"audit"`

	Ledger struct {
		TxAttempts int `mapstructure:"tx_attempts"`
	} `mapstructure:"ledger"`

	Dashboard struct {
		Threshold float64
	} `mapstructure:"dashboard"`

	Seed struct {
		Enabled bool
	} `mapstructure:"seed"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Otel struct {
		Endpoint   string
		AuthHeader string `mapstructure:"auth_header"`
	} `mapstructure:"otel"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.cors_origin", "http://localhost:5173")
	v.SetDefault("grpc.addr", ":50051")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("mysql.dsn", "root:root@tcp(localhost:3306)/warehouse?parseTime=true")
	v.SetDefault("mysql.max_open_conns", 50)
	v.SetDefault("mysql.max_idle_conns", 25)
	v.SetDefault("mysql.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("mysql.migrate", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 100)
	v.SetDefault("audit.capacity", 50)
	v.SetDefault("ledger.tx_attempts", 3)
	v.SetDefault("dashboard.threshold", 80.0)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.auth_header", "")
}

// Load reads path (optional, YAML) and then APP_* environment variables,
// e.g. APP_HTTP_ADDR or APP_MYSQL_DSN.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
