package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"goflare.io/marina/driver"
	"goflare.io/marina/models/enum"
	"goflare.io/marina/pricing"
	"goflare.io/marina/store"
)

const (
	ServerStartPort = ":8080"
)

type Config struct {
	Postgres PostgresConfig
	Redis    RedisConfig
	Extras   map[string]ExtraConfig `mapstructure:"extras"`
}

type PostgresConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

type ExtraConfig struct {
	Mode   string  `mapstructure:"mode"`
	Amount float64 `mapstructure:"amount"`
}

func ProvideApplicationConfig() (*Config, error) {

	viper.SetConfigFile("./config.yaml")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ProvideStore connects to Postgres. A connection failure is not fatal:
// the service boots with an unavailable store and every data operation
// reports it, matching the diagnostic endpoint's "not connected" state.
func ProvideStore(appConfig *Config, logger *zap.Logger) store.Store {

	conn, err := driver.ConnectSQL(appConfig.Postgres.URL)
	if err != nil {
		logger.Warn("document store unreachable, starting without persistence", zap.Error(err))
		return store.Unavailable()
	}

	st, err := store.NewPostgres(conn, logger)
	if err != nil {
		logger.Warn("failed to prepare document store, starting without persistence", zap.Error(err))
		return store.Unavailable()
	}

	return st
}

// ProvideBoatCache connects to redis. The cache is optional; a nil client
// disables it.
func ProvideBoatCache(appConfig *Config, logger *zap.Logger) *redis.Client {

	client, err := driver.ConnectRedis(appConfig.Redis.Addr, appConfig.Redis.Password, 0)
	if err != nil {
		logger.Warn("redis unreachable, boat cache disabled", zap.Error(err))
		return nil
	}

	return client
}

// ProvideExtrasCatalog builds the extras catalog from config, falling
// back to the stock catalog when none is configured.
func ProvideExtrasCatalog(appConfig *Config) pricing.Catalog {

	if len(appConfig.Extras) == 0 {
		return pricing.DefaultCatalog()
	}

	catalog := make(pricing.Catalog, len(appConfig.Extras))
	for key, extra := range appConfig.Extras {
		catalog[key] = pricing.Extra{
			Mode:   enum.ExtraPricingMode(extra.Mode),
			Amount: extra.Amount,
		}
	}

	return catalog
}

func NewLogger() *zap.Logger {

	logger, _ := zap.NewProduction()
	return logger
}
