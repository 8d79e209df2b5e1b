package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/modelrepos.git/pkg/validator"
	"github.com/spf13/viper"
)

const (
	ModeRecipes = "recipes"
	ModeSocial  = "social"
)

type Config struct {
	App AppConfig `mapstructure:"app" validate:"required"`
	DB  DBConfig  `mapstructure:"db" validate:"required"`
	Env string    `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
	Mode    string        `mapstructure:"mode" validate:"oneof=recipes social"`
}

type DBConfig struct {
	Driver  string `mapstructure:"driver" validate:"oneof=postgres pgx"`
	Conn    DBConn `mapstructure:"conn"`
	Cfg     DBCfg  `mapstructure:"cfg"`
	Migrate bool   `mapstructure:"migrate"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = map[string]string{
	"app.mode":         "APP_MODE",
	"db.driver":        "DB_DRIVER",
	"db.conn.host":     "DB_HOST",
	"db.conn.port":     "DB_PORT",
	"db.conn.user":     "DB_USER",
	"db.conn.password": "DB_PASSWORD",
	"db.conn.name":     "DB_NAME",
	"db.conn.ssl":      "DB_SSL",
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}

	v.AddConfigPath(configPath)
	v.SetConfigName(configName)

	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("app.mode", ModeRecipes)
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.cfg.max_open_conns", 1)
	v.SetDefault("db.conn.ssl", "disable")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
