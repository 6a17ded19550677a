package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/logger"
	"github.com/rossipedia/Forgery/schema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config the settings of the forgery command, read from flags, FORGERY_*
// environment variables and forgery.yaml, in that order of precedence
type Config struct {
	DSN              string        `mapstructure:"dsn"`
	Logger           string        `mapstructure:"logger"`
	LogLevel         string        `mapstructure:"log_level"`
	SlowThreshold    time.Duration `mapstructure:"slow_threshold"`
	TablePrefix      string        `mapstructure:"table_prefix"`
	EnumSaveStrategy string        `mapstructure:"enum_save_strategy"`
	NoColor          bool          `mapstructure:"no_color"`
}

// LoadConfig reads the configuration into v; file overrides the ./forgery.yaml lookup
func LoadConfig(v *viper.Viper, file string) (*Config, error) {
	v.SetDefault("logger", "std")
	v.SetDefault("log_level", "warn")
	v.SetDefault("slow_threshold", 200*time.Millisecond)
	v.SetDefault("enum_save_strategy", "numeric")

	v.SetEnvPrefix("FORGERY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("forgery")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// NewMapper a mapper configured by c, logging to out
func (c *Config) NewMapper(out io.Writer) (*forgery.Mapper, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	strategy, err := schema.ParseEnumSaveStrategy(c.EnumSaveStrategy)
	if err != nil {
		return nil, err
	}

	l, err := c.newLogger(out, logger.Config{
		SlowThreshold: c.SlowThreshold,
		Colorful:      !c.NoColor,
		LogLevel:      level,
	})
	if err != nil {
		return nil, err
	}

	return forgery.New(
		forgery.WithTablePrefix(c.TablePrefix),
		forgery.WithEnumSaveStrategy(strategy),
		forgery.WithLogger(l),
	), nil
}

func (c *Config) newLogger(out io.Writer, config logger.Config) (logger.Interface, error) {
	switch strings.ToLower(c.Logger) {
	case "", "std":
		return logger.New(log.New(out, "\r\n", log.LstdFlags), config), nil
	case "zap":
		return logger.NewZapLoggerWithConfig(config)
	case "zerolog":
		return logger.NewZerologConsoleLogger(out, config), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(out)
		l.SetLevel(logrus.TraceLevel)
		l.SetFormatter(&logrus.TextFormatter{DisableColors: !config.Colorful})
		return logger.NewLogrusLogger(l, config), nil
	}
	return nil, fmt.Errorf("unknown logger %q, want std, zap, zerolog or logrus", c.Logger)
}
