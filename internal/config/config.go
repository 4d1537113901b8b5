package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/Behyna/sms-services/smsbroadcast/pkg/mq"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/mysql"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API          API                 `mapstructure:"api"`
	Database     mysql.Config        `mapstructure:"database"`
	RabbitMQ     RabbitMQ            `mapstructure:"rabbitmq"`
	SMSBroadcast smsbroadcast.Config `mapstructure:"smsbroadcast"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type RabbitMQ struct {
	URL         string `mapstructure:"url"`
	EventsQueue string `mapstructure:"events_queue"`
}

func (r RabbitMQ) Connection() mq.Config {
	return mq.Config{URL: r.URL}
}

// Load reads ./config/config.yml. A .env file in the working directory, when
// present, is loaded into the environment first so it can override the file.
func Load() (cfg *Config, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return LoadFrom("./config")
}

// LoadFrom reads config.yml from path. Any key can be overridden from the
// environment, e.g. SMSBROADCAST_PASSWORD for smsbroadcast.password.
func LoadFrom(path string) (cfg *Config, err error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.port", ":8080")
	v.SetDefault("rabbitmq.events_queue", "smsbroadcast.events")
	v.SetDefault("smsbroadcast.url", smsbroadcast.DefaultURL)
	v.SetDefault("smsbroadcast.timeout", 10*time.Second)

	err = v.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
