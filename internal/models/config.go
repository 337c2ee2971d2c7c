package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type KafkaConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	BrokerList string `mapstructure:"broker_list"`
	Topic      string `mapstructure:"topic"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // "console" or "json"
	Path   string `mapstructure:"path"`
	Folder string `mapstructure:"folder"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

type Config struct {
	Seed            int64              `mapstructure:"seed"`
	DataFile        string             `mapstructure:"data_file"`
	RemoteRepo      string             `mapstructure:"remote_repo"`
	DefaultQuantity int                `mapstructure:"default_quantity"`
	Kafka           KafkaConfig        `mapstructure:"kafka"`
	Output          OutputConfig       `mapstructure:"output"`
	CloudStorage    CloudStorageConfig `mapstructure:"cloud_storage"`
	Database        DatabaseConfig     `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("hotdogsim")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HOTDOGSIM")
	viper.AutomaticEnv()

	viper.SetDefault("seed", time.Now().UnixNano())
	viper.SetDefault("data_file", "local_data.json")
	viper.SetDefault("default_quantity", DefaultRemoteQuantity)
	viper.SetDefault("kafka.topic", "sales_records")
	viper.SetDefault("output.format", "console")
	viper.SetDefault("output.path", "output")
	viper.SetDefault("output.folder", "sales")

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; only a malformed one is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
