package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pixline/internal/infrastructure/broker"
	"pixline/internal/infrastructure/caption"
	"pixline/internal/infrastructure/database"
	"pixline/internal/infrastructure/minio"
	"pixline/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOStore      minio.StoreConfig      `yaml:"minio_store"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Caption         caption.Config         `yaml:"caption"`
	Worker          WorkerConfig           `yaml:"worker"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address       string `yaml:"address"`
	PublicAddress string `yaml:"public_address"`
}

type WorkerConfig struct {
	Concurrency  int    `yaml:"concurrency"`
	ConsumerName string `yaml:"consumer_name"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Caption.APIKey = os.Getenv("CAPTION_API_KEY")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return errors.New("default.address must be set")
	}
	if c.Default.PublicAddress == "" {
		return errors.New("default.public_address must be set")
	}

	return nil
}
