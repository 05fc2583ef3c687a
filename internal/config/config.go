package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string  `yaml:"log-level" env:"XOGAME_LOG_LEVEL" env-default:"info"`
	Storage           Storage `yaml:"storage"`
	SQLiteStoragePath string  `yaml:"sqlite-storage-path" env:"XOGAME_SQLITE_PATH" env-default:"xogame.db"`
	Game              Game    `yaml:"game"`
}

type Storage struct {
	// Driver selects where sessions live: "memory" keeps them inside the
	// process, "redis" lets a suspended game be resumed by a later run.
	Driver string `yaml:"driver" env:"XOGAME_STORAGE_DRIVER" env-default:"memory"`
	Redis  Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"XOGAME_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"XOGAME_REDIS_PORT" env-default:"6379"`
}

type Game struct {
	Difficulty string `yaml:"difficulty" env:"XOGAME_DIFFICULTY" env-default:"normal"`
	SeriesWins int    `yaml:"series-wins" env:"XOGAME_SERIES_WINS" env-default:"3"`
	Color      bool   `yaml:"color" env:"XOGAME_COLOR" env-default:"true"`
}

// Load - reads the config file when it exists, otherwise falls back to
// environment variables and struct defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
