package configs

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server HTTPServer `env-prefix:"SERVER_"`
	Debug  bool       `env:"DEBUG" env-default:"false"`
}

type HTTPServer struct {
	Port    string        `env:"PORT" env-default:"5555"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}

	return &cfg
}
