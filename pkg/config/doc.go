// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` to read optional `.env` files and
// `github.com/caarlos0/env/v11` to parse the environment into tagged struct
// fields. Values already present in the environment win over values from files.
//
//	type Config struct {
//		File   string `env:"GENLING_FILE"`
//		Count  int    `env:"GENLING_COUNT" envDefault:"10"`
//		AppEnv string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load returns errors joined with ErrParsingConfig or ErrLoadingEnvFile.
// MustLoad panics instead, for configuration a binary cannot start without.
package config
