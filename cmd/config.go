package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort         string `env:"HTTP_PORT" envDefault:"8080" validate:"required,numeric"`
	Storage          string `env:"STORAGE" envDefault:"file" validate:"oneof=file postgres"`
	DataFile         string `env:"DATA_FILE" envDefault:"data/freight.dat" validate:"required_if=Storage file"`
	DBHost           string `env:"DB_HOST" envDefault:"localhost"`
	DBPort           string `env:"DB_PORT" envDefault:"5432"`
	DBUser           string `env:"DB_USER" envDefault:"postgres"`
	DBPassword       string `env:"DB_PASSWORD"`
	DBName           string `env:"DB_NAME" envDefault:"freight"`
	DBSslMode        string `env:"DB_SSLMODE" envDefault:"disable"`
	AutosaveSchedule string `env:"AUTOSAVE_SCHEDULE" envDefault:"0 */5 * * * *"`
	ReportSchedule   string `env:"REPORT_SCHEDULE" envDefault:"0 0 6 * * *"`
	SeedDemoData     bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`
}

// LoadConfig reads envFile into the process environment when it exists and
// parses the environment into a Config. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DSN is the postgres connection string built from the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
