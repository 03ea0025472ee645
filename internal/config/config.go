package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/timeline"
)

const (
	defaultQuarterStart   = "2025-01-01"
	defaultWeeks          = "12"
	defaultRequestTimeout = "5s"
)

var (
	envLoadError      = errors.New(".env load error")
	invalidValueError = errors.New("invalid config value")
)

type AppConfig struct {
	Env            string
	Port           string
	RequestTimeout time.Duration
}

// DataConfig источник снимка OKR. Пустой путь означает встроенные данные
type DataConfig struct {
	Path string
}

type TimelineConfig struct {
	QuarterStart domain.Date
	Weeks        int
}

type Config struct {
	App      AppConfig
	Data     DataConfig
	Timeline TimelineConfig
}

// LoadConfig читает переменные окружения, предварительно подгружая .env файлы.
// Отсутствующий .env не считается ошибкой
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", envLoadError, err)
		}
	}

	quarterStart, err := domain.ParseDate(getEnv("TIMELINE_QUARTER_START", defaultQuarterStart))
	if err != nil {
		return nil, fmt.Errorf("%w: TIMELINE_QUARTER_START: %w", invalidValueError, err)
	}

	weeks, err := strconv.Atoi(getEnv("TIMELINE_WEEKS", defaultWeeks))
	if err != nil || weeks < 1 || weeks > timeline.MaxWeekCount {
		return nil, fmt.Errorf("%w: TIMELINE_WEEKS must be an integer in [1, %d]", invalidValueError, timeline.MaxWeekCount)
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", defaultRequestTimeout))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("%w: REQUEST_TIMEOUT must be a positive duration", invalidValueError)
	}

	return &Config{
		App: AppConfig{
			Env:            getEnv("APP_ENV", "dev"),
			Port:           getEnv("APP_PORT", "8080"),
			RequestTimeout: timeout,
		},
		Data: DataConfig{
			Path: os.Getenv("DATA_PATH"),
		},
		Timeline: TimelineConfig{
			QuarterStart: quarterStart,
			Weeks:        weeks,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
