package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	AMQPURL              string
	PipelineColumnsFile  string
	OverdueThresholdDays int
	OverdueReportSpec    string
}

// LoadConfig reads envFile (if it exists) into the environment and collects
// the settings. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	thresholdDays, err := strconv.Atoi(getEnv("OVERDUE_THRESHOLD_DAYS", "7"))
	if err != nil || thresholdDays <= 0 {
		return Config{}, fmt.Errorf("OVERDUE_THRESHOLD_DAYS must be a positive integer, got %q",
			os.Getenv("OVERDUE_THRESHOLD_DAYS"))
	}

	return Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               getEnv("DB_NAME", "workshop"),
		DBSslMode:            getEnv("DB_SSLMODE", "disable"),
		AMQPURL:              os.Getenv("AMQP_URL"),
		PipelineColumnsFile:  os.Getenv("PIPELINE_COLUMNS_FILE"),
		OverdueThresholdDays: thresholdDays,
		OverdueReportSpec:    os.Getenv("OVERDUE_REPORT_SPEC"),
	}, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) OverdueThreshold() time.Duration {
	return time.Duration(c.OverdueThresholdDays) * 24 * time.Hour
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
