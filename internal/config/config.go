package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver       string
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	MaxOpenConns int
	MaxIdleConns int
	LogLevel     string
	AutoMigrate  bool
}

type Config struct {
	Port     string
	Database DatabaseConfig
}

// Load reads the process environment once at startup. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8001"
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = DriverMySQL
	}
	if driver != DriverMySQL && driver != DriverPostgres {
		return Config{}, fmt.Errorf("DB_DRIVER must be one of: %s, %s", DriverMySQL, DriverPostgres)
	}

	dbCfg := DatabaseConfig{
		Driver:   driver,
		URL:      os.Getenv("DATABASE_URL"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		LogLevel: strings.ToLower(os.Getenv("DB_LOG_LEVEL")),
	}

	if dbCfg.URL == "" && (dbCfg.Host == "" || dbCfg.User == "" || dbCfg.Name == "") {
		return Config{}, fmt.Errorf("DATABASE_URL or DB_HOST, DB_USER and DB_NAME required")
	}

	var err error
	if dbCfg.MaxOpenConns, err = intFromEnv("DB_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, err
	}
	if dbCfg.MaxIdleConns, err = intFromEnv("DB_MAX_IDLE_CONNS", 5); err != nil {
		return Config{}, err
	}
	if raw := os.Getenv("DB_AUTO_MIGRATE"); raw != "" {
		if dbCfg.AutoMigrate, err = strconv.ParseBool(raw); err != nil {
			return Config{}, fmt.Errorf("DB_AUTO_MIGRATE must be a boolean")
		}
	}

	return Config{
		Port:     port,
		Database: dbCfg,
	}, nil
}

// DSN returns the connection string for the configured driver.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	switch c.Driver {
	case DriverPostgres:
		port := c.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Host, port, c.User, c.Password, c.Name)
	default:
		port := c.Port
		if port == "" {
			port = "3306"
		}
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = net.JoinHostPort(c.Host, port)
		mysqlCfg.User = c.User
		mysqlCfg.Passwd = c.Password
		mysqlCfg.DBName = c.Name
		mysqlCfg.ParseTime = true
		return mysqlCfg.FormatDSN()
	}
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return value, nil
}
