package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DatabaseURL    string
	PoolSize       int32
	AcquireTimeout time.Duration
	ConnectTimeout time.Duration
	RunMigrations  bool

	LogLevel  string
	LogFormat string
}

// Load 先讀 .env (可不存在)，再讀環境變數；已設定的環境變數不會被 .env 覆蓋
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	dbURL, err := databaseURL()
	if err != nil {
		return nil, err
	}
	poolSize, err := getEnvInt("DB_POOL_SIZE", 10)
	if err != nil {
		return nil, err
	}
	if poolSize <= 0 {
		return nil, fmt.Errorf("DB_POOL_SIZE must be positive, got %d", poolSize)
	}
	acquire, err := getEnvDuration("DB_ACQUIRE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	connect, err := getEnvDuration("DB_CONNECT_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	migrations, err := getEnvBool("RUN_MIGRATIONS", true)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		DatabaseURL:    dbURL,
		PoolSize:       int32(poolSize),
		AcquireTimeout: acquire,
		ConnectTimeout: connect,
		RunMigrations:  migrations,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}, nil
}

// databaseURL DATABASE_URL 優先，否則由 DB_* 組出
func databaseURL() (string, error) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v, nil
	}

	var missing []string
	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	host := required("DB_HOST")
	user := required("DB_USER")
	name := required("DB_NAME")
	if len(missing) > 0 {
		return "", fmt.Errorf("DATABASE_URL or %v is required", missing)
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, getEnv("DB_PORT", "5432")),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": {getEnv("DB_SSLMODE", "disable")}}.Encode(),
	}
	if pw := os.Getenv("DB_PASSWORD"); pw != "" {
		u.User = url.UserPassword(user, pw)
	} else {
		u.User = url.User(user)
	}
	return u.String(), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

// getEnvDuration 接受 "10s" 這類格式，純數字視為毫秒
func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
