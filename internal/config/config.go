package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あればPOSTGRES_*より優先
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string
	DBMaxOpenConns   int

	JWTSecret string        // JWT署名シークレット
	JWTTTL    time.Duration // アクセストークンの有効期限

	RedisAddr     string // 空ならキャッシュなし
	RedisPassword string
	RedisDB       int
	GoodsCacheTTL time.Duration

	GoEnv           string // dev/prod
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Loadは環境変数から読む
func Load() (Config, error) {
	pgPort, err := intEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	maxOpen, err := intEnv("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, err
	}
	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	jwtTTL, err := durationEnv("JWT_TTL", 12*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := durationEnv("GOODS_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "shoppingmall"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
		DBMaxOpenConns:   maxOpen,

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    jwtTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		GoodsCacheTTL: cacheTTL,

		GoEnv:           getenv("GO_ENV", "dev"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		ShutdownTimeout: shutdownTimeout,
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.JWTTTL <= 0 {
		return Config{}, fmt.Errorf("JWT_TTL must be positive")
	}
	if cfg.DBMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}

	return cfg, nil
}

// Addrはecho.Startに渡すアドレス
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// DatabaseDSNはpgxが解釈できるDSNを返す
func (c Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
