package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Env        string
	ServerPort string

	// Empty means the in-memory sqlite store, which is only fit for local runs.
	DBUrl string

	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int

	CORSAllowedOrigins string
	EmailDomainCheck   bool

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	LoginRateLimit int

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicBaseURL   string

	SeedAdminEmail    string
	SeedAdminPassword string
}

func Load() *Config {
	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBUrl: getEnv("DATABASE_URL", ""),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		AccessTokenTTL: time.Duration(getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		BcryptCost:     getInt("BCRYPT_COST", bcrypt.DefaultCost),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
		EmailDomainCheck:   getBool("EMAIL_DOMAIN_CHECK", false),

		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getInt("REDIS_DB", 0),
		LoginRateLimit: getInt("LOGIN_RATE_LIMIT", 10),

		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),

		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@dancestudio.ru"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
	}
}

// Validate reports configuration the server must not start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %v", c.AccessTokenTTL)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) UsesInMemoryStore() bool {
	return c.DBUrl == ""
}

func (c *Config) UploadsEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}
