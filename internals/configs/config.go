package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting. It is built once in main()
// and passed down explicitly; nothing in internals mutates it at runtime.
type Config struct {
	Port      string
	JWTSecret string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	// School timezone used for "today" in attendance rules. Fixed per deployment.
	Timezone *time.Location

	// Manual check-in window [StartHour, EndHour), wall-clock hours.
	AttendanceStartHour int
	AttendanceEndHour   int

	// Midtrans payment gateway (optional; empty server key disables it).
	MidtransServerKey string
	MidtransUseProd   bool
}

// Load reads .env (when present) and builds the Config. Missing critical keys
// are logged loudly but only JWT_SECRET is fatal.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  no .env file, using system ENV")
	} else {
		log.Println("✅ .env loaded")
	}

	cfg := &Config{
		Port:      GetEnv("PORT", "3000"),
		JWTSecret: GetEnv("JWT_SECRET"),

		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		AttendanceStartHour: getEnvInt("ATTENDANCE_START_HOUR", 7),
		AttendanceEndHour:   getEnvInt("ATTENDANCE_END_HOUR", 17),

		MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY"),
		MidtransUseProd:   getEnvBool("MIDTRANS_USE_PROD", false),
	}

	tzName := GetEnv("SCHOOL_TIMEZONE", "UTC")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("⚠️  invalid SCHOOL_TIMEZONE %q, falling back to UTC", tzName)
		tz = time.UTC
	}
	cfg.Timezone = tz

	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}
	if cfg.AttendanceStartHour < 0 || cfg.AttendanceEndHour > 24 ||
		cfg.AttendanceStartHour >= cfg.AttendanceEndHour {
		log.Fatalf("❌ invalid attendance window [%d, %d)",
			cfg.AttendanceStartHour, cfg.AttendanceEndHour)
	}

	return cfg
}

// DSN builds the Postgres connection string (statement_timeout matches the
// HTTP timeout guard in main).
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolku&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️  %s=%q is not an integer, using %d", key, v, def)
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
