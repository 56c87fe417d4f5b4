package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type WorkbookConfig struct {
	// Path to the .xlsx workbook that is the system of record.
	Path string

	// Worksheet names. The header row of each sheet defines the record keys.
	CompaniesSheet string
	EquipmentSheet string
	UsageSheet     string
	TasksSheet     string
	ChatSheet      string
	UsersSheet     string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type CacheConfig struct {
	// How stale a cached sheet read may get before the workbook is re-read.
	ReadTTL time.Duration
}

// OperatingWindowConfig is the fixed daily window used when usage hours are
// derived from wall-clock time instead of entered manually.
type OperatingWindowConfig struct {
	Start time.Duration // offset from midnight, e.g. 8h
	End   time.Duration // offset from midnight, e.g. 18h
}

func (w OperatingWindowConfig) Duration() time.Duration {
	if w.End <= w.Start {
		return 0
	}
	return w.End - w.Start
}

type Config struct {
	Server          ServerConfig
	Workbook        WorkbookConfig
	Redis           RedisConfig
	JWT             JWTConfig
	Cache           CacheConfig
	OperatingWindow OperatingWindowConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Workbook: WorkbookConfig{
			Path:           getEnv("WORKBOOK_PATH", "./data/maintenance.xlsx"),
			CompaniesSheet: getEnv("SHEET_COMPANIES", "companies"),
			EquipmentSheet: getEnv("SHEET_EQUIPMENT", "equipment"),
			UsageSheet:     getEnv("SHEET_USAGE", "usage_log"),
			TasksSheet:     getEnv("SHEET_TASKS", "tasks"),
			ChatSheet:      getEnv("SHEET_CHAT", "chat"),
			UsersSheet:     getEnv("SHEET_USERS", "users"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "2F8A1C774D0B5E9A63D1C22B54E7F"),
			AccessTokenTTL:  time.Hour * 24,
			RefreshTokenTTL: time.Hour * 24 * 30,
		},
		Cache: CacheConfig{
			ReadTTL: getEnvDuration("SHEET_CACHE_TTL", 15*time.Second),
		},
		OperatingWindow: OperatingWindowConfig{
			Start: getEnvDuration("OPERATING_WINDOW_START", 8*time.Hour),
			End:   getEnvDuration("OPERATING_WINDOW_END", 18*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
