package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"strconv"
	"time"

	"fleet-compliance-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Config holds everything the server needs at startup. The JWT secret is
// taken from the environment; when unset, a random per-process key is
// generated, which invalidates outstanding tokens on restart.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
	TokenTTL  time.Duration
	Env       string
}

func Load() *Config {
	ttlMinutes := 30
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlMinutes = n
		}
	}
	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "fleet_compliance.db"),
		JWTSecret: loadSecret(),
		TokenTTL:  time.Duration(ttlMinutes) * time.Minute,
		Env:       getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadSecret() []byte {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return []byte(v)
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatal("Failed to generate JWT secret:", err)
	}
	log.Println("JWT_SECRET not set, generated random key", base64.StdEncoding.EncodeToString(key[:4])+"…")
	return key
}

func InitDB(cfg *Config) {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database connected and migrated")
}

// Migrate is exported so tests can build their own in-memory store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Trucker{},
		&models.Document{},
		&models.ArchivedEmployee{},
		&models.ArchivedTrucker{},
		&models.ArchivedDocument{},
	)
}
