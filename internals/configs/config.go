package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret string

	// Base URL aplikasi — dipakai untuk anchor template survey yang relatif.
	AppBaseURL string

	// URL halaman thanks internal (default "/thanks").
	ThanksURL string

	// Saklar darurat: kalau off, SurveyRedirect tidak ditulis sebelum redirect.
	WriteRedirects bool

	// Batas lookup project di survey-live (hard ceiling, bukan retry).
	SurveyLookupTimeout time.Duration

	// TTL cache template survey (process-local).
	SurveyURLCacheTTL time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppBaseURL = GetEnv("APP_BASE_URL")
	ThanksURL = GetEnv("THANKS_URL", "/thanks")
	WriteRedirects = GetEnvBool("WRITE_REDIRECTS", true)
	SurveyLookupTimeout = time.Duration(GetEnvInt("SURVEY_LOOKUP_TIMEOUT_MS", 3000)) * time.Millisecond
	SurveyURLCacheTTL = time.Duration(GetEnvInt("SURVEY_URL_CACHE_TTL_MS", 120000)) * time.Millisecond

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset! (route admin tidak bisa diakses)")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if AppBaseURL == "" {
		log.Println("⚠️ APP_BASE_URL belum diset — template survey relatif akan ditolak.")
	}
	if !WriteRedirects {
		log.Println("⚠️ WRITE_REDIRECTS=off — SurveyRedirect TIDAK ditulis (mode darurat).")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s=%q bukan angka, pakai default %d", key, v, defaultValue)
		return defaultValue
	}
	return n
}

func GetEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️ %s=%q bukan boolean, pakai default %v", key, v, defaultValue)
		return defaultValue
	}
	return b
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	} else if l.LogLevel >= gormLogger.Info {
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
