package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// MySQL holds posts, follows, payment settings and purchases
	Database DatabaseConfig `json:"database"`

	// MongoDB GridFS holds uploaded media
	MongoDB MongoDBConfig `json:"mongodb"`

	Upload UploadConfig `json:"upload"`

	Transcode TranscodeConfig `json:"transcode"`

	PaidContent PaidContentConfig `json:"paid_content"`

	Auth AuthConfig `json:"auth"`

	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port              string `json:"port"`
	Host              string `json:"host"`
	AccessServicePort string `json:"access_service_port"`
	MediaServicePort  string `json:"media_service_port"`
	MediaBaseURL      string `json:"media_base_url"`
	ReadTimeout       int    `json:"read_timeout"`
	WriteTimeout      int    `json:"write_timeout"`
	Environment       string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
}

// UploadConfig limits what the upload endpoints accept
type UploadConfig struct {
	MaxImageBytes int64  `json:"max_image_bytes"`
	MaxVideoBytes int64  `json:"max_video_bytes"`
	MaxImageFiles int    `json:"max_image_files"`
	TempDir       string `json:"temp_dir"`
}

// TranscodeConfig controls the optional DASH transcoding step for videos
type TranscodeConfig struct {
	Enabled    bool   `json:"enabled"`
	FFmpegPath string `json:"ffmpeg_path"`
	OutputDir  string `json:"output_dir"`
	MinBitrate int    `json:"min_bitrate"` // kbps
	MaxBitrate int    `json:"max_bitrate"` // kbps
}

type PaidContentConfig struct {
	// ContentPreviewLength is counted in unicode code points
	ContentPreviewLength int `json:"content_preview_length"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnv("SERVER_PORT", "8000"),
			Host:              getEnv("SERVER_HOST", "0.0.0.0"),
			AccessServicePort: getEnv("ACCESS_SERVICE_PORT", "7005"),
			MediaServicePort:  getEnv("MEDIA_SERVER_PORT", "8080"),
			MediaBaseURL:      getEnv("MEDIA_BASE_URL", ""),
			ReadTimeout:       getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout:      getEnvAsInt("SERVER_WRITE_TIMEOUT", 120),
			Environment:       getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "postgate"),
			Password:     getEnv("MYSQL_PASSWORD", "postgate123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "postgate"),
			MaxOpenConns: getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", "admin"),
			Password: getEnv("MONGO_PASSWORD", "admin123"),
			Database: getEnv("MONGO_DATABASE", "postgate"),
			Bucket:   getEnv("MONGO_BUCKET", "media_files"),
		},
		Upload: UploadConfig{
			MaxImageBytes: int64(getEnvAsInt("UPLOAD_MAX_IMAGE_BYTES", 5<<20)),
			MaxVideoBytes: int64(getEnvAsInt("UPLOAD_MAX_VIDEO_BYTES", 100<<20)),
			MaxImageFiles: getEnvAsInt("UPLOAD_MAX_IMAGE_FILES", 9),
			TempDir:       getEnv("UPLOAD_TEMP_DIR", "uploads/temp"),
		},
		Transcode: TranscodeConfig{
			Enabled:    getEnvAsBool("TRANSCODE_ENABLED", false),
			FFmpegPath: getEnv("FFMPEG_PATH", "ffmpeg"),
			OutputDir:  getEnv("TRANSCODE_OUTPUT_DIR", "uploads/videos/dash"),
			MinBitrate: getEnvAsInt("TRANSCODE_MIN_BITRATE", 500),
			MaxBitrate: getEnvAsInt("TRANSCODE_MAX_BITRATE", 2500),
		},
		PaidContent: PaidContentConfig{
			ContentPreviewLength: getEnvAsInt("PAID_CONTENT_PREVIEW_LENGTH", 100),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "postgate"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if cfg.Server.MediaBaseURL == "" {
		cfg.Server.MediaBaseURL = fmt.Sprintf("http://localhost:%s/media/", cfg.Server.MediaServicePort)
	}

	return cfg
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" || cfg.MongoDB.Password == "" {
		return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
		cfg.MongoDB.Database,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
