package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fhuszti/uploads-ms-go/internal/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string `validate:"required"`
	MaxOpenConns    int    `validate:"required,min=1"`
	MaxIdleConns    int    `validate:"required,min=1"`
	ConnMaxLifetime time.Duration
	ServerPort      int `validate:"required,min=1,max=65535"`

	MinioEndpoint      string `validate:"required"`
	MinioAccessKey     string `validate:"required"`
	MinioSecretKey     string `validate:"required"`
	MinioUseSSL        bool
	MinioBucket        string `validate:"required"`
	MinioPublicBaseURL string `validate:"required,url"`

	// One of the two must be set: a remote identity service, or a local
	// JWT secret for development.
	IdentityURL    string `validate:"omitempty,url"`
	IdentityAPIKey string
	JWTSecret      string

	RedisAddr     string
	RedisPassword string

	TempDir    string
	FFmpegPath string
	AppEnv     string
}

// IsProduction decides whether error details stay out of responses.
func (s *Settings) IsProduction() bool {
	return s.AppEnv == "production"
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("TEMP_DIR", os.TempDir())
	viper.SetDefault("APP_ENV", "production")

	s := &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		MinioEndpoint:      viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:     viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:     viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:        viper.GetBool("MINIO_USE_SSL"),
		MinioBucket:        viper.GetString("MINIO_BUCKET"),
		MinioPublicBaseURL: viper.GetString("MINIO_PUBLIC_BASE_URL"),

		IdentityURL:    viper.GetString("IDENTITY_URL"),
		IdentityAPIKey: viper.GetString("IDENTITY_API_KEY"),
		JWTSecret:      viper.GetString("JWT_SECRET"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		TempDir:    viper.GetString("TEMP_DIR"),
		FFmpegPath: viper.GetString("FFMPEG_PATH"),
		AppEnv:     viper.GetString("APP_ENV"),
	}

	if err := validation.ValidateStruct(s); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if s.IdentityURL == "" && s.JWTSecret == "" {
		return nil, fmt.Errorf("either IDENTITY_URL or JWT_SECRET is required")
	}

	return s, nil
}
