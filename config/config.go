package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	OTP      OTP
	SMTP     SMTP
	AI       AI
	Media    Media
	History  History
	Log      Log
}

type Server struct {
	Port        string
	GinMode     string
	CORSOrigins []string
}

type Database struct {
	Driver          string        // postgres, mysql or sqlite
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	MinIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

type JWT struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type OTP struct {
	Length    int
	ExpiresIn time.Duration
}

type SMTP struct {
	Sender   string
	Password string
	Server   string
	Port     int
}

type AI struct {
	Provider string   // gemini or openai
	APIKey   string
	BaseURL  string
	Models   []string
}

type Media struct {
	Directory string
}

type History struct {
	ListLimit int
}

type Log struct {
	Level  string
	Pretty bool
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_NAME", "toeic")
	viper.SetDefault("DATABASE_POOL_MIN", 5)
	viper.SetDefault("DATABASE_POOL_MAX", 20)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT_SECONDS", 10)

	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 300)
	viper.SetDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7)

	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OTP_EXPIRES_MINUTES", 5)

	viper.SetDefault("SMTP_SERVER", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 465)

	viper.SetDefault("AI_PROVIDER", "gemini")
	viper.SetDefault("AI_MODELS", "gemini-2.5-flash,gemini-2.0-flash,gemini-1.5-flash")

	viper.SetDefault("MEDIA_DIRECTORY", "./media/assets")
	viper.SetDefault("HISTORY_LIST_LIMIT", 10)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", true)
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.CORSOrigins = splitList(viper.GetString("CORS_ORIGINS"))

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.MinIdleConns = viper.GetInt("DATABASE_POOL_MIN")
	config.Database.MaxOpenConns = viper.GetInt("DATABASE_POOL_MAX")
	config.Database.ConnMaxLifetime = time.Duration(viper.GetInt("DATABASE_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	config.Database.ConnectTimeout = time.Duration(viper.GetInt("DATABASE_CONNECT_TIMEOUT_SECONDS")) * time.Second

	config.JWT.Secret = viper.GetString("JWT_SECRET_KEY")
	config.JWT.AccessTTL = time.Duration(viper.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute
	config.JWT.RefreshTTL = time.Duration(viper.GetInt("REFRESH_TOKEN_EXPIRE_DAYS")) * 24 * time.Hour

	config.OTP.Length = viper.GetInt("OTP_LENGTH")
	config.OTP.ExpiresIn = time.Duration(viper.GetInt("OTP_EXPIRES_MINUTES")) * time.Minute

	config.SMTP.Sender = viper.GetString("SMTP_SENDER")
	config.SMTP.Password = viper.GetString("SMTP_PASSCODE")
	config.SMTP.Server = viper.GetString("SMTP_SERVER")
	config.SMTP.Port = viper.GetInt("SMTP_PORT")

	config.AI.Provider = strings.ToLower(viper.GetString("AI_PROVIDER"))
	config.AI.APIKey = viper.GetString("GEMINI_API_KEY")
	if config.AI.Provider == "openai" {
		config.AI.APIKey = viper.GetString("OPENAI_API_KEY")
	}
	config.AI.BaseURL = viper.GetString("AI_BASE_URL")
	config.AI.Models = splitList(viper.GetString("AI_MODELS"))

	config.Media.Directory = viper.GetString("MEDIA_DIRECTORY")
	config.History.ListLimit = viper.GetInt("HISTORY_LIST_LIMIT")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	if config.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET_KEY is not set. Tokens are signed with an empty key.")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Str("aiProvider", config.AI.Provider).
		Strs("aiModels", config.AI.Models).
		Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
