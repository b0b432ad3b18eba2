package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App     `mapstructure:",squash"`
	Server    Server  `mapstructure:",squash"`
	Upload    Upload  `mapstructure:",squash"`
	Session   Session `mapstructure:",squash"`
	Cors      Cors    `mapstructure:",squash"`
	SecretKey string  `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type Session struct {
	CookieName     string        `mapstructure:"session_cookie_name"`
	TTL            time.Duration `mapstructure:"session_ttl"`
	SnapshotLimit  int           `mapstructure:"session_snapshot_limit"`
	JanitorCron    string        `mapstructure:"session_janitor_cron"`
	JanitorEnabled bool          `mapstructure:"session_janitor_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("UPLOAD_MAX_BYTES", 32<<20) // 32 MB por arquivo

	viper.SetDefault("SESSION_COOKIE_NAME", "ads_session")
	viper.SetDefault("SESSION_TTL", "12h")
	viper.SetDefault("SESSION_SNAPSHOT_LIMIT", 14)
	viper.SetDefault("SESSION_JANITOR_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SESSION_JANITOR_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
