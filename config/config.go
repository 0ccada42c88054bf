package config

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/models"
)

// Config holds the project config values
type Config struct {
	Port          string
	BaseURL       string
	DataDir       string
	Env           string
	SessionSecret string
	DefaultTheme  string
}

// New sets up all config related services
func New() *Config {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	env := getEnv("ENV", "local")

	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Port:          getEnv("PORT", "4000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:4000"),
		DataDir:       getEnv("DATA_DIR", "data"),
		Env:           env,
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DefaultTheme:  getEnv("DEFAULT_THEME", "light"),
	}
}

func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: errText}})
	w.Write(b)
}
