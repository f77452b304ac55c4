package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Pinterest PinterestConfig
	Ai        AIConfig
	Keys      APIKeys
	Store     StoreConfig
	Database  DatabaseConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	OtelEnabled        bool
	HTTPClientTimeout  time.Duration
}

type PinterestConfig struct {
	ClientID        string
	ClientSecret    string
	RedirectURI     string
	Scopes          []string
	AccessToken     string // seeds the credential store at startup
	APIBaseURL      string
	SuccessRedirect string
	ErrorRedirect   string
	StateSecret     string
}

type AIConfig struct {
	EmbeddingProvider   string // "openai", "jina", "gemini" or "ollama"
	OpenAIEmbedModel    string
	OpenAIBaseURL       string
	OllamaBaseURL       string
	OllamaModel         string
	EmbeddingBatchSize  int
	EmbedWarmupOnImport bool
}

type APIKeys struct {
	OpenAI       string
	Jina         string
	GoogleGemini string
}

type StoreConfig struct {
	Driver       string // "file", "postgres" or "redis"
	DataDir      string
	ProductsFile string
}

type DatabaseConfig struct {
	Connection string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8787"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			HTTPClientTimeout:  time.Duration(getEnvAsInt("HTTP_CLIENT_TIMEOUT", 60)) * time.Second,
		},
		Pinterest: PinterestConfig{
			ClientID:        getEnv("PINTEREST_CLIENT_ID", ""),
			ClientSecret:    getEnv("PINTEREST_CLIENT_SECRET", ""),
			RedirectURI:     getEnv("PINTEREST_REDIRECT_URI", ""),
			Scopes:          splitList(getEnv("PINTEREST_SCOPES", "boards:read,pins:read")),
			AccessToken:     getEnv("PINTEREST_ACCESS_TOKEN", ""),
			APIBaseURL:      getEnv("PINTEREST_API_BASE_URL", "https://api.pinterest.com/v5"),
			SuccessRedirect: getEnv("PINTEREST_AUTH_SUCCESS_REDIRECT", "http://localhost:5173/?pinterest_auth=success"),
			ErrorRedirect:   getEnv("PINTEREST_AUTH_ERROR_REDIRECT", "http://localhost:5173/?pinterest_auth=error"),
			StateSecret:     getEnv("OAUTH_STATE_SECRET", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:   strings.ToLower(getEnv("EMBEDDING_PROVIDER", "openai")),
			OpenAIEmbedModel:    getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
			OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:         getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			EmbeddingBatchSize:  getEnvAsInt("EMBEDDING_BATCH_SIZE", 50),
			EmbedWarmupOnImport: getEnvAsBool("EMBED_WARMUP_ON_IMPORT", false),
		},
		Keys: APIKeys{
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			Jina:         getEnv("JINA_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Store: StoreConfig{
			Driver:       strings.ToLower(getEnv("STORE_DRIVER", "file")),
			DataDir:      dataDir,
			ProductsFile: getEnv("PRODUCTS_FILE", dataDir+"/products.json"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
	}
}

// OAuthMissing lists the unset OAuth settings, empty when OAuth can run.
func (c *Config) OAuthMissing() []string {
	var missing []string
	if c.Pinterest.ClientID == "" {
		missing = append(missing, "PINTEREST_CLIENT_ID")
	}
	if c.Pinterest.ClientSecret == "" {
		missing = append(missing, "PINTEREST_CLIENT_SECRET")
	}
	if c.Pinterest.RedirectURI == "" {
		missing = append(missing, "PINTEREST_REDIRECT_URI")
	}
	return missing
}

// EmbeddingMissing lists the unset settings the selected embedding provider needs.
func (c *Config) EmbeddingMissing() []string {
	switch c.Ai.EmbeddingProvider {
	case "ollama":
		return nil
	case "jina":
		if c.Keys.Jina == "" {
			return []string{"JINA_API_KEY"}
		}
	case "gemini":
		if c.Keys.GoogleGemini == "" {
			return []string{"GOOGLE_GEMINI_API_KEY"}
		}
	default:
		if c.Keys.OpenAI == "" {
			return []string{"OPENAI_API_KEY"}
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
