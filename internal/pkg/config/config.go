package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Generation providers accepted by GENERATOR_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CurrentUserID is the user every request acts as.
	CurrentUserID  int64 `env:"CURRENT_USER_ID,  default=1"`
	SeedSampleData bool  `env:"SEED_SAMPLE_DATA, default=true"`

	Generator GeneratorConfig
	Redis     RedisConfig
}

type GeneratorConfig struct {
	// Provider selects the generation backend: "openai" or "gemini".
	Provider   string        `env:"GENERATOR_PROVIDER,     default=openai"`
	Timeout    time.Duration `env:"GENERATION_TIMEOUT,     default=60s"`
	MaxRetries int           `env:"GENERATION_MAX_RETRIES, default=3"`

	OpenAI OpenAIConfig
	Gemini GeminiConfig
}

type OpenAIConfig struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL,    default=https://api.openai.com/v1"`
	ImageModel string `env:"OPENAI_IMAGE_MODEL, default=dall-e-3"`
	ChatModel  string `env:"OPENAI_CHAT_MODEL,  default=gpt-4o"`
}

type GeminiConfig struct {
	APIKey     string `env:"GEMINI_API_KEY"`
	TextModel  string `env:"GEMINI_TEXT_MODEL,  default=gemini-2.5-flash"`
	ImageModel string `env:"GEMINI_IMAGE_MODEL, default=imagen-4.0-generate-001"`
}

// RedisConfig configures the optional generation cache. An empty Addr
// disables it.
type RedisConfig struct {
	Addr      string        `env:"REDIS_ADDR"`
	Password  string        `env:"REDIS_PASSWORD"`
	DB        int           `env:"REDIS_DB,        default=0"`
	OpTimeout time.Duration `env:"REDIS_OP_TIMEOUT, default=500ms"`
	CacheTTL  time.Duration `env:"GENERATION_CACHE_TTL, default=1h"`
}

// IsDevelopment reports whether pretty console logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through the given lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	switch cfg.Generator.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return nil, fmt.Errorf("unknown GENERATOR_PROVIDER %q", cfg.Generator.Provider)
	}
	return &cfg, nil
}
