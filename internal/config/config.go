package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret   string `env:"SUPABASE_JWT_SECRET,required,notEmpty"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	ClaudeAPIKey  string `env:"CLAUDE_API_KEY"`
	ClaudeBaseURL string `env:"CLAUDE_BASE_URL"`

	// RabbitMQURL empty disables engagement events.
	RabbitMQURL string `env:"RABBITMQ_URL"`

	// TrackingBaseURL is the public origin of /track-email and /track-click.
	TrackingBaseURL string `env:"TRACKING_BASE_URL"`

	CORSOrigins         []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	GuardLeadRegression bool          `env:"GUARD_LEAD_REGRESSION" envDefault:"false"`
	WarmupRampInterval  time.Duration `env:"WARMUP_RAMP_INTERVAL" envDefault:"1h"`
	RunMigrations       bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
