package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mkazymov/vocab-practice-bot/pkg/validator"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string     `mapstructure:"env" validate:"oneof=local development production"` // current application environment
	TelegramAPIToken string     `mapstructure:"-" validate:"required"`                              // Telegram API token loaded from environment
	TablePath        string     `mapstructure:"table_path"`                                         // optional CSV table loaded at startup for every new session
	Quiz             Quiz       `mapstructure:"quiz"`                                               // quiz defaults section
	Enrichment       Enrichment `mapstructure:"enrichment"`                                         // external lookup section
}

// Quiz contains quiz generation defaults.
type Quiz struct {
	DefaultQuestions   int `mapstructure:"default_questions" validate:"min=1"`    // question count when /quiz is called bare
	MaxQuestions       int `mapstructure:"max_questions" validate:"min=1"`        // upper bound a user may request
	OptionsPerQuestion int `mapstructure:"options_per_question" validate:"min=2"` // answer choices per question
}

// Enrichment contains dictionary/translation lookup parameters.
type Enrichment struct {
	TargetLang string        `mapstructure:"target_lang" validate:"required"` // language code for the translation fallback
	Timeout    time.Duration `mapstructure:"timeout" validate:"min=1"`        // per-call bound for external services
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("quiz.default_questions", 10)
	v.SetDefault("quiz.max_questions", 30)
	v.SetDefault("quiz.options_per_question", 4)
	v.SetDefault("enrichment.target_lang", "ru")
	v.SetDefault("enrichment.timeout", "5s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("table_path", "TABLE_PATH")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
