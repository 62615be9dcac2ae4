package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultFile is merged over the defaults when Load is given no path and the
// file exists in the working directory.
const DefaultFile = "config.yaml"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	StaticDir       string        `mapstructure:"static_dir"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
}

type SupabaseConfig struct {
	URL       string        `mapstructure:"url"`
	AnonKey   string        `mapstructure:"anon_key"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type QuizConfig struct {
	QuestionCount int `mapstructure:"question_count"`
	MaxAttempts   int `mapstructure:"max_attempts"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

var envBindings = map[string][]string{
	"server.addr":            {"ADDR"},
	"server.static_dir":      {"STATIC_DIR"},
	"server.allowed_origins": {"ALLOWED_ORIGINS"},
	"supabase.url":           {"SUPABASE_URL"},
	"supabase.anon_key":      {"SUPABASE_ANON_KEY", "SUPABASE_KEY"},
	"supabase.jwt_secret":    {"SUPABASE_JWT_SECRET"},
	"database.url":           {"DATABASE_URL"},
	"llm.api_key":            {"LLM_API_KEY", "OPENAI_API_KEY"},
	"llm.base_url":           {"LLM_BASE_URL"},
	"llm.model":              {"LLM_MODEL"},
	"llm.timeout":            {"LLM_TIMEOUT"},
	"quiz.question_count":    {"QUIZ_QUESTION_COUNT"},
	"quiz.max_attempts":      {"QUIZ_MAX_ATTEMPTS"},
	"log.mode":               {"LOG_MODE"},
	"port":                   {"PORT"},
}

// Load builds a Config from the embedded defaults, then the YAML file at path
// (or DefaultFile if path is empty and the file exists), then the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(DefaultConfig)); err != nil {
		return Config{}, fmt.Errorf("read default config: %w", err)
	}

	optional := path == ""
	if optional {
		path = DefaultFile
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		if !(optional && errors.Is(err, fs.ErrNotExist)) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if port := strings.TrimSpace(v.GetString("port")); port != "" {
		cfg.Server.Addr = ":" + port
	}
	cfg.Supabase.URL = strings.TrimRight(strings.TrimSpace(cfg.Supabase.URL), "/")
	cfg.LLM.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.LLM.BaseURL), "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("config: server.addr is required")
	}
	if c.LLM.BaseURL == "" {
		return errors.New("config: llm.base_url is required")
	}
	if c.Quiz.QuestionCount < 1 {
		return fmt.Errorf("config: quiz.question_count must be at least 1, got %d", c.Quiz.QuestionCount)
	}
	if c.Quiz.MaxAttempts < 1 {
		return fmt.Errorf("config: quiz.max_attempts must be at least 1, got %d", c.Quiz.MaxAttempts)
	}
	return nil
}
