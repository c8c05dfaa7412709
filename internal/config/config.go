package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application. Nothing here is read
// from ambient globals at request time; sections are passed into the
// constructors that need them.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Serper    SerperConfig    `yaml:"serper"`
	Apify     ApifyConfig     `yaml:"apify"`
	AI        AIConfig        `yaml:"ai"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Queue     QueueConfig     `yaml:"queue"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GetHost returns the bind host, defaulting to localhost.
func (c ServerConfig) GetHost() string {
	if c.Host == "" {
		return "localhost"
	}
	return c.Host
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	URL          string `yaml:"url"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// RedisConfig holds optional Redis settings. Redis is only used for the
// process-queue invocation lock; leaving Addr empty disables it.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// SerperConfig holds Serper.dev search API settings.
type SerperConfig struct {
	APIKey          string `yaml:"api_key"`
	BaseURL         string `yaml:"base_url"`
	ResultsPerQuery int    `yaml:"results_per_query"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
}

// Timeout returns the HTTP client timeout for Serper calls.
func (c SerperConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ApifyConfig holds Apify actor credentials. SearchActorID is the profile
// crawl actor; SendActorID is the browser-automation send actor.
// LinkedInSessionCookie is the li_at cookie both actors require.
type ApifyConfig struct {
	Token                 string `yaml:"token"`
	BaseURL               string `yaml:"base_url"`
	SearchActorID         string `yaml:"search_actor_id"`
	SendActorID           string `yaml:"send_actor_id"`
	LinkedInSessionCookie string `yaml:"linkedin_session_cookie"`
	CrawlWaitSeconds      int    `yaml:"crawl_wait_seconds"`
	SendWaitSeconds       int    `yaml:"send_wait_seconds"`
}

// CrawlWait is how long a crawl run may block on the actor's own
// wait-for-finish mechanism.
func (c ApifyConfig) CrawlWait() time.Duration {
	return time.Duration(c.CrawlWaitSeconds) * time.Second
}

// SendWait bounds a single send actor run.
func (c ApifyConfig) SendWait() time.Duration {
	return time.Duration(c.SendWaitSeconds) * time.Second
}

// AIConfig holds language-model backend credentials. OpenAI is the primary
// backend; HuggingFace inference is the fallback. Either may be absent.
type AIConfig struct {
	OpenAIKey      string `yaml:"openai_key"`
	OpenAIModel    string `yaml:"openai_model"`
	HFKey          string `yaml:"hf_key"`
	HFModel        string `yaml:"hf_model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the HTTP client timeout for inference calls.
func (c AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DiscoveryConfig tunes prospect discovery.
type DiscoveryConfig struct {
	MaxPerCampaign  int `yaml:"max_per_campaign"`
	IntervalMinutes int `yaml:"interval_minutes"`
}

// Interval is the autodiscovery worker tick.
func (c DiscoveryConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// QueueConfig tunes queue processing.
type QueueConfig struct {
	BatchSize      int `yaml:"batch_size"`
	LockTTLSeconds int `yaml:"lock_ttl_seconds"`
}

// LockTTL is how long the process-queue Redis lock is held at most.
func (c QueueConfig) LockTTL() time.Duration {
	return time.Duration(c.LockTTLSeconds) * time.Second
}

// Load reads configuration from a YAML file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Serper.BaseURL == "" {
		c.Serper.BaseURL = "https://google.serper.dev"
	}
	if c.Serper.ResultsPerQuery == 0 {
		c.Serper.ResultsPerQuery = 10
	}
	if c.Serper.TimeoutSeconds == 0 {
		c.Serper.TimeoutSeconds = 30
	}
	if c.Apify.BaseURL == "" {
		c.Apify.BaseURL = "https://api.apify.com"
	}
	if c.Apify.CrawlWaitSeconds == 0 {
		c.Apify.CrawlWaitSeconds = 240
	}
	if c.Apify.SendWaitSeconds == 0 {
		c.Apify.SendWaitSeconds = 120
	}
	if c.AI.OpenAIModel == "" {
		c.AI.OpenAIModel = "gpt-4o-mini"
	}
	if c.AI.HFModel == "" {
		c.AI.HFModel = "mistralai/Mistral-7B-Instruct-v0.3"
	}
	if c.AI.TimeoutSeconds == 0 {
		c.AI.TimeoutSeconds = 60
	}
	if c.Discovery.MaxPerCampaign == 0 {
		c.Discovery.MaxPerCampaign = 25
	}
	if c.Discovery.IntervalMinutes == 0 {
		c.Discovery.IntervalMinutes = 60
	}
	if c.Queue.BatchSize == 0 {
		c.Queue.BatchSize = 5
	}
	if c.Queue.LockTTLSeconds == 0 {
		c.Queue.LockTTLSeconds = 180
	}
}

// LoadFromEnv loads configuration from a YAML file, then overrides with
// environment variables if present. A .env file is honored when it exists.
// If the YAML file is missing, an all-defaults config is used so that a
// purely env-driven deployment works.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = &Config{}
		cfg.applyDefaults()
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SERPER_API_KEY"); v != "" {
		cfg.Serper.APIKey = v
	}
	if v := os.Getenv("APIFY_TOKEN"); v != "" {
		cfg.Apify.Token = v
	}
	if v := os.Getenv("APIFY_SEARCH_ACTOR_ID"); v != "" {
		cfg.Apify.SearchActorID = v
	}
	if v := os.Getenv("APIFY_ACTOR_ID"); v != "" {
		cfg.Apify.SendActorID = v
	}
	if v := os.Getenv("LINKEDIN_LI_AT"); v != "" {
		cfg.Apify.LinkedInSessionCookie = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.OpenAIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.AI.OpenAIModel = v
	}
	if v := os.Getenv("HF_API_KEY"); v != "" {
		cfg.AI.HFKey = v
	}
	if v := os.Getenv("HF_TEXT_MODEL"); v != "" {
		cfg.AI.HFModel = v
	}

	return cfg, nil
}
