package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingRequired is returned by Validate when a required setting is absent.
	ErrMissingRequired = errors.New("missing required configuration")
	// ErrInvalidSetting is returned by Validate for a present but unusable value.
	ErrInvalidSetting = errors.New("invalid configuration")
)

// MinTrackingSecretLen is the shortest accepted link-signing secret.
const MinTrackingSecretLen = 16

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Logging      LoggingConfig      `yaml:"logging"`
	Integrations IntegrationsConfig `yaml:"integrations"`
	OpenAI       OpenAIConfig       `yaml:"openai"`
	LLM          LLMConfig          `yaml:"llm"`
	Bedrock      BedrockConfig      `yaml:"bedrock"`
	Email        EmailConfig        `yaml:"email"`
	SES          SESConfig          `yaml:"ses"`
	Storage      StorageConfig      `yaml:"storage"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	DynamoDB     DynamoDBConfig     `yaml:"dynamodb"`
	S3           S3Config           `yaml:"s3"`
	Feeds        FeedsConfig        `yaml:"feeds"`
	Analytics    AnalyticsConfig    `yaml:"analytics"`
	Leads        LeadsConfig        `yaml:"leads"`
	Simulation   SimulationConfig   `yaml:"simulation"`
	Worker       WorkerConfig       `yaml:"worker"`
	Tracking     TrackingConfig     `yaml:"tracking"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           int      `yaml:"port"`
	Host           string   `yaml:"host"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// RunSweeper runs the optimization sweeper inside the API process
	// instead of cmd/worker.
	RunSweeper bool `yaml:"run_sweeper"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	RedactPII *bool  `yaml:"redact_pii"`
}

// Redact reports whether PII redaction is on. Defaults to true.
func (c LoggingConfig) Redact() bool {
	return c.RedactPII == nil || *c.RedactPII
}

// IntegrationsConfig holds third-party service credentials that are
// validated at startup but not otherwise used by the core logic.
type IntegrationsConfig struct {
	SupabaseURL     string `yaml:"supabase_url"`
	SupabaseAnonKey string `yaml:"supabase_anon_key"`
	AnalyticsID     string `yaml:"analytics_id"`
	Crawl4AIKey     string `yaml:"crawl4ai_api_key"`
}

// OpenAIConfig holds chat-completion API settings
type OpenAIConfig struct {
	APIKey         string  `yaml:"api_key"`
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// Timeout returns the HTTP timeout for completion calls.
func (c OpenAIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LLMConfig selects the completion provider and its resilience settings.
type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai" or "bedrock"

	// MaxRetries is zero by default: each call is tried once.
	MaxRetries            int     `yaml:"max_retries"`
	BreakerFailures       int     `yaml:"breaker_failures"`
	BreakerTimeoutSeconds int     `yaml:"breaker_timeout_seconds"`
	RequestsPerSecond     float64 `yaml:"requests_per_second"`
}

// BreakerTimeout returns how long the circuit stays open.
func (c LLMConfig) BreakerTimeout() time.Duration {
	return time.Duration(c.BreakerTimeoutSeconds) * time.Second
}

// BedrockConfig holds AWS Bedrock settings for the alternate provider.
type BedrockConfig struct {
	Region  string `yaml:"region"`
	ModelID string `yaml:"model_id"`
}

// EmailConfig holds outbound email settings
type EmailConfig struct {
	User        string  `yaml:"user"`
	Password    string  `yaml:"password"`
	FromName    string  `yaml:"from_name"`
	Provider    string  `yaml:"provider"` // "simulated" or "ses"
	SuccessRate float64 `yaml:"success_rate"`
}

// SESConfig holds AWS SES configuration
type SESConfig struct {
	AccessKey        string  `yaml:"access_key"`
	SecretKey        string  `yaml:"secret_key"`
	Region           string  `yaml:"region"`
	ConfigurationSet string  `yaml:"configuration_set"`
	MaxSendRate      float64 `yaml:"max_send_rate"`
}

// StorageConfig selects repository backends.
type StorageConfig struct {
	Campaigns string `yaml:"campaigns"` // memory, postgres, redis
	Leads     string `yaml:"leads"`     // memory, postgres, dynamodb
}

// DatabaseConfig holds the PostgreSQL connection
type DatabaseConfig struct {
	URL          string `yaml:"url"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// DynamoDBConfig holds the lead table settings
type DynamoDBConfig struct {
	Region    string `yaml:"region"`
	TableName string `yaml:"table_name"`
}

// S3Config holds the report archive settings
type S3Config struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
	Prefix string `yaml:"prefix"`
}

// Enabled reports whether report archiving is configured.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// FeedsConfig lists industry news sources for the intelligence report.
type FeedsConfig struct {
	URLs           []string `yaml:"urls"`
	MaxItems       int      `yaml:"max_items"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

// AnalyticsConfig controls the performance analyzer.
type AnalyticsConfig struct {
	// RegionFilter is "simulated" (exact match plus random inclusion) or "exact".
	RegionFilter string `yaml:"region_filter"`
}

// LeadsConfig controls lead evaluation pacing.
type LeadsConfig struct {
	EvaluationDelayMS int `yaml:"evaluation_delay_ms"`
}

// EvaluationDelay returns the pause before each evaluated lead.
func (c LeadsConfig) EvaluationDelay() time.Duration {
	return time.Duration(c.EvaluationDelayMS) * time.Millisecond
}

// SimulationConfig toggles the artificial latency of simulated components.
type SimulationConfig struct {
	DisableLatency bool  `yaml:"disable_latency"`
	Seed           int64 `yaml:"seed"`
}

// WorkerConfig holds optimization sweep settings
type WorkerConfig struct {
	IntervalMinutes int `yaml:"interval_minutes"`
	Concurrency     int `yaml:"concurrency"`
	LockTTLSeconds  int `yaml:"lock_ttl_seconds"`
}

// Interval returns the sweep period.
func (c WorkerConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// LockTTL returns the distributed lock lifetime.
func (c WorkerConfig) LockTTL() time.Duration {
	return time.Duration(c.LockTTLSeconds) * time.Second
}

// TrackingConfig holds the open/click link settings. Secret signs the link
// tokens; when empty each process draws a random one, so links only
// verify on the process that built them.
type TrackingConfig struct {
	Secret  string `yaml:"secret"`
	BaseURL string `yaml:"base_url"`
}

// Load reads and parses the configuration file
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

// Default returns a configuration with only defaults applied. Used when no
// config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o"
	}
	if cfg.OpenAI.Temperature == 0 {
		cfg.OpenAI.Temperature = 0.7
	}
	if cfg.OpenAI.TimeoutSeconds == 0 {
		cfg.OpenAI.TimeoutSeconds = 60
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.BreakerFailures == 0 {
		cfg.LLM.BreakerFailures = 5
	}
	if cfg.LLM.BreakerTimeoutSeconds == 0 {
		cfg.LLM.BreakerTimeoutSeconds = 30
	}
	if cfg.Bedrock.Region == "" {
		cfg.Bedrock.Region = "us-east-1"
	}
	if cfg.Bedrock.ModelID == "" {
		cfg.Bedrock.ModelID = "anthropic.claude-3-haiku-20240307-v1:0"
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Quotable"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "simulated"
	}
	if cfg.Email.SuccessRate == 0 {
		cfg.Email.SuccessRate = 0.9
	}
	if cfg.SES.Region == "" {
		cfg.SES.Region = "us-west-2"
	}
	if cfg.SES.MaxSendRate == 0 {
		cfg.SES.MaxSendRate = 14
	}
	if cfg.Storage.Campaigns == "" {
		cfg.Storage.Campaigns = "memory"
	}
	if cfg.Storage.Leads == "" {
		cfg.Storage.Leads = "memory"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "leadintel"
	}
	if cfg.DynamoDB.Region == "" {
		cfg.DynamoDB.Region = "us-west-2"
	}
	if cfg.DynamoDB.TableName == "" {
		cfg.DynamoDB.TableName = "leadintel-leads"
	}
	if cfg.S3.Region == "" {
		cfg.S3.Region = "us-west-2"
	}
	if cfg.S3.Prefix == "" {
		cfg.S3.Prefix = "reports"
	}
	if cfg.Feeds.MaxItems == 0 {
		cfg.Feeds.MaxItems = 10
	}
	if cfg.Feeds.TimeoutSeconds == 0 {
		cfg.Feeds.TimeoutSeconds = 15
	}
	if cfg.Analytics.RegionFilter == "" {
		cfg.Analytics.RegionFilter = "simulated"
	}
	if cfg.Leads.EvaluationDelayMS == 0 {
		cfg.Leads.EvaluationDelayMS = 500
	}
	if cfg.Worker.IntervalMinutes == 0 {
		cfg.Worker.IntervalMinutes = 60
	}
	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = 4
	}
	if cfg.Worker.LockTTLSeconds == 0 {
		cfg.Worker.LockTTLSeconds = 300
	}
	if cfg.Tracking.BaseURL == "" {
		cfg.Tracking.BaseURL = fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It loads a .env file (if present) before reading env vars. A missing
// config file is tolerated; defaults are used instead. The result is
// validated, so a missing required variable is reported here.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&cfg.Integrations.SupabaseURL, "SUPABASE_URL")
	setString(&cfg.Integrations.SupabaseAnonKey, "SUPABASE_ANON_KEY")
	setString(&cfg.Integrations.AnalyticsID, "ANALYTICS_ID")
	setString(&cfg.Integrations.Crawl4AIKey, "CRAWL4AI_API_KEY")
	setString(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&cfg.OpenAI.BaseURL, "OPENAI_BASE_URL")
	setString(&cfg.OpenAI.Model, "OPENAI_MODEL")
	setString(&cfg.LLM.Provider, "LLM_PROVIDER")
	setString(&cfg.Email.User, "EMAIL_SERVICE_USER")
	setString(&cfg.Email.Password, "EMAIL_SERVICE_PASS")
	setString(&cfg.Email.Provider, "EMAIL_PROVIDER")
	setString(&cfg.SES.AccessKey, "AWS_SES_ACCESS_KEY")
	setString(&cfg.SES.SecretKey, "AWS_SES_SECRET_KEY")
	setString(&cfg.SES.Region, "AWS_SES_REGION")
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.S3.Bucket, "REPORT_BUCKET")
	setString(&cfg.Storage.Campaigns, "CAMPAIGN_STORE")
	setString(&cfg.Storage.Leads, "LEAD_STORE")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Tracking.Secret, "TRACKING_SECRET")
	setString(&cfg.Tracking.BaseURL, "TRACKING_BASE_URL")

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SIMULATION_DISABLE_LATENCY"); v != "" {
		cfg.Simulation.DisableLatency = parseBool(v)
	}
	if v := os.Getenv("SERVER_RUN_SWEEPER"); v != "" {
		cfg.Server.RunSweeper = parseBool(v)
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

// Validate checks that every required setting is present. The error lists
// all missing environment variable names and wraps ErrMissingRequired.
func (cfg *Config) Validate() error {
	required := []struct {
		env   string
		value string
	}{
		{"SUPABASE_URL", cfg.Integrations.SupabaseURL},
		{"SUPABASE_ANON_KEY", cfg.Integrations.SupabaseAnonKey},
		{"OPENAI_API_KEY", cfg.OpenAI.APIKey},
		{"EMAIL_SERVICE_USER", cfg.Email.User},
		{"EMAIL_SERVICE_PASS", cfg.Email.Password},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	if n := len(cfg.Tracking.Secret); n > 0 && n < MinTrackingSecretLen {
		return fmt.Errorf("%w: TRACKING_SECRET must be at least %d characters", ErrInvalidSetting, MinTrackingSecretLen)
	}
	if cfg.Server.RunSweeper && cfg.Worker.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: SERVER_RUN_SWEEPER needs a positive worker.interval_minutes", ErrInvalidSetting)
	}
	return nil
}
