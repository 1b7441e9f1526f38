package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage providers.
const (
	StorageSupabase = "supabase"
	StorageGCS      = "gcs"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	Twilio       TwilioConfig
	AgentBackend AgentBackendConfig
	Storage      StorageConfig

	// Bridge internals
	Session SessionConfig
	Media   MediaConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	WhatsAppNumber string
}

type AgentBackendConfig struct {
	URL     string
	Timeout time.Duration
}

type StorageConfig struct {
	Provider string
	Supabase SupabaseConfig
	GCS      GCSConfig
}

type SupabaseConfig struct {
	URL        string
	ServiceKey string
	Bucket     string
}

type GCSConfig struct {
	Bucket          string
	CredentialsPath string
}

type SessionConfig struct {
	TTL           time.Duration
	MaxHistory    int
	SweepInterval time.Duration // zero disables the background sweeper
}

type MediaConfig struct {
	MaxImagesPerDraft int
	MaxBytes          int
	MaxEdge           int
	TargetBytes       int
	CompressWorkers   int
	DownloadTimeout   time.Duration
	UploadTimeout     time.Duration
}

type WebhookConfig struct {
	PublicURL         string
	ValidateSignature bool
	RateLimitPerMin   int
	DedupTTL          time.Duration
	ProcessTimeout    time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Twilio
	cfg.Twilio.AccountSID = expandEnvVar(viper.GetString("twilio.account_sid"))
	cfg.Twilio.AuthToken = expandEnvVar(viper.GetString("twilio.auth_token"))
	cfg.Twilio.WhatsAppNumber = viper.GetString("twilio.whatsapp_number")
	if number := viper.GetString("twilio_whatsapp_number"); number != "" {
		cfg.Twilio.WhatsAppNumber = number
	}

	// Agent backend
	cfg.AgentBackend.URL = viper.GetString("agent_backend.url")
	cfg.AgentBackend.Timeout = viper.GetDuration("agent_backend.timeout")

	// Storage
	cfg.Storage.Provider = strings.ToLower(viper.GetString("storage.provider"))
	cfg.Storage.Supabase.URL = viper.GetString("storage.supabase.url")
	if url := viper.GetString("supabase_url"); url != "" {
		cfg.Storage.Supabase.URL = url
	}
	cfg.Storage.Supabase.ServiceKey = expandEnvVar(viper.GetString("storage.supabase.service_key"))
	if key := viper.GetString("supabase_service_key"); key != "" {
		cfg.Storage.Supabase.ServiceKey = key
	}
	cfg.Storage.Supabase.Bucket = viper.GetString("storage.supabase.bucket")
	if bucket := viper.GetString("supabase_storage_bucket"); bucket != "" {
		cfg.Storage.Supabase.Bucket = bucket
	}
	cfg.Storage.GCS.Bucket = viper.GetString("storage.gcs.bucket")
	cfg.Storage.GCS.CredentialsPath = viper.GetString("storage.gcs.credentials_path")
	if creds := viper.GetString("google_application_credentials"); creds != "" && cfg.Storage.GCS.CredentialsPath == "" {
		cfg.Storage.GCS.CredentialsPath = creds
	}

	// Session
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxHistory = viper.GetInt("session.max_history")
	cfg.Session.SweepInterval = viper.GetDuration("session.sweep_interval")

	// Media
	cfg.Media.MaxImagesPerDraft = viper.GetInt("media.max_images_per_draft")
	cfg.Media.MaxBytes = viper.GetInt("media.max_bytes")
	cfg.Media.MaxEdge = viper.GetInt("media.max_edge")
	cfg.Media.TargetBytes = viper.GetInt("media.target_bytes")
	cfg.Media.CompressWorkers = viper.GetInt("media.compress_workers")
	cfg.Media.DownloadTimeout = viper.GetDuration("media.download_timeout")
	cfg.Media.UploadTimeout = viper.GetDuration("media.upload_timeout")

	// Webhooks
	cfg.Webhook.PublicURL = viper.GetString("webhook.public_url")
	cfg.Webhook.ValidateSignature = viper.GetBool("webhook.validate_signature")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.DedupTTL = viper.GetDuration("webhook.dedup_ttl")
	cfg.Webhook.ProcessTimeout = viper.GetDuration("webhook.process_timeout")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("twilio.account_sid", "${TWILIO_ACCOUNT_SID}")
	viper.SetDefault("twilio.auth_token", "${TWILIO_AUTH_TOKEN}")
	viper.SetDefault("twilio.whatsapp_number", "+14155238886")

	viper.SetDefault("agent_backend.url", "http://localhost:8000")
	viper.SetDefault("agent_backend.timeout", "120s")

	viper.SetDefault("storage.provider", StorageSupabase)
	viper.SetDefault("storage.supabase.bucket", "product-images")

	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_history", 20)
	viper.SetDefault("session.sweep_interval", "5m")

	viper.SetDefault("media.max_images_per_draft", 3)
	viper.SetDefault("media.max_bytes", 10*1024*1024)
	viper.SetDefault("media.max_edge", 1600)
	viper.SetDefault("media.target_bytes", 900*1024)
	viper.SetDefault("media.compress_workers", runtime.NumCPU())
	viper.SetDefault("media.download_timeout", "30s")
	viper.SetDefault("media.upload_timeout", "30s")

	viper.SetDefault("webhook.validate_signature", false)
	viper.SetDefault("webhook.rate_limit_per_min", 30)
	viper.SetDefault("webhook.dedup_ttl", "10m")
	viper.SetDefault("webhook.process_timeout", "3m")
}

func validate(cfg *Config) error {
	switch cfg.Storage.Provider {
	case StorageSupabase, StorageGCS:
	default:
		return fmt.Errorf("storage.provider: unknown provider %q", cfg.Storage.Provider)
	}
	if cfg.Webhook.ValidateSignature {
		if cfg.Twilio.AuthToken == "" {
			return fmt.Errorf("webhook.validate_signature requires twilio.auth_token")
		}
		if cfg.Webhook.PublicURL == "" {
			return fmt.Errorf("webhook.validate_signature requires webhook.public_url")
		}
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
