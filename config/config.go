package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Extraction core
	Extraction ExtractionConfig

	// LLM provider abstraction
	LLM LLMConfig

	// Collaborators
	TaskStore TaskStoreConfig
	Roster    RosterConfig
	Notify    NotifyConfig
	Mail      MailConfig

	// Inbound mail webhook
	InboundMail InboundMailConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// APIKey protects the extraction endpoints. Empty disables auth.
	APIKey string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ExtractionConfig tunes the task extraction pipeline.
type ExtractionConfig struct {
	Timezone string
	// LLMTimeout bounds one extraction's outbound generation call.
	LLMTimeout string
	// AssignmentFallback controls what callers do with a nil assignee:
	// "none" keeps the task visibly unassigned, "requester" assigns the
	// requesting user, "placeholder" assigns PlaceholderAssigneeID.
	AssignmentFallback    string
	PlaceholderAssigneeID string
}

// LLMTimeoutDuration parses LLMTimeout, defaulting to 25s.
func (c ExtractionConfig) LLMTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.LLMTimeout)
	if err != nil || d <= 0 {
		return 25 * time.Second
	}
	return d
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// TaskStoreConfig points at the TaskBoard store API.
type TaskStoreConfig struct {
	BaseURL     string
	AccessToken string
}

// RosterConfig points at the roster/project source API.
type RosterConfig struct {
	BaseURL     string
	AccessToken string
	CacheTTL    string
}

// CacheTTLDuration parses CacheTTL, defaulting to 60s.
func (c RosterConfig) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// NotifyConfig points at the push-notification dispatcher.
type NotifyConfig struct {
	BaseURL     string
	AccessToken string
}

// MailConfig configures the outbound reply sender (Gmail API).
type MailConfig struct {
	Enabled         bool
	CredentialsPath string
	FromAddress     string
}

// InboundMailConfig secures the inbound-mail webhook.
type InboundMailConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/taskboard/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/taskboard/")

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
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.APIKey = viper.GetString("http_server.api_key")
	if key := viper.GetString("api_key"); key != "" {
		cfg.HTTPServer.APIKey = key
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Extraction
	cfg.Extraction.Timezone = viper.GetString("extraction.timezone")
	cfg.Extraction.LLMTimeout = viper.GetString("extraction.llm_timeout")
	cfg.Extraction.AssignmentFallback = viper.GetString("extraction.assignment_fallback")
	cfg.Extraction.PlaceholderAssigneeID = viper.GetString("extraction.placeholder_assignee_id")

	// LLM provider abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Task store
	cfg.TaskStore.BaseURL = viper.GetString("taskstore.base_url")
	cfg.TaskStore.AccessToken = viper.GetString("taskstore.access_token")
	if token := viper.GetString("taskstore_access_token"); token != "" {
		cfg.TaskStore.AccessToken = token
	}

	// Roster source
	cfg.Roster.BaseURL = viper.GetString("roster.base_url")
	cfg.Roster.AccessToken = viper.GetString("roster.access_token")
	cfg.Roster.CacheTTL = viper.GetString("roster.cache_ttl")
	if cfg.Roster.BaseURL == "" {
		cfg.Roster.BaseURL = cfg.TaskStore.BaseURL
	}
	if cfg.Roster.AccessToken == "" {
		cfg.Roster.AccessToken = cfg.TaskStore.AccessToken
	}

	// Notification dispatcher
	cfg.Notify.BaseURL = viper.GetString("notify.base_url")
	cfg.Notify.AccessToken = viper.GetString("notify.access_token")

	// Outbound mail
	cfg.Mail.Enabled = viper.GetBool("mail.enabled")
	cfg.Mail.CredentialsPath = viper.GetString("mail.credentials_path")
	cfg.Mail.FromAddress = viper.GetString("mail.from_address")
	if creds := viper.GetString("gmail_credentials"); creds != "" {
		cfg.Mail.CredentialsPath = creds
	}

	// Inbound mail webhook
	cfg.InboundMail.Enabled = viper.GetBool("inbound_mail.enabled")
	cfg.InboundMail.Secret = viper.GetString("inbound_mail.secret")
	if secret := viper.GetString("inbound_mail_secret"); secret != "" {
		cfg.InboundMail.Secret = secret
	}
	cfg.InboundMail.RateLimitPerMin = viper.GetInt("inbound_mail.rate_limit_per_min")

	var ips []string
	if rawIps := viper.GetString("inbound_mail.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.InboundMail.AllowedIPs = ips

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

	// Extraction defaults
	viper.SetDefault("extraction.timezone", "UTC")
	viper.SetDefault("extraction.llm_timeout", "25s")
	viper.SetDefault("extraction.assignment_fallback", "none")

	// Roster cache
	viper.SetDefault("roster.cache_ttl", "60s")

	// Inbound mail webhook
	viper.SetDefault("inbound_mail.enabled", true)
	viper.SetDefault("inbound_mail.rate_limit_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if v := viper.GetString(envVar); v != "" {
			return v
		}
		return os.Getenv(envVar)
	}

	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
