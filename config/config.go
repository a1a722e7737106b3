package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultGeoProviderURL = "https://ipapi.co"
	defaultGeoTimeout     = 5 * time.Second
	defaultGeoCacheTTL    = time.Hour
	defaultNotifyTimeout  = 10 * time.Second
	defaultNotifySource   = "pet-nfc"
	defaultRateLimitWin   = 5 * time.Minute
	defaultTagPageBaseURL = "http://localhost:8080"
	defaultTagQRSize      = 256
	defaultTagQRLevel     = "Q"

	// Environment variables read by the original serverless deployment.
	legacyWebhookURLEnv  = "N8N_WEBHOOK_URL"
	legacyGeoProviderEnv = "GEO_PROVIDER_URL"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Notify configures the owner alert webhook. An empty WebhookURL selects simulation mode.
	Notify *NotifyConfig `json:"notify" yaml:"notify"`

	// Geo configures client IP geolocation
	Geo *GeoConfig `json:"geo" yaml:"geo"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Tag configures the printable QR code pointing at a pet's page
	Tag *TagConfig `json:"tag" yaml:"tag"`

	// Events configures the owner alert event stream. An empty provider disables it.
	Events *EventsConfig `json:"events" yaml:"events"`

	// Redis is only required when rateLimit.store is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// NotifyConfig defines the automation webhook that relays WhatsApp alerts
type NotifyConfig struct {
	WebhookURL string        `json:"webhookUrl" yaml:"webhookUrl"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	Source     string        `json:"source" yaml:"source"`
}

// GeoConfig defines how client IPs are turned into an approximate location
type GeoConfig struct {
	// Provider is "http" (default) or "maxmind"
	Provider string `json:"provider" yaml:"provider"`

	// ProviderURL is the base URL of the HTTP provider; the IP is appended as /{ip}/json/
	ProviderURL string `json:"providerUrl" yaml:"providerUrl"`

	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	// DatabasePath points to a GeoLite2/GeoIP2 City database for the maxmind provider
	DatabasePath string `json:"databasePath" yaml:"databasePath"`
}

// RateLimitConfig defines owner alert throttling
type RateLimitConfig struct {
	// Store is "memory" (default) or "redis"
	Store  string        `json:"store" yaml:"store"`
	Window time.Duration `json:"window" yaml:"window"`
}

// TagConfig defines the link encoded in a pet tag's QR code: {pageBaseUrl}/pet/{id}
type TagConfig struct {
	PageBaseURL       string `json:"pageBaseUrl" yaml:"pageBaseUrl"`
	QRSize            int    `json:"qrSize" yaml:"qrSize"`
	QRErrorCorrection string `json:"qrErrorCorrection" yaml:"qrErrorCorrection"`
}

// EventsConfig selects where owner alert events are published
type EventsConfig struct {
	// Provider is "" (disabled), "local" or "google"
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// NOTIFY_WEBHOOKURL -> notify.webhookUrl, matched against the keys already present in YAML
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			if isLegacyEnv(k) {
				return "", nil
			}

			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the sections the service cannot run without.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Notify == nil {
		cfg.Notify = &NotifyConfig{}
	}
	if cfg.Notify.WebhookURL == "" {
		cfg.Notify.WebhookURL = os.Getenv(legacyWebhookURLEnv)
	}
	if cfg.Notify.Timeout <= 0 {
		cfg.Notify.Timeout = defaultNotifyTimeout
	}
	if cfg.Notify.Source == "" {
		cfg.Notify.Source = defaultNotifySource
	}

	if cfg.Geo == nil {
		cfg.Geo = &GeoConfig{}
	}
	if cfg.Geo.ProviderURL == "" {
		cfg.Geo.ProviderURL = os.Getenv(legacyGeoProviderEnv)
	}
	if cfg.Geo.ProviderURL == "" {
		cfg.Geo.ProviderURL = defaultGeoProviderURL
	}
	if cfg.Geo.Timeout <= 0 {
		cfg.Geo.Timeout = defaultGeoTimeout
	}
	if cfg.Geo.CacheTTL == 0 {
		cfg.Geo.CacheTTL = defaultGeoCacheTTL
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = defaultRateLimitWin
	}

	if cfg.Tag == nil {
		cfg.Tag = &TagConfig{}
	}
	cfg.Tag.PageBaseURL = strings.TrimRight(cfg.Tag.PageBaseURL, "/")
	if cfg.Tag.PageBaseURL == "" {
		cfg.Tag.PageBaseURL = defaultTagPageBaseURL
	}
	if cfg.Tag.QRSize <= 0 {
		cfg.Tag.QRSize = defaultTagQRSize
	}
	if cfg.Tag.QRErrorCorrection == "" {
		cfg.Tag.QRErrorCorrection = defaultTagQRLevel
	}
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// isLegacyEnv reports env names resolved by applyDefaults. Left to the env
// provider, GEO_PROVIDER_URL would turn geo.provider into a map.
func isLegacyEnv(key string) bool {
	return key == legacyWebhookURLEnv || key == legacyGeoProviderEnv
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
