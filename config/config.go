// Package config loads the service configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
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

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Encryption configures the master key protecting stored credentials.
	Encryption *EncryptionConfig `json:"encryption" yaml:"encryption"`

	// InternalAuth configures how internal automation callers authenticate.
	InternalAuth *InternalAuthConfig `json:"internalAuth" yaml:"internalAuth"`

	// OAuth configures the authorization flow shared across providers.
	OAuth *OAuthConfig `json:"oauth" yaml:"oauth"`

	// Refresh configures the background token refresh scheduler.
	Refresh *RefreshConfig `json:"refresh" yaml:"refresh"`

	// PubSub configures audit event publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EncryptionConfig holds the master key material. The key is hex-encoded and
// must decode to exactly 32 bytes.
type EncryptionConfig struct {
	MasterKey  string `json:"masterKey" yaml:"masterKey"`
	KeyVersion int    `json:"keyVersion" yaml:"keyVersion"`
}

// InternalAuthConfig defines authentication for internal callers. TokenHash is
// a bcrypt hash of the shared static token; JWTSecret signs service-account
// tokens accepted as an alternative.
type InternalAuthConfig struct {
	TokenHash string `json:"tokenHash" yaml:"tokenHash"`
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
}

// OAuthConfig defines provider-independent OAuth flow settings.
type OAuthConfig struct {
	// FallbackRedirectURL is the dashboard URL users are sent back to when a
	// flow fails before the stored return URL is known.
	FallbackRedirectURL string        `json:"fallbackRedirectUrl" yaml:"fallbackRedirectUrl"`
	StateTTL            time.Duration `json:"stateTtl" yaml:"stateTtl"`
	SweepInterval       time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	ProviderTimeout     time.Duration `json:"providerTimeout" yaml:"providerTimeout"`
}

// RefreshConfig defines the background refresh scheduler settings.
type RefreshConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
	// Window is how far ahead of expiry a token is considered due.
	Window time.Duration `json:"window" yaml:"window"`
}

// PubSubConfig defines audit event publishing. Provider is "local" for the
// development HTTP push endpoint or "google" for Google Pub/Sub.
type PubSubConfig struct {
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: ENCRYPTION_MASTERKEY -> encryption.masterKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.OAuth == nil {
		cfg.OAuth = &OAuthConfig{}
	}
	if cfg.OAuth.StateTTL <= 0 {
		cfg.OAuth.StateTTL = 10 * time.Minute
	}
	if cfg.OAuth.SweepInterval <= 0 {
		cfg.OAuth.SweepInterval = 5 * time.Minute
	}
	if cfg.OAuth.ProviderTimeout <= 0 {
		cfg.OAuth.ProviderTimeout = 10 * time.Second
	}

	if cfg.Refresh == nil {
		cfg.Refresh = &RefreshConfig{Enabled: true}
	}
	if cfg.Refresh.Interval <= 0 {
		cfg.Refresh.Interval = time.Hour
	}
	if cfg.Refresh.Window <= 0 {
		cfg.Refresh.Window = time.Hour
	}

	if cfg.Encryption == nil {
		cfg.Encryption = &EncryptionConfig{}
	}
	if cfg.Encryption.KeyVersion <= 0 {
		cfg.Encryption.KeyVersion = 1
	}
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
