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

	"pricealert/internal/domain/constants"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env                string        `json:"env" yaml:"env"`
		ServiceName        string        `json:"serviceName" yaml:"serviceName"`
		Debug              bool          `json:"debug" yaml:"debug"`
		// AutoMigrate creates the alert tables on start; meant for local development.
		AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
		Log                Log           `json:"log" yaml:"log"`
		// SlowQueryThreshold is the elapsed time above which a SQL statement is logged at warn.
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
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

	// SecretKey.Access verifies access tokens minted by the identity service.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	InApp *InAppConfig `json:"inApp" yaml:"inApp"`

	Email *EmailConfig `json:"email" yaml:"email"`

	SMS *SMSConfig `json:"sms" yaml:"sms"`

	// PubSub configures the push subscription that triggers the worker.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Delivery DeliveryConfig `json:"delivery" yaml:"delivery"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// InAppConfig selects the Firestore collection in-app notifications are written to.
type InAppConfig struct {
	Enabled    bool          `json:"enabled" yaml:"enabled"`
	Collection string        `json:"collection" yaml:"collection"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
}

// EmailConfig defines the transactional email provider.
type EmailConfig struct {
	// Provider is "postmark" or "log"
	Provider     string `json:"provider" yaml:"provider"`
	ServerToken  string `json:"serverToken" yaml:"serverToken"`
	AccountToken string `json:"accountToken" yaml:"accountToken"`
	SenderEmail  string `json:"senderEmail" yaml:"senderEmail"`
	SupportEmail string `json:"supportEmail" yaml:"supportEmail"`
}

// SMSConfig defines how text messages reach the SMS gateway.
type SMSConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// RatePerSecond caps gateway hand-offs; zero disables throttling.
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int     `json:"burst" yaml:"burst"`
}

// PubSubConfig defines how the worker authenticates Pub/Sub push requests
type PubSubConfig struct {
	// Audience expected in the push OIDC token; empty disables verification.
	Audience string `json:"audience" yaml:"audience"`

	// ServiceAccountEmail expected as the token's email claim.
	ServiceAccountEmail string `json:"serviceAccountEmail" yaml:"serviceAccountEmail"`
}

// RedisConfig enables the distributed alert lock, the preferences cache and shared statistics.
type RedisConfig struct {
	URL            string        `json:"url" yaml:"url"`
	RetryAttempts  int           `json:"retryAttempts" yaml:"retryAttempts"`
	RetryInterval  time.Duration `json:"retryInterval" yaml:"retryInterval"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	PreferencesTTL time.Duration `json:"preferencesTtl" yaml:"preferencesTtl"`
}

// DeliveryConfig tunes the alert delivery engine.
type DeliveryConfig struct {
	ChannelTimeout time.Duration `json:"channelTimeout" yaml:"channelTimeout"`
	LockTTL        time.Duration `json:"lockTtl" yaml:"lockTtl"`
	SaveRetries    int           `json:"saveRetries" yaml:"saveRetries"`

	// Per-channel attempt budget inside one pass.
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	BaseDelay   time.Duration `json:"baseDelay" yaml:"baseDelay"`

	BatchSize       int           `json:"batchSize" yaml:"batchSize"`
	BatchMaxRetries int           `json:"batchMaxRetries" yaml:"batchMaxRetries"`
	BatchRetryDelay time.Duration `json:"batchRetryDelay" yaml:"batchRetryDelay"`
	BatchTimeout    time.Duration `json:"batchTimeout" yaml:"batchTimeout"`

	// ProcessInterval is how often the worker sweeps due alerts; zero disables the sweep.
	ProcessInterval time.Duration `json:"processInterval" yaml:"processInterval"`
	ProcessLimit    int           `json:"processLimit" yaml:"processLimit"`
	HistoryLimit    int           `json:"historyLimit" yaml:"historyLimit"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if strings.TrimSpace(cfg.Env.Env) == "" {
		cfg.Env.Env = constants.EnvDevelop
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	cfg.Delivery.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
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
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

func (d *DeliveryConfig) applyDefaults() {
	if d.ChannelTimeout <= 0 {
		d.ChannelTimeout = 10 * time.Second
	}
	if d.LockTTL <= 0 {
		d.LockTTL = 2 * time.Minute
	}
	if d.SaveRetries <= 0 {
		d.SaveRetries = 3
	}
	if d.MaxAttempts <= 0 {
		d.MaxAttempts = 3
	}
	if d.BaseDelay <= 0 {
		d.BaseDelay = time.Second
	}
	if d.BatchSize <= 0 {
		d.BatchSize = 50
	}
	if d.BatchRetryDelay <= 0 {
		d.BatchRetryDelay = time.Second
	}
	if d.BatchTimeout <= 0 {
		d.BatchTimeout = time.Minute
	}
	if d.ProcessLimit <= 0 {
		d.ProcessLimit = 500
	}
	if d.HistoryLimit <= 0 {
		d.HistoryLimit = 100
	}
}
