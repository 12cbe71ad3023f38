package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultEnvFile            = ".env"
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

	// Firebase project shared by Firestore, Auth and Cloud Messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Store selects the document store backing the store and favorite collections
	Store *StoreConfig `json:"store" yaml:"store"`

	// Identity selects how bearer tokens are verified
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Map holds camera and overlay defaults for map sessions
	Map *MapConfig `json:"map" yaml:"map"`

	// Location holds first-fix and watch parameters
	Location *LocationConfig `json:"location" yaml:"location"`

	// Session configures the websocket map session transport
	Session *SessionConfig `json:"session" yaml:"session"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// QRCode configuration for store share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project and service account
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// StoreConfig defines the document store provider and collection names
type StoreConfig struct {
	// Provider type: "firestore" or "memory"
	Provider           string `json:"provider" yaml:"provider"`
	StoreCollection    string `json:"storeCollection" yaml:"storeCollection"`
	FavoriteCollection string `json:"favoriteCollection" yaml:"favoriteCollection"`
}

// IdentityConfig defines token verification
type IdentityConfig struct {
	// Provider type: "firebase" or "local"
	Provider string `json:"provider" yaml:"provider"`

	// Secret for HS256 tokens issued by the local provider
	LocalSecret string `json:"localSecret" yaml:"localSecret"`

	LocalTokenTTL time.Duration `json:"localTokenTtl" yaml:"localTokenTtl"`
}

// MapConfig defines map camera defaults
type MapConfig struct {
	FallbackLatitude  float64       `json:"fallbackLatitude" yaml:"fallbackLatitude"`
	FallbackLongitude float64       `json:"fallbackLongitude" yaml:"fallbackLongitude"`
	DefaultZoom       float64       `json:"defaultZoom" yaml:"defaultZoom"`
	SearchZoom        float64       `json:"searchZoom" yaml:"searchZoom"`
	Pitch             float64       `json:"pitch" yaml:"pitch"`
	AnimationDuration time.Duration `json:"animationDuration" yaml:"animationDuration"`
	RadiusMeters      float64       `json:"radiusMeters" yaml:"radiusMeters"`
	RadiusSteps       int           `json:"radiusSteps" yaml:"radiusSteps"`
}

// LocationConfig defines geolocation parameters
type LocationConfig struct {
	FirstFixTimeout      time.Duration `json:"firstFixTimeout" yaml:"firstFixTimeout"`
	HighAccuracy         bool          `json:"highAccuracy" yaml:"highAccuracy"`
	DistanceFilterMeters float64       `json:"distanceFilterMeters" yaml:"distanceFilterMeters"`
	Interval             time.Duration `json:"interval" yaml:"interval"`
	FastestInterval      time.Duration `json:"fastestInterval" yaml:"fastestInterval"`
}

// SessionConfig defines websocket keep-alive and limits
type SessionConfig struct {
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	PongTimeout  time.Duration `json:"pongTimeout" yaml:"pongTimeout"`
	PingInterval time.Duration `json:"pingInterval" yaml:"pingInterval"`
	ReadLimit    int64         `json:"readLimit" yaml:"readLimit"`
	SendBuffer   int           `json:"sendBuffer" yaml:"sendBuffer"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML. Keys are aligned with existing camelCase keys,
	// e.g. FIREBASE_PROJECTID -> firebase.projectId
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
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
	if err := loadDotEnv(defaultEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// loadDotEnv populates the process environment from an optional dotenv file.
// Variables that are already set are left untouched.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = "memory"
	}
	if cfg.Store.StoreCollection == "" {
		cfg.Store.StoreCollection = "store"
	}
	if cfg.Store.FavoriteCollection == "" {
		cfg.Store.FavoriteCollection = "fav"
	}

	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if cfg.Identity.Provider == "" {
		cfg.Identity.Provider = "local"
	}
	if cfg.Identity.LocalTokenTTL == 0 {
		cfg.Identity.LocalTokenTTL = 24 * time.Hour
	}

	if cfg.Map == nil {
		cfg.Map = &MapConfig{}
	}
	cfg.Map.applyDefaults()

	if cfg.Location == nil {
		cfg.Location = &LocationConfig{HighAccuracy: true}
	}
	cfg.Location.applyDefaults()

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	cfg.Session.applyDefaults()

	if cfg.TestRoutes == nil {
		cfg.TestRoutes = &TestRoutesConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size == 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "medium"
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: "noop"}
	}
}

// Trichy city centre
const (
	DefaultFallbackLatitude  = 10.7905
	DefaultFallbackLongitude = 78.7047
)

func (m *MapConfig) applyDefaults() {
	if m.FallbackLatitude == 0 && m.FallbackLongitude == 0 {
		m.FallbackLatitude = DefaultFallbackLatitude
		m.FallbackLongitude = DefaultFallbackLongitude
	}
	if m.DefaultZoom == 0 {
		m.DefaultZoom = 13
	}
	if m.SearchZoom == 0 {
		m.SearchZoom = 16
	}
	if m.Pitch == 0 {
		m.Pitch = 30
	}
	if m.AnimationDuration == 0 {
		m.AnimationDuration = 800 * time.Millisecond
	}
	if m.RadiusMeters == 0 {
		m.RadiusMeters = 3000
	}
	if m.RadiusSteps == 0 {
		m.RadiusSteps = 128
	}
}

func (l *LocationConfig) applyDefaults() {
	if l.FirstFixTimeout == 0 {
		l.FirstFixTimeout = 10 * time.Second
	}
	if l.DistanceFilterMeters == 0 {
		l.DistanceFilterMeters = 5
	}
	if l.Interval == 0 {
		l.Interval = 5 * time.Second
	}
	if l.FastestInterval == 0 {
		l.FastestInterval = 2 * time.Second
	}
}

func (s *SessionConfig) applyDefaults() {
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 10 * time.Second
	}
	if s.PongTimeout == 0 {
		s.PongTimeout = 60 * time.Second
	}
	if s.PingInterval == 0 {
		s.PingInterval = s.PongTimeout * 9 / 10
	}
	if s.ReadLimit == 0 {
		s.ReadLimit = 4096
	}
	if s.SendBuffer == 0 {
		s.SendBuffer = 32
	}
}

func findFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
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
