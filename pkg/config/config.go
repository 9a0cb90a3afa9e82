package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is applied by envconfig to untagged fields; every field below
// carries an explicit BP_* name.
const EnvPrefix = "bp"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "BP_APP_ENV"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	GCP           GCPConfig
	GCS           GCSConfig
	PubSub        PubSubConfig
	Membership    MembershipConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BP_APP_ENV" required:"true"`
	Port         string `envconfig:"BP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"BP_DB_DSN" required:"true"`

	MaxOpenConns    int           `envconfig:"BP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BP_REDIS_ADDR"`
	Password     string        `envconfig:"BP_REDIS_PASSWORD"`
	DB           int           `envconfig:"BP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"BP_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"BP_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"BP_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"BP_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"BP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BP_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"BP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"BP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"BP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"BP_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"BP_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"BP_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate   bool `envconfig:"BP_AUTO_MIGRATE" default:"false"`
	PublishEvents bool `envconfig:"BP_PUBLISH_EVENTS" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"BP_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"BP_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"BP_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName  string `envconfig:"BP_GCS_BUCKET_NAME" required:"true"`
	MaxUploadMB int    `envconfig:"BP_MAX_UPLOAD_MB" default:"10"`
}

type PubSubConfig struct {
	PartnerEventsTopic       string `envconfig:"BP_PUBSUB_PARTNER_EVENTS_TOPIC" default:"bp-partner-events"`
	NotificationSubscription string `envconfig:"BP_PUBSUB_NOTIFICATION_SUBSCRIPTION"`
}

type MembershipConfig struct {
	NumberPrefix string `envconfig:"BP_MEMBERSHIP_NUMBER_PREFIX" default:"BP"`
}
