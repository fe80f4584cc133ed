package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	App     App
	Mongo   Mongo
	JWT     JWT
	Redis   Redis
	Log     Log
	Sentry  Sentry
	Storage Storage
	Forms   Forms
	Stats   Stats
}

type App struct {
	Name     string
	Mode     Mode
	Port     string
	Origin   string // public site origin used in referral links
	Timezone string
	CORS     string
}

type Mongo struct {
	URI string
	DB  string
}

type JWT struct {
	Secret      string
	AccessTTL   time.Duration
	ReferralTTL time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Log struct {
	Level      string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type Sentry struct {
	Dsn         string
	Environment string
	SampleRate  float64
}

type Storage struct {
	Driver string // local, s3, cloudinary
	Local  LocalStorage
	S3     S3
	Cloud  Cloudinary
}

type LocalStorage struct {
	Dir     string
	BaseURL string
}

type S3 struct {
	Endpoint        string
	BaseURL         string
	Bucket          string
	Region          string
	AccessKey       string
	SecretAccessKey string
	Prefix          string
	UsePathStyle    bool
}

type Cloudinary struct {
	CloudName    string
	UploadPreset string
	Folder       string
}

type Forms struct {
	AllowDuplicateSubmissions bool
	LegacyEventRefLookup      bool
	DefaultMaxFileMB          float64
}

type Stats struct {
	CacheTTL     time.Duration
	RecentLimit  int
	TopEventsMax int
}

// Load reads .env (if present), an optional YAML file and the environment.
// The bare names MONGO_URI, MONGO_DB, PORT and JWT_SECRET are read before the
// CTC_ prefixed ones.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CTC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("mongo.uri", "MONGO_URI", "CTC_MONGO_URI")
	_ = v.BindEnv("mongo.db", "MONGO_DB", "CTC_MONGO_DB")
	_ = v.BindEnv("app.port", "PORT", "CTC_APP_PORT")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET", "CTC_JWT_SECRET")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "ctc-webbase")
	v.SetDefault("app.mode", string(ModeDebug))
	v.SetDefault("app.port", "8000")
	v.SetDefault("app.origin", "http://localhost:3000")
	v.SetDefault("app.timezone", "Asia/Kolkata")
	v.SetDefault("app.cors", "*")

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.db", "ctc")

	v.SetDefault("jwt.accessttl", 24*time.Hour)
	v.SetDefault("jwt.referralttl", 2*time.Hour)

	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.maxsize", 100)
	v.SetDefault("log.maxbackups", 5)
	v.SetDefault("log.maxage", 30)

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local.dir", "./uploads")
	v.SetDefault("storage.local.baseurl", "http://localhost:8000/uploads")

	v.SetDefault("forms.allowduplicatesubmissions", true)
	v.SetDefault("forms.legacyeventreflookup", false)
	v.SetDefault("forms.defaultmaxfilemb", 5.0)

	v.SetDefault("stats.cachettl", time.Minute)
	v.SetDefault("stats.recentlimit", 10)
	v.SetDefault("stats.topeventsmax", 5)
}

// Location resolves App.Timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
