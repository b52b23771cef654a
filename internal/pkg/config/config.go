package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   upstream API credentials), security settings
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Kakao   KakaoConfig
	OAuth   OAuthConfig
	Kopis   KopisConfig
	Tour    TourConfig
	OpenAI  OpenAIConfig
	Captcha CaptchaConfig
	Upload  UploadConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_SEARCH_TTL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// JWTConfig holds both token secrets. Admin tokens are signed with a
// separate secret so a member token can never open an admin route.
type JWTConfig struct {
	Secret        string `envconfig:"JWT_SECRET" required:"true"`
	Duration      string `envconfig:"JWT_DURATION" default:"24h"`
	AdminSecret   string `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	AdminDuration string `envconfig:"ADMIN_JWT_DURATION" default:"1h"`
}

// KakaoConfig carries the wallet-payment gateway settings. The three callback
// URLs are where the gateway sends the end user back after authorization.
type KakaoConfig struct {
	AdminKey    string `envconfig:"KAKAO_ADMIN_KEY" required:"true"`
	CID         string `envconfig:"KAKAO_CID" default:"TC0ONETIME"`
	BaseURL     string `envconfig:"KAKAO_PAY_BASE_URL" default:"https://kapi.kakao.com"`
	ApprovalURL string `envconfig:"KAKAO_APPROVAL_URL" default:"http://localhost:3000/payment/success"`
	FailURL     string `envconfig:"KAKAO_FAIL_URL" default:"http://localhost:3000/payment/fail"`
	CancelURL   string `envconfig:"KAKAO_CANCEL_URL" default:"http://localhost:3000/payment/cancel"`
}

type OAuthConfig struct {
	NaverClientID     string `envconfig:"NAVER_CLIENT_ID" default:""`
	NaverClientSecret string `envconfig:"NAVER_CLIENT_SECRET" default:""`
	KakaoClientID     string `envconfig:"KAKAO_CLIENT_ID" default:""`
	KakaoClientSecret string `envconfig:"KAKAO_CLIENT_SECRET" default:""`
	KakaoRedirectURI  string `envconfig:"KAKAO_REDIRECT_URI" default:""`
	GoogleClientID    string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	GoogleSecret      string `envconfig:"GOOGLE_CLIENT_SECRET" default:""`
	GoogleRedirectURI string `envconfig:"GOOGLE_REDIRECT_URI" default:""`
}

type KopisConfig struct {
	ServiceKey string `envconfig:"KOPIS_KEY" required:"true"`
	BaseURL    string `envconfig:"KOPIS_BASE_URL" default:"http://www.kopis.or.kr/openApi/restful"`
}

type TourConfig struct {
	ServiceKey string `envconfig:"TOUR_API_KEY" required:"true"`
	BaseURL    string `envconfig:"TOUR_BASE_URL" default:"https://apis.data.go.kr/B551011/KorService1"`
}

type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY" required:"true"`
	BaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

type CaptchaConfig struct {
	Secret    string        `envconfig:"RECAPTCHA_SECRET" default:""`
	VerifyURL string        `envconfig:"RECAPTCHA_VERIFY_URL" default:"https://www.google.com/recaptcha/api/siteverify"`
	Timeout   time.Duration `envconfig:"RECAPTCHA_TIMEOUT" default:"5s"`
}

type UploadConfig struct {
	Dir      string `envconfig:"UPLOAD_DIR" default:"upload_files"`
	MaxFiles int    `envconfig:"UPLOAD_MAX_FILES" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:        "test-secret",
			Duration:      "24h",
			AdminSecret:   "test-admin-secret",
			AdminDuration: "1h",
		},
		Kakao: KakaoConfig{
			AdminKey:    "test-admin-key",
			CID:         "TC0ONETIME",
			ApprovalURL: "http://localhost:3000/payment/success",
			FailURL:     "http://localhost:3000/payment/fail",
			CancelURL:   "http://localhost:3000/payment/cancel",
		},
		Upload: UploadConfig{
			Dir:      "upload_files",
			MaxFiles: 10,
		},
	}
}
