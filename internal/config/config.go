package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（3000）
	GoEnv string // development/production

	DatabaseURL      string // あれば最優先
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	JWTSecret    string        // JWT署名シークレット
	JWTExpiresIn time.Duration // トークンの有効期限
	BcryptCost   int

	BodyLimit        string
	CORSAllowOrigins []string
	LogLevel         string

	// trueなら注文時に在庫を減らす
	OrderReserveStock bool

	RabbitMQURL    string // 空ならイベント発行しない
	EventsExchange string

	SuperAdminEmail     string
	SuperAdminPassword  string
	SuperAdminFirstName string
	SuperAdminLastName  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "doka")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("BODY_LIMIT", "50K")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ORDER_RESERVE_STOCK", false)
	v.SetDefault("EVENTS_EXCHANGE", "doka.events")
	v.SetDefault("SUPER_ADMIN_FIRST_NAME", "Super")
	v.SetDefault("SUPER_ADMIN_LAST_NAME", "Admin")
}

// Loadは.env（あれば）→環境変数の順で読む
func Load() (Config, error) {
	//.envがなくてもエラーにしない
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	ttl, err := time.ParseDuration(v.GetString("JWT_EXPIRES_IN"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN must be a duration: %w", err)
	}

	cfg := Config{
		Port:  v.GetString("PORT"),
		GoEnv: v.GetString("GO_ENV"),

		DatabaseURL:      v.GetString("DATABASE_URL"),
		PostgresHost:     v.GetString("POSTGRES_HOST"),
		PostgresPort:     v.GetInt("POSTGRES_PORT"),
		PostgresUser:     v.GetString("POSTGRES_USER"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresSSLMode:  v.GetString("POSTGRES_SSLMODE"),

		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTExpiresIn: ttl,
		BcryptCost:   v.GetInt("BCRYPT_COST"),

		BodyLimit:        v.GetString("BODY_LIMIT"),
		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		LogLevel:         strings.ToLower(v.GetString("LOG_LEVEL")),

		OrderReserveStock: v.GetBool("ORDER_RESERVE_STOCK"),

		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		EventsExchange: v.GetString("EVENTS_EXCHANGE"),

		SuperAdminEmail:     v.GetString("SUPER_ADMIN_EMAIL"),
		SuperAdminPassword:  v.GetString("SUPER_ADMIN_PASSWORD"),
		SuperAdminFirstName: v.GetString("SUPER_ADMIN_FIRST_NAME"),
		SuperAdminLastName:  v.GetString("SUPER_ADMIN_LAST_NAME"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.JWTExpiresIn <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}
	if cfg.BcryptCost <= 0 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be positive")
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}

	return cfg, nil
}

// PostgresのDSN
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// ":3000" の形にそろえる
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsProduction() bool {
	return c.GoEnv == "production"
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
