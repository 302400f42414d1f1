package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Backends disponibles para el Catalog Store.
const (
	CatalogBackendPostgres = "postgres"
	CatalogBackendRemote   = "remote"
	CatalogBackendDemo     = "demo"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	HTTP     HTTPConfig
	Catalog  CatalogConfig
	Business BusinessConfig
	AI       AIConfig
	Identity IdentityConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env    string // development, staging, production
	Name   string
	Locale string // BCP 47, usado solo para mostrar montos (ej. "es-MX")
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogConfig selecciona el Catalog Store y el modo demo.
// DemoFallback es el modo offline designado: solo con él activo las lecturas fallidas
// por conectividad se sirven desde el dataset local.
type CatalogConfig struct {
	Backend        string // postgres, remote, demo
	RemoteURL      string // ej. https://mi-hosting.com/api.php
	TimeoutSeconds int
	DemoFallback   bool
}

// BusinessConfig valores por defecto del tenant cuando el store no tiene configuración.
type BusinessConfig struct {
	DefaultTaxPercentage float64
	DefaultCurrency      string
}

// AIConfig proveedor del servicio de insights.
type AIConfig struct {
	Provider         string // gemini, anthropic
	GeminiAPIKey     string
	GeminiModel      string
	GeminiBaseURL    string // vacío usa la API pública
	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string
	TimeoutSeconds   int
}

// IdentityConfig define cómo se resuelve el usuario actual.
// En modo "static" se usa el usuario fijo (sin autenticación real); en "jwt" se valida un Bearer token.
type IdentityConfig struct {
	Mode          string
	JWTSecret     string
	JWTIssuer     string
	JWTExpMinutes int
	StaticUserID  string
	StaticName    string
	StaticEmail   string
	StaticRole    string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:    getString(v, "APP_ENV", "development"),
			Name:   getString(v, "APP_NAME", "nexus-crm"),
			Locale: getString(v, "APP_LOCALE", "es-MX"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "nexus_crm"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Catalog: CatalogConfig{
			Backend:        strings.ToLower(getString(v, "CATALOG_BACKEND", CatalogBackendPostgres)),
			RemoteURL:      getString(v, "CATALOG_REMOTE_URL", ""),
			TimeoutSeconds: getInt(v, "CATALOG_TIMEOUT_SECONDS", 10),
			DemoFallback:   getBool(v, "CATALOG_DEMO_FALLBACK", false),
		},
		Business: BusinessConfig{
			DefaultTaxPercentage: getFloat(v, "BUSINESS_DEFAULT_TAX", 16),
			DefaultCurrency:      getString(v, "BUSINESS_DEFAULT_CURRENCY", "MXN"),
		},
		AI: AIConfig{
			Provider:         strings.ToLower(getString(v, "AI_PROVIDER", "gemini")),
			GeminiAPIKey:     getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:      getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			GeminiBaseURL:    getString(v, "GEMINI_BASE_URL", ""),
			AnthropicAPIKey:  getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:   getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			AnthropicBaseURL: getString(v, "ANTHROPIC_BASE_URL", ""),
			TimeoutSeconds:   getInt(v, "AI_TIMEOUT_SECONDS", 30),
		},
		Identity: IdentityConfig{
			Mode:          strings.ToLower(getString(v, "IDENTITY_MODE", "static")),
			JWTSecret:     getString(v, "JWT_SECRET", ""),
			JWTIssuer:     getString(v, "JWT_ISSUER", "nexus-crm"),
			JWTExpMinutes: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			StaticUserID:  getString(v, "STATIC_USER_ID", "u1"),
			StaticName:    getString(v, "STATIC_USER_NAME", "Carlos Admin"),
			StaticEmail:   getString(v, "STATIC_USER_EMAIL", "admin@nexus.com"),
			StaticRole:    strings.ToUpper(getString(v, "STATIC_USER_ROLE", "ADMIN")),
		},
	}

	switch cfg.Catalog.Backend {
	case CatalogBackendPostgres, CatalogBackendDemo:
	case CatalogBackendRemote:
		if cfg.Catalog.RemoteURL == "" {
			return nil, fmt.Errorf("config: CATALOG_REMOTE_URL es obligatorio con CATALOG_BACKEND=remote")
		}
	default:
		return nil, fmt.Errorf("config: CATALOG_BACKEND desconocido %q", cfg.Catalog.Backend)
	}
	if cfg.Identity.Mode == "jwt" && cfg.Identity.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio con IDENTITY_MODE=jwt")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		if s, ok := v.Get(key).(string); ok {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return def
			}
			return f
		}
		return v.GetFloat64(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
