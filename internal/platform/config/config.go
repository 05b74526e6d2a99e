package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"pet-shelter-hub/internal/platform/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del hub por secciones.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      logger.Config  `mapstructure:"log"`
}

type ServerConfig struct {
	Port                string `mapstructure:"port" default:"8080"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds" default:"5"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" default:"15"`
	// Sin verifier: acepta X-Debug-User-ID / X-Debug-Role (solo dev).
	DevAuth bool `mapstructure:"dev_auth" default:"false"`
}

func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// BackendConfig apunta al backend REST de refugios.
// Si BaseURL está vacío el hub corre con repos in-memory.
type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url" default:""`
	APIKey         string `mapstructure:"api_key" default:""`
	APIKeyHeader   string `mapstructure:"api_key_header" default:"X-Api-Key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"10"`
}

func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	// DSN de Postgres para el journal de toggles. Vacío = in-memory.
	DSN          string `mapstructure:"dsn" default:""`
	MaxOpenConns int    `mapstructure:"max_open_conns" default:"10"`
}

// Load lee .env (si existe) y variables de entorno.
// Las claves anidadas mapean a env con "_" (backend.base_url -> BACKEND_BASE_URL).
func Load(dir string) (*Config, error) {
	envPath := ".env"
	if dir != "" && dir != "." {
		envPath = filepath.Join(dir, ".env")
	}
	// en producción no hay .env
	_ = godotenv.Load(envPath)

	v := viper.New()
	bindDefaults(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindDefaults recorre el struct y registra cada clave con su tag `default`,
// así AutomaticEnv la encuentra en Unmarshal.
func bindDefaults(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindDefaults(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
