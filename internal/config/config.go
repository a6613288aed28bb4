package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DictionaryConfig selects and tunes the dictionary to serve.
type DictionaryConfig struct {
	Path           string `yaml:"path"            env:"DICT_PATH"            env-required:"true"`
	GramtabFormat  string `yaml:"gramtab_format"  env:"DICT_GRAMTAB_FORMAT"  env-default:"opencorpora-int"`
	StrictVersion  bool   `yaml:"strict_version"  env:"DICT_STRICT_VERSION"  env-default:"false"`
	WordsIndex     string `yaml:"words_index"     env:"DICT_WORDS_INDEX"     env-default:"words.idx"`
	PredictionBase string `yaml:"prediction_base" env:"DICT_PREDICTION_BASE" env-default:"prediction-suffixes-"`
	PredictionExt  string `yaml:"prediction_ext"  env:"DICT_PREDICTION_EXT"  env-default:".idx"`
	CompleteLimit  int    `yaml:"complete_limit"  env:"DICT_COMPLETE_LIMIT"  env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
