package config

import (
	"fmt"
	"time"
)

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[transparency]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Addr is the listen address, host:port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Rates points at an optional YAML file overriding the built-in rate tables.
type Rates struct {
	File string `envconfig:"FILE"`
}

// AssessmentCache controls how long assessments stay retrievable by ID.
// With RedisURL set assessments are shared through Redis instead of memory.
type AssessmentCache struct {
	TTL             time.Duration `envconfig:"TTL" default:"15m"`
	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1m"`
	RedisURL        string        `envconfig:"REDIS_URL"`
	Prefix          string        `envconfig:"PREFIX" default:"transparency:assessment:"`
	RedisTimeout    time.Duration `envconfig:"REDIS_TIMEOUT" default:"2s"`
}

type App struct {
	Env       string           `envconfig:"APP_ENV" default:"development"`
	Server    *Server          `envconfig:"SERVER"`
	Log       *Log             `envconfig:"LOG"`
	RateLimit *RateLimit       `envconfig:"RATE_LIMIT"`
	Rates     *Rates           `envconfig:"RATES"`
	Cache     *AssessmentCache `envconfig:"ASSESSMENT_CACHE"`
}
