package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and redis
// connections, the crawler, the job runner, the research vendor and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// Zero disables it, which the event stream endpoint relies on.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"0s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single non-streaming request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the allowed origins; an empty list allows any origin
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
		// EnablePprof mounts the runtime profiler under /debug/pprof
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"seoaudit" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the change notification channel
	Redis struct {
		// Addr is the redis address; notifications are disabled when empty
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// ChannelPrefix namespaces the pub/sub channels
		ChannelPrefix string `env:"REDIS_CHANNEL_PREFIX" env-default:"seoaudit" yaml:"channelPrefix"`
	} `yaml:"redis"`

	// JWT contains the key pair used to sign and verify bearer tokens
	JWT struct {
		PublicKeyPath  string `env:"JWT_PUBLIC_KEY_PATH" env-default:"keys/jwt.pub" yaml:"publicKeyPath"`
		PrivateKeyPath string `env:"JWT_PRIVATE_KEY_PATH" env-default:"keys/jwt.key" yaml:"privateKeyPath"`
	} `yaml:"jwt"`

	// Crawler configures website crawls
	Crawler struct {
		// HardPageCap bounds max_pages regardless of what a caller requests
		HardPageCap int `env:"CRAWLER_HARD_PAGE_CAP" env-default:"2000" yaml:"hardPageCap"`
		// PacingDelay is the minimum delay between two fetch starts of one crawl
		PacingDelay time.Duration `env:"CRAWLER_PACING_DELAY" env-default:"1s" yaml:"pacingDelay"`
		// ExternalLinkCap bounds how many external links are stored per page
		ExternalLinkCap int `env:"CRAWLER_EXTERNAL_LINK_CAP" env-default:"50" yaml:"externalLinkCap"`
		// Concurrency is the number of fetches one crawl may have in flight
		Concurrency int `env:"CRAWLER_CONCURRENCY" env-default:"1" yaml:"concurrency"`
		// RequestTimeout bounds a single page fetch
		RequestTimeout time.Duration `env:"CRAWLER_REQUEST_TIMEOUT" env-default:"15s" yaml:"requestTimeout"`
		// Deadline bounds a whole crawl including its analysis
		Deadline time.Duration `env:"CRAWLER_DEADLINE" env-default:"2h" yaml:"deadline"`
		// StaleAfter fails crawls still running this long after their start;
		// zero derives it from Deadline
		StaleAfter time.Duration `env:"CRAWLER_STALE_AFTER" yaml:"staleAfter"`
		// StaleSweepInterval is how often interrupted crawls are looked for;
		// zero disables the sweep
		StaleSweepInterval time.Duration `env:"CRAWLER_STALE_SWEEP_INTERVAL" env-default:"10m" yaml:"staleSweepInterval"`
		// UserAgent is sent with every fetch
		UserAgent string `env:"CRAWLER_USER_AGENT" env-default:"seoaudit-bot/1.0" yaml:"userAgent"`
		// Renderer is "http" for plain requests or "chrome" to render pages in
		// headless Chrome before extraction
		Renderer string `env:"CRAWLER_RENDERER" env-default:"http" yaml:"renderer"`
		// MaxTabs bounds the pages rendered at once by the chrome renderer
		MaxTabs int `env:"CRAWLER_MAX_TABS" env-default:"4" yaml:"maxTabs"`
		// Workers is the number of crawls processed concurrently by this process
		Workers int `env:"CRAWLER_WORKERS" env-default:"10" yaml:"workers"`
	} `yaml:"crawler"`

	// Jobs configures the generic job runner
	Jobs struct {
		// Deadline bounds a single job
		Deadline time.Duration `env:"JOBS_DEADLINE" env-default:"1h" yaml:"deadline"`
		// ItemDeadline bounds one item of a batch job
		ItemDeadline time.Duration `env:"JOBS_ITEM_DEADLINE" env-default:"1m" yaml:"itemDeadline"`
		// Workers is the number of jobs processed concurrently by this process
		Workers int `env:"JOBS_WORKERS" env-default:"20" yaml:"workers"`
	} `yaml:"jobs"`

	// Research configures the keyword, backlink and SERP data vendor
	Research struct {
		BaseURL string `env:"RESEARCH_BASE_URL" env-default:"https://api.seodata.example" yaml:"baseUrl"`
		APIKey  string `env:"RESEARCH_API_KEY" yaml:"apiKey"`
		// Timeout bounds a single vendor request
		Timeout time.Duration `env:"RESEARCH_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// BacklinkRate is the number of backlink requests allowed per second
		BacklinkRate float64 `env:"RESEARCH_BACKLINK_RATE" env-default:"0.5" yaml:"backlinkRate"`
	} `yaml:"research"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
