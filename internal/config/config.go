package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Database and server settings are required
// and enforced at startup; mail settings are validated separately so a
// missing mail credential surfaces as a configuration error on dispatch
// instead of preventing the receipt API from serving.
type Config struct {
    Env       string // application environment (e.g. "dev", "prod")
    Port      string // HTTP port to listen on
    DBUser    string // database username
    DBPass    string // database password (optional)
    DBHost    string // database host address
    DBPort    string // database port number
    DBName    string // database name
    JWTSecret string // secret used to verify admin bearer tokens
    Mail      MailConfig
}

// MailConfig configures the transactional mail provider. APIKey may be
// empty: the dispatcher then reports ErrNotConfigured per send attempt
// rather than the process crashing opaquely at call time.
type MailConfig struct {
    APIKey  string // bearer token for the provider API
    From    string // sender identity, e.g. `GDC 2025 <bookings@gdc2025.ch>`
    ReplyTo string // reply-to address attached to confirmations
    BaseURL string // provider endpoint; overridable for tests
}

// Load reads configuration values from environment variables and returns
// a Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:       must("APP_ENV"),      // environment (dev/test/prod)
        Port:      must("APP_PORT"),     // port to bind the HTTP server
        DBUser:    must("DB_USER"),      // database user
        DBPass:    os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:    must("DB_HOST"),      // database host
        DBPort:    must("DB_PORT"),      // database port
        DBName:    must("DB_NAME"),      // database name
        JWTSecret: must("JWT_SECRET"),   // secret for admin route tokens
        Mail: MailConfig{
            APIKey:  os.Getenv("RESEND_API_KEY"), // empty -> dispatch reports ErrNotConfigured
            From:    getenv("MAIL_FROM", "GDC 2025 <bookings@gdc2025.ch>"),
            ReplyTo: getenv("MAIL_REPLY_TO", "info@gdc2025.ch"),
            BaseURL: os.Getenv("MAIL_BASE_URL"), // empty -> provider default
        },
    }
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
