package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается один раз при старте
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Meeting   MeetingConfig   `toml:"meeting"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SMTPConfig настройки исходящей почты
// Если user/password не заданы, отправка писем отключается без ошибок
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// IsConfigured возвращает true, если заданы учетные данные для отправки почты
func (c *SMTPConfig) IsConfigured() bool {
	return c.User != "" && c.Password != ""
}

// MeetingConfig настройки провайдера встреч
type MeetingConfig struct {
	// Provider: "simple" (самодостаточный генератор ссылок, по умолчанию)
	// или "google" (создание событий в Google Calendar)
	Provider string `toml:"provider"`

	// Настройки для provider = "google"
	GoogleClientID     string `toml:"google_client_id"`
	GoogleClientSecret string `toml:"google_client_secret"`
	GoogleTokenFile    string `toml:"google_token_file"`
	GoogleCalendarID   string `toml:"google_calendar_id"`
}

// SchedulerConfig настройки планировщика напоминаний
type SchedulerConfig struct {
	Enabled             bool `toml:"enabled"`
	IntervalSeconds     int  `toml:"interval_seconds"`
	ReminderLeadMinutes int  `toml:"reminder_lead_minutes"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load загружает конфигурацию из TOML файла и применяет переопределения
// из переменных окружения (секреты и порт)
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		Meeting: MeetingConfig{
			Provider: "simple",
		},
		Scheduler: SchedulerConfig{
			Enabled:             true,
			IntervalSeconds:     60,
			ReminderLeadMinutes: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
	}
}

// applyEnvOverrides применяет переменные окружения поверх файла конфигурации.
// Секреты принято передавать через окружение, а не хранить в config.toml.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.SMTP.User = v
	}
	if v := os.Getenv("EMAIL_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		cfg.Meeting.GoogleClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		cfg.Meeting.GoogleClientSecret = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Meeting.Provider != "simple" && c.Meeting.Provider != "google" {
		return fmt.Errorf("config: unknown meeting provider %q", c.Meeting.Provider)
	}
	if c.Scheduler.IntervalSeconds <= 0 {
		return fmt.Errorf("config: scheduler interval_seconds must be positive")
	}
	if c.Scheduler.ReminderLeadMinutes <= 0 {
		return fmt.Errorf("config: scheduler reminder_lead_minutes must be positive")
	}
	return nil
}
