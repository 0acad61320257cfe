package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"

	"github.com/pr-poehali-dev/loft-massage-site/internal/schedule"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Digest   DigestConfig   `yaml:"digest"`
	Telegram TelegramConfig `yaml:"telegram"`
	Site     SiteConfig     `yaml:"site"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"massagesite" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// ScheduleConfig is the weekly availability rule. Weekdays absent from Days
// are closed days. When no days are configured at all, the built-in studio
// schedule applies.
type ScheduleConfig struct {
	SlotMinutes int         `yaml:"slot_minutes" env:"SCHEDULE_SLOT_MINUTES" env-default:"60" validate:"min=15,max=120"`
	Days        []DayConfig `yaml:"days"`
}

type DayConfig struct {
	Weekday string   `yaml:"weekday"`
	Windows []string `yaml:"windows"`
}

// Week materializes the configured weekly schedule.
func (c ScheduleConfig) Week() (schedule.Week, error) {
	if len(c.Days) == 0 {
		return schedule.Default(), nil
	}

	week := schedule.Week{
		Step: time.Duration(c.SlotMinutes) * time.Minute,
		Days: make(map[time.Weekday][]schedule.Window, len(c.Days)),
	}

	for _, day := range c.Days {
		weekday, err := schedule.ParseWeekday(day.Weekday)
		if err != nil {
			return schedule.Week{}, fmt.Errorf("schedule: %w", err)
		}
		for _, raw := range day.Windows {
			w, err := schedule.ParseWindow(raw)
			if err != nil {
				return schedule.Week{}, fmt.Errorf("schedule %s: %w", day.Weekday, err)
			}
			week.Days[weekday] = append(week.Days[weekday], w)
		}
	}

	return week, nil
}

type DigestConfig struct {
	Interval time.Duration `yaml:"interval" env:"DIGEST_INTERVAL" env-default:"24h" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	AdminChatID int64  `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID" env-default:"0"`
	EnableBot   bool   `yaml:"enable_bot"    env:"TELEGRAM_ENABLE_BOT"    env-default:"false"`
}

// SiteConfig carries the values needed to build public links (the
// cancellation URL sent to customers).
type SiteConfig struct {
	BaseURL string `yaml:"base_url" env:"SITE_BASE_URL" env-default:"http://localhost:8080"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
