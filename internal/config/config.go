package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone  = "UTC"
	configPathEnv    = "MARKETBRIEF_CONFIG"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	telegramChatEnv  = "TELEGRAM_CHAT_ID"
	xBearerTokenEnv  = "X_BEARER_TOKEN"
	smtpUsernameEnv  = "SMTP_USERNAME"
	smtpPasswordEnv  = "SMTP_PASSWORD"
)

// Config holds high-level settings required across the application.
type Config struct {
	Feeds              []string           `yaml:"feeds"`
	LookbackHours      float64            `yaml:"lookbackHours"`
	MinTopScore        float64            `yaml:"minTopScore"`
	MaxItemsPerSection int                `yaml:"maxItemsPerSection"`
	Weights            WeightsConfig      `yaml:"weights"`
	Output             OutputConfig       `yaml:"output"`
	Email              EmailConfig        `yaml:"email"`
	X                  XConfig            `yaml:"x"`
	Notifications      NotificationConfig `yaml:"notifications"`
	Scheduler          SchedulerConfig    `yaml:"scheduler"`
	Logging            LoggingConfig      `yaml:"logging"`
}

// WeightsConfig drives scoring and classification. Loaded once per run and
// treated as read-only by every pipeline stage.
type WeightsConfig struct {
	Sources  map[string]float64  `yaml:"sources"`
	Keywords map[string][]string `yaml:"keywords"`
}

// OutputConfig describes where and how digest files are written.
type OutputConfig struct {
	Directory       string `yaml:"directory"`
	FilenamePrefix  string `yaml:"filenamePrefix"`
	Timezone        string `yaml:"timezone"`
	IncludeMarkdown *bool  `yaml:"includeMarkdown"`
	IncludeHTML     *bool  `yaml:"includeHtml"`

	location *time.Location `yaml:"-"`
}

// Location resolves the output timezone string to a time.Location.
func (o OutputConfig) Location() *time.Location {
	if o.location != nil {
		return o.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// Markdown reports whether a Markdown file should be written (default yes).
func (o OutputConfig) Markdown() bool {
	return o.IncludeMarkdown == nil || *o.IncludeMarkdown
}

// HTML reports whether an HTML file should be written (default yes).
func (o OutputConfig) HTML() bool {
	return o.IncludeHTML == nil || *o.IncludeHTML
}

// EmailConfig wires SMTP delivery of the digest.
type EmailConfig struct {
	Enabled  bool     `yaml:"enabled"`
	SMTPHost string   `yaml:"smtpHost"`
	SMTPPort int      `yaml:"smtpPort"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	FromName string   `yaml:"fromName"`
	To       []string `yaml:"to"`
}

// XConfig gates the optional X (Twitter) post retrieval.
type XConfig struct {
	Enabled            bool     `yaml:"enabled"`
	BearerToken        string   `yaml:"bearerToken"`
	Handles            []string `yaml:"handles"`
	MaxTweetsPerHandle int      `yaml:"maxTweetsPerHandle"`
}

// NotificationConfig encapsulates outbound chat channels.
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// SchedulerConfig defines when digest runs execute. An empty cron
// expression means a single run.
type SchedulerConfig struct {
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// LoggingConfig selects log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezones()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}

	if v := os.Getenv(xBearerTokenEnv); v != "" {
		c.X.BearerToken = v
	}

	if v := os.Getenv(smtpUsernameEnv); v != "" {
		c.Email.Username = v
	}

	if v := os.Getenv(smtpPasswordEnv); v != "" {
		c.Email.Password = v
	}
}

func (c *Config) bindTimezones() {
	c.Scheduler.location = resolveLocation(c.Scheduler.Timezone)
	c.Output.location = resolveLocation(c.Output.Timezone)
}

func resolveLocation(tz string) *time.Location {
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	return loc
}

func mergeConfig(base, override Config) Config {
	if len(override.Feeds) > 0 {
		base.Feeds = override.Feeds
	}

	if override.LookbackHours > 0 {
		base.LookbackHours = override.LookbackHours
	}
	if override.MinTopScore > 0 {
		base.MinTopScore = override.MinTopScore
	}
	if override.MaxItemsPerSection > 0 {
		base.MaxItemsPerSection = override.MaxItemsPerSection
	}

	if len(override.Weights.Sources) > 0 {
		base.Weights.Sources = override.Weights.Sources
	}
	if len(override.Weights.Keywords) > 0 {
		base.Weights.Keywords = override.Weights.Keywords
	}

	if override.Output.Directory != "" {
		base.Output.Directory = override.Output.Directory
	}
	if override.Output.FilenamePrefix != "" {
		base.Output.FilenamePrefix = override.Output.FilenamePrefix
	}
	if override.Output.Timezone != "" {
		base.Output.Timezone = override.Output.Timezone
	}
	if override.Output.IncludeMarkdown != nil {
		base.Output.IncludeMarkdown = override.Output.IncludeMarkdown
	}
	if override.Output.IncludeHTML != nil {
		base.Output.IncludeHTML = override.Output.IncludeHTML
	}

	if override.Email.Enabled {
		base.Email.Enabled = true
	}
	if override.Email.SMTPHost != "" {
		base.Email.SMTPHost = override.Email.SMTPHost
	}
	if override.Email.SMTPPort != 0 {
		base.Email.SMTPPort = override.Email.SMTPPort
	}
	if override.Email.Username != "" {
		base.Email.Username = override.Email.Username
	}
	if override.Email.Password != "" {
		base.Email.Password = override.Email.Password
	}
	if override.Email.FromName != "" {
		base.Email.FromName = override.Email.FromName
	}
	if len(override.Email.To) > 0 {
		base.Email.To = override.Email.To
	}

	if override.X.Enabled {
		base.X.Enabled = true
	}
	if override.X.BearerToken != "" {
		base.X.BearerToken = override.X.BearerToken
	}
	if len(override.X.Handles) > 0 {
		base.X.Handles = override.X.Handles
	}
	if override.X.MaxTweetsPerHandle > 0 {
		base.X.MaxTweetsPerHandle = override.X.MaxTweetsPerHandle
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if override.Scheduler.CronExpression != "" {
		base.Scheduler.CronExpression = override.Scheduler.CronExpression
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Feeds: []string{
			"https://feeds.content.dowjones.io/public/rss/mw_topstories",
			"https://finance.yahoo.com/news/rssindex",
		},
		LookbackHours:      24,
		MinTopScore:        2.0,
		MaxItemsPerSection: 12,
		Weights: WeightsConfig{
			Sources: map[string]float64{
				"wire":       2.0,
				"mainstream": 1.5,
				"blog":       1.0,
			},
			Keywords: map[string][]string{
				"macro":    {"inflation", "cpi", "gdp", "rate hike", "rate cut", "fed", "ecb", "boe", "unemployment", "nfp"},
				"earnings": {"earnings", "guidance", "revenue", "profit", "outlook", "beats", "misses"},
				"analyst":  {"upgrade", "downgrade", "price target", "initiates", "overweight", "underweight"},
				"mna":      {"merger", "acquisition", "takeover", "buyout", "stake", "activist"},
				"energy":   {"oil", "crude", "opec", "brent", "natural gas", "barrel"},
				"crypto":   {"bitcoin", "ethereum", "crypto", "btc", "eth", "stablecoin"},
			},
		},
		Output: OutputConfig{
			Directory:      "out",
			FilenamePrefix: "newsletter",
			Timezone:       "Europe/London",
			location:       tz,
		},
		Email: EmailConfig{SMTPPort: 587, FromName: "Market Brief"},
		X:     XConfig{MaxTweetsPerHandle: 5},
		Scheduler: SchedulerConfig{
			CronExpression: "",
			Timezone:       defaultTimezone,
			location:       tz,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
