package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	AppDirName            = "todo"

	DefaultPollInterval         = 250 * time.Millisecond
	DefaultNotificationDuration = 7 * time.Second

	MaxPollInterval         = 250 * time.Millisecond
	MinNotificationDuration = 5 * time.Second
	MaxNotificationDuration = 7 * time.Second
)

// Duration is a time.Duration stored as a Go duration string ("250ms").
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Binding is one action's keys plus the label shown in the controls strip.
type Binding struct {
	Keys []string `toml:"keys"`
	Help string   `toml:"help"`
	Desc string   `toml:"desc"`
}

type Keymap struct {
	Up      Binding `toml:"up"`
	Down    Binding `toml:"down"`
	Toggle  Binding `toml:"toggle"`
	Delete  Binding `toml:"delete"`
	NewTask Binding `toml:"new_task"`
	List    Binding `toml:"list"`
	Quit    Binding `toml:"quit"`
	Focus   Binding `toml:"focus"`
	Submit  Binding `toml:"submit"`
	Normal  Binding `toml:"normal"`
}

// Seed is a task created at startup.
type Seed struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

type Config struct {
	PollInterval         Duration `toml:"poll_interval"`
	NotificationDuration Duration `toml:"notification_duration"`
	LogFile              string   `toml:"log_file"`
	Keys                 Keymap   `toml:"keys"`
	Seed                 []Seed   `toml:"seed"`
}

// ResolveConfigPath returns <user config dir>/todo/config.toml, or
// config.toml in the working directory when no config dir is known.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path. A missing file is created with the
// defaults. Settings left out of an existing file keep their defaults.
func LoadOrCreate(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("couldn't write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("couldn't read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("couldn't parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML, fills unset settings from Default and validates.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fill(Default())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) fill(def Config) {
	if c.PollInterval.Duration == 0 {
		c.PollInterval = def.PollInterval
	}
	if c.NotificationDuration.Duration == 0 {
		c.NotificationDuration = def.NotificationDuration
	}
	if c.Seed == nil {
		c.Seed = def.Seed
	}
	fillBinding(&c.Keys.Up, def.Keys.Up)
	fillBinding(&c.Keys.Down, def.Keys.Down)
	fillBinding(&c.Keys.Toggle, def.Keys.Toggle)
	fillBinding(&c.Keys.Delete, def.Keys.Delete)
	fillBinding(&c.Keys.NewTask, def.Keys.NewTask)
	fillBinding(&c.Keys.List, def.Keys.List)
	fillBinding(&c.Keys.Quit, def.Keys.Quit)
	fillBinding(&c.Keys.Focus, def.Keys.Focus)
	fillBinding(&c.Keys.Submit, def.Keys.Submit)
	fillBinding(&c.Keys.Normal, def.Keys.Normal)
}

func fillBinding(b *Binding, def Binding) {
	if len(b.Keys) == 0 {
		*b = def
		return
	}
	if b.Help == "" {
		b.Help = strings.Join(b.Keys, "/")
	}
	if b.Desc == "" {
		b.Desc = def.Desc
	}
}

// Validate checks ranges and required fields, naming the first bad one.
func (c Config) Validate() error {
	if c.PollInterval.Duration <= 0 || c.PollInterval.Duration > MaxPollInterval {
		return fmt.Errorf("poll_interval %s: must be in (0, %s]", c.PollInterval, MaxPollInterval)
	}
	d := c.NotificationDuration.Duration
	if d < MinNotificationDuration || d > MaxNotificationDuration {
		return fmt.Errorf("notification_duration %s: must be in [%s, %s]", c.NotificationDuration, MinNotificationDuration, MaxNotificationDuration)
	}
	for _, b := range []struct {
		name string
		Binding
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"toggle", c.Keys.Toggle},
		{"delete", c.Keys.Delete},
		{"new_task", c.Keys.NewTask},
		{"list", c.Keys.List},
		{"quit", c.Keys.Quit},
		{"focus", c.Keys.Focus},
		{"submit", c.Keys.Submit},
		{"normal", c.Keys.Normal},
	} {
		if len(b.Keys) == 0 {
			return fmt.Errorf("keys.%s: no keys bound", b.name)
		}
		for _, k := range b.Keys {
			if k == "" {
				return fmt.Errorf("keys.%s: empty key", b.name)
			}
		}
	}
	for i, s := range c.Seed {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("seed[%d]: title is empty", i)
		}
	}
	return nil
}

func Default() Config {
	return Config{
		PollInterval:         Duration{DefaultPollInterval},
		NotificationDuration: Duration{DefaultNotificationDuration},
		Keys: Keymap{
			Up:      Binding{Keys: []string{"k", "up"}, Help: "k", Desc: "UP"},
			Down:    Binding{Keys: []string{"j", "down"}, Help: "j", Desc: "DN"},
			Toggle:  Binding{Keys: []string{"enter", "tab"}, Help: "TAB/Enter", Desc: "toggle task status"},
			Delete:  Binding{Keys: []string{"d", "delete"}, Help: "d/DEL", Desc: "delete task"},
			NewTask: Binding{Keys: []string{"n"}, Help: "n", Desc: "new task"},
			List:    Binding{Keys: []string{"l"}, Help: "l", Desc: "back to list"},
			Quit:    Binding{Keys: []string{"q", "esc"}, Help: "q/esc", Desc: "quit"},
			Focus:   Binding{Keys: []string{"tab"}, Help: "TAB", Desc: "edit / next field"},
			Submit:  Binding{Keys: []string{"enter"}, Help: "Enter", Desc: "add task"},
			Normal:  Binding{Keys: []string{"esc"}, Help: "esc", Desc: "stop editing"},
		},
		Seed: []Seed{
			{Title: "Buy groceries", Description: "milk, eggs, bread\nand something for dinner"},
			{Title: "Write weekly report", Description: "summarize what shipped and what slipped"},
			{Title: "Call the dentist", Description: "reschedule the cleaning to next month"},
			{Title: "Water the plants", Description: "the ferns on the balcony need it the most"},
			{Title: "Read a chapter", Description: "keep going with the book on the nightstand"},
		},
	}
}
