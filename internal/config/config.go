package config

import "time"

type Config struct {
	Server     ServerConfig  `mapstructure:"server"`
	Sync       SyncConfig    `mapstructure:"sync"`
	Journal    JournalConfig `mapstructure:"journal"`
	ConfigPath string        `mapstructure:"-"`
}

type ServerConfig struct {
	URL              string        `mapstructure:"url"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	PingInterval     time.Duration `mapstructure:"ping_interval"`
	ReconnectDelay   time.Duration `mapstructure:"reconnect_delay"`
}

type SyncConfig struct {
	AutoSelectNewAccount bool          `mapstructure:"auto_select_new_account"`
	Settle               time.Duration `mapstructure:"settle"`
	Assertions           bool          `mapstructure:"assertions"`
}

type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func NewDefault() *Config {
	return &Config{
		Server: ServerConfig{
			URL:              "ws://localhost:9012",
			HandshakeTimeout: 2 * time.Second,
			WriteTimeout:     5 * time.Second,
			ReadTimeout:      30 * time.Second,
			PingInterval:     10 * time.Second,
			ReconnectDelay:   2 * time.Second,
		},
		Sync: SyncConfig{
			AutoSelectNewAccount: false,
			Settle:               300 * time.Millisecond,
			Assertions:           true,
		},
		Journal: JournalConfig{Enabled: false, Path: ""},
	}
}

// SetDefaults mirrors NewDefault into viper so that env overrides work for
// keys absent from the config file.
func SetDefaults(set func(key string, value any)) {
	d := NewDefault()
	set("server.url", d.Server.URL)
	set("server.handshake_timeout", d.Server.HandshakeTimeout)
	set("server.write_timeout", d.Server.WriteTimeout)
	set("server.read_timeout", d.Server.ReadTimeout)
	set("server.ping_interval", d.Server.PingInterval)
	set("server.reconnect_delay", d.Server.ReconnectDelay)
	set("sync.auto_select_new_account", d.Sync.AutoSelectNewAccount)
	set("sync.settle", d.Sync.Settle)
	set("sync.assertions", d.Sync.Assertions)
	set("journal.enabled", d.Journal.Enabled)
	set("journal.path", d.Journal.Path)
}
