// Package config holds the runtime-tunable knobs for the rest of waitkit:
// Dispatch's adaptive wake interval, channel default block sizes, timer
// resolution and the random engine's default entropy source. Loaded via
// spf13/viper from JSON/YAML/TOML/.env, with fsnotify-driven live reload
// for long-running dispatch processes. No other waitkit package reads a
// Config: dispatch and channel use built-in constants equal to Default.
package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/northbound-labs/waitkit/log"
)

// Config is the full set of runtime knobs, with field tags matching the
// viper keys they're loaded from.
type Config struct {
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Channel  ChannelConfig  `mapstructure:"channel"`
	Random   RandomConfig   `mapstructure:"random"`
}

// DispatchConfig holds wake-interval bounds for a Dispatch run loop's
// adaptive sleep.
type DispatchConfig struct {
	WakeMin time.Duration `mapstructure:"wake_min"`
	WakeMax time.Duration `mapstructure:"wake_max"`
}

// ChannelConfig tunes default channel behaviour.
type ChannelConfig struct {
	DefaultBlockSize int           `mapstructure:"default_block_size"`
	TimerResolution  time.Duration `mapstructure:"timer_resolution"`
}

// RandomConfig selects the default entropy source for engine seeding.
type RandomConfig struct {
	DefaultEntropySource string `mapstructure:"default_entropy_source"`
}

// Default returns the built-in defaults, used whenever no config file
// overrides a key.
func Default() Config {
	return Config{
		Dispatch: DispatchConfig{
			WakeMin: time.Microsecond,
			WakeMax: time.Millisecond,
		},
		Channel: ChannelConfig{
			DefaultBlockSize: 64 * 1024,
			TimerResolution:  time.Millisecond,
		},
		Random: RandomConfig{
			DefaultEntropySource: "device",
		},
	}
}

// Loader wraps a viper instance, holding the active Config behind a mutex
// so concurrent readers never observe a torn reload.
type Loader struct {
	v  *viper.Viper
	mu sync.RWMutex
	cb Config
}

// NewLoader builds a Loader seeded with Default, then, when path is not
// empty, merges in the file at path (any of viper's supported
// JSON/YAML/TOML/.env formats, inferred from the extension); a missing or
// unreadable file is returned as an error.
func NewLoader(path string) (*Loader, error) {
	v := viper.New()
	setDefaults(v, Default())
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	l := &Loader{v: v}
	if err := l.reload(); err != nil {
		return nil, err
	}
	return l, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("dispatch.wake_min", c.Dispatch.WakeMin)
	v.SetDefault("dispatch.wake_max", c.Dispatch.WakeMax)
	v.SetDefault("channel.default_block_size", c.Channel.DefaultBlockSize)
	v.SetDefault("channel.timer_resolution", c.Channel.TimerResolution)
	v.SetDefault("random.default_entropy_source", c.Random.DefaultEntropySource)
}

func (l *Loader) reload() error {
	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return err
	}
	l.mu.Lock()
	l.cb = c
	l.mu.Unlock()
	return nil
}

// Current returns a snapshot of the active configuration.
func (l *Loader) Current() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cb
}

// WatchForChanges starts an fsnotify watch on the loaded config file and
// reloads on every write, logging failures rather than propagating them
// (a bad edit mid-flight shouldn't crash a long-running dispatch process).
func (l *Loader) WatchForChanges() {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if err := l.reload(); err != nil {
			log.Config.Warnf("config reload from %s failed: %v", e.Name, err)
			return
		}
		log.Config.Infof("config reloaded from %s", e.Name)
	})
	l.v.WatchConfig()
}
