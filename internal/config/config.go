// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tochemey/counterakt/internal/validation"
	"github.com/tochemey/counterakt/log"
	"github.com/tochemey/counterakt/supervisor"
)

const (
	// EnvPrefix is the prefix of the environment variables overriding the configuration
	EnvPrefix = "COUNTERAKT"
	// EnvConfigFile names the environment variable holding the configuration file path
	EnvConfigFile = "COUNTERAKT_CONFIG"

	DefaultWorkerTicks        = 10
	DefaultWorkerTickInterval = time.Second
	DefaultLogDir             = "./"
	DefaultLogPrefix          = "tui"
	DefaultLogLevel           = "info"
	DefaultAskTimeout         = 5 * time.Second
	DefaultSupervisor         = "stop"
	DefaultMaxRestarts        = 1
)

// directives maps the actor.supervisor setting to a supervisor directive
var directives = map[string]supervisor.Directive{
	"stop":    supervisor.StopDirective,
	"resume":  supervisor.ResumeDirective,
	"restart": supervisor.RestartDirective,
}

// Config holds the application configuration.
type Config struct {
	Worker WorkerConfig
	Log    LogConfig
	Actor  ActorConfig
}

// WorkerConfig holds the computation unit settings.
type WorkerConfig struct {
	Ticks        int
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// LogConfig holds the log file settings.
type LogConfig struct {
	Dir    string
	Prefix string
	Level  string
}

// ActorConfig holds the actor runtime settings.
// A zero MailboxCapacity means unbounded mailboxes.
type ActorConfig struct {
	AskTimeout      time.Duration `mapstructure:"ask_timeout"`
	MailboxCapacity int           `mapstructure:"mailbox_capacity"`
	Supervisor      string
	MaxRestarts     uint32 `mapstructure:"max_restarts"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{
		Worker: WorkerConfig{
			Ticks:        DefaultWorkerTicks,
			TickInterval: DefaultWorkerTickInterval,
		},
		Log: LogConfig{
			Dir:    DefaultLogDir,
			Prefix: DefaultLogPrefix,
			Level:  DefaultLogLevel,
		},
		Actor: ActorConfig{
			AskTimeout:  DefaultAskTimeout,
			Supervisor:  DefaultSupervisor,
			MaxRestarts: DefaultMaxRestarts,
		},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix COUNTERAKT_.
// The file is COUNTERAKT_CONFIG when set, otherwise ~/.config/counterakt/config.toml
// when it exists.
func Load() (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("worker.ticks", defaults.Worker.Ticks)
	v.SetDefault("worker.tick_interval", defaults.Worker.TickInterval)
	v.SetDefault("log.dir", defaults.Log.Dir)
	v.SetDefault("log.prefix", defaults.Log.Prefix)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("actor.ask_timeout", defaults.Actor.AskTimeout)
	v.SetDefault("actor.mailbox_capacity", defaults.Actor.MailboxCapacity)
	v.SetDefault("actor.supervisor", defaults.Actor.Supervisor)
	v.SetDefault("actor.max_restarts", defaults.Actor.MaxRestarts)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvConfigFile)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "counterakt"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every invalid setting
func (c Config) Validate() error {
	return validation.New(validation.AllErrors()).
		AddValidator(validation.Positive("worker.ticks", c.Worker.Ticks)).
		AddValidator(validation.Positive("worker.tick_interval", c.Worker.TickInterval)).
		AddValidator(validation.Positive("actor.ask_timeout", c.Actor.AskTimeout)).
		AddAssertion(c.Actor.MailboxCapacity >= 0, "actor.mailbox_capacity must not be negative").
		AddValidator(validation.OneOf("actor.supervisor", c.Actor.Supervisor, "stop", "resume", "restart")).
		AddValidator(validation.Required("log.dir", c.Log.Dir)).
		AddValidator(validation.Required("log.prefix", c.Log.Prefix)).
		AddValidator(validation.OneOf("log.level", c.Log.Level, "debug", "info", "warn", "warning", "error")).
		Validate()
}

// ActorSupervisor returns the supervisor applied to both actors
func (c Config) ActorSupervisor() *supervisor.Supervisor {
	return supervisor.NewSupervisor(
		supervisor.WithAnyErrorDirective(directives[c.Actor.Supervisor]),
		supervisor.WithMaxRetries(c.Actor.MaxRestarts),
	)
}

// LogLevel returns the parsed log level
func (c Config) LogLevel() log.Level {
	return log.ParseLevel(c.Log.Level)
}
