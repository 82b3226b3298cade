package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/cerfical/hostaddr/internal/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config defines configurable application settings.
type Config struct {
	// Hosts is a list of host names or IP addresses separated with ',' or ';'.
	Hosts string `mapstructure:"hosts"`

	LogLevel log.Level `mapstructure:"log-level"`

	// Timeout limits the time spent on resolving all hosts, if non-zero.
	Timeout time.Duration `mapstructure:"timeout"`
}

// NewFlagSet defines the command-line flags understood by [Load].
func NewFlagSet(name string) *pflag.FlagSet {
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.String("hosts", "", "host names or IP addresses separated with ',' or ';'")
	f.String("log-level", log.LevelInfo.String(), "severity `level` of logging messages")
	f.Duration("timeout", 0, "wait duration for DNS lookups")
	f.String("config-file", "", "configuration `file` with the same keys as the flags")
	return f
}

// Load parses command-line arguments, merging them over an optional configuration file.
// Positional arguments are appended to the hosts.
func Load(f *pflag.FlagSet, args []string) (*Config, error) {
	if err := f.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	for _, name := range []string{"hosts", "log-level", "timeout"} {
		if err := v.BindPFlag(name, f.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %v: %w", name, err)
		}
	}

	if file, _ := f.GetString("config-file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}

	var config Config
	err := v.UnmarshalExact(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	hosts := append([]string{config.Hosts}, f.Args()...)
	if config.Hosts == "" {
		hosts = hosts[1:]
	}
	config.Hosts = strings.Join(hosts, ",")

	return &config, nil
}
