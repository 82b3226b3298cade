package config_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cerfical/hostaddr/internal/config"
	"github.com/cerfical/hostaddr/internal/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"
)

func TestConfig(t *testing.T) {
	suite.Run(t, new(ConfigTest))
}

type ConfigTest struct {
	suite.Suite
}

func (t *ConfigTest) TestLoad() {
	flagTests := map[string]struct {
		arg  string
		want func(*config.Config)
	}{
		"hosts": {
			arg: "10.0.0.1,example.com;192.168.1.1",
			want: func(c *config.Config) {
				t.Equal("10.0.0.1,example.com;192.168.1.1", c.Hosts)
			},
		},

		"timeout": {
			arg: "12s",
			want: func(c *config.Config) {
				t.Equal(time.Second*12, c.Timeout)
			},
		},

		"log-level": {
			arg: "verbose",
			want: func(c *config.Config) {
				t.Equal(log.LevelVerbose, c.LogLevel)
			},
		},
	}

	for flagName, test := range flagTests {
		t.Run(fmt.Sprintf("supports %s flag", flagName), func() {
			config := t.load(fmt.Sprintf("--%s", flagName), test.arg)
			test.want(config)
		})
	}

	t.Run("uses defaults if no options are given", func() {
		config := t.load()

		t.Equal("", config.Hosts)
		t.Equal(log.LevelInfo, config.LogLevel)
		t.Zero(config.Timeout)
	})

	t.Run("appends positional arguments to hosts", func() {
		config := t.load("--hosts", "10.0.0.1", "example.com", "10.0.0.2")
		t.Equal("10.0.0.1,example.com,10.0.0.2", config.Hosts)
	})

	t.Run("uses positional arguments as hosts", func() {
		config := t.load("example.com", "10.0.0.2")
		t.Equal("example.com,10.0.0.2", config.Hosts)
	})

	t.Run("reads options from a configuration file", func() {
		configFile := t.writeConfig("hosts: 10.0.0.1;example.com\nlog-level: error\ntimeout: 3s\n")
		config := t.load("--config-file", configFile)

		t.Equal("10.0.0.1;example.com", config.Hosts)
		t.Equal(log.LevelError, config.LogLevel)
		t.Equal(3*time.Second, config.Timeout)
	})

	t.Run("prefers flags over a configuration file", func() {
		configFile := t.writeConfig("hosts: 10.0.0.1\n")
		config := t.load("--config-file", configFile, "--hosts", "10.0.0.2")

		t.Equal("10.0.0.2", config.Hosts)
	})

	errors := map[string][]string{
		"rejects an unknown log level":         {"--log-level", "debug"},
		"rejects an unknown flag":              {"--port", "80"},
		"rejects a missing configuration file": {"--config-file", filepath.Join(os.TempDir(), "no-such-dir", "config.yaml")},
	}

	for name, args := range errors {
		t.Run(name, func() {
			_, err := config.Load(newFlagSet(), args)
			t.Error(err)
		})
	}

	t.Run("rejects unknown keys in a configuration file", func() {
		configFile := t.writeConfig("hosts: 10.0.0.1\nport: 80\n")

		_, err := config.Load(newFlagSet(), []string{"--config-file", configFile})
		t.Error(err)
	})

	t.Run("reports a help request", func() {
		_, err := config.Load(newFlagSet(), []string{"--help"})
		t.ErrorIs(err, pflag.ErrHelp)
	})
}

func (t *ConfigTest) load(args ...string) *config.Config {
	config, err := config.Load(newFlagSet(), args)
	t.Require().NoError(err)
	return config
}

func (t *ConfigTest) writeConfig(content string) string {
	configFile := filepath.Join(t.T().TempDir(), "config.yaml")
	t.Require().NoError(os.WriteFile(configFile, []byte(content), 0o600))
	return configFile
}

func newFlagSet() *pflag.FlagSet {
	f := config.NewFlagSet("hostaddr")
	f.SetOutput(io.Discard)
	return f
}
