package app

import (
	"strings"

	"github.com/henderiw/intervals/pkg/command"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "INTERVALS"

// Config is the resolved CLI configuration. Values come from flags,
// then INTERVALS_* environment variables, then the config file, then
// defaults.
type Config struct {
	Prompt string `mapstructure:"prompt"`
	Quiet  bool   `mapstructure:"quiet"`
	Output string `mapstructure:"output"`
	Input  string `mapstructure:"input"`
	Set    string `mapstructure:"set"`
}

func addFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("prompt", command.DefaultPrompt, "prompt written before each command is read")
	fs.BoolP("quiet", "q", false, "do not write the prompt")
	fs.StringP("output", "o", "text", "output format: text or yaml")
	fs.StringP("input", "i", "", "read commands from this file instead of stdin ('-' for stdin)")
	fs.String("set", "default", "name of the interval set the session starts on")
}

func loadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
