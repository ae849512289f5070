package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level pulse configuration.
type Config struct {
	Addr        string        `mapstructure:"addr"`
	GitHubUser  string        `mapstructure:"github_user"`
	ResumePath  string        `mapstructure:"resume_path"`
	ScheduleURL string        `mapstructure:"schedule_url"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
	Reveal      Reveal        `mapstructure:"reveal"`
	Proof       Proof         `mapstructure:"proof"`
	Output      Output        `mapstructure:"output"`
}

// Reveal defines the call-to-action reveal gate.
type Reveal struct {
	Delay       time.Duration `mapstructure:"delay"`
	ScrollDepth float64       `mapstructure:"scroll_depth"`
}

// Proof defines the social-proof scheduler timing.
type Proof struct {
	InitialDelay    time.Duration `mapstructure:"initial_delay"`
	Interval        time.Duration `mapstructure:"interval"`
	DisplayDuration time.Duration `mapstructure:"display_duration"`
	Chance          float64       `mapstructure:"chance"`
}

// Output defines terminal output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("github_user", DefaultGitHubUser)
	v.SetDefault("resume_path", DefaultResumePath)
	v.SetDefault("schedule_url", DefaultScheduleURL)
	v.SetDefault("session_ttl", DefaultSessionTTL)
	v.SetDefault("reveal.delay", DefaultReveal.Delay)
	v.SetDefault("reveal.scroll_depth", DefaultReveal.ScrollDepth)
	v.SetDefault("proof.initial_delay", DefaultProof.InitialDelay)
	v.SetDefault("proof.interval", DefaultProof.Interval)
	v.SetDefault("proof.display_duration", DefaultProof.DisplayDuration)
	v.SetDefault("proof.chance", DefaultProof.Chance)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	// Environment overrides: PULSE_ADDR, PULSE_REVEAL_SCROLL_DEPTH, and
	// so on for every key above.
	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ResumePath = expandPath(cfg.ResumePath)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
