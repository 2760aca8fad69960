package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "https://erosscans.xyz"
	DefaultEnvFile = ".env"
)

type Config struct {
	BaseURL           string            `yaml:"base_url"`
	Format            string            `yaml:"format"`
	Output            string            `yaml:"output"`
	Workers           int               `yaml:"workers"`
	RequestsPerSecond float64           `yaml:"requests_per_second"`
	Retries           int               `yaml:"retries"`
	Timeout           time.Duration     `yaml:"timeout"`
	Debug             bool              `yaml:"debug"`
	LongStrip         bool              `yaml:"long_strip"`
	SkipBroken        bool              `yaml:"skip_broken"`
	CloudflareBypass  bool              `yaml:"cloudflare_bypass"`
	Headers           map[string]string `yaml:"headers,omitempty"`

	DefaultRange string `yaml:"default_range"`
	DefaultList  string `yaml:"default_list"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`
}

// Options holds command line overrides. Zero values leave the loaded
// config untouched.
type Options struct {
	IgnoreConfig      bool
	EnvFile           string
	BaseURL           string
	Format            string
	Output            string
	Workers           int
	RequestsPerSecond float64
	Retries           int
	Timeout           time.Duration
	Debug             bool
	LongStrip         bool
	SkipBroken        bool
	CloudflareBypass  bool
	Cookie            string
	CookieFile        string
	UserAgent         string
	DefaultRange      string
	DefaultList       string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:           DefaultBaseURL,
		Format:            "text",
		Workers:           4,
		RequestsPerSecond: 2,
		Retries:           3,
		Timeout:           30 * time.Second,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged builds the effective config: defaults, then the active
// profile, then the environment (and .env file), then opts.
func LoadMerged(opts Options) (*Config, string, error) {
	cfg, source, err := loadBase(opts)
	if err != nil {
		return nil, "", err
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, "", err
	}
	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, "", err
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, source, nil
}

func loadBase(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		return DefaultConfig(), "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if errors.Is(err, ErrNoConfig) || activePath == "" {
		return DefaultConfig(), "(default config in memory)\nRun `erosscans config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	return cfg, activePath, nil
}

// loadEnvFile exports the variables of a dotenv file without overriding
// ones already set. A missing default file is fine.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}

	return fmt.Errorf("load env file %s: %w", path, err)
}

func mergeConfig(c *Config, o Options) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.RequestsPerSecond != 0 {
		c.RequestsPerSecond = o.RequestsPerSecond
	}
	if o.Retries != 0 {
		c.Retries = o.Retries
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Debug {
		c.Debug = true
	}
	if o.LongStrip {
		c.LongStrip = true
	}
	if o.SkipBroken {
		c.SkipBroken = true
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.DefaultRange != "" {
		c.DefaultRange = o.DefaultRange
	}
	if o.DefaultList != "" {
		c.DefaultList = o.DefaultList
	}
}

func normalizeDefaults(c *Config) {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.Retries < 0 {
		c.Retries = 0
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q", c.BaseURL)
	}

	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format %q (want text, json or yaml)", c.Format)
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative, got %v", c.RequestsPerSecond)
	}

	return nil
}

// RetryDelays doubles from one second for each configured retry.
func (c *Config) RetryDelays() []time.Duration {
	delays := make([]time.Duration, 0, c.Retries)
	d := time.Second
	for i := 0; i < c.Retries; i++ {
		delays = append(delays, d)
		d *= 2
	}

	return delays
}

func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, " -base_url: %s\n", c.BaseURL)
	fmt.Fprintf(w, " -format: %s\n", c.Format)
	if c.Output != "" {
		fmt.Fprintf(w, " -output: %s\n", c.Output)
	}
	fmt.Fprintf(w, " -workers: %d\n", c.Workers)
	fmt.Fprintf(w, " -requests_per_second: %v\n", c.RequestsPerSecond)
	fmt.Fprintf(w, " -retries: %d\n", c.Retries)
	fmt.Fprintf(w, " -timeout: %s\n", c.Timeout)
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	if c.LongStrip {
		fmt.Fprintf(w, " -long_strip: %t\n", c.LongStrip)
	}
	if c.SkipBroken {
		fmt.Fprintf(w, " -skip_broken: %t\n", c.SkipBroken)
	}
	if c.CloudflareBypass {
		fmt.Fprintf(w, " -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.DefaultRange != "" {
		fmt.Fprintf(w, " -range: %s\n", c.DefaultRange)
	}
	if c.DefaultList != "" {
		fmt.Fprintf(w, " -list: %s\n", c.DefaultList)
	}
	if c.CookieFile != "" {
		fmt.Fprintf(w, " -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if len(c.Headers) > 0 {
		keys := make([]string, 0, len(c.Headers))
		for k := range c.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(w, " -headers: %s\n", strings.Join(keys, ", "))
	}
}
