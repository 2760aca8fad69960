package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const EnvPrefix = "EROSSCANS_"

// applyEnv overrides c with EROSSCANS_* variables found through lookup.
func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	strs := map[string]*string{
		"BASE_URL":      &c.BaseURL,
		"FORMAT":        &c.Format,
		"OUTPUT":        &c.Output,
		"COOKIE":        &c.Cookie,
		"COOKIE_FILE":   &c.CookieFile,
		"USER_AGENT":    &c.UserAgent,
		"DEFAULT_RANGE": &c.DefaultRange,
		"DEFAULT_LIST":  &c.DefaultList,
	}
	for name, dst := range strs {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"WORKERS": &c.Workers,
		"RETRIES": &c.Retries,
	}
	for name, dst := range ints {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"DEBUG":             &c.Debug,
		"LONG_STRIP":        &c.LongStrip,
		"SKIP_BROKEN":       &c.SkipBroken,
		"CLOUDFLARE_BYPASS": &c.CloudflareBypass,
	}
	for name, dst := range bools {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = b
		}
	}

	if v, ok := get("REQUESTS_PER_SECOND"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sREQUESTS_PER_SECOND: %w", EnvPrefix, err)
		}
		c.RequestsPerSecond = f
	}

	if v, ok := get("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err)
		}
		c.Timeout = d
	}

	return nil
}
