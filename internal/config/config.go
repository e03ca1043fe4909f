// Package config holds process configuration: where the firm sheet lives, how
// long it is cached, and the affiliate tables used to build outbound links.
//
// Values are layered (low -> high precedence):
//  1. struct defaults (New)
//  2. the embedded defaults.yaml
//  3. a YAML file named by PROPFIRMS_CONFIG, if set
//  4. PROPFIRMS_* environment variables
package config

import (
	"time"

	"github.com/cockroachdb/errors"
)

const (
	RuleQuery = "query"
	RulePath  = "path"
)

// Rule says where an affiliate code goes in a URL: a query parameter named
// Param, or a /Segment/code/ path suffix.
type Rule struct {
	Type    string `koanf:"type"`
	Param   string `koanf:"param"`
	Segment string `koanf:"segment"`
}

type Affiliates struct {
	DefaultCode string            `koanf:"default_code"`
	Codes       map[string]string `koanf:"codes"`
	Rules       map[string]Rule   `koanf:"rules"`
	Links       map[string]string `koanf:"links"`
}

type Config struct {
	// SheetCSVURL is the published CSV export of the firm spreadsheet.
	SheetCSVURL string `koanf:"sheet_csv_url"`

	// RevalidateSeconds is how long a fetched sheet is served from cache.
	RevalidateSeconds int `koanf:"revalidate_seconds"`

	FetchTimeoutSeconds int `koanf:"fetch_timeout_seconds"`

	// RefreshSchedule is a cron spec for warming the sheet cache.
	RefreshSchedule string `koanf:"refresh_schedule"`

	SiteURL string `koanf:"site_url"`

	Affiliates Affiliates `koanf:"affiliates"`

	// Redirects are fixed slug -> URL entries served alongside firm links.
	Redirects map[string]string `koanf:"redirects"`
}

func New() *Config {
	return &Config{
		RevalidateSeconds:   600,
		FetchTimeoutSeconds: 15,
		RefreshSchedule:     "@every 10m",
		SiteURL:             "http://localhost:3000",
		Affiliates: Affiliates{
			Codes: map[string]string{},
			Rules: map[string]Rule{},
			Links: map[string]string{},
		},
		Redirects: map[string]string{},
	}
}

func (c *Config) Revalidate() time.Duration {
	return time.Duration(c.RevalidateSeconds) * time.Second
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func (c *Config) Validate() error {
	if c.RevalidateSeconds <= 0 {
		return errors.Newf("revalidate_seconds must be positive, got %d", c.RevalidateSeconds)
	}
	if c.FetchTimeoutSeconds <= 0 {
		return errors.Newf("fetch_timeout_seconds must be positive, got %d", c.FetchTimeoutSeconds)
	}
	for key, rule := range c.Affiliates.Rules {
		switch rule.Type {
		case RuleQuery:
			if rule.Param == "" {
				return errors.Newf("affiliate rule %q: query rule needs a param", key)
			}
		case RulePath:
			if rule.Segment == "" {
				return errors.Newf("affiliate rule %q: path rule needs a segment", key)
			}
		default:
			return errors.Newf("affiliate rule %q: unknown type %q", key, rule.Type)
		}
	}
	return nil
}
