package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const envPrefix = "PROPFIRMS_"

// embedded feeds a byte slice compiled into the binary to koanf.
type embedded []byte

func (e embedded) ReadBytes() ([]byte, error) {
	return e, nil
}

func (e embedded) Read() (map[string]interface{}, error) {
	return nil, errors.New("embedded provider does not support Read")
}

func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(embedded(defaultsYAML), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, "failed to load embedded defaults")
	}

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	// PROPFIRMS_SHEET_CSV_URL -> sheet_csv_url
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment")
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.SheetCSVURL == "" {
		cfg.SheetCSVURL = firstEnv("SHEET_CSV_URL", "NEXT_PUBLIC_SHEET_CSV_URL")
	}

	cfg.Affiliates.Codes = lowerKeys(cfg.Affiliates.Codes)
	cfg.Affiliates.Links = lowerKeys(cfg.Affiliates.Links)
	rules := make(map[string]Rule, len(cfg.Affiliates.Rules))
	for key, rule := range cfg.Affiliates.Rules {
		rule.Type = strings.ToLower(strings.TrimSpace(rule.Type))
		rules[strings.ToLower(key)] = rule
	}
	cfg.Affiliates.Rules = rules

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}
