// Package affiliates appends tracking codes to outbound firm links.
package affiliates

import (
	"maps"
	"net/url"
	"strings"

	"github.com/rm-hull/prop-firms-api/internal/config"
	"github.com/rm-hull/prop-firms-api/internal/models"
)

// Relative links are resolved against this origin and have it stripped again
// afterwards. The .invalid TLD can never collide with a real firm site.
const placeholderOrigin = "https://placeholder.invalid"

const campaignParam = "campaign"

var defaultRule = config.Rule{Type: config.RuleQuery, Param: "ref"}

// Builder is safe for concurrent use; its tables are copied on construction
// and never modified.
type Builder struct {
	defaultCode string
	codes       map[string]string
	rules       map[string]config.Rule
	links       map[string]string
}

func NewBuilder(cfg config.Affiliates) *Builder {
	return &Builder{
		defaultCode: cfg.DefaultCode,
		codes:       maps.Clone(cfg.Codes),
		rules:       maps.Clone(cfg.Rules),
		links:       maps.Clone(cfg.Links),
	}
}

// Code returns the affiliate code for firmKey, falling back to the default.
func (b *Builder) Code(firmKey string) string {
	if code, ok := b.codes[strings.ToLower(firmKey)]; ok {
		return code
	}
	return b.defaultCode
}

func (b *Builder) Rule(firmKey string) config.Rule {
	if rule, ok := b.rules[strings.ToLower(firmKey)]; ok {
		return rule
	}
	return defaultRule
}

// BuildURL adds the firm's affiliate code to baseURL, plus an optional
// campaign parameter. It returns baseURL untouched when it is empty or when no
// code applies.
func (b *Builder) BuildURL(baseURL, firmKey, campaign string) string {
	if baseURL == "" {
		return baseURL
	}

	code := b.Code(firmKey)
	if code == "" {
		return baseURL
	}

	u, relative := parseLenient(baseURL)

	query := parseQuery(u.RawQuery)
	dirty := false

	rule := b.Rule(firmKey)
	switch rule.Type {
	case config.RulePath:
		suffix := "/" + rule.Segment + "/" + code + "/"
		if u.Opaque != "" {
			u.Opaque = strings.TrimRight(u.Opaque, "/") + suffix
		} else {
			u.Path = strings.TrimRight(u.Path, "/") + suffix
			u.RawPath = ""
		}
	default:
		query = query.set(rule.Param, code)
		dirty = true
	}

	if campaign != "" {
		query = query.set(campaignParam, campaign)
		dirty = true
	}

	if dirty {
		u.RawQuery = query.encode()
	}

	out := u.String()
	if relative {
		out = strings.TrimPrefix(out, placeholderOrigin)
	}
	return out
}

// SignupLink picks the outbound link for a firm: a hand-built link from the
// config, then the firm's own affiliate URL, then its signup or homepage with
// the affiliate code applied.
func (b *Builder) SignupLink(firm models.Firm) string {
	if link := strings.TrimSpace(b.links[strings.ToLower(firm.Key)]); link != "" {
		return link
	}
	if firm.AffiliateURL != nil && strings.TrimSpace(*firm.AffiliateURL) != "" {
		return *firm.AffiliateURL
	}

	base := ""
	switch {
	case firm.Signup != nil && *firm.Signup != "":
		base = *firm.Signup
	case firm.Homepage != nil && *firm.Homepage != "":
		base = *firm.Homepage
	}
	return b.BuildURL(base, firm.Key, "")
}

// WithCampaign tags an already-built link with a campaign parameter and leaves
// any tracking code it carries alone.
func WithCampaign(link, campaign string) string {
	if link == "" || campaign == "" {
		return link
	}
	u, relative := parseLenient(link)
	u.RawQuery = parseQuery(u.RawQuery).set(campaignParam, campaign).encode()

	out := u.String()
	if relative {
		out = strings.TrimPrefix(out, placeholderOrigin)
	}
	return out
}

func parseLenient(raw string) (*url.URL, bool) {
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		if u.Path == "" {
			u.Path = "/"
		}
		return u, false
	}

	base, _ := url.Parse(placeholderOrigin + "/")
	ref, err := url.Parse(raw)
	if err != nil {
		ref, err = url.Parse("/" + strings.TrimLeft(raw, "/"))
	}
	if err != nil {
		return splitRaw(raw), true
	}

	resolved := base.ResolveReference(ref)
	return resolved, resolved.Host == base.Host
}

// splitRaw handles paths url.Parse rejects, such as stray percent signs. The
// path is kept verbatim in Opaque so String writes it back unescaped.
func splitRaw(raw string) *url.URL {
	rest, fragment, _ := strings.Cut(raw, "#")
	path, rawQuery, _ := strings.Cut(rest, "?")
	return &url.URL{
		Opaque:   "/" + strings.TrimLeft(path, "/"),
		RawQuery: rawQuery,
		Fragment: fragment,
	}
}
