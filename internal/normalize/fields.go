// Package normalize coerces loosely typed spreadsheet cells into typed values.
// Every function here is total: bad input yields the supplied default.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

var (
	nonNumeric   = regexp.MustCompile(`[^0-9.\-]`)
	listSplit    = regexp.MustCompile(`[|,/;]+`)
	truthy       = regexp.MustCompile(`(?i)^(true|yes|y|1)$`)
	splitRange   = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	amountMarker = regexp.MustCompile(`(?i)amount|flat|\$`)
)

// First returns the first value that is non-blank after trimming, or "".
func First(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// Lookup tries each column alias in order and returns the first non-blank value.
func Lookup(row models.Row, aliases ...string) string {
	for _, alias := range aliases {
		if v, ok := row[alias]; ok {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// Has reports whether any alias is present with a non-blank value.
func Has(row models.Row, aliases ...string) bool {
	return Lookup(row, aliases...) != ""
}

func ToNumber(s string, def *float64) *float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return def
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return def
	}
	return &n
}

func ToInt(s string, def *int) *int {
	n := ToNumber(s, nil)
	if n == nil {
		return def
	}
	i := int(math.Trunc(*n))
	return &i
}

func ToBool(s string) bool {
	return truthy.MatchString(strings.TrimSpace(s))
}

// ToOptionalBool is ToBool for a cell that may be missing entirely.
func ToOptionalBool(s string) *bool {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	b := ToBool(s)
	return &b
}

func ToArray(s string) []string {
	out := []string{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, token := range listSplit.Split(s, -1) {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

func ToString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParsePayoutSplit reads a percentage, taking the upper bound of a "70 - 80"
// range. Zero is treated as unknown.
func ParsePayoutSplit(raw string) *float64 {
	split := ToNumber(raw, nil)
	if split == nil {
		if m := splitRange.FindStringSubmatch(raw); m != nil {
			split = ToNumber(m[2], nil)
		}
	}
	if split != nil && *split == 0 {
		return nil
	}
	return split
}

const (
	DiscountPercent = "percent"
	DiscountAmount  = "amount"
)

// DiscountKind classifies a discount type or label. Anything not clearly a
// flat dollar amount counts as a percentage.
func DiscountKind(label string) string {
	if amountMarker.MatchString(label) {
		return DiscountAmount
	}
	return DiscountPercent
}

func IsAmount(label string) bool {
	return DiscountKind(label) == DiscountAmount
}
