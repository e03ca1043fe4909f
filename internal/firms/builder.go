// Package firms turns normalized spreadsheet rows into canonical firm records.
package firms

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rm-hull/prop-firms-api/internal/models"
	"github.com/rm-hull/prop-firms-api/internal/normalize"
)

const (
	IssueMissingName   = "missing name"
	IssueMissingModel  = "missing model"
	IssueMissingPayout = "missing payoutSplit"
	IssueDuplicateKey  = "duplicate key"
)

var (
	slugUnsafe    = regexp.MustCompile(`[^a-z0-9]+`)
	leadingNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

type Result struct {
	Firm   models.Firm
	Issues []string
}

// NormalizeRow maps one sheet row onto a Firm. Problems with the data are
// reported as issues and never stop the firm from being built.
func NormalizeRow(row models.Row, index int) Result {
	name := normalize.Lookup(row, nameCols...)
	key := deriveKey(row, name, index)

	tags := normalize.NormalizeModels(normalize.Lookup(row, modelCols...))

	maxFunding := normalize.ToNumber(normalize.Lookup(row, maxFundingCols...), nil)
	if maxFunding == nil {
		maxFunding = normalize.ToNumber(normalize.Lookup(row, fundingCols...), nil)
	}

	payoutSplit := normalize.ParsePayoutSplit(normalize.Lookup(row, payoutCols...))
	url := normalize.Lookup(row, urlCols...)

	firm := models.Firm{
		Key:         key,
		Name:        name,
		Model:       tags,
		MaxFunding:  maxFunding,
		PayoutSplit: payoutSplit,
		Platforms:   normalize.ToArray(normalize.Lookup(row, platformCols...)),
		Pricing: models.Pricing{
			EvalCost:      normalize.ToNumber(normalize.Lookup(row, evalCostCols...), nil),
			ActivationFee: normalize.ToNumber(normalize.Lookup(row, activationCols...), nil),
			Discount:      resolveDiscount(row),
		},
		FeeRefund: normalize.ToOptionalBool(normalize.Lookup(row, feeRefundCols...)),

		Homepage:       normalize.ToString(normalize.First(normalize.Lookup(row, homepageCols...), url)),
		Signup:         normalize.ToString(normalize.First(normalize.Lookup(row, signupCols...), url)),
		AffiliateURL:   normalize.ToString(normalize.Lookup(row, affiliateURLCols...)),
		Logo:           normalize.ToString(normalize.First(normalize.Lookup(row, logoCols...), "/logos/"+key+".png")),
		Notes:          normalize.ToString(normalize.Lookup(row, notesCols...)),
		MinDays:        normalize.ToInt(normalize.Lookup(row, minDaysCols...), nil),
		Spreads:        normalize.ToString(normalize.Lookup(row, spreadsCols...)),
		NewsTrading:    normalize.ToOptionalBool(normalize.Lookup(row, newsTradingCols...)),
		WeekendHolding: normalize.ToOptionalBool(normalize.Lookup(row, weekendCols...)),
		Trustpilot:     normalize.ToNumber(normalize.Lookup(row, trustpilotCols...), nil),
		Founded:        normalize.ToInt(normalize.Lookup(row, foundedCols...), nil),
		Cap:            normalize.ToNumber(normalize.Lookup(row, capCols...), nil),
		Score:          normalize.ToNumber(normalize.Lookup(row, scoreCols...), nil),
	}

	issues := []string{}
	if name == "" {
		issues = append(issues, IssueMissingName)
	}
	if len(tags) == 0 {
		issues = append(issues, IssueMissingModel)
	}
	if payoutSplit == nil {
		issues = append(issues, IssueMissingPayout)
	}

	return Result{Firm: firm, Issues: issues}
}

func deriveKey(row models.Row, name string, index int) string {
	if key := normalize.Lookup(row, keyCols...); key != "" {
		return key
	}
	if slug := Slugify(name); slug != "" {
		return slug
	}
	return fmt.Sprintf("firm-%d", index)
}

// Slugify lowercases s and collapses every run of non-alphanumerics to a
// single hyphen. Leading and trailing hyphens are dropped.
func Slugify(s string) string {
	slug := slugUnsafe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// resolveDiscount applies, in order: an explicit value with an explicit type
// column, an explicit value typed by its label, and finally a number pulled
// out of the free-text label.
func resolveDiscount(row models.Row) *models.Discount {
	value := normalize.ToNumber(normalize.Lookup(row, discountValueCols...), nil)
	if value != nil && *value <= 0 {
		value = nil
	}
	kind := normalize.Lookup(row, discountTypeCols...)
	label := normalize.Lookup(row, discountLabelCols...)

	d := &models.Discount{
		Label: normalize.ToString(label),
		Code:  normalize.ToString(normalize.Lookup(row, discountCodeCols...)),
	}

	switch {
	case value != nil && kind != "":
		setValue(d, *value, normalize.IsAmount(kind))
	case value != nil && label != "":
		setValue(d, *value, normalize.IsAmount(label))
	case value != nil:
		setValue(d, *value, false)
	case label != "":
		n := normalize.ToNumber(leadingNumber.FindString(label), nil)
		if n == nil || *n <= 0 {
			return nil
		}
		lower := strings.ToLower(label)
		isAmount := strings.Contains(lower, "amount") || strings.Contains(lower, "off $") || strings.Contains(lower, "$")
		setValue(d, *n, isAmount)
	default:
		return nil
	}
	return d
}

func setValue(d *models.Discount, value float64, isAmount bool) {
	if isAmount {
		d.Amount = &value
	} else {
		d.Percent = &value
	}
}
