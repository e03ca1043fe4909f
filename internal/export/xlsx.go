// Package export writes the firm directory out as a spreadsheet.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/rm-hull/prop-firms-api/internal/affiliates"
	"github.com/rm-hull/prop-firms-api/internal/models"
	"github.com/rm-hull/prop-firms-api/internal/stats"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{
	"key", "name", "model", "platforms", "max_funding", "payout_split",
	"eval_cost", "activation_fee", "discount_percent", "discount_amount", "discount_code",
	"eval_after_discount", "true_cost", "true_cost_after_refund", "fee_refund",
	"trustpilot", "founded", "signup_link",
}

// Workbook lays firms out one per row under a header row, with the derived
// costs and outbound link alongside the sheet values.
func Workbook(firms []models.Firm, builder *affiliates.Builder) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write header")
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, errors.Wrap(err, "failed to write header")
		}
	}

	for i, firm := range firms {
		r := i + 2
		var setErr error
		set := func(col int, value any) {
			if setErr != nil {
				return
			}
			cell, err := excelize.CoordinatesToCellName(col, r)
			if err != nil {
				setErr = err
				return
			}
			setErr = f.SetCellValue(sheet, cell, value)
		}

		costs := stats.Costs(firm)
		discount := firm.Pricing.Discount
		if discount == nil {
			discount = &models.Discount{}
		}

		set(1, firm.Key)
		set(2, firm.Name)
		set(3, strings.Join(firm.Model, " | "))
		set(4, strings.Join(firm.Platforms, " | "))
		set(5, derefFloat(firm.MaxFunding))
		set(6, derefFloat(firm.PayoutSplit))
		set(7, derefFloat(firm.Pricing.EvalCost))
		set(8, derefFloat(firm.Pricing.ActivationFee))
		set(9, derefFloat(discount.Percent))
		set(10, derefFloat(discount.Amount))
		set(11, derefString(discount.Code))
		set(12, costs.EvalAfterDiscount)
		set(13, costs.TrueCost)
		set(14, costs.TrueCostAfterRefund)
		set(15, derefBool(firm.FeeRefund))
		set(16, derefFloat(firm.Trustpilot))
		set(17, derefInt(firm.Founded))
		set(18, builder.SignupLink(firm))

		if setErr != nil {
			return nil, errors.Wrapf(setErr, "failed to write row for %s", firm.Key)
		}
	}

	return f, nil
}

func Write(w io.Writer, firms []models.Firm, builder *affiliates.Builder) error {
	f, err := Workbook(firms, builder)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

func SaveAs(outputPath string, firms []models.Firm, builder *affiliates.Builder) error {
	f, err := Workbook(firms, builder)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", outputPath)
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefBool(v *bool) any {
	if v == nil {
		return ""
	}
	return *v
}
