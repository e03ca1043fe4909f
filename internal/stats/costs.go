package stats

import (
	"math"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

// Costs works out what a firm's evaluation actually costs. A flat discount
// amount takes precedence over a percentage, and the evaluation fee is
// credited back when the firm refunds it.
func Costs(firm models.Firm) models.CostResult {
	evalFee := valueOr(firm.Pricing.EvalCost, 0)
	activation := valueOr(firm.Pricing.ActivationFee, 0)

	percent, amount := 0.0, 0.0
	if d := firm.Pricing.Discount; d != nil {
		percent = valueOr(d.Percent, 0)
		amount = valueOr(d.Amount, 0)
	}

	var evalAfterDiscount float64
	if amount > 0 {
		evalAfterDiscount = math.Max(0, evalFee-amount)
	} else {
		evalAfterDiscount = math.Max(0, evalFee*(1-percent/100))
	}
	trueCost := evalAfterDiscount + activation

	refund := 0.0
	if firm.FeeRefund != nil && *firm.FeeRefund {
		refund = evalAfterDiscount
	}

	return models.CostResult{
		EvalAfterDiscount:   evalAfterDiscount,
		TrueCost:            trueCost,
		TrueCostAfterRefund: math.Max(0, trueCost-refund),
	}
}

func valueOr(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	return *v
}
