// Package recommend suggests firms similar to the one being viewed.
package recommend

import (
	"math"
	"slices"
	"sort"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

const DefaultLimit = 3

const (
	modelWeight      = 0.6
	platformWeight   = 0.35
	flagWeight       = 0.25
	payoutWeight     = 0.1
	trustpilotWeight = 0.05
)

type scored struct {
	firm  models.Firm
	score float64
}

// Related ranks every other firm in universe by similarity to target and
// returns the best limit of them. Ties keep their order in universe.
func Related(target models.Firm, universe []models.Firm, limit int) []models.Firm {
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := make([]scored, 0, len(universe))
	for _, f := range universe {
		if f.Key == target.Key {
			continue
		}
		candidates = append(candidates, scored{firm: f, score: Score(target, f)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]models.Firm, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		out = append(out, c.firm)
	}
	return out
}

// Score rewards shared programs, platforms and rule flags, and penalises
// differences in payout split and Trustpilot rating.
func Score(a, b models.Firm) float64 {
	flags := 0
	if isTrue(a.NewsTrading) && isTrue(b.NewsTrading) {
		flags++
	}
	if isTrue(a.WeekendHolding) && isTrue(b.WeekendHolding) {
		flags++
	}
	if isTrue(a.FeeRefund) && isTrue(b.FeeRefund) {
		flags++
	}

	payoutDelta := math.Abs(valueOr(a.PayoutSplit) - valueOr(b.PayoutSplit))
	tpDelta := math.Abs(valueOr(a.Trustpilot) - valueOr(b.Trustpilot))

	return float64(overlap(a.Model, b.Model))*modelWeight +
		float64(overlap(a.Platforms, b.Platforms))*platformWeight +
		float64(flags)*flagWeight -
		payoutDelta*payoutWeight -
		tpDelta*trustpilotWeight
}

func overlap(a, b []string) int {
	n := 0
	for _, x := range a {
		if slices.Contains(b, x) {
			n++
		}
	}
	return n
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func valueOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
