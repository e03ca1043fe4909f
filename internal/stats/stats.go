package stats

import (
	"math"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

func Derive(firms []models.Firm) *models.DirectoryStatistics {
	stats := &models.DirectoryStatistics{
		Count:                len(firms),
		CheapestFirms:        []string{},
		PlatformDistribution: make(map[string]int),
		ModelDistribution:    make(map[string]int),
	}

	splits := make([]float64, 0, len(firms))
	costFirms := make(map[float64][]string) // true cost -> firm keys
	var cheapest *float64

	for _, firm := range firms {
		if firm.PayoutSplit != nil {
			splits = append(splits, *firm.PayoutSplit)
		}

		// Only firms with a published fee take part in the cheapest ranking
		if firm.Pricing.EvalCost != nil {
			cost := Costs(firm).TrueCost
			costFirms[cost] = append(costFirms[cost], firm.Key)
			if cheapest == nil || cost < *cheapest {
				cheapest = &cost
			}
		}

		if firm.Pricing.Discount != nil {
			stats.WithDiscount++
		}
		for _, platform := range firm.Platforms {
			stats.PlatformDistribution[platform]++
		}
		for _, model := range firm.Model {
			stats.ModelDistribution[model]++
		}
	}

	if cheapest != nil {
		stats.CheapestTrueCost = cheapest
		stats.CheapestFirms = costFirms[*cheapest]
	}

	if len(splits) == 0 {
		return stats
	}

	lowest := splits[0]
	highest := splits[0]
	sum := 0.0
	for _, s := range splits {
		if s < lowest {
			lowest = s
		}
		if s > highest {
			highest = s
		}
		sum += s
	}
	avg := math.Round(sum/float64(len(splits))*10) / 10

	stats.LowestPayoutSplit = &lowest
	stats.HighestPayoutSplit = &highest
	stats.AveragePayoutSplit = &avg

	return stats
}
