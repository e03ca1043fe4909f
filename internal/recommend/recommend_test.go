package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

func ptr[T any](v T) *T {
	return &v
}

func keys(firms []models.Firm) []string {
	out := make([]string, len(firms))
	for i, f := range firms {
		out[i] = f.Key
	}
	return out
}

func TestScore(t *testing.T) {
	a := models.Firm{
		Model:       []string{"Eval", "Instant"},
		Platforms:   []string{"Rithmic"},
		NewsTrading: ptr(true),
		PayoutSplit: ptr(90.0),
		Trustpilot:  ptr(4.5),
	}
	b := models.Firm{
		Model:       []string{"Eval"},
		Platforms:   []string{"Rithmic", "MT5"},
		NewsTrading: ptr(true),
		PayoutSplit: ptr(80.0),
		Trustpilot:  ptr(4.0),
	}

	// 0.6 + 0.35 + 0.25 - 10*0.1 - 0.5*0.05
	assert.InDelta(t, 0.175, Score(a, b), 1e-9)
	assert.InDelta(t, Score(a, b), Score(b, a), 1e-9)
}

func TestRelated(t *testing.T) {
	target := models.Firm{Key: "apex", Model: []string{"Eval"}, Platforms: []string{"Rithmic"}, PayoutSplit: ptr(90.0)}
	universe := []models.Firm{
		target,
		{Key: "instant", Model: []string{"Instant"}, PayoutSplit: ptr(90.0)},
		{Key: "twin", Model: []string{"Eval"}, Platforms: []string{"Rithmic"}, PayoutSplit: ptr(90.0)},
		{Key: "close", Model: []string{"Eval"}, PayoutSplit: ptr(90.0)},
		{Key: "far", Model: []string{"Eval"}, PayoutSplit: ptr(70.0)},
		{Key: "nothing"},
	}

	t.Run("Default limit excludes the target", func(t *testing.T) {
		assert.Equal(t, []string{"twin", "close", "instant"}, keys(Related(target, universe, 0)))
	})

	t.Run("Limit larger than universe", func(t *testing.T) {
		assert.Len(t, Related(target, universe, 10), 5)
	})

	t.Run("Empty universe", func(t *testing.T) {
		assert.Empty(t, Related(target, nil, 3))
	})
}
