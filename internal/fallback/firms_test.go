package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rm-hull/prop-firms-api/internal/normalize"
)

func TestBundledFirms(t *testing.T) {
	list := Firms()
	require.Len(t, list, 19)

	m, err := Map()
	require.NoError(t, err)
	assert.Len(t, m, len(list))

	for _, firm := range list {
		assert.NotEmpty(t, firm.Key)
		assert.NotEmpty(t, firm.Name, "firm %s has no name", firm.Key)
		require.NotNil(t, firm.PayoutSplit, "firm %s has no payout split", firm.Key)
		assert.Greater(t, *firm.PayoutSplit, 1.0, "payout split for %s should be a percentage", firm.Key)
	}
}

func TestBundledFirmDetails(t *testing.T) {
	m, err := Map()
	require.NoError(t, err)

	apex := m["apex"]
	assert.Equal(t, "Apex Trader Funding", apex.Name)
	assert.Equal(t, []string{normalize.ModelEval}, apex.Model)
	assert.Equal(t, []string{"Rithmic", "NinjaTrader"}, apex.Platforms)
	require.NotNil(t, apex.MaxFunding)
	assert.Equal(t, 300000.0, *apex.MaxFunding)
	require.NotNil(t, apex.Trustpilot)
	assert.Equal(t, 4.7, *apex.Trustpilot)

	daytraders := m["daytraders"]
	require.NotNil(t, daytraders.AffiliateURL)
	assert.Equal(t, "https://daytraders.com/go/madprops?i=1", *daytraders.AffiliateURL)
	require.NotNil(t, daytraders.Founded)
	assert.Equal(t, 2022, *daytraders.Founded)

	topone := m["toponefutures"]
	assert.Equal(t, []string{normalize.ModelEval, normalize.ModelInstant, "S2F", "Ignite"}, topone.Model)
	require.NotNil(t, topone.Notes)
	assert.Equal(t, "Multiple program options: ELITE, Instant, S2F, Ignite.", *topone.Notes)

	topstep := m["topstep"]
	assert.Empty(t, topstep.Model)
	assert.Nil(t, topstep.Homepage)
	require.NotNil(t, topstep.Logo)
	assert.Equal(t, "/logos/topstep.png", *topstep.Logo)
}

func TestBundledDirectory(t *testing.T) {
	dir := Directory()
	assert.Equal(t, 19, dir.Len())

	firm, ok := dir.Lookup("tpt")
	require.True(t, ok)
	assert.Equal(t, "Take Profit Trader", firm.Name)

	// placeholder entries have no model yet
	assert.NotEmpty(t, dir.Issues)
	assert.Same(t, dir, Directory())
}
