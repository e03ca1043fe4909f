package firms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

func TestBuildDirectory(t *testing.T) {
	rows := []models.Row{
		{"key": "apex", "name": "Apex", "model": "Eval", "payoutSplit": "90"},
		{"name": "Topstep"},
		{"key": "apex", "name": "Apex Clone", "model": "Eval", "payoutSplit": "80"},
	}

	dir := BuildDirectory(rows)
	require.Equal(t, 3, dir.Len())

	assert.Equal(t, "apex", dir.Firms[0].Key)
	assert.Equal(t, "topstep", dir.Firms[1].Key)
	assert.Equal(t, "apex-2", dir.Firms[2].Key)

	require.Len(t, dir.Issues, 2)
	assert.Equal(t, models.RowIssue{Row: 3, Key: "topstep", Problems: []string{IssueMissingModel, IssueMissingPayout}}, dir.Issues[0])
	assert.Equal(t, 4, dir.Issues[1].Row)
	assert.Equal(t, "apex-2", dir.Issues[1].Key)
	assert.Contains(t, dir.Issues[1].Problems[0], IssueDuplicateKey)

	t.Run("Lookup", func(t *testing.T) {
		firm, ok := dir.Lookup("apex")
		require.True(t, ok)
		assert.Equal(t, "Apex", firm.Name)

		firm, ok = dir.Lookup("TOPSTEP")
		require.True(t, ok)
		assert.Equal(t, "Topstep", firm.Name)

		_, ok = dir.Lookup("missing")
		assert.False(t, ok)
	})
}

func TestBuildDirectoryEmpty(t *testing.T) {
	dir := BuildDirectory(nil)
	assert.NotNil(t, dir.Firms)
	assert.Empty(t, dir.Firms)
	assert.Empty(t, dir.Issues)
}

func TestComplete(t *testing.T) {
	dir := NewDirectory([]models.Firm{
		{Key: "a", Name: "A"},
		{Key: "b"},
		{Key: "a", Name: "A again"},
	})
	assert.Equal(t, 2, dir.Len())

	complete := dir.Complete()
	require.Equal(t, 1, complete.Len())
	assert.Equal(t, "A", complete.Firms[0].Name)
}

func TestFind(t *testing.T) {
	dir := NewDirectory([]models.Firm{
		{Key: "topstep", Name: "Topstep"},
		{Key: "funded-next", Name: "FundedNext"},
	})

	tests := []struct {
		key  string
		want string
	}{
		{"topstep", "Topstep"},
		{"top-step", "Topstep"},
		{"fundednext", "FundedNext"},
		{"Funded-Next", "FundedNext"},
		{"missing", ""},
		{"-", ""},
	}
	for _, tt := range tests {
		firm, ok := dir.Find(tt.key)
		assert.Equal(t, tt.want != "", ok, tt.key)
		assert.Equal(t, tt.want, firm.Name, tt.key)
	}
}
