package internal

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rm-hull/prop-firms-api/internal/firms"
	"github.com/rm-hull/prop-firms-api/internal/models"
)

func fallbackDirectory() *firms.Directory {
	return firms.NewDirectory([]models.Firm{
		{Key: "tpt", Name: "Take Profit Trader"},
		{Key: "nameless"},
	})
}

func TestFirmSourceFetch(t *testing.T) {
	srv, _ := csvServer(t, http.StatusOK, sampleCSV)
	src := NewFirmSource(NewSheetClient(srv.URL, time.Minute, time.Second), fallbackDirectory())

	snapshot, err := src.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, snapshot.Live)
	assert.Equal(t, []string{"firm_key", "firm_name", "model", "payout_split_pct"}, snapshot.Parsed.Columns)
	require.Equal(t, 2, snapshot.Directory.Len())
	require.Len(t, snapshot.Directory.Issues, 1)
	assert.Equal(t, models.RowIssue{Row: 3, Key: "topstep", Problems: []string{firms.IssueMissingPayout}}, snapshot.Directory.Issues[0])
}

func TestFirmSourceFetchEmptySheet(t *testing.T) {
	srv, _ := csvServer(t, http.StatusOK, "")
	src := NewFirmSource(NewSheetClient(srv.URL, time.Minute, time.Second), nil)

	snapshot, err := src.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Directory.Firms)
	assert.Empty(t, snapshot.Directory.Firms)
}

func TestFirmSourceFetchStrict(t *testing.T) {
	srv, _ := csvServer(t, http.StatusInternalServerError, "")
	src := NewFirmSource(NewSheetClient(srv.URL, time.Minute, time.Second), fallbackDirectory())

	_, err := src.Fetch(context.Background(), false)
	assert.Error(t, err)
}

func TestFirmSourceLoadFallsBack(t *testing.T) {
	src := NewFirmSource(NewSheetClient("", time.Minute, time.Second), fallbackDirectory())

	snapshot := src.Load(context.Background())
	assert.False(t, snapshot.Live)
	assert.Equal(t, ErrMissingSheetURL.Error(), snapshot.Error)
	require.Equal(t, 1, snapshot.Directory.Len())
	assert.Equal(t, "tpt", snapshot.Directory.Firms[0].Key)
}

func TestFirmSourceLoadLive(t *testing.T) {
	srv, _ := csvServer(t, http.StatusOK, "firm_key,firm_name\napex,Apex\n,\n")
	src := NewFirmSource(NewSheetClient(srv.URL, time.Minute, time.Second), fallbackDirectory())

	snapshot := src.Load(context.Background())
	assert.True(t, snapshot.Live)
	assert.Empty(t, snapshot.Error)
	require.Equal(t, 1, snapshot.Directory.Len())
	assert.Equal(t, "apex", snapshot.Directory.Firms[0].Key)
}

func TestFirmSourceRefresh(t *testing.T) {
	srv, hits := csvServer(t, http.StatusOK, sampleCSV)
	src := NewFirmSource(NewSheetClient(srv.URL, time.Minute, time.Second), fallbackDirectory())

	_, err := src.Fetch(context.Background(), false)
	require.NoError(t, err)

	snapshot, err := src.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, snapshot.Live)
	assert.Equal(t, 2, snapshot.Directory.Len())
	assert.EqualValues(t, 2, atomic.LoadInt32(hits))
}
