package internal

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "firm_key,firm_name,model,payout_split_pct\napex,Apex,Eval,90\ntopstep,Topstep,Eval,\n"

func csvServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestSheetClientFetch(t *testing.T) {
	srv, hits := csvServer(t, http.StatusOK, sampleCSV)
	client := NewSheetClient(srv.URL, time.Minute, time.Second)

	assert.Nil(t, client.LastUpdated())

	text, err := client.FetchCSV(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, text)
	assert.NotNil(t, client.LastUpdated())
	assert.True(t, client.Check().Pass())

	t.Run("Second fetch is served from cache", func(t *testing.T) {
		_, err := client.FetchCSV(context.Background(), false)
		require.NoError(t, err)
		assert.EqualValues(t, 1, atomic.LoadInt32(hits))
	})

	t.Run("nocache bypasses the cache", func(t *testing.T) {
		_, err := client.FetchCSV(context.Background(), true)
		require.NoError(t, err)
		assert.EqualValues(t, 2, atomic.LoadInt32(hits))
	})
}

func TestSheetClientErrors(t *testing.T) {
	t.Run("Missing URL", func(t *testing.T) {
		client := NewSheetClient("", time.Minute, time.Second)
		_, err := client.FetchCSV(context.Background(), false)
		assert.ErrorIs(t, err, ErrMissingSheetURL)
		assert.False(t, client.Check().Pass())
	})

	t.Run("Upstream status", func(t *testing.T) {
		srv, _ := csvServer(t, http.StatusNotFound, "nope")
		client := NewSheetClient(srv.URL, time.Minute, time.Second)

		_, err := client.FetchCSV(context.Background(), false)
		require.Error(t, err)

		var stErr *HTTPStatusError
		require.True(t, errors.As(err, &stErr))
		assert.Equal(t, http.StatusNotFound, stErr.StatusCode)
		assert.False(t, client.Check().Pass())
		assert.Equal(t, "firm-sheet", client.Check().Name())
	})

	t.Run("Network failure", func(t *testing.T) {
		srv, _ := csvServer(t, http.StatusOK, "")
		url := srv.URL
		srv.Close()

		client := NewSheetClient(url, time.Minute, time.Second)
		_, err := client.FetchCSV(context.Background(), false)
		assert.Error(t, err)
	})
}

func TestSheetClientCancelledCaller(t *testing.T) {
	srv, hits := csvServer(t, http.StatusOK, sampleCSV)
	client := NewSheetClient(srv.URL, time.Minute, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text, err := client.FetchCSV(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, text)

	_, err = client.FetchCSV(context.Background(), false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(hits))
}

func TestSheetClientRefresh(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		_, _ = fmt.Fprintf(w, "key\nv%d\n", n)
	}))
	t.Cleanup(srv.Close)
	client := NewSheetClient(srv.URL, time.Minute, time.Second)

	text, err := client.FetchCSV(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "key\nv1\n", text)

	text, err = client.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key\nv2\n", text)

	text, err = client.FetchCSV(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "key\nv2\n", text)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))

	t.Run("Missing URL", func(t *testing.T) {
		_, err := NewSheetClient("", time.Minute, time.Second).Refresh(context.Background())
		assert.ErrorIs(t, err, ErrMissingSheetURL)
	})
}
