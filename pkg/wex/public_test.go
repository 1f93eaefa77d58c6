package wex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDepth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/3/depth/btc_usd" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("limit = %s, want 20", got)
		}
		writeJSON(w, http.StatusOK, `{
			"btc_usd": {
				"asks": [[103.426, 0.01], [103.5, 15]],
				"bids": [[103.2, 2.48502251], [103.08, 0.5]]
			}
		}`)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	depth, err := client.Depth(context.Background(), "btc_usd", 20)
	require.NoError(t, err)
	require.Len(t, depth.Asks, 2)
	require.Len(t, depth.Bids, 2)
	require.True(t, depth.Asks[0].Price.Equal(decimal.RequireFromString("103.426")))
	require.True(t, depth.Bids[0].Amount.Equal(decimal.RequireFromString("2.48502251")))
}

func TestDepthDefaultLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "150" {
			t.Errorf("limit = %s, want 150", got)
		}
		writeJSON(w, http.StatusOK, `{"btc_usd": {"asks": [[1, 1]], "bids": [[1, 1]]}}`)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Depth(context.Background(), "btc_usd", 0)
	require.NoError(t, err)
}

func TestDepthEmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Depth(context.Background(), "btc_usd", 0)
	require.Error(t, err)
}

func TestPairsInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/3/info" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{
			"server_time": 1370814956,
			"pairs": {
				"btc_usd": {
					"decimal_places": 3, "min_price": 0.1, "max_price": 400,
					"min_amount": 0.01, "hidden": 0, "fee": 0.2
				}
			}
		}`)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	pairs, err := client.PairsInfo(context.Background())
	require.NoError(t, err)
	require.Contains(t, pairs, "btc_usd")
	require.Equal(t, 3, pairs["btc_usd"].DecimalPlaces)
	require.True(t, pairs["btc_usd"].Fee.Equal(decimal.RequireFromString("0.2")))
}

func TestTicker(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/3/ticker/btc_usd" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{
			"btc_usd": {
				"high": 109.88, "low": 91.14, "avg": 100.51, "vol": 1632898.2249,
				"vol_cur": 16541.51969, "last": 101.773, "buy": 101.9, "sell": 101.773,
				"updated": 1370816308
			}
		}`)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	ticker, err := client.Ticker(context.Background(), "btc_usd")
	require.NoError(t, err)
	require.True(t, ticker.Last.Equal(decimal.RequireFromString("101.773")))
	require.Equal(t, int64(1370816308), ticker.Updated)
}

func TestRecentTrades(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/3/trades/btc_usd" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{
			"btc_usd": [
				{"type": "ask", "price": 103.6, "amount": 0.101, "tid": 4861261, "timestamp": 1370818007},
				{"type": "bid", "price": 103.989, "amount": 1.51, "tid": 4861254, "timestamp": 1370817960}
			]
		}`)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	trades, err := client.RecentTrades(context.Background(), "btc_usd", 2)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	require.Equal(t, "ask", trades[0].Type)
	require.Equal(t, int64(4861261), trades[0].TID)
}

func TestPublicErrorBody(t *testing.T) {
	// The public API reports bad pairs with HTTP 200 and a success flag.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success": 0, "error": "Invalid pair name: btc_rub"}`)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Depth(context.Background(), "btc_rub", 0)

	var remote *RemoteError
	require.True(t, errors.As(err, &remote), "want RemoteError, got %T: %v", err, err)
	require.Equal(t, "Invalid pair name: btc_rub", remote.Message)
}

func TestPublicRetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, `{"btc_usd": {"last": 100, "updated": 1}}`)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	ticker, err := client.Ticker(context.Background(), "btc_usd")
	require.NoError(t, err)
	require.Equal(t, int32(3), attempts.Load())
	require.True(t, ticker.Last.Equal(decimal.NewFromInt(100)))
}

func TestPublicRetryCeiling(t *testing.T) {
	var attempts atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Ticker(context.Background(), "btc_usd")
	require.Error(t, err)
	require.Equal(t, int32(4), attempts.Load())

	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	require.Equal(t, http.StatusBadGateway, remote.Status)
}
