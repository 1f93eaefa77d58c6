package wex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// publicRequest dispatches one unauthenticated GET and decodes the response
// into out. The retry policy mirrors the trade path: HTTP 5xx is retried up
// to retryLimit times with a fixed wait, anything else fails immediately.
func (c *Client) publicRequest(ctx context.Context, path string, out any) error {
	var lastStatus int
	for attempt := 0; attempt <= c.retryLimit; attempt++ {
		if attempt > 0 {
			c.log.WithFields(logrus.Fields{
				"path":    path,
				"attempt": attempt + 1,
				"status":  lastStatus,
			}).Warn("retrying public request after server error")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryWait):
			}
		}

		resp, err := c.http.R().
			SetContext(ctx).
			Get(publicPath + path)
		if err != nil {
			return errors.Wrapf(err, "public request %s", path)
		}

		switch {
		case resp.StatusCode() == http.StatusOK:
			body := resp.Body()
			if msg, failed := publicErrorFlag(body); failed {
				return remoteError(msg, resp.StatusCode())
			}
			if err := json.Unmarshal(body, out); err != nil {
				return errors.Wrapf(err, "decode public response for %s", path)
			}
			return nil
		case resp.StatusCode() >= http.StatusInternalServerError:
			lastStatus = resp.StatusCode()
		default:
			var env struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(resp.Body(), &env)
			return remoteError(env.Error, resp.StatusCode())
		}
	}

	return remoteError("", lastStatus)
}

// publicErrorFlag sniffs the {"success":0,"error":...} shape the public
// endpoints use to report failures with a 200 status (an unknown pair, for
// example). Regular payloads are maps keyed by pair name or bare arrays, so
// a present zero success flag is unambiguous.
func publicErrorFlag(body []byte) (string, bool) {
	var env struct {
		Success *int   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Success == nil || *env.Success != 0 {
		return "", false
	}
	return env.Error, true
}

// unwrapPair pulls the single pair-keyed entry out of a public response. The
// caller already knows which pair it asked for, so the wrapper map is not
// surfaced.
func unwrapPair[T any](m map[string]T, pair, endpoint string) (*T, error) {
	if v, ok := m[pair]; ok {
		return &v, nil
	}
	for _, v := range m {
		return &v, nil
	}
	return nil, errors.Errorf("empty %s response for pair %s", endpoint, pair)
}

// PairsInfo fetches the exchange's trading pair metadata. An absent pairs
// section yields an empty map, not an error.
func (c *Client) PairsInfo(ctx context.Context) (map[string]PairInfo, error) {
	var out struct {
		ServerTime int64               `json:"server_time"`
		Pairs      map[string]PairInfo `json:"pairs"`
	}
	if err := c.publicRequest(ctx, "/info", &out); err != nil {
		return nil, err
	}
	if out.Pairs == nil {
		return map[string]PairInfo{}, nil
	}
	return out.Pairs, nil
}

// Depth returns the order book for a pair, limited to the given number of
// levels per side. A limit of zero or less falls back to DefaultDepthLimit.
func (c *Client) Depth(ctx context.Context, pair string, limit int) (*Depth, error) {
	if limit <= 0 {
		limit = DefaultDepthLimit
	}
	path := fmt.Sprintf("/depth/%s?limit=%d", url.PathEscape(pair), limit)

	out := map[string]Depth{}
	if err := c.publicRequest(ctx, path, &out); err != nil {
		return nil, err
	}
	return unwrapPair(out, pair, "depth")
}

// Ticker returns the 24h ticker for a pair.
func (c *Client) Ticker(ctx context.Context, pair string) (*Ticker, error) {
	out := map[string]Ticker{}
	if err := c.publicRequest(ctx, "/ticker/"+url.PathEscape(pair), &out); err != nil {
		return nil, err
	}
	return unwrapPair(out, pair, "ticker")
}

// RecentTrades returns the last trades executed on a pair, newest first.
func (c *Client) RecentTrades(ctx context.Context, pair string, limit int) ([]PublicTrade, error) {
	if limit <= 0 {
		limit = DefaultDepthLimit
	}
	path := fmt.Sprintf("/trades/%s?limit=%d", url.PathEscape(pair), limit)

	out := map[string][]PublicTrade{}
	if err := c.publicRequest(ctx, path, &out); err != nil {
		return nil, err
	}
	trades, err := unwrapPair(out, pair, "trades")
	if err != nil {
		return nil, err
	}
	return *trades, nil
}
