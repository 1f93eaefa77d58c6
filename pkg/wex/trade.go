package wex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// tradeEnvelope is the wrapper every trade API response arrives in.
type tradeEnvelope struct {
	Success int             `json:"success"`
	Return  json.RawMessage `json:"return"`
	Error   string          `json:"error"`
}

// tradeRequest dispatches one authenticated call: merge a fresh nonce into
// params, url-encode, sign with HMAC-SHA512, POST, classify. HTTP 5xx is
// retried up to retryLimit times with a fixed wait; nonce and signature are
// rebuilt on every attempt so a replayed request is never rejected for nonce
// reuse. Everything else fails immediately.
func (c *Client) tradeRequest(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	if c.key == "" || c.secret == "" {
		return nil, errors.New("wex: api credentials not configured")
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("method", method)

	var lastStatus int
	var lastMessage string
	for attempt := 0; attempt <= c.retryLimit; attempt++ {
		if attempt > 0 {
			c.log.WithFields(logrus.Fields{
				"method":  method,
				"attempt": attempt + 1,
				"status":  lastStatus,
			}).Warn("retrying trade request after server error")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryWait):
			}
		}

		params.Set("nonce", strconv.FormatInt(c.nonce.Next(), 10))
		body := params.Encode()

		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetHeader("Key", c.key).
			SetHeader("Sign", signBody(body, c.secret)).
			SetBody(body).
			Post(tradePath)
		if err != nil {
			return nil, errors.Wrapf(err, "trade request %s", method)
		}

		var env tradeEnvelope
		decodeErr := json.Unmarshal(resp.Body(), &env)

		switch {
		case resp.StatusCode() == http.StatusOK && decodeErr == nil && env.Success == 1:
			return env.Return, nil
		case resp.StatusCode() >= http.StatusInternalServerError:
			lastStatus = resp.StatusCode()
			if decodeErr == nil && env.Error != "" {
				lastMessage = env.Error
			}
		case resp.StatusCode() == http.StatusOK && decodeErr != nil:
			return nil, errors.Wrapf(decodeErr, "decode trade response for %s", method)
		default:
			return nil, remoteError(env.Error, resp.StatusCode())
		}
	}

	return nil, remoteError(lastMessage, lastStatus)
}

// GetInfo returns the account's balances, access rights, open order count and
// server time.
func (c *Client) GetInfo(ctx context.Context) (*AccountInfo, error) {
	raw, err := c.tradeRequest(ctx, "getInfo", nil)
	if err != nil {
		return nil, err
	}
	var info AccountInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, errors.Wrap(err, "decode getInfo payload")
	}
	return &info, nil
}

// Trade places a limit order. Rate and amount travel as decimal strings, so
// no precision is lost on the wire. orderType is "buy" or "sell".
func (c *Client) Trade(ctx context.Context, pair, orderType string, rate, amount decimal.Decimal) (*TradeResult, error) {
	params := url.Values{}
	params.Set("pair", pair)
	params.Set("type", orderType)
	params.Set("rate", rate.String())
	params.Set("amount", amount.String())

	raw, err := c.tradeRequest(ctx, "Trade", params)
	if err != nil {
		return nil, err
	}
	var result TradeResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "decode Trade payload")
	}
	return &result, nil
}

// CancelOrder cancels an open order by id.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) (*CancelResult, error) {
	params := url.Values{}
	params.Set("order_id", strconv.FormatInt(orderID, 10))

	raw, err := c.tradeRequest(ctx, "CancelOrder", params)
	if err != nil {
		return nil, err
	}
	var result CancelResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "decode CancelOrder payload")
	}
	return &result, nil
}

// ActiveOrders lists the account's open orders for a pair. The exchange
// reports an error when there are none.
func (c *Client) ActiveOrders(ctx context.Context, pair string) (map[string]ActiveOrder, error) {
	params := url.Values{}
	if pair != "" {
		params.Set("pair", pair)
	}

	raw, err := c.tradeRequest(ctx, "ActiveOrders", params)
	if err != nil {
		return nil, err
	}
	orders := map[string]ActiveOrder{}
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, errors.Wrap(err, "decode ActiveOrders payload")
	}
	return orders, nil
}

// RedeemCoupon credits a coupon code to the account.
func (c *Client) RedeemCoupon(ctx context.Context, code string) (*CouponResult, error) {
	params := url.Values{}
	params.Set("coupon", code)

	raw, err := c.tradeRequest(ctx, "RedeemCoupon", params)
	if err != nil {
		return nil, err
	}
	var result CouponResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "decode RedeemCoupon payload")
	}
	return &result, nil
}

// CreateCoupon issues a coupon against the account's balance.
func (c *Client) CreateCoupon(ctx context.Context, currency string, amount decimal.Decimal) (*CouponResult, error) {
	params := url.Values{}
	params.Set("currency", currency)
	params.Set("amount", amount.String())

	raw, err := c.tradeRequest(ctx, "CreateCoupon", params)
	if err != nil {
		return nil, err
	}
	var result CouponResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "decode CreateCoupon payload")
	}
	return &result, nil
}
