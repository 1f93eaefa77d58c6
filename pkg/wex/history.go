package wex

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
)

// filterSet is the set of filter keys an operation accepts. Keys outside the
// set are dropped silently before dispatch.
type filterSet map[string]struct{}

func newFilterSet(keys ...string) filterSet {
	s := make(filterSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s filterSet) apply(filters map[string]string) url.Values {
	params := url.Values{}
	for k, v := range filters {
		if _, ok := s[k]; ok {
			params.Set(k, v)
		}
	}
	return params
}

var (
	tradeHistoryFilters = newFilterSet("from", "count", "from_id", "end_id", "order", "since", "end", "pair")
	transHistoryFilters = newFilterSet("from", "count", "from_id", "end_id", "order", "since", "end")
)

// TradeHistory returns executed trades matching the given filters, keyed by
// trade id. Recognized filter keys: from, count, from_id, end_id, order,
// since, end, pair.
func (c *Client) TradeHistory(ctx context.Context, filters map[string]string) (map[string]HistoryEntry, error) {
	raw, err := c.tradeRequest(ctx, "TradeHistory", tradeHistoryFilters.apply(filters))
	if err != nil {
		return nil, err
	}
	entries := map[string]HistoryEntry{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "decode TradeHistory payload")
	}
	return entries, nil
}

// TransHistory returns balance-affecting transactions (deposits, withdrawals,
// coupon operations) matching the given filters, keyed by transaction id.
// Same filter keys as TradeHistory, minus pair.
func (c *Client) TransHistory(ctx context.Context, filters map[string]string) (map[string]Transaction, error) {
	raw, err := c.tradeRequest(ctx, "TransHistory", transHistoryFilters.apply(filters))
	if err != nil {
		return nil, err
	}
	transactions := map[string]Transaction{}
	if err := json.Unmarshal(raw, &transactions); err != nil {
		return nil, errors.Wrap(err, "decode TransHistory payload")
	}
	return transactions, nil
}
