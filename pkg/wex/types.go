package wex

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Funds maps currency codes to balances.
type Funds map[string]decimal.Decimal

// AccessRights reports what the API key is allowed to do.
type AccessRights struct {
	Info     int `json:"info"`
	Trade    int `json:"trade"`
	Withdraw int `json:"withdraw"`
}

// AccountInfo is the getInfo payload.
type AccountInfo struct {
	Funds            Funds        `json:"funds"`
	Rights           AccessRights `json:"rights"`
	TransactionCount int64        `json:"transaction_count"`
	OpenOrders       int64        `json:"open_orders"`
	ServerTime       int64        `json:"server_time"`
}

// TradeResult is the Trade payload. OrderID is zero when the order matched
// in full immediately.
type TradeResult struct {
	Received decimal.Decimal `json:"received"`
	Remains  decimal.Decimal `json:"remains"`
	OrderID  int64           `json:"order_id"`
	Funds    Funds           `json:"funds"`
}

// CancelResult is the CancelOrder payload.
type CancelResult struct {
	OrderID int64 `json:"order_id"`
	Funds   Funds `json:"funds"`
}

// CouponResult covers the RedeemCoupon and CreateCoupon payloads. Coupon is
// only set when creating one.
type CouponResult struct {
	Coupon         string          `json:"coupon"`
	CouponAmount   decimal.Decimal `json:"couponAmount"`
	CouponCurrency string          `json:"couponCurrency"`
	TransID        int64           `json:"transID"`
	Funds          Funds           `json:"funds"`
}

// HistoryEntry is one TradeHistory row, keyed by trade id in the response.
type HistoryEntry struct {
	Pair        string          `json:"pair"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Rate        decimal.Decimal `json:"rate"`
	OrderID     int64           `json:"order_id"`
	IsYourOrder int             `json:"is_your_order"`
	Timestamp   int64           `json:"timestamp"`
}

// Transaction is one TransHistory row, keyed by transaction id.
type Transaction struct {
	Type      int             `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Desc      string          `json:"desc"`
	Status    int             `json:"status"`
	Timestamp int64           `json:"timestamp"`
}

// ActiveOrder is one ActiveOrders row, keyed by order id.
type ActiveOrder struct {
	Pair             string          `json:"pair"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Rate             decimal.Decimal `json:"rate"`
	TimestampCreated int64           `json:"timestamp_created"`
	Status           int             `json:"status"`
}

// PairInfo describes a trading pair as reported by the public info endpoint.
type PairInfo struct {
	DecimalPlaces int             `json:"decimal_places"`
	MinPrice      decimal.Decimal `json:"min_price"`
	MaxPrice      decimal.Decimal `json:"max_price"`
	MinAmount     decimal.Decimal `json:"min_amount"`
	Hidden        int             `json:"hidden"`
	Fee           decimal.Decimal `json:"fee"`
}

// DepthLevel is one [price, amount] pair from the order book arrays.
type DepthLevel struct {
	Price  decimal.Decimal
	Amount decimal.Decimal
}

func (l *DepthLevel) UnmarshalJSON(data []byte) error {
	var raw [2]decimal.Decimal
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Price, l.Amount = raw[0], raw[1]
	return nil
}

func (l DepthLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]decimal.Decimal{l.Price, l.Amount})
}

// Depth is the order book for a single pair. Asks are sorted ascending and
// bids descending, as the exchange sends them.
type Depth struct {
	Asks []DepthLevel `json:"asks"`
	Bids []DepthLevel `json:"bids"`
}

// Ticker is the public 24h ticker for a single pair.
type Ticker struct {
	High    decimal.Decimal `json:"high"`
	Low     decimal.Decimal `json:"low"`
	Avg     decimal.Decimal `json:"avg"`
	Vol     decimal.Decimal `json:"vol"`
	VolCur  decimal.Decimal `json:"vol_cur"`
	Last    decimal.Decimal `json:"last"`
	Buy     decimal.Decimal `json:"buy"`
	Sell    decimal.Decimal `json:"sell"`
	Updated int64           `json:"updated"`
}

// PublicTrade is one row of the public trade feed.
type PublicTrade struct {
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	TID       int64           `json:"tid"`
	Timestamp int64           `json:"timestamp"`
}
