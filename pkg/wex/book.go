package wex

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// BestAsk returns the lowest-priced ask level. ok is false for an empty side.
func (d *Depth) BestAsk() (DepthLevel, bool) {
	if len(d.Asks) == 0 {
		return DepthLevel{}, false
	}
	return d.Asks[0], true
}

// BestBid returns the highest-priced bid level. ok is false for an empty side.
func (d *Depth) BestBid() (DepthLevel, bool) {
	if len(d.Bids) == 0 {
		return DepthLevel{}, false
	}
	return d.Bids[0], true
}

// Spread is best ask minus best bid. ok is false when either side is empty.
func (d *Depth) Spread() (decimal.Decimal, bool) {
	ask, okAsk := d.BestAsk()
	bid, okBid := d.BestBid()
	if !okAsk || !okBid {
		return decimal.Zero, false
	}
	return ask.Price.Sub(bid.Price), true
}

// Mid is the midpoint of the best ask and best bid.
func (d *Depth) Mid() (decimal.Decimal, bool) {
	ask, okAsk := d.BestAsk()
	bid, okBid := d.BestBid()
	if !okAsk || !okBid {
		return decimal.Zero, false
	}
	return ask.Price.Add(bid.Price).Div(decimal.NewFromInt(2)), true
}

// BuyCost walks the ask side and returns the total quote-currency cost of
// buying amount at the prices currently on the book. It errors when the book
// holds less than amount.
func (d *Depth) BuyCost(amount decimal.Decimal) (decimal.Decimal, error) {
	return walkSide(d.Asks, amount, "ask")
}

// SellProceeds walks the bid side and returns the total quote-currency
// proceeds of selling amount into the book. It errors when the book holds
// less than amount.
func (d *Depth) SellProceeds(amount decimal.Decimal) (decimal.Decimal, error) {
	return walkSide(d.Bids, amount, "bid")
}

func walkSide(levels []DepthLevel, amount decimal.Decimal, side string) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, errors.Errorf("amount must be positive, got %s", amount)
	}

	total := decimal.Zero
	remaining := amount
	for _, level := range levels {
		fill := decimal.Min(remaining, level.Amount)
		total = total.Add(fill.Mul(level.Price))
		remaining = remaining.Sub(fill)
		if remaining.Sign() <= 0 {
			return total, nil
		}
	}
	return decimal.Zero, errors.Errorf("%s side holds less than %s", side, amount)
}
