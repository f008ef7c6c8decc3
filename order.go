package brokerage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidOrder reports a malformed order: empty security ticker, negative
// quantity or price, or a fractional share count. Malformed orders fail fast
// before touching any ledger state.
var ErrInvalidOrder = errors.New("invalid order")

// SecurityPosition represents a quantity of shares of a single security at a
// price. In portfolio snapshots the price is the weighted-average purchase
// price; in orders it is the requested (and, once filled, execution) price.
type SecurityPosition struct {
	Security string   // Security is the unique ticker of the security.
	Quantity Quantity // Quantity is the whole number of shares.
	Price    Money    // Price is the per-share price.
}

// Equal reports whether two positions have the same ticker, quantity and price.
func (p SecurityPosition) Equal(o SecurityPosition) bool {
	return p.Security == o.Security && p.Quantity.Equal(o.Quantity) && p.Price.Equal(o.Price)
}

// Order represents a request to buy or sell a security. As submitted it
// carries the requested quantity and price; the fill log records orders with
// the quantity that was actually transacted.
type Order struct {
	Side     Side
	Security string
	Quantity Quantity
	Price    Money // per-share price
}

// NewBuyOrder creates an order to purchase shares.
func NewBuyOrder(security string, quantity Quantity, price Money) Order {
	return Order{Side: Buy, Security: security, Quantity: quantity, Price: price}
}

// NewSellOrder creates an order to sell shares.
func NewSellOrder(security string, quantity Quantity, price Money) Order {
	return Order{Side: Sell, Security: security, Quantity: quantity, Price: price}
}

// Position returns the order's security/quantity/price triple.
func (o Order) Position() SecurityPosition {
	return SecurityPosition{Security: o.Security, Quantity: o.Quantity, Price: o.Price}
}

// Cost returns the total value of the order, quantity times per-share price.
func (o Order) Cost() Money {
	return o.Price.Mul(o.Quantity)
}

func (o Order) Equal(other Order) bool {
	return o.Side == other.Side && o.Security == other.Security &&
		o.Quantity.Equal(other.Quantity) && o.Price.Equal(other.Price)
}

// Validate checks the order's fields and returns an error wrapping
// ErrInvalidOrder on the first violation.
func (o Order) Validate() error {
	if o.Security == "" {
		return fmt.Errorf("%w: security ticker is missing", ErrInvalidOrder)
	}
	if o.Quantity.IsNegative() {
		return fmt.Errorf("%w: quantity must not be negative, got %s", ErrInvalidOrder, o.Quantity)
	}
	if !o.Quantity.IsWhole() {
		return fmt.Errorf("%w: only whole quantities may be traded, got %s", ErrInvalidOrder, o.Quantity)
	}
	if o.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative, got %s", ErrInvalidOrder, o.Price)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Order.
func (o Order) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("side", o.Side)
	w.Append("security", o.Security)
	w.Append("quantity", o.Quantity)
	w.Append("price", o.Price.value)
	w.Optional("currency", o.Price.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Order.
// It handles the custom structure where price and currency are separate
// fields. The side key is mandatory: the zero Side is a buy, and an absent
// key must not silently turn a hand-edited sell into one.
func (o *Order) UnmarshalJSON(data []byte) error {
	var temp struct {
		Side     *Side           `json:"side"`
		Security string          `json:"security"`
		Quantity Quantity        `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Side == nil {
		return fmt.Errorf("%w: order side is missing", ErrInvalidOrder)
	}
	o.Side = *temp.Side
	o.Security = temp.Security
	o.Quantity = temp.Quantity
	o.Price = M(temp.Price, temp.Currency)
	return nil
}
