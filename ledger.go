package brokerage

import (
	"slices"
	"sync"
)

// AccountLedger is a single client account: a cash balance, the current
// portfolio, the per-security FIFO queues of outstanding buy lots, and the
// append-only log of processed fills.
//
// All methods are safe for concurrent use; a single mutex serializes every
// operation, so at most one order mutates the ledger at a time. This is an
// accounting structure, not a matching engine, so per-instance throughput is
// not a concern.
type AccountLedger struct {
	mu sync.Mutex

	cash      Money
	portfolio map[string]SecurityPosition
	buyLots   map[string]lots
	log       []Order

	// held keeps the tickers of currently-held securities in the order they
	// were first acquired, so position snapshots are stable.
	held []string
}

// NewAccountLedger creates an account holding the given initial cash balance
// and no securities. The balance is trusted as given: it is not validated.
func NewAccountLedger(initialCash Money) *AccountLedger {
	return &AccountLedger{
		cash:      initialCash,
		portfolio: make(map[string]SecurityPosition),
		buyLots:   make(map[string]lots),
	}
}

// SubmitOrder processes a buy or sell order and returns the whole number of
// shares actually transacted.
//
// Orders are never rejected outright for exceeding the available cash or
// holdings: they are filled to the maximum legal partial quantity, possibly
// zero. A buy fills at most floor(cash/price) shares; a sell fills at most
// the held quantity. Zero-quantity fills leave the ledger untouched and are
// not recorded in the transaction log.
//
// Malformed orders (empty ticker, negative quantity or price, fractional
// quantity) return an error wrapping ErrInvalidOrder and leave all state
// unchanged.
func (l *AccountLedger) SubmitOrder(order Order) (Quantity, error) {
	if err := order.Validate(); err != nil {
		return Q(0), err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	switch order.Side {
	case Sell:
		return l.handleSell(order), nil
	default:
		return l.handleBuy(order), nil
	}
}

// handleBuy fills as much of the order as the cash balance affords and
// updates the portfolio, lot queue, and fill log.
func (l *AccountLedger) handleBuy(order Order) Quantity {
	affordable := order.Quantity
	if order.Price.IsPositive() {
		// Never divide by a zero price: a free security costs nothing, so
		// the full request is affordable.
		affordable = l.cash.DivPrice(order.Price)
	}
	filled := order.Quantity.Min(affordable)
	if !filled.IsPositive() {
		return Q(0)
	}

	fill := Order{Side: Buy, Security: order.Security, Quantity: filled, Price: order.Price}
	cost := fill.Cost()
	l.cash = l.cash.Sub(cost)
	l.buyLots[order.Security] = append(l.buyLots[order.Security], lot{Quantity: filled, Cost: cost})

	if position, ok := l.portfolio[order.Security]; ok {
		// Weighted average purchase price on a per-share basis.
		newQuantity := position.Quantity.Add(filled)
		totalCost := position.Price.Mul(position.Quantity).Add(cost)
		l.portfolio[order.Security] = SecurityPosition{
			Security: order.Security,
			Quantity: newQuantity,
			Price:    totalCost.Div(newQuantity),
		}
	} else {
		l.portfolio[order.Security] = fill.Position()
		l.held = append(l.held, order.Security)
	}

	l.log = append(l.log, fill)
	return filled
}

// handleSell fills as much of the order as the current holding covers,
// consumes buy lots FIFO to recompute the remaining cost basis, and updates
// cash and the fill log.
func (l *AccountLedger) handleSell(order Order) Quantity {
	position, ok := l.portfolio[order.Security]
	if !ok {
		// Don't sell shares we don't have.
		return Q(0)
	}
	filled := order.Quantity.Min(position.Quantity)
	if !filled.IsPositive() {
		return Q(0)
	}

	queue := l.buyLots[order.Security]
	costRemoved := queue.fifoCostOfSelling(filled)
	l.buyLots[order.Security] = queue.sell(filled)

	remaining := position.Quantity.Sub(filled)
	if remaining.IsZero() {
		// The position is exhausted: remove it rather than divide by zero.
		delete(l.portfolio, order.Security)
		delete(l.buyLots, order.Security)
		if i := slices.Index(l.held, order.Security); i >= 0 {
			l.held = slices.Delete(l.held, i, i+1)
		}
	} else {
		// The remaining average reflects the FIFO cost basis of the shares
		// still held, not the sell execution price.
		remainingCost := position.Price.Mul(position.Quantity).Sub(costRemoved)
		l.portfolio[order.Security] = SecurityPosition{
			Security: order.Security,
			Quantity: remaining,
			Price:    remainingCost.Div(remaining),
		}
	}

	fill := Order{Side: Sell, Security: order.Security, Quantity: filled, Price: order.Price}
	l.cash = l.cash.Add(fill.Cost())
	l.log = append(l.log, fill)
	return filled
}

// Replay submits a batch of orders in sequence and returns the total filled
// quantity. It stops at the first malformed order.
func (l *AccountLedger) Replay(orders []Order) (Quantity, error) {
	var total Quantity
	for _, order := range orders {
		filled, err := l.SubmitOrder(order)
		if err != nil {
			return total, err
		}
		total = total.Add(filled)
	}
	return total, nil
}

// CashBalance returns the account's current cash balance.
func (l *AccountLedger) CashBalance() Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cash
}

// Positions returns a snapshot of the currently held securities, one entry
// per security, in the order they were first acquired. The price of each
// position is the weighted-average purchase price of the shares still held.
func (l *AccountLedger) Positions() []SecurityPosition {
	l.mu.Lock()
	defer l.mu.Unlock()

	positions := make([]SecurityPosition, 0, len(l.held))
	for _, ticker := range l.held {
		positions = append(positions, l.portfolio[ticker])
	}
	return positions
}

// Transactions returns a snapshot of the fill log in processing order. Only
// non-zero fills appear; each order carries the quantity actually transacted
// and the execution price as requested.
func (l *AccountLedger) Transactions() []Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.log)
}

// Position returns the quantity currently held of a single security, zero if
// the security is not held.
func (l *AccountLedger) Position(security string) Quantity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.portfolio[security].Quantity
}

// CostBasis returns the total cost of the currently held shares of a
// security, i.e. the remaining value of its FIFO buy-lot queue.
func (l *AccountLedger) CostBasis(security string) Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buyLots[security].totalCost()
}

// RealizedGains returns the profit or loss locked in by past sales of a
// security: the sum over all sell fills of proceeds minus the FIFO cost of
// the shares sold. It is computed by replaying the fill log against a
// scratch lot queue.
func (l *AccountLedger) RealizedGains(security string) Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.realizedGains(security)
}

func (l *AccountLedger) realizedGains(security string) Money {
	var gains Money
	var scratch lots
	for _, fill := range l.log {
		if fill.Security != security {
			continue
		}
		switch fill.Side {
		case Buy:
			scratch = append(scratch, lot{Quantity: fill.Quantity, Cost: fill.Cost()})
		case Sell:
			costOfSale := scratch.fifoCostOfSelling(fill.Quantity)
			gains = gains.Add(fill.Cost().Sub(costOfSale))
			scratch = scratch.sell(fill.Quantity)
		}
	}
	return gains
}

// TotalRealizedGains returns realized gains summed over every security that
// ever appeared in the fill log.
func (l *AccountLedger) TotalRealizedGains() Money {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total Money
	seen := make(map[string]struct{})
	for _, fill := range l.log {
		if _, ok := seen[fill.Security]; ok {
			continue
		}
		seen[fill.Security] = struct{}{}
		total = total.Add(l.realizedGains(fill.Security))
	}
	return total
}
